package handler

import (
	"net/http"

	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/apierror"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/dto"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProveedorHandler struct{ svc service.ProveedorService }

func NewProveedorHandler(svc service.ProveedorService) *ProveedorHandler {
	return &ProveedorHandler{svc: svc}
}

// Crear godoc
// @Summary Registra un proveedor
// @Tags proveedores
// @Accept json
// @Produce json
// @Param body body dto.CrearProveedorRequest true "Datos del proveedor"
// @Success 201 {object} dto.ProveedorResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/proveedores [post]
func (h *ProveedorHandler) Crear(c *gin.Context) {
	var req dto.CrearProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearProveedor(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Actualizar godoc
// @Summary Actualiza un proveedor
// @Tags proveedores
// @Accept json
// @Produce json
// @Param id path string true "ID del proveedor"
// @Param body body dto.ActualizarProveedorRequest true "Campos a actualizar"
// @Success 200 {object} dto.ProveedorResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/proveedores/{id} [put]
func (h *ProveedorHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.ActualizarProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarProveedor(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener godoc
// @Summary Obtiene un proveedor por ID
// @Tags proveedores
// @Produce json
// @Param id path string true "ID del proveedor"
// @Success 200 {object} dto.ProveedorResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/proveedores/{id} [get]
func (h *ProveedorHandler) Obtener(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ObtenerProveedor(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary Lista proveedores (activos por defecto)
// @Tags proveedores
// @Produce json
// @Param incluir_inactivos query bool false "Incluir proveedores desactivados"
// @Success 200 {array} dto.ProveedorResponse
// @Router /v1/proveedores [get]
func (h *ProveedorHandler) List(c *gin.Context) {
	incluirInactivos := c.Query("incluir_inactivos") == "true"
	resp, err := h.svc.ListProveedores(c.Request.Context(), incluirInactivos)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Desactivar godoc
// @Summary Desactiva un proveedor (nunca se elimina)
// @Tags proveedores
// @Param id path string true "ID del proveedor"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /v1/proveedores/{id} [delete]
func (h *ProveedorHandler) Desactivar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.DesactivarProveedor(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
