package handler

import (
	"net/http"
	"strconv"

	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/apierror"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/dto"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MembresiaHandler struct{ svc service.MembresiaService }

func NewMembresiaHandler(svc service.MembresiaService) *MembresiaHandler {
	return &MembresiaHandler{svc: svc}
}

// Crear godoc
// @Summary Da de alta un socio con su membresía
// @Tags membresias
// @Accept json
// @Produce json
// @Param body body dto.CrearMembresiaRequest true "Datos del socio"
// @Success 201 {object} dto.MembresiaResponse
// @Router /v1/membresias [post]
func (h *MembresiaHandler) Crear(c *gin.Context) {
	var req dto.CrearMembresiaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearMembresia(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Renovar godoc
// @Summary Renueva la membresía de un socio por código
// @Tags membresias
// @Accept json
// @Produce json
// @Param codigo path string true "Código de cliente"
// @Param body body dto.RenovarMembresiaRequest true "Pago de renovación"
// @Success 200 {object} dto.MembresiaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/membresias/codigo/{codigo}/renovar [post]
func (h *MembresiaHandler) Renovar(c *gin.Context) {
	var req dto.RenovarMembresiaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RenovarMembresia(c.Request.Context(), c.Param("codigo"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary Actualiza los datos de un socio
// @Tags membresias
// @Accept json
// @Produce json
// @Param id path string true "ID de la membresía"
// @Param body body dto.ActualizarMembresiaRequest true "Campos a actualizar"
// @Success 200 {object} dto.MembresiaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/membresias/{id} [put]
func (h *MembresiaHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.ActualizarMembresiaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarMembresia(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener godoc
// @Summary Obtiene una membresía por ID
// @Tags membresias
// @Produce json
// @Param id path string true "ID de la membresía"
// @Success 200 {object} dto.MembresiaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/membresias/{id} [get]
func (h *MembresiaHandler) Obtener(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ObtenerMembresia(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PorCodigo godoc
// @Summary Busca un socio por su código de cliente
// @Tags membresias
// @Produce json
// @Param codigo path string true "Código de cliente (6 dígitos)"
// @Success 200 {object} dto.MembresiaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/membresias/codigo/{codigo} [get]
func (h *MembresiaHandler) PorCodigo(c *gin.Context) {
	resp, err := h.svc.ObtenerPorCodigo(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary Lista todas las membresías
// @Tags membresias
// @Produce json
// @Success 200 {array} dto.MembresiaResponse
// @Router /v1/membresias [get]
func (h *MembresiaHandler) List(c *gin.Context) {
	resp, err := h.svc.ListMembresias(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PorVencer godoc
// @Summary Membresías activas próximas a vencer
// @Tags membresias
// @Produce json
// @Param dias query int false "Días de anticipación (default 7)"
// @Success 200 {array} dto.MembresiaResponse
// @Router /v1/membresias/por-vencer [get]
func (h *MembresiaHandler) PorVencer(c *gin.Context) {
	dias, _ := strconv.Atoi(c.DefaultQuery("dias", "7"))
	resp, err := h.svc.MembresiasPorVencer(c.Request.Context(), dias)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Historial godoc
// @Summary Historial de pagos de un socio
// @Tags membresias
// @Produce json
// @Param codigo path string true "Código de cliente"
// @Success 200 {array} dto.PagoMembresiaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/membresias/codigo/{codigo}/historial [get]
func (h *MembresiaHandler) Historial(c *gin.Context) {
	resp, err := h.svc.HistorialPagos(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Desactivar godoc
// @Summary Desactiva la membresía de un socio
// @Tags membresias
// @Param id path string true "ID de la membresía"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /v1/membresias/{id} [delete]
func (h *MembresiaHandler) Desactivar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.DesactivarMembresia(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
