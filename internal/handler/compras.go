package handler

import (
	"net/http"

	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/apierror"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/dto"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CompraHandler struct{ svc service.CompraService }

func NewCompraHandler(svc service.CompraService) *CompraHandler {
	return &CompraHandler{svc: svc}
}

// Registrar godoc
// @Summary Registra una compra a proveedor y la aplica al inventario
// @Description La cabecera se persiste primero; la aplicación al inventario
// @Description corre como su propia transacción y es reintentable.
// @Tags compras
// @Accept json
// @Produce json
// @Param body body dto.RegistrarCompraRequest true "Líneas de la compra"
// @Success 201 {object} dto.CompraResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/compras [post]
func (h *CompraHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarCompra(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Aplicar godoc
// @Summary Reintenta la aplicación de una compra al inventario
// @Description Idempotente por línea: las ya aplicadas se omiten.
// @Tags compras
// @Produce json
// @Param id path string true "ID de la compra"
// @Success 200 {object} dto.AplicacionInventarioResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/compras/{id}/aplicar [post]
func (h *CompraHandler) Aplicar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.AplicarCompra(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Revertir godoc
// @Summary Revierte una compra aplicada, descontando el stock
// @Tags compras
// @Param id path string true "ID de la compra"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /v1/compras/{id}/revertir [post]
func (h *CompraHandler) Revertir(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.RevertirCompra(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Obtener godoc
// @Summary Obtiene una compra con sus líneas
// @Tags compras
// @Produce json
// @Param id path string true "ID de la compra"
// @Success 200 {object} dto.CompraResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/compras/{id} [get]
func (h *CompraHandler) Obtener(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ObtenerCompra(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary Lista compras, opcionalmente filtradas por proveedor
// @Tags compras
// @Produce json
// @Param proveedor_id query string false "Filtrar por proveedor"
// @Success 200 {array} dto.CompraResponse
// @Router /v1/compras [get]
func (h *CompraHandler) List(c *gin.Context) {
	if pid := c.Query("proveedor_id"); pid != "" {
		proveedorID, err := uuid.Parse(pid)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("proveedor_id inválido"))
			return
		}
		resp, err := h.svc.ComprasPorProveedor(c.Request.Context(), proveedorID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp, err := h.svc.ListCompras(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
