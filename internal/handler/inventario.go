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

type InventarioHandler struct{ svc service.InventarioService }

func NewInventarioHandler(svc service.InventarioService) *InventarioHandler {
	return &InventarioHandler{svc: svc}
}

// List godoc
// @Summary Lista el inventario completo en piezas
// @Tags inventario
// @Produce json
// @Success 200 {array} dto.InventarioResponse
// @Router /v1/inventario [get]
func (h *InventarioHandler) List(c *gin.Context) {
	resp, err := h.svc.ListInventario(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Stock godoc
// @Summary Stock actual de un producto (cero si nunca ha tenido inventario)
// @Tags inventario
// @Produce json
// @Param producto_id path string true "ID del producto"
// @Success 200 {object} dto.StockResponse
// @Router /v1/inventario/{producto_id}/stock [get]
func (h *InventarioHandler) Stock(c *gin.Context) {
	productoID, err := uuid.Parse(c.Param("producto_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	cantidad, err := h.svc.StockActual(c.Request.Context(), productoID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, dto.StockResponse{
		ProductoID: productoID.String(),
		Cantidad:   cantidad,
	})
}

// Ajustar godoc
// @Summary Ajuste manual tras conteo físico
// @Description Fija la cantidad RESULTANTE; la bitácora registra esa cantidad,
// @Description no el delta. Cantidades negativas se rechazan.
// @Tags inventario
// @Accept json
// @Produce json
// @Param body body dto.AjusteInventarioRequest true "Ajuste"
// @Success 200 {object} dto.MovimientoResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/inventario/ajuste [post]
func (h *InventarioHandler) Ajustar(c *gin.Context) {
	var req dto.AjusteInventarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AjustarInventario(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Movimientos godoc
// @Summary Bitácora de movimientos de inventario
// @Tags inventario
// @Produce json
// @Param producto_id query string false "Filtrar por producto"
// @Param tipo query int false "1=Entrada 2=Salida 3=Ajuste"
// @Param fecha_inicio query string false "YYYY-MM-DD"
// @Param fecha_fin query string false "YYYY-MM-DD (inclusive)"
// @Success 200 {array} dto.MovimientoResponse
// @Router /v1/inventario/movimientos [get]
func (h *InventarioHandler) Movimientos(c *gin.Context) {
	var q dto.MovimientoQuery
	if !bindQueryAndValidate(c, &q) {
		return
	}
	resp, err := h.svc.ListMovimientos(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// StockBajo godoc
// @Summary Productos activos con stock en o bajo el límite
// @Tags inventario
// @Produce json
// @Param limite query int false "Límite de piezas; vacío = configurado"
// @Success 200 {array} dto.InventarioResponse
// @Router /v1/inventario/stock-bajo [get]
func (h *InventarioHandler) StockBajo(c *gin.Context) {
	limite, _ := strconv.Atoi(c.DefaultQuery("limite", "0"))
	resp, err := h.svc.StockBajo(c.Request.Context(), limite)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Reporte godoc
// @Summary Resumen general del inventario
// @Tags inventario
// @Produce json
// @Success 200 {object} dto.ReporteInventarioResponse
// @Router /v1/inventario/reporte [get]
func (h *InventarioHandler) Reporte(c *gin.Context) {
	resp, err := h.svc.Reporte(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
