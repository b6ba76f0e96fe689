package handler

import (
	"net/http"

	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/apierror"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Resumen godoc
// @Summary Resumen del dashboard de recepción (cacheado)
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Router /v1/dashboard [get]
func (h *DashboardHandler) Resumen(c *gin.Context) {
	resp, err := h.svc.Resumen(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refrescar godoc
// @Summary Invalida el cache del dashboard
// @Tags dashboard
// @Success 204
// @Router /v1/dashboard/refrescar [post]
func (h *DashboardHandler) Refrescar(c *gin.Context) {
	if err := h.svc.InvalidarCache(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
