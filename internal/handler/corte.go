package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/apierror"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/dto"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CorteHandler struct{ svc service.CorteService }

func NewCorteHandler(svc service.CorteService) *CorteHandler {
	return &CorteHandler{svc: svc}
}

// Abrir godoc
// @Summary Abre el corte de caja del día
// @Description A lo más un corte abierto en todo el sistema.
// @Tags corte
// @Accept json
// @Produce json
// @Param body body dto.AbrirCorteRequest true "Monto inicial"
// @Success 201 {object} dto.CorteResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/cortes/abrir [post]
func (h *CorteHandler) Abrir(c *gin.Context) {
	var req dto.AbrirCorteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Abrir(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RegistrarMovimiento godoc
// @Summary Registra un movimiento manual en el corte abierto
// @Description Sin corte abierto el movimiento se descarta sin error.
// @Tags corte
// @Accept json
// @Param body body dto.MovimientoCajaRequest true "Movimiento"
// @Success 204
// @Router /v1/cortes/movimiento [post]
func (h *CorteHandler) RegistrarMovimiento(c *gin.Context) {
	var req dto.MovimientoCajaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.RegistrarMovimiento(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// Cerrar godoc
// @Summary Cierra el corte abierto calculando el monto final
// @Tags corte
// @Produce json
// @Success 200 {object} dto.CorteResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/cortes/cerrar [post]
func (h *CorteHandler) Cerrar(c *gin.Context) {
	resp, err := h.svc.Cerrar(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Abierto godoc
// @Summary Obtiene el corte abierto actual
// @Tags corte
// @Produce json
// @Success 200 {object} dto.CorteResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/cortes/abierto [get]
func (h *CorteHandler) Abierto(c *gin.Context) {
	resp, err := h.svc.ObtenerAbierto(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener godoc
// @Summary Obtiene un corte con sus movimientos
// @Tags corte
// @Produce json
// @Param id path string true "ID del corte"
// @Success 200 {object} dto.CorteResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/cortes/{id} [get]
func (h *CorteHandler) Obtener(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ObtenerCorte(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PorDia godoc
// @Summary Cortes abiertos en una fecha
// @Tags corte
// @Produce json
// @Param fecha query string false "YYYY-MM-DD; vacío = hoy"
// @Success 200 {array} dto.CorteResponse
// @Router /v1/cortes/dia [get]
func (h *CorteHandler) PorDia(c *gin.Context) {
	fecha := time.Now()
	if f := c.Query("fecha"); f != "" {
		parsed, err := time.ParseInLocation("2006-01-02", f, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("fecha inválida, formato YYYY-MM-DD"))
			return
		}
		fecha = parsed
	}
	resp, err := h.svc.CortesPorDia(c.Request.Context(), fecha)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PorMes godoc
// @Summary Cortes abiertos en un mes calendario
// @Tags corte
// @Produce json
// @Param anio query int false "Año; vacío = actual"
// @Param mes query int false "Mes 1-12; vacío = actual"
// @Success 200 {array} dto.CorteResponse
// @Router /v1/cortes/mes [get]
func (h *CorteHandler) PorMes(c *gin.Context) {
	ahora := time.Now()
	year, _ := strconv.Atoi(c.DefaultQuery("anio", strconv.Itoa(ahora.Year())))
	mes, _ := strconv.Atoi(c.DefaultQuery("mes", strconv.Itoa(int(ahora.Month()))))
	if mes < 1 || mes > 12 {
		c.JSON(http.StatusBadRequest, apierror.New("mes inválido"))
		return
	}
	resp, err := h.svc.CortesPorMes(c.Request.Context(), year, time.Month(mes))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PDF godoc
// @Summary Genera y descarga el PDF de un corte
// @Tags corte
// @Produce application/pdf
// @Param id path string true "ID del corte"
// @Success 200
// @Failure 404 {object} apierror.APIError
// @Router /v1/cortes/{id}/pdf [get]
func (h *CorteHandler) PDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	path, err := h.svc.GenerarPDF(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.FileAttachment(path, "corte_"+id.String()+".pdf")
}
