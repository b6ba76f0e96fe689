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

type VisitaHandler struct{ svc service.VisitaService }

func NewVisitaHandler(svc service.VisitaService) *VisitaHandler {
	return &VisitaHandler{svc: svc}
}

// Registrar godoc
// @Summary Cobra una visita de un día
// @Tags visitas
// @Accept json
// @Produce json
// @Param body body dto.RegistrarVisitaRequest true "Datos de la visita"
// @Success 201 {object} dto.VisitaResponse
// @Router /v1/visitas [post]
func (h *VisitaHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarVisitaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarVisita(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary Lista visitas; con fecha, sólo las de ese día
// @Tags visitas
// @Produce json
// @Param fecha query string false "YYYY-MM-DD"
// @Success 200 {array} dto.VisitaResponse
// @Router /v1/visitas [get]
func (h *VisitaHandler) List(c *gin.Context) {
	if f := c.Query("fecha"); f != "" {
		fecha, err := time.ParseInLocation("2006-01-02", f, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("fecha inválida, formato YYYY-MM-DD"))
			return
		}
		resp, err := h.svc.VisitasDelDia(c.Request.Context(), fecha)
		if err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp, err := h.svc.ListVisitas(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener godoc
// @Summary Obtiene una visita por ID
// @Tags visitas
// @Produce json
// @Param id path string true "ID de la visita"
// @Success 200 {object} dto.VisitaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/visitas/{id} [get]
func (h *VisitaHandler) Obtener(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ObtenerVisita(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Semana godoc
// @Summary Visitas de los últimos 7 días
// @Tags visitas
// @Produce json
// @Param fecha query string false "YYYY-MM-DD; vacío = hoy"
// @Success 200 {array} dto.VisitaResponse
// @Router /v1/visitas/semana [get]
func (h *VisitaHandler) Semana(c *gin.Context) {
	fecha := time.Now()
	if f := c.Query("fecha"); f != "" {
		parsed, err := time.ParseInLocation("2006-01-02", f, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("fecha inválida, formato YYYY-MM-DD"))
			return
		}
		fecha = parsed
	}
	resp, err := h.svc.VisitasDeLaSemana(c.Request.Context(), fecha)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Mes godoc
// @Summary Visitas de un mes calendario
// @Tags visitas
// @Produce json
// @Param anio query int false "Año; vacío = actual"
// @Param mes query int false "Mes 1-12; vacío = actual"
// @Success 200 {array} dto.VisitaResponse
// @Router /v1/visitas/mes [get]
func (h *VisitaHandler) Mes(c *gin.Context) {
	ahora := time.Now()
	year, _ := strconv.Atoi(c.DefaultQuery("anio", strconv.Itoa(ahora.Year())))
	mes, _ := strconv.Atoi(c.DefaultQuery("mes", strconv.Itoa(int(ahora.Month()))))
	if mes < 1 || mes > 12 {
		c.JSON(http.StatusBadRequest, apierror.New("mes inválido"))
		return
	}
	resp, err := h.svc.VisitasDelMes(c.Request.Context(), year, time.Month(mes))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
