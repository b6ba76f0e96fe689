package handler

import (
	"net/http"

	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/apierror"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/dto"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PreRegistroHandler struct{ svc service.PreRegistroService }

func NewPreRegistroHandler(svc service.PreRegistroService) *PreRegistroHandler {
	return &PreRegistroHandler{svc: svc}
}

// Crear godoc
// @Summary Captura un pre-registro desde el sitio público
// @Tags preregistros
// @Accept json
// @Produce json
// @Param body body dto.CrearPreRegistroRequest true "Datos del interesado"
// @Success 201 {object} dto.PreRegistroResponse
// @Router /v1/preregistros [post]
func (h *PreRegistroHandler) Crear(c *gin.Context) {
	var req dto.CrearPreRegistroRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearPreRegistro(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary Lista pre-registros; pendientes con más de 3 días se reportan vencidos
// @Tags preregistros
// @Produce json
// @Success 200 {array} dto.PreRegistroResponse
// @Router /v1/preregistros [get]
func (h *PreRegistroHandler) List(c *gin.Context) {
	resp, err := h.svc.ListPreRegistros(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Aceptar godoc
// @Summary Acepta un pre-registro pendiente
// @Tags preregistros
// @Produce json
// @Param id path string true "ID del pre-registro"
// @Success 200 {object} dto.PreRegistroResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/preregistros/{id}/aceptar [post]
func (h *PreRegistroHandler) Aceptar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.AceptarPreRegistro(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Rechazar godoc
// @Summary Rechaza un pre-registro pendiente
// @Tags preregistros
// @Produce json
// @Param id path string true "ID del pre-registro"
// @Success 200 {object} dto.PreRegistroResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/preregistros/{id}/rechazar [post]
func (h *PreRegistroHandler) Rechazar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.RechazarPreRegistro(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
