package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/dto"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/model"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrMembresiaNoEncontrada = errors.New("membresía no encontrada")
	ErrCodigoAgotado         = errors.New("no se pudo generar un código de cliente único")
)

type MembresiaService interface {
	CrearMembresia(ctx context.Context, req dto.CrearMembresiaRequest) (*dto.MembresiaResponse, error)
	RenovarMembresia(ctx context.Context, codigo string, req dto.RenovarMembresiaRequest) (*dto.MembresiaResponse, error)
	ActualizarMembresia(ctx context.Context, id uuid.UUID, req dto.ActualizarMembresiaRequest) (*dto.MembresiaResponse, error)
	ObtenerMembresia(ctx context.Context, id uuid.UUID) (*dto.MembresiaResponse, error)
	ObtenerPorCodigo(ctx context.Context, codigo string) (*dto.MembresiaResponse, error)
	ListMembresias(ctx context.Context) ([]dto.MembresiaResponse, error)
	MembresiasPorVencer(ctx context.Context, dias int) ([]dto.MembresiaResponse, error)
	HistorialPagos(ctx context.Context, codigo string) ([]dto.PagoMembresiaResponse, error)
	DesactivarMembresia(ctx context.Context, id uuid.UUID) error
}

type membresiaService struct {
	repo  repository.MembresiaRepository
	corte CorteService
}

func NewMembresiaService(repo repository.MembresiaRepository, corte CorteService) MembresiaService {
	return &membresiaService{repo: repo, corte: corte}
}

// ── CrearMembresia ────────────────────────────────────────────────────────────

func (s *membresiaService) CrearMembresia(ctx context.Context, req dto.CrearMembresiaRequest) (*dto.MembresiaResponse, error) {
	codigo, err := s.generarCodigo(ctx)
	if err != nil {
		return nil, err
	}

	meses := req.MesesVigencia
	if meses <= 0 {
		meses = 1
	}
	ahora := time.Now()
	vencimiento := ahora.AddDate(0, meses, 0)

	membresia := &model.Membresia{
		CodigoCliente:         codigo,
		Nombre:                req.Nombre,
		Edad:                  req.Edad,
		Telefono:              req.Telefono,
		Direccion:             req.Direccion,
		Correo:                req.Correo,
		Rutina:                req.Rutina,
		EnfermedadesOLesiones: req.EnfermedadesOLesiones,
		FotoURL:               req.FotoURL,
		FechaRegistro:         ahora,
		FechaVencimiento:      vencimiento,
		FormaPago:             req.FormaPago,
		Tipo:                  req.Tipo,
		Nivel:                 req.Nivel,
		MontoPagado:           req.MontoPagado,
		Activa:                true,
	}
	if err := s.repo.Create(ctx, membresia); err != nil {
		return nil, err
	}

	if err := s.repo.CreateHistorial(ctx, &model.MembresiaHistorial{
		MembresiaID:   membresia.ID,
		CodigoCliente: codigo,
		FechaPago:     ahora,
		PeriodoInicio: ahora,
		PeriodoFin:    vencimiento,
		FormaPago:     req.FormaPago,
		MontoPagado:   req.MontoPagado,
	}); err != nil {
		return nil, err
	}

	s.registrarEnCorte(ctx, "Membresía", req.MontoPagado.String(), dto.MovimientoCajaRequest{
		Tipo:        "Membresía",
		Monto:       req.MontoPagado,
		Descripcion: fmt.Sprintf("Alta de membresía %s (%s)", codigo, req.Nombre),
	})

	return membresiaToResponse(membresia), nil
}

// ── RenovarMembresia ──────────────────────────────────────────────────────────
// Extends from the current vencimiento when still vigente, from today when
// already expired. The pago always lands in the historial.

func (s *membresiaService) RenovarMembresia(ctx context.Context, codigo string, req dto.RenovarMembresiaRequest) (*dto.MembresiaResponse, error) {
	membresia, err := s.repo.FindByCodigo(ctx, codigo)
	if err != nil {
		return nil, ErrMembresiaNoEncontrada
	}

	meses := req.MesesVigencia
	if meses <= 0 {
		meses = 1
	}
	ahora := time.Now()
	inicio := membresia.FechaVencimiento
	if inicio.Before(ahora) {
		inicio = ahora
	}
	vencimiento := inicio.AddDate(0, meses, 0)

	membresia.FechaVencimiento = vencimiento
	membresia.MontoPagado = req.MontoPagado
	if req.FormaPago != "" {
		membresia.FormaPago = req.FormaPago
	}
	membresia.Activa = true
	if err := s.repo.Update(ctx, membresia); err != nil {
		return nil, err
	}

	if err := s.repo.CreateHistorial(ctx, &model.MembresiaHistorial{
		MembresiaID:   membresia.ID,
		CodigoCliente: codigo,
		FechaPago:     ahora,
		PeriodoInicio: inicio,
		PeriodoFin:    vencimiento,
		FormaPago:     membresia.FormaPago,
		MontoPagado:   req.MontoPagado,
	}); err != nil {
		return nil, err
	}

	s.registrarEnCorte(ctx, "Renovación", req.MontoPagado.String(), dto.MovimientoCajaRequest{
		Tipo:        "Renovación",
		Monto:       req.MontoPagado,
		Descripcion: fmt.Sprintf("Renovación de membresía %s (%s)", codigo, membresia.Nombre),
	})

	return membresiaToResponse(membresia), nil
}

// ── ActualizarMembresia ───────────────────────────────────────────────────────

func (s *membresiaService) ActualizarMembresia(ctx context.Context, id uuid.UUID, req dto.ActualizarMembresiaRequest) (*dto.MembresiaResponse, error) {
	membresia, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrMembresiaNoEncontrada
	}

	if req.Nombre != nil {
		membresia.Nombre = *req.Nombre
	}
	if req.Edad != nil {
		membresia.Edad = *req.Edad
	}
	if req.Telefono != nil {
		membresia.Telefono = *req.Telefono
	}
	if req.Direccion != nil {
		membresia.Direccion = *req.Direccion
	}
	if req.Correo != nil {
		membresia.Correo = *req.Correo
	}
	if req.Rutina != nil {
		membresia.Rutina = *req.Rutina
	}
	if req.EnfermedadesOLesiones != nil {
		membresia.EnfermedadesOLesiones = *req.EnfermedadesOLesiones
	}
	if req.FotoURL != nil {
		membresia.FotoURL = *req.FotoURL
	}
	if req.Tipo != nil {
		membresia.Tipo = *req.Tipo
	}
	if req.Nivel != nil {
		membresia.Nivel = *req.Nivel
	}

	if err := s.repo.Update(ctx, membresia); err != nil {
		return nil, err
	}
	return membresiaToResponse(membresia), nil
}

// ── Consultas ─────────────────────────────────────────────────────────────────

func (s *membresiaService) ObtenerMembresia(ctx context.Context, id uuid.UUID) (*dto.MembresiaResponse, error) {
	membresia, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrMembresiaNoEncontrada
	}
	return membresiaToResponse(membresia), nil
}

func (s *membresiaService) ObtenerPorCodigo(ctx context.Context, codigo string) (*dto.MembresiaResponse, error) {
	membresia, err := s.repo.FindByCodigo(ctx, codigo)
	if err != nil {
		return nil, ErrMembresiaNoEncontrada
	}
	return membresiaToResponse(membresia), nil
}

func (s *membresiaService) ListMembresias(ctx context.Context) ([]dto.MembresiaResponse, error) {
	membresias, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return membresiasToResponses(membresias), nil
}

func (s *membresiaService) MembresiasPorVencer(ctx context.Context, dias int) ([]dto.MembresiaResponse, error) {
	if dias <= 0 {
		dias = 7
	}
	membresias, err := s.repo.ListPorVencer(ctx, dias)
	if err != nil {
		return nil, err
	}
	return membresiasToResponses(membresias), nil
}

func (s *membresiaService) HistorialPagos(ctx context.Context, codigo string) ([]dto.PagoMembresiaResponse, error) {
	if _, err := s.repo.FindByCodigo(ctx, codigo); err != nil {
		return nil, ErrMembresiaNoEncontrada
	}
	historial, err := s.repo.ListHistorialPorCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PagoMembresiaResponse, 0, len(historial))
	for _, h := range historial {
		out = append(out, dto.PagoMembresiaResponse{
			ID:            h.ID.String(),
			CodigoCliente: h.CodigoCliente,
			FechaPago:     h.FechaPago.Format("2006-01-02T15:04:05Z"),
			PeriodoInicio: h.PeriodoInicio.Format("2006-01-02"),
			PeriodoFin:    h.PeriodoFin.Format("2006-01-02"),
			FormaPago:     h.FormaPago,
			MontoPagado:   h.MontoPagado,
		})
	}
	return out, nil
}

func (s *membresiaService) DesactivarMembresia(ctx context.Context, id uuid.UUID) error {
	membresia, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrMembresiaNoEncontrada
	}
	membresia.Activa = false
	return s.repo.Update(ctx, membresia)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// generarCodigo draws 6-digit numeric codes until one is free.
func (s *membresiaService) generarCodigo(ctx context.Context) (string, error) {
	for i := 0; i < 10; i++ {
		codigo := fmt.Sprintf("%06d", rand.Intn(1000000))
		exists, err := s.repo.ExistsCodigo(ctx, codigo)
		if err != nil {
			return "", err
		}
		if !exists {
			return codigo, nil
		}
	}
	return "", ErrCodigoAgotado
}

func (s *membresiaService) registrarEnCorte(ctx context.Context, tipo, monto string, req dto.MovimientoCajaRequest) {
	if s.corte == nil {
		return
	}
	if err := s.corte.RegistrarMovimiento(ctx, req); err != nil {
		log.Warn().Err(err).
			Str("tipo", tipo).
			Str("monto", monto).
			Msg("no se pudo registrar el pago en el corte de caja")
	}
}

func membresiaToResponse(m *model.Membresia) *dto.MembresiaResponse {
	return &dto.MembresiaResponse{
		ID:                    m.ID.String(),
		CodigoCliente:         m.CodigoCliente,
		Nombre:                m.Nombre,
		Edad:                  m.Edad,
		Telefono:              m.Telefono,
		Direccion:             m.Direccion,
		Correo:                m.Correo,
		Rutina:                m.Rutina,
		EnfermedadesOLesiones: m.EnfermedadesOLesiones,
		FotoURL:               m.FotoURL,
		FechaRegistro:         m.FechaRegistro.Format("2006-01-02"),
		FechaVencimiento:      m.FechaVencimiento.Format("2006-01-02"),
		FormaPago:             m.FormaPago,
		Tipo:                  m.Tipo,
		Nivel:                 m.Nivel,
		MontoPagado:           m.MontoPagado,
		Activa:                m.Activa,
		Vigente:               m.Activa && m.FechaVencimiento.After(time.Now()),
	}
}

func membresiasToResponses(membresias []model.Membresia) []dto.MembresiaResponse {
	out := make([]dto.MembresiaResponse, 0, len(membresias))
	for i := range membresias {
		out = append(out, *membresiaToResponse(&membresias[i]))
	}
	return out
}
