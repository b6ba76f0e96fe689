package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/dto"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/model"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrVisitaNoEncontrada = errors.New("visita no encontrada")

type VisitaService interface {
	RegistrarVisita(ctx context.Context, req dto.RegistrarVisitaRequest) (*dto.VisitaResponse, error)
	ObtenerVisita(ctx context.Context, id uuid.UUID) (*dto.VisitaResponse, error)
	ListVisitas(ctx context.Context) ([]dto.VisitaResponse, error)
	VisitasDelDia(ctx context.Context, fecha time.Time) ([]dto.VisitaResponse, error)
	// VisitasDeLaSemana: los 7 días que terminan en fecha, inclusive.
	VisitasDeLaSemana(ctx context.Context, fecha time.Time) ([]dto.VisitaResponse, error)
	VisitasDelMes(ctx context.Context, year int, mes time.Month) ([]dto.VisitaResponse, error)
}

type visitaService struct {
	repo  repository.VisitaRepository
	corte CorteService
}

func NewVisitaService(repo repository.VisitaRepository, corte CorteService) VisitaService {
	return &visitaService{repo: repo, corte: corte}
}

func (s *visitaService) RegistrarVisita(ctx context.Context, req dto.RegistrarVisitaRequest) (*dto.VisitaResponse, error) {
	visita := &model.VentaVisita{
		NombreCliente: req.NombreCliente,
		Costo:         req.Costo,
		FechaVenta:    time.Now(),
	}
	if err := s.repo.Create(ctx, visita); err != nil {
		return nil, err
	}

	if s.corte != nil {
		if err := s.corte.RegistrarMovimiento(ctx, dto.MovimientoCajaRequest{
			Tipo:        "Visita",
			Monto:       req.Costo,
			Descripcion: fmt.Sprintf("Visita de %s", req.NombreCliente),
		}); err != nil {
			log.Warn().Err(err).Msg("no se pudo registrar la visita en el corte de caja")
		}
	}

	return visitaToResponse(visita), nil
}

func (s *visitaService) ListVisitas(ctx context.Context) ([]dto.VisitaResponse, error) {
	visitas, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return visitasToResponses(visitas), nil
}

func (s *visitaService) ObtenerVisita(ctx context.Context, id uuid.UUID) (*dto.VisitaResponse, error) {
	visita, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrVisitaNoEncontrada
	}
	return visitaToResponse(visita), nil
}

func (s *visitaService) VisitasDelDia(ctx context.Context, fecha time.Time) ([]dto.VisitaResponse, error) {
	dia := time.Date(fecha.Year(), fecha.Month(), fecha.Day(), 0, 0, 0, 0, fecha.Location())
	visitas, err := s.repo.ListEnRango(ctx, dia, dia.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	return visitasToResponses(visitas), nil
}

func (s *visitaService) VisitasDeLaSemana(ctx context.Context, fecha time.Time) ([]dto.VisitaResponse, error) {
	dia := time.Date(fecha.Year(), fecha.Month(), fecha.Day(), 0, 0, 0, 0, fecha.Location())
	visitas, err := s.repo.ListEnRango(ctx, dia.AddDate(0, 0, -6), dia.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	return visitasToResponses(visitas), nil
}

func (s *visitaService) VisitasDelMes(ctx context.Context, year int, mes time.Month) ([]dto.VisitaResponse, error) {
	inicio := time.Date(year, mes, 1, 0, 0, 0, 0, time.Local)
	visitas, err := s.repo.ListEnRango(ctx, inicio, inicio.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}
	return visitasToResponses(visitas), nil
}

func visitaToResponse(v *model.VentaVisita) *dto.VisitaResponse {
	return &dto.VisitaResponse{
		ID:            v.ID.String(),
		NombreCliente: v.NombreCliente,
		Costo:         v.Costo,
		FechaVenta:    v.FechaVenta.Format("2006-01-02T15:04:05Z"),
	}
}

func visitasToResponses(visitas []model.VentaVisita) []dto.VisitaResponse {
	out := make([]dto.VisitaResponse, 0, len(visitas))
	for i := range visitas {
		out = append(out, *visitaToResponse(&visitas[i]))
	}
	return out
}
