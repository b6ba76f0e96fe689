package service

import (
	"context"
	"errors"
	"time"

	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/dto"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/model"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrPreRegistroNoEncontrado = errors.New("pre-registro no encontrado")
	ErrPreRegistroResuelto     = errors.New("el pre-registro ya fue resuelto")
)

// diasVigenciaPreRegistro: a pendiente older than this is reported as vencido.
const diasVigenciaPreRegistro = 3

type PreRegistroService interface {
	CrearPreRegistro(ctx context.Context, req dto.CrearPreRegistroRequest) (*dto.PreRegistroResponse, error)
	ListPreRegistros(ctx context.Context) ([]dto.PreRegistroResponse, error)
	AceptarPreRegistro(ctx context.Context, id uuid.UUID) (*dto.PreRegistroResponse, error)
	RechazarPreRegistro(ctx context.Context, id uuid.UUID) (*dto.PreRegistroResponse, error)
}

type preRegistroService struct {
	repo repository.PreRegistroRepository
}

func NewPreRegistroService(repo repository.PreRegistroRepository) PreRegistroService {
	return &preRegistroService{repo: repo}
}

func (s *preRegistroService) CrearPreRegistro(ctx context.Context, req dto.CrearPreRegistroRequest) (*dto.PreRegistroResponse, error) {
	registro := &model.PreRegistro{
		Nombre:        req.Nombre,
		Correo:        req.Correo,
		Telefono:      req.Telefono,
		FechaRegistro: time.Now(),
		Estado:        model.PreRegistroPendiente,
	}
	if err := s.repo.Create(ctx, registro); err != nil {
		return nil, err
	}
	return preRegistroToResponse(registro), nil
}

func (s *preRegistroService) ListPreRegistros(ctx context.Context) ([]dto.PreRegistroResponse, error) {
	registros, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PreRegistroResponse, 0, len(registros))
	for i := range registros {
		out = append(out, *preRegistroToResponse(&registros[i]))
	}
	return out, nil
}

func (s *preRegistroService) AceptarPreRegistro(ctx context.Context, id uuid.UUID) (*dto.PreRegistroResponse, error) {
	return s.resolver(ctx, id, model.PreRegistroAceptado)
}

func (s *preRegistroService) RechazarPreRegistro(ctx context.Context, id uuid.UUID) (*dto.PreRegistroResponse, error) {
	return s.resolver(ctx, id, model.PreRegistroRechazado)
}

func (s *preRegistroService) resolver(ctx context.Context, id uuid.UUID, estado model.EstadoPreRegistro) (*dto.PreRegistroResponse, error) {
	registro, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrPreRegistroNoEncontrado
	}
	if registro.Estado != model.PreRegistroPendiente {
		return nil, ErrPreRegistroResuelto
	}
	registro.Estado = estado
	if err := s.repo.Update(ctx, registro); err != nil {
		return nil, err
	}
	return preRegistroToResponse(registro), nil
}

// preRegistroToResponse reports stale pendientes as "vencido" without
// persisting the transition: the stored estado stays pendiente and can still
// be aceptado.
func preRegistroToResponse(p *model.PreRegistro) *dto.PreRegistroResponse {
	estado := "pendiente"
	switch p.Estado {
	case model.PreRegistroAceptado:
		estado = "aceptado"
	case model.PreRegistroRechazado:
		estado = "rechazado"
	case model.PreRegistroPendiente:
		if time.Since(p.FechaRegistro) > diasVigenciaPreRegistro*24*time.Hour {
			estado = "vencido"
		}
	}
	return &dto.PreRegistroResponse{
		ID:            p.ID.String(),
		Nombre:        p.Nombre,
		Correo:        p.Correo,
		Telefono:      p.Telefono,
		FechaRegistro: p.FechaRegistro.Format("2006-01-02T15:04:05Z"),
		Estado:        estado,
	}
}
