package service

import (
	"context"
	"errors"

	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/dto"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/model"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/repository"

	"github.com/google/uuid"
)

var ErrRFCDuplicado = errors.New("ya existe un proveedor con ese RFC")

type ProveedorService interface {
	CrearProveedor(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error)
	ActualizarProveedor(ctx context.Context, id uuid.UUID, req dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error)
	ObtenerProveedor(ctx context.Context, id uuid.UUID) (*dto.ProveedorResponse, error)
	ListProveedores(ctx context.Context, incluirInactivos bool) ([]dto.ProveedorResponse, error)
	DesactivarProveedor(ctx context.Context, id uuid.UUID) error
}

type proveedorService struct {
	repo repository.ProveedorRepository
}

func NewProveedorService(repo repository.ProveedorRepository) ProveedorService {
	return &proveedorService{repo: repo}
}

func (s *proveedorService) CrearProveedor(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	if dup, err := s.repo.ExistsRFC(ctx, req.RFC, nil); err != nil {
		return nil, err
	} else if dup {
		return nil, ErrRFCDuplicado
	}

	proveedor := &model.Proveedor{
		NombreEmpresa:   req.NombreEmpresa,
		PersonaContacto: req.PersonaContacto,
		Telefono:        req.Telefono,
		Email:           req.Email,
		Direccion:       req.Direccion,
		RFC:             req.RFC,
		Activo:          true,
	}
	if err := s.repo.Create(ctx, proveedor); err != nil {
		return nil, err
	}
	return proveedorToResponse(proveedor), nil
}

func (s *proveedorService) ActualizarProveedor(ctx context.Context, id uuid.UUID, req dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error) {
	proveedor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProveedorNoEncontrado
	}

	if req.RFC != nil && *req.RFC != proveedor.RFC {
		if dup, err := s.repo.ExistsRFC(ctx, *req.RFC, &id); err != nil {
			return nil, err
		} else if dup {
			return nil, ErrRFCDuplicado
		}
		proveedor.RFC = *req.RFC
	}
	if req.NombreEmpresa != nil {
		proveedor.NombreEmpresa = *req.NombreEmpresa
	}
	if req.PersonaContacto != nil {
		proveedor.PersonaContacto = *req.PersonaContacto
	}
	if req.Telefono != nil {
		proveedor.Telefono = *req.Telefono
	}
	if req.Email != nil {
		proveedor.Email = *req.Email
	}
	if req.Direccion != nil {
		proveedor.Direccion = *req.Direccion
	}

	if err := s.repo.Update(ctx, proveedor); err != nil {
		return nil, err
	}
	return proveedorToResponse(proveedor), nil
}

func (s *proveedorService) ObtenerProveedor(ctx context.Context, id uuid.UUID) (*dto.ProveedorResponse, error) {
	proveedor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProveedorNoEncontrado
	}
	return proveedorToResponse(proveedor), nil
}

func (s *proveedorService) ListProveedores(ctx context.Context, incluirInactivos bool) ([]dto.ProveedorResponse, error) {
	proveedores, err := s.repo.List(ctx, incluirInactivos)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProveedorResponse, 0, len(proveedores))
	for i := range proveedores {
		out = append(out, *proveedorToResponse(&proveedores[i]))
	}
	return out, nil
}

// DesactivarProveedor: los proveedores nunca se eliminan, sólo se desactivan.
func (s *proveedorService) DesactivarProveedor(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrProveedorNoEncontrado
	}
	return s.repo.Desactivar(ctx, id)
}

func proveedorToResponse(p *model.Proveedor) *dto.ProveedorResponse {
	return &dto.ProveedorResponse{
		ID:              p.ID.String(),
		NombreEmpresa:   p.NombreEmpresa,
		PersonaContacto: p.PersonaContacto,
		Telefono:        p.Telefono,
		Email:           p.Email,
		Direccion:       p.Direccion,
		RFC:             p.RFC,
		Activo:          p.Activo,
		CreatedAt:       p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
