package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/dto"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/model"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrProveedorNoEncontrado = errors.New("proveedor no encontrado")
	ErrNombreDuplicado       = errors.New("ya existe un producto con ese nombre para el proveedor")
)

type ProductoService interface {
	CrearProducto(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	ActualizarProducto(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	ObtenerProducto(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error)
	ListProductos(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error)
	ProductosPorProveedor(ctx context.Context, proveedorID uuid.UUID) ([]dto.ProductoResponse, error)
	DesactivarProducto(ctx context.Context, id uuid.UUID) error
	ReactivarProducto(ctx context.Context, id uuid.UUID) error
}

type productoService struct {
	repo          repository.ProductoRepository
	proveedorRepo repository.ProveedorRepository
}

func NewProductoService(repo repository.ProductoRepository, proveedorRepo repository.ProveedorRepository) ProductoService {
	return &productoService{repo: repo, proveedorRepo: proveedorRepo}
}

// ── CrearProducto ─────────────────────────────────────────────────────────────

func (s *productoService) CrearProducto(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	proveedorID, err := uuid.Parse(req.ProveedorID)
	if err != nil {
		return nil, fmt.Errorf("proveedor_id inválido: %w", err)
	}
	if _, err := s.proveedorRepo.FindByID(ctx, proveedorID); err != nil {
		return nil, ErrProveedorNoEncontrado
	}
	if dup, err := s.repo.ExistsNombre(ctx, proveedorID, req.Nombre); err != nil {
		return nil, err
	} else if dup {
		return nil, ErrNombreDuplicado
	}

	piezas := req.PiezasPorPaquete
	if piezas <= 0 {
		piezas = 1
	}
	unitario := req.PrecioPaquete.Div(decimal.NewFromInt(int64(piezas))).Round(2)

	// Sin precio de venta explícito el producto sale al costo unitario.
	precioFinal := req.PrecioFinal
	if precioFinal.LessThanOrEqual(decimal.Zero) {
		precioFinal = unitario
	}

	producto := &model.Producto{
		ProveedorID:      proveedorID,
		Nombre:           req.Nombre,
		Categoria:        req.Categoria,
		PrecioPaquete:    req.PrecioPaquete,
		PrecioUnitario:   unitario,
		PrecioFinal:      precioFinal,
		PiezasPorPaquete: piezas,
		FotoURL:          req.FotoURL,
		Activo:           true,
	}
	if err := s.repo.Create(ctx, producto); err != nil {
		return nil, err
	}
	return s.ObtenerProducto(ctx, producto.ID)
}

// ── ActualizarProducto ────────────────────────────────────────────────────────

func (s *productoService) ActualizarProducto(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProductoNoEncontrado
	}

	if req.Nombre != nil && *req.Nombre != producto.Nombre {
		if dup, err := s.repo.ExistsNombre(ctx, producto.ProveedorID, *req.Nombre); err != nil {
			return nil, err
		} else if dup {
			return nil, ErrNombreDuplicado
		}
		producto.Nombre = *req.Nombre
	}
	if req.Categoria != nil {
		producto.Categoria = *req.Categoria
	}
	if req.FotoURL != nil {
		producto.FotoURL = req.FotoURL
	}
	if req.PiezasPorPaquete != nil {
		piezas := *req.PiezasPorPaquete
		if piezas <= 0 {
			piezas = 1
		}
		producto.PiezasPorPaquete = piezas
	}
	if req.PrecioPaquete != nil {
		producto.PrecioPaquete = *req.PrecioPaquete
		producto.PrecioUnitario = req.PrecioPaquete.
			Div(decimal.NewFromInt(int64(producto.PiezasPorPaquete))).Round(2)
	}
	if req.PrecioFinal != nil {
		producto.PrecioFinal = *req.PrecioFinal
	}

	if err := s.repo.Update(ctx, producto); err != nil {
		return nil, err
	}
	return s.ObtenerProducto(ctx, id)
}

// ── Consultas ─────────────────────────────────────────────────────────────────

func (s *productoService) ObtenerProducto(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	producto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProductoNoEncontrado
	}
	return productoToResponse(producto), nil
}

func (s *productoService) ListProductos(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	productos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		data = append(data, *productoToResponse(&productos[i]))
	}
	totalPages := int(total) / filter.Limit
	if int(total)%filter.Limit != 0 {
		totalPages++
	}
	return &dto.ProductoListResponse{
		Data:       data,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *productoService) ProductosPorProveedor(ctx context.Context, proveedorID uuid.UUID) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.FindByProveedorID(ctx, proveedorID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		out = append(out, *productoToResponse(&productos[i]))
	}
	return out, nil
}

func (s *productoService) DesactivarProducto(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrProductoNoEncontrado
	}
	return s.repo.Desactivar(ctx, id)
}

func (s *productoService) ReactivarProducto(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrProductoNoEncontrado
	}
	return s.repo.Reactivar(ctx, id)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	resp := &dto.ProductoResponse{
		ID:               p.ID.String(),
		ProveedorID:      p.ProveedorID.String(),
		Nombre:           p.Nombre,
		Categoria:        p.Categoria,
		PrecioPaquete:    p.PrecioPaquete,
		PrecioUnitario:   p.PrecioUnitario,
		PrecioFinal:      p.PrecioFinal,
		PiezasPorPaquete: p.PiezasPorPaquete,
		FotoURL:          p.FotoURL,
		Activo:           p.Activo,
	}
	if p.Proveedor != nil {
		resp.Proveedor = p.Proveedor.NombreEmpresa
	}
	return resp
}
