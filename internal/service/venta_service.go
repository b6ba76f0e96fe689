package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/dto"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/model"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VentaService interface {
	RegistrarVenta(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error)
	RevertirVenta(ctx context.Context, id uuid.UUID) error
	ObtenerVenta(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error)
	ListVentas(ctx context.Context) ([]dto.VentaResponse, error)
	VentasPorCliente(ctx context.Context, cliente string) ([]dto.VentaResponse, error)
}

type ventaService struct {
	repo         repository.VentaRepository
	productoRepo repository.ProductoRepository
	inventario   InventarioService
	corte        CorteService
}

func NewVentaService(
	repo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
	inventario InventarioService,
	corte CorteService,
) VentaService {
	return &ventaService{
		repo:         repo,
		productoRepo: productoRepo,
		inventario:   inventario,
		corte:        corte,
	}
}

// ── RegistrarVenta ────────────────────────────────────────────────────────────
// One ACID transaction: header + items + stock discount commit together, so a
// stock shortage rolls back the whole sale. The corte movement goes AFTER the
// commit, best-effort: a closed register never blocks a sale.

func (s *ventaService) RegistrarVenta(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	type resolvedItem struct {
		producto *model.Producto
		cantidad int
		precio   decimal.Decimal
		subtotal decimal.Decimal
	}

	var resolved []resolvedItem
	total := decimal.Zero
	for _, item := range req.Items {
		pid, err := uuid.Parse(item.ProductoID)
		if err != nil {
			return nil, fmt.Errorf("producto_id inválido: %w", err)
		}
		p, err := s.productoRepo.FindByID(ctx, pid)
		if err != nil {
			return nil, fmt.Errorf("producto %s no encontrado", item.ProductoID)
		}
		if !p.Activo {
			return nil, fmt.Errorf("el producto %s está inactivo y no puede venderse", p.Nombre)
		}

		// precio en cero o negativo: se cobra el precio de lista vigente
		precio := item.PrecioUnitario
		if precio.LessThanOrEqual(decimal.Zero) {
			precio = p.PrecioFinal
		}
		subtotal := precio.Mul(decimal.NewFromInt(int64(item.Cantidad)))
		total = total.Add(subtotal)
		resolved = append(resolved, resolvedItem{
			producto: p,
			cantidad: item.Cantidad,
			precio:   precio,
			subtotal: subtotal,
		})
	}

	cliente := req.Cliente
	if cliente == "" {
		cliente = "Mostrador"
	}
	tipoVenta := req.TipoVenta
	if tipoVenta == "" {
		tipoVenta = "Mostrador"
	}

	venta := &model.Venta{
		Cliente:    cliente,
		FechaVenta: time.Now(),
		Total:      total,
		TipoVenta:  tipoVenta,
		Completada: true,
	}
	for _, r := range resolved {
		venta.Items = append(venta.Items, model.VentaItem{
			ProductoID:     r.producto.ID,
			Cantidad:       r.cantidad,
			PrecioUnitario: r.precio,
			Subtotal:       r.subtotal,
		})
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, venta); err != nil {
			return err
		}
		return s.inventario.AplicarVentaTx(tx, venta.ID)
	})
	if txErr != nil {
		return nil, txErr
	}

	if s.corte != nil {
		if err := s.corte.RegistrarMovimiento(ctx, dto.MovimientoCajaRequest{
			Tipo:        "Venta",
			Monto:       total,
			Descripcion: fmt.Sprintf("Venta a %s", cliente),
		}); err != nil {
			log.Warn().Err(err).Msg("no se pudo registrar la venta en el corte de caja")
		}
	}

	resp := ventaToResponse(venta)
	for i, r := range resolved {
		resp.Items[i].Producto = r.producto.Nombre
	}
	return resp, nil
}

// ── RevertirVenta ─────────────────────────────────────────────────────────────

func (s *ventaService) RevertirVenta(ctx context.Context, id uuid.UUID) error {
	venta, err := s.repo.FindByIDConItems(ctx, id)
	if err != nil {
		return ErrVentaNoEncontrada
	}

	if err := s.inventario.RevertirVenta(ctx, id); err != nil {
		return err
	}

	if s.corte != nil {
		if err := s.corte.RegistrarMovimiento(ctx, dto.MovimientoCajaRequest{
			Tipo:        "Venta",
			Monto:       venta.Total.Neg(),
			Descripcion: fmt.Sprintf("Reversión venta a %s", venta.Cliente),
		}); err != nil {
			log.Warn().Err(err).Msg("no se pudo registrar la reversión en el corte de caja")
		}
	}
	return nil
}

// ── Consultas ─────────────────────────────────────────────────────────────────

func (s *ventaService) ObtenerVenta(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error) {
	venta, err := s.repo.FindByIDConItems(ctx, id)
	if err != nil {
		return nil, ErrVentaNoEncontrada
	}
	return ventaToResponse(venta), nil
}

func (s *ventaService) ListVentas(ctx context.Context) ([]dto.VentaResponse, error) {
	ventas, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return ventasToResponses(ventas), nil
}

func (s *ventaService) VentasPorCliente(ctx context.Context, cliente string) ([]dto.VentaResponse, error) {
	ventas, err := s.repo.ListByCliente(ctx, cliente)
	if err != nil {
		return nil, err
	}
	return ventasToResponses(ventas), nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func ventaToResponse(v *model.Venta) *dto.VentaResponse {
	items := make([]dto.ItemVentaResponse, 0, len(v.Items))
	for _, item := range v.Items {
		nombre := ""
		if item.Producto != nil {
			nombre = item.Producto.Nombre
		}
		items = append(items, dto.ItemVentaResponse{
			ID:             item.ID.String(),
			ProductoID:     item.ProductoID.String(),
			Producto:       nombre,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario,
			Subtotal:       item.Subtotal,
		})
	}
	return &dto.VentaResponse{
		ID:         v.ID.String(),
		Cliente:    v.Cliente,
		TipoVenta:  v.TipoVenta,
		FechaVenta: v.FechaVenta.Format("2006-01-02T15:04:05Z"),
		Total:      v.Total,
		Completada: v.Completada,
		Items:      items,
	}
}

func ventasToResponses(ventas []model.Venta) []dto.VentaResponse {
	out := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		out = append(out, *ventaToResponse(&ventas[i]))
	}
	return out
}
