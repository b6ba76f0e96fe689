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

type CompraService interface {
	// RegistrarCompra runs in two phases: the header commits first, then the
	// inventory application runs as its own transaction. A failed second
	// phase leaves the lines unapplied and retryable via AplicarCompra.
	RegistrarCompra(ctx context.Context, req dto.RegistrarCompraRequest) (*dto.CompraResponse, error)
	AplicarCompra(ctx context.Context, id uuid.UUID) (*dto.AplicacionInventarioResponse, error)
	RevertirCompra(ctx context.Context, id uuid.UUID) error
	ObtenerCompra(ctx context.Context, id uuid.UUID) (*dto.CompraResponse, error)
	ListCompras(ctx context.Context) ([]dto.CompraResponse, error)
	ComprasPorProveedor(ctx context.Context, proveedorID uuid.UUID) ([]dto.CompraResponse, error)
}

type compraService struct {
	repo         repository.CompraRepository
	productoRepo repository.ProductoRepository
	inventario   InventarioService
	corte        CorteService
}

func NewCompraService(
	repo repository.CompraRepository,
	productoRepo repository.ProductoRepository,
	inventario InventarioService,
	corte CorteService,
) CompraService {
	return &compraService{
		repo:         repo,
		productoRepo: productoRepo,
		inventario:   inventario,
		corte:        corte,
	}
}

// ── RegistrarCompra ───────────────────────────────────────────────────────────
//  1. Resolve products and calculate subtotals (pre-flight)
//  2. Commit header + items
//  3. Overwrite product cost fields with the purchase prices
//  4. AplicarCompra as its own unit of work
//  5. (best-effort) register the expense on the open corte, in negative

func (s *compraService) RegistrarCompra(ctx context.Context, req dto.RegistrarCompraRequest) (*dto.CompraResponse, error) {
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
		subtotal := item.PrecioPaquete.Mul(decimal.NewFromInt(int64(item.Cantidad)))
		total = total.Add(subtotal)
		resolved = append(resolved, resolvedItem{
			producto: p,
			cantidad: item.Cantidad,
			precio:   item.PrecioPaquete,
			subtotal: subtotal,
		})
	}

	compra := &model.Compra{
		FechaCompra: time.Now(),
		Folio:       req.Folio,
		Comentarios: req.Comentarios,
		Total:       total,
	}
	for _, r := range resolved {
		compra.Items = append(compra.Items, model.CompraItem{
			ProductoID:    r.producto.ID,
			Cantidad:      r.cantidad,
			PrecioPaquete: r.precio,
			Subtotal:      r.subtotal,
		})
	}
	if err := s.repo.Create(ctx, compra); err != nil {
		return nil, err
	}

	// Cost update happens here, not in the ledger: the purchase is the
	// source of truth for what the product costs. PrecioFinal never changes.
	if err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for _, r := range resolved {
			piezas := decimal.NewFromInt(int64(piezasPorPaquete(r.producto)))
			unitario := r.precio.Div(piezas).Round(2)
			if err := s.productoRepo.UpdatePreciosCompraTx(tx, r.producto.ID, r.precio, unitario); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	resp := compraToResponse(compra)
	for i, r := range resolved {
		resp.Items[i].Producto = r.producto.Nombre
	}

	resumen, err := s.inventario.AplicarCompra(ctx, compra.ID)
	if err != nil {
		// header ya persistido: se reporta y la aplicación queda reintentable
		log.Error().Err(err).
			Str("compra_id", compra.ID.String()).
			Msg("aplicación de compra fallida, pendiente de reintento")
		return resp, nil
	}
	resp.Aplicacion = resumen
	// Las banderas salen de las filas persistidas: una línea omitida
	// (producto borrado entre fases) no se reporta como aplicada.
	if actual, err := s.repo.FindByIDConItems(ctx, compra.ID); err == nil {
		aplicadas := make(map[string]bool, len(actual.Items))
		for _, it := range actual.Items {
			aplicadas[it.ID.String()] = it.InventarioAplicado
		}
		for i := range resp.Items {
			resp.Items[i].InventarioAplicado = aplicadas[resp.Items[i].ID]
		}
	}

	if s.corte != nil {
		descr := "Compra a proveedor"
		if req.Folio != nil && *req.Folio != "" {
			descr = "Compra " + *req.Folio
		}
		if err := s.corte.RegistrarMovimiento(ctx, dto.MovimientoCajaRequest{
			Tipo:        "Compra",
			Monto:       total.Neg(),
			Descripcion: descr,
		}); err != nil {
			log.Warn().Err(err).Msg("no se pudo registrar la compra en el corte de caja")
		}
	}

	return resp, nil
}

func (s *compraService) AplicarCompra(ctx context.Context, id uuid.UUID) (*dto.AplicacionInventarioResponse, error) {
	return s.inventario.AplicarCompra(ctx, id)
}

func (s *compraService) RevertirCompra(ctx context.Context, id uuid.UUID) error {
	compra, err := s.repo.FindByIDConItems(ctx, id)
	if err != nil {
		return ErrCompraNoEncontrada
	}
	if err := s.inventario.RevertirCompra(ctx, id); err != nil {
		return err
	}

	// Counter-movement: the purchase was a negative entry, the reversal
	// returns the money to the register.
	if s.corte != nil {
		descr := "Reversión de compra"
		if compra.Folio != nil && *compra.Folio != "" {
			descr = "Reversión de compra " + *compra.Folio
		}
		if err := s.corte.RegistrarMovimiento(ctx, dto.MovimientoCajaRequest{
			Tipo:        "Compra",
			Monto:       compra.Total,
			Descripcion: descr,
		}); err != nil {
			log.Warn().Err(err).Msg("no se pudo registrar la reversión en el corte de caja")
		}
	}
	return nil
}

func (s *compraService) ObtenerCompra(ctx context.Context, id uuid.UUID) (*dto.CompraResponse, error) {
	compra, err := s.repo.FindByIDConItems(ctx, id)
	if err != nil {
		return nil, ErrCompraNoEncontrada
	}
	return compraToResponse(compra), nil
}

func (s *compraService) ListCompras(ctx context.Context) ([]dto.CompraResponse, error) {
	compras, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return comprasToResponses(compras), nil
}

func (s *compraService) ComprasPorProveedor(ctx context.Context, proveedorID uuid.UUID) ([]dto.CompraResponse, error) {
	compras, err := s.repo.ListByProveedor(ctx, proveedorID)
	if err != nil {
		return nil, err
	}
	return comprasToResponses(compras), nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func compraToResponse(c *model.Compra) *dto.CompraResponse {
	items := make([]dto.ItemCompraResponse, 0, len(c.Items))
	for _, item := range c.Items {
		nombre := ""
		if item.Producto != nil {
			nombre = item.Producto.Nombre
		}
		items = append(items, dto.ItemCompraResponse{
			ID:                 item.ID.String(),
			ProductoID:         item.ProductoID.String(),
			Producto:           nombre,
			Cantidad:           item.Cantidad,
			PrecioPaquete:      item.PrecioPaquete,
			Subtotal:           item.Subtotal,
			InventarioAplicado: item.InventarioAplicado,
		})
	}
	return &dto.CompraResponse{
		ID:          c.ID.String(),
		FechaCompra: c.FechaCompra.Format("2006-01-02T15:04:05Z"),
		Folio:       c.Folio,
		Comentarios: c.Comentarios,
		Total:       c.Total,
		Items:       items,
	}
}

func comprasToResponses(compras []model.Compra) []dto.CompraResponse {
	out := make([]dto.CompraResponse, 0, len(compras))
	for i := range compras {
		out = append(out, *compraToResponse(&compras[i]))
	}
	return out
}
