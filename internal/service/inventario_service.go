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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrCompraNoEncontrada   = errors.New("compra no encontrada")
	ErrVentaNoEncontrada    = errors.New("venta no encontrada")
	ErrProductoNoEncontrado = errors.New("producto no encontrado")
	ErrCantidadNegativa     = errors.New("la cantidad no puede ser negativa")
)

// StockInsuficienteError aborts a sale (or a purchase reversal) whose piezas
// exceed the stock disponible. The whole transaction rolls back.
type StockInsuficienteError struct {
	Producto   string
	Disponible int
	Solicitado int
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("stock insuficiente de %s: disponible %d, solicitado %d",
		e.Producto, e.Disponible, e.Solicitado)
}

// InventarioService is the single writer of the stock ledger: every change to
// Inventario.Cantidad passes through here and leaves exactly one history row.
type InventarioService interface {
	// AplicarCompra materializes a purchase into stock as its own unit of
	// work. Idempotent per line: already-applied lines and lines whose
	// product no longer exists are skipped and counted in the summary.
	AplicarCompra(ctx context.Context, compraID uuid.UUID) (*dto.AplicacionInventarioResponse, error)
	// AplicarVentaTx discounts stock INSIDE the caller's sale transaction.
	// Any line with insufficient stock returns *StockInsuficienteError and
	// the caller must roll back.
	AplicarVentaTx(tx *gorm.DB, ventaID uuid.UUID) error
	RevertirCompra(ctx context.Context, compraID uuid.UUID) error
	RevertirVenta(ctx context.Context, ventaID uuid.UUID) error
	StockActual(ctx context.Context, productoID uuid.UUID) (int, error)
	// AjustarInventario sets the RESULTING quantity (not a delta).
	AjustarInventario(ctx context.Context, req dto.AjusteInventarioRequest) (*dto.MovimientoResponse, error)

	ListInventario(ctx context.Context) ([]dto.InventarioResponse, error)
	ListMovimientos(ctx context.Context, q dto.MovimientoQuery) ([]dto.MovimientoResponse, error)
	// StockBajo lists inventario at or below limite; limite ≤ 0 uses the
	// configured default.
	StockBajo(ctx context.Context, limite int) ([]dto.InventarioResponse, error)
	Reporte(ctx context.Context) (*dto.ReporteInventarioResponse, error)
}

type inventarioService struct {
	repo            repository.InventarioRepository
	compraRepo      repository.CompraRepository
	ventaRepo       repository.VentaRepository
	productoRepo    repository.ProductoRepository
	stockBajoLimite int
}

func NewInventarioService(
	repo repository.InventarioRepository,
	compraRepo repository.CompraRepository,
	ventaRepo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
	stockBajoLimite int,
) InventarioService {
	return &inventarioService{
		repo:            repo,
		compraRepo:      compraRepo,
		ventaRepo:       ventaRepo,
		productoRepo:    productoRepo,
		stockBajoLimite: stockBajoLimite,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── AplicarCompra ─────────────────────────────────────────────────────────────
// Second phase of the purchase flow: the header already committed, this runs
// as its own transaction. Cantidad de la línea son PAQUETES; el inventario se
// lleva en PIEZAS (cantidad * piezas_por_paquete).

func (s *inventarioService) AplicarCompra(ctx context.Context, compraID uuid.UUID) (*dto.AplicacionInventarioResponse, error) {
	resumen := &dto.AplicacionInventarioResponse{}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		compra, err := s.compraRepo.FindByIDConItemsTx(orDefault(tx, s.repo.DB(), ctx), compraID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCompraNoEncontrada
			}
			return err
		}

		for _, item := range compra.Items {
			if item.InventarioAplicado {
				resumen.Omitidas++
				continue
			}

			producto, err := s.productoRepo.FindByID(ctx, item.ProductoID)
			if err != nil {
				// producto borrado entre la captura y la aplicación: se omite
				log.Warn().
					Str("compra_id", compraID.String()).
					Str("producto_id", item.ProductoID.String()).
					Msg("línea de compra omitida: producto inexistente")
				resumen.Omitidas++
				continue
			}

			piezas := item.Cantidad * piezasPorPaquete(producto)
			if err := s.sumarStockTx(tx, producto, piezas, &model.HistorialMovimiento{
				ProductoID:     producto.ID,
				Tipo:           model.MovimientoEntrada,
				Cantidad:       piezas,
				Motivo:         "Compra a proveedor",
				CompraID:       &compra.ID,
				PrecioUnitario: precioPtr(item.PrecioPaquete),
				Referencia:     compra.Folio,
			}); err != nil {
				return err
			}

			if err := s.compraRepo.UpdateItemAplicadoTx(tx, item.ID, true); err != nil {
				return err
			}
			resumen.Aplicadas++
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return resumen, nil
}

// ── AplicarVentaTx ────────────────────────────────────────────────────────────
// Runs inside the sale transaction opened by VentaService. The row lock
// (SELECT ... FOR UPDATE) makes the stock check and the decrement atomic, so
// two concurrent sales can never oversell the same product.

func (s *inventarioService) AplicarVentaTx(tx *gorm.DB, ventaID uuid.UUID) error {
	venta, err := s.ventaRepo.FindByIDConItemsTx(tx, ventaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVentaNoEncontrada
		}
		return err
	}

	for _, item := range venta.Items {
		if item.InventarioAplicado {
			continue
		}

		nombre := item.ProductoID.String()
		if item.Producto != nil {
			nombre = item.Producto.Nombre
		}

		inv, err := s.repo.FindByProductoForUpdateTx(tx, item.ProductoID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &StockInsuficienteError{Producto: nombre, Disponible: 0, Solicitado: item.Cantidad}
		}
		if err != nil {
			return err
		}
		if inv.Cantidad < item.Cantidad {
			return &StockInsuficienteError{Producto: nombre, Disponible: inv.Cantidad, Solicitado: item.Cantidad}
		}

		inv.Cantidad -= item.Cantidad
		inv.CantidadVendida += item.Cantidad
		inv.FechaActualizacion = time.Now()
		if err := s.repo.UpdateTx(tx, inv); err != nil {
			return err
		}

		if err := s.repo.CreateMovimientoTx(tx, &model.HistorialMovimiento{
			ProductoID:      item.ProductoID,
			Tipo:            model.MovimientoSalida,
			Cantidad:        item.Cantidad,
			Motivo:          "Venta de mostrador",
			VentaID:         &venta.ID,
			PrecioUnitario:  precioPtr(item.PrecioUnitario),
			FechaMovimiento: time.Now(),
		}); err != nil {
			return err
		}

		if err := s.ventaRepo.UpdateItemAplicadoTx(tx, item.ID, true); err != nil {
			return err
		}
	}
	return nil
}

// ── Reversiones ───────────────────────────────────────────────────────────────
// Only applied lines participate. A reversal leaves its own history rows with
// referencia "REV-<folio>", never rewrites the original ones.

func (s *inventarioService) RevertirCompra(ctx context.Context, compraID uuid.UUID) error {
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		compra, err := s.compraRepo.FindByIDConItemsTx(orDefault(tx, s.repo.DB(), ctx), compraID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCompraNoEncontrada
			}
			return err
		}

		ref := revRef(compra.Folio, compra.ID)
		for _, item := range compra.Items {
			if !item.InventarioAplicado {
				continue
			}

			producto, err := s.productoRepo.FindByID(ctx, item.ProductoID)
			if err != nil {
				continue
			}
			piezas := item.Cantidad * piezasPorPaquete(producto)

			inv, err := s.repo.FindByProductoForUpdateTx(tx, item.ProductoID)
			if err != nil {
				return err
			}
			if inv.Cantidad < piezas {
				return &StockInsuficienteError{Producto: producto.Nombre, Disponible: inv.Cantidad, Solicitado: piezas}
			}

			inv.Cantidad -= piezas
			inv.CantidadComprada -= piezas
			inv.FechaActualizacion = time.Now()
			if err := s.repo.UpdateTx(tx, inv); err != nil {
				return err
			}

			if err := s.repo.CreateMovimientoTx(tx, &model.HistorialMovimiento{
				ProductoID:      item.ProductoID,
				Tipo:            model.MovimientoSalida,
				Cantidad:        piezas,
				Motivo:          "Reversión de compra",
				CompraID:        &compra.ID,
				Referencia:      &ref,
				FechaMovimiento: time.Now(),
			}); err != nil {
				return err
			}

			if err := s.compraRepo.UpdateItemAplicadoTx(tx, item.ID, false); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *inventarioService) RevertirVenta(ctx context.Context, ventaID uuid.UUID) error {
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		venta, err := s.ventaRepo.FindByIDConItemsTx(orDefault(tx, s.repo.DB(), ctx), ventaID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVentaNoEncontrada
			}
			return err
		}

		ref := revRef(nil, venta.ID)
		for _, item := range venta.Items {
			if !item.InventarioAplicado {
				continue
			}

			inv, err := s.repo.FindByProductoForUpdateTx(tx, item.ProductoID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// el producto nunca tuvo fila de inventario: nada que devolver
				continue
			}
			if err != nil {
				return err
			}

			inv.Cantidad += item.Cantidad
			inv.CantidadVendida -= item.Cantidad
			inv.FechaActualizacion = time.Now()
			if err := s.repo.UpdateTx(tx, inv); err != nil {
				return err
			}

			if err := s.repo.CreateMovimientoTx(tx, &model.HistorialMovimiento{
				ProductoID:      item.ProductoID,
				Tipo:            model.MovimientoEntrada,
				Cantidad:        item.Cantidad,
				Motivo:          "Reversión de venta",
				VentaID:         &venta.ID,
				Referencia:      &ref,
				FechaMovimiento: time.Now(),
			}); err != nil {
				return err
			}

			if err := s.ventaRepo.UpdateItemAplicadoTx(tx, item.ID, false); err != nil {
				return err
			}
		}

		return s.ventaRepo.UpdateCompletadaTx(tx, venta.ID, false)
	})
}

// ── StockActual ───────────────────────────────────────────────────────────────

func (s *inventarioService) StockActual(ctx context.Context, productoID uuid.UUID) (int, error) {
	inv, err := s.repo.FindByProducto(ctx, productoID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// sin fila de inventario el stock es cero, no un error
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return inv.Cantidad, nil
}

// ── AjustarInventario ─────────────────────────────────────────────────────────
// Manual correction after a physical count. OJO: the history row records the
// RESULTING quantity, unlike Entrada/Salida which record the delta.

func (s *inventarioService) AjustarInventario(ctx context.Context, req dto.AjusteInventarioRequest) (*dto.MovimientoResponse, error) {
	if req.Cantidad < 0 {
		return nil, ErrCantidadNegativa
	}
	productoID, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return nil, fmt.Errorf("producto_id inválido: %w", err)
	}
	producto, err := s.productoRepo.FindByID(ctx, productoID)
	if err != nil {
		return nil, ErrProductoNoEncontrado
	}

	var mov *model.HistorialMovimiento
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		inv, err := s.repo.FindByProductoForUpdateTx(tx, productoID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			inv = &model.Inventario{ProductoID: productoID}
			inv.Cantidad = req.Cantidad
			inv.FechaActualizacion = time.Now()
			if err := s.repo.CreateTx(tx, inv); err != nil {
				return err
			}
		} else if err != nil {
			return err
		} else {
			inv.Cantidad = req.Cantidad
			inv.FechaActualizacion = time.Now()
			if err := s.repo.UpdateTx(tx, inv); err != nil {
				return err
			}
		}

		mov = &model.HistorialMovimiento{
			ProductoID:      productoID,
			Tipo:            model.MovimientoAjuste,
			Cantidad:        req.Cantidad,
			Motivo:          req.Motivo,
			Referencia:      req.Referencia,
			FechaMovimiento: time.Now(),
		}
		return s.repo.CreateMovimientoTx(tx, mov)
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := movimientoToResponse(mov)
	resp.Producto = producto.Nombre
	return resp, nil
}

// ── Consultas ─────────────────────────────────────────────────────────────────

func (s *inventarioService) ListInventario(ctx context.Context) ([]dto.InventarioResponse, error) {
	inventario, err := s.repo.ListInventario(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventarioResponse, 0, len(inventario))
	for _, inv := range inventario {
		out = append(out, *inventarioToResponse(&inv))
	}
	return out, nil
}

func (s *inventarioService) ListMovimientos(ctx context.Context, q dto.MovimientoQuery) ([]dto.MovimientoResponse, error) {
	filter := repository.MovimientoFilter{}
	if q.ProductoID != "" {
		pid, err := uuid.Parse(q.ProductoID)
		if err != nil {
			return nil, fmt.Errorf("producto_id inválido: %w", err)
		}
		filter.ProductoID = &pid
	}
	if q.Tipo != 0 {
		t := model.TipoMovimiento(q.Tipo)
		filter.Tipo = &t
	}
	if q.FechaInicio != "" {
		f, err := time.ParseInLocation("2006-01-02", q.FechaInicio, time.Local)
		if err != nil {
			return nil, fmt.Errorf("fecha_inicio inválida: %w", err)
		}
		filter.FechaInicio = &f
	}
	if q.FechaFin != "" {
		f, err := time.ParseInLocation("2006-01-02", q.FechaFin, time.Local)
		if err != nil {
			return nil, fmt.Errorf("fecha_fin inválida: %w", err)
		}
		filter.FechaFin = &f
	}

	movimientos, err := s.repo.ListMovimientos(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimientoResponse, 0, len(movimientos))
	for _, m := range movimientos {
		out = append(out, *movimientoToResponse(&m))
	}
	return out, nil
}

func (s *inventarioService) StockBajo(ctx context.Context, limite int) ([]dto.InventarioResponse, error) {
	if limite <= 0 {
		limite = s.stockBajoLimite
	}
	inventario, err := s.repo.StockBajo(ctx, limite)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventarioResponse, 0, len(inventario))
	for _, inv := range inventario {
		out = append(out, *inventarioToResponse(&inv))
	}
	return out, nil
}

func (s *inventarioService) Reporte(ctx context.Context) (*dto.ReporteInventarioResponse, error) {
	activos, err := s.repo.CountProductosActivos(ctx)
	if err != nil {
		return nil, err
	}
	piezas, err := s.repo.SumPiezas(ctx)
	if err != nil {
		return nil, err
	}
	valor, err := s.repo.ValorTotalCosto(ctx)
	if err != nil {
		return nil, err
	}
	semana, err := s.repo.CountMovimientosDesde(ctx, time.Now().AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}
	sinStock, err := s.repo.CountSinStock(ctx)
	if err != nil {
		return nil, err
	}
	bajos, err := s.repo.StockBajo(ctx, s.stockBajoLimite)
	if err != nil {
		return nil, err
	}

	return &dto.ReporteInventarioResponse{
		ProductosActivos:   activos,
		PiezasTotales:      piezas,
		ValorCosto:         valor,
		MovimientosSemana:  semana,
		ProductosSinStock:  sinStock,
		ProductosStockBajo: len(bajos),
	}, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

// sumarStockTx adds piezas to the product's stock row, creating it lazily on
// the first purchase, and records the history row.
func (s *inventarioService) sumarStockTx(tx *gorm.DB, producto *model.Producto, piezas int, mov *model.HistorialMovimiento) error {
	inv, err := s.repo.FindByProductoForUpdateTx(tx, producto.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		inv = &model.Inventario{
			ProductoID:         producto.ID,
			Cantidad:           piezas,
			CantidadComprada:   piezas,
			FechaActualizacion: time.Now(),
		}
		if err := s.repo.CreateTx(tx, inv); err != nil {
			return err
		}
	} else if err != nil {
		return err
	} else {
		inv.Cantidad += piezas
		inv.CantidadComprada += piezas
		inv.FechaActualizacion = time.Now()
		if err := s.repo.UpdateTx(tx, inv); err != nil {
			return err
		}
	}

	mov.FechaMovimiento = time.Now()
	return s.repo.CreateMovimientoTx(tx, mov)
}

func piezasPorPaquete(p *model.Producto) int {
	if p.PiezasPorPaquete <= 0 {
		return 1
	}
	return p.PiezasPorPaquete
}

func precioPtr(d decimal.Decimal) *decimal.Decimal { return &d }

// revRef builds the "REV-" reference of a reversal: folio when the document
// has one, short ID otherwise.
func revRef(folio *string, id uuid.UUID) string {
	if folio != nil && *folio != "" {
		return "REV-" + *folio
	}
	return "REV-" + id.String()[:8]
}

// orDefault lets the *Tx repo lookups work both inside a live transaction and
// in unit test mode where runTx passes tx == nil.
func orDefault(tx *gorm.DB, db *gorm.DB, ctx context.Context) *gorm.DB {
	if tx != nil {
		return tx
	}
	if db != nil {
		return db.WithContext(ctx)
	}
	return nil
}

func inventarioToResponse(inv *model.Inventario) *dto.InventarioResponse {
	resp := &dto.InventarioResponse{
		ProductoID:       inv.ProductoID.String(),
		Cantidad:         inv.Cantidad,
		CantidadComprada: inv.CantidadComprada,
		CantidadVendida:  inv.CantidadVendida,
		Actualizado:      inv.FechaActualizacion.Format("2006-01-02T15:04:05Z"),
	}
	if inv.Producto != nil {
		resp.Producto = inv.Producto.Nombre
		resp.PrecioUnitario = inv.Producto.PrecioUnitario
		resp.PrecioFinal = inv.Producto.PrecioFinal
		if inv.Producto.Proveedor != nil {
			resp.Proveedor = inv.Producto.Proveedor.NombreEmpresa
		}
	}
	return resp
}

func movimientoToResponse(m *model.HistorialMovimiento) *dto.MovimientoResponse {
	resp := &dto.MovimientoResponse{
		ID:         m.ID.String(),
		ProductoID: m.ProductoID.String(),
		Tipo:       m.Tipo.String(),
		Cantidad:   m.Cantidad,
		Motivo:     m.Motivo,
		Referencia: m.Referencia,
		Fecha:      m.FechaMovimiento.Format("2006-01-02T15:04:05Z"),
	}
	if m.Producto != nil {
		resp.Producto = m.Producto.Nombre
	}
	if m.CompraID != nil {
		id := m.CompraID.String()
		resp.CompraID = &id
	}
	if m.VentaID != nil {
		id := m.VentaID.String()
		resp.VentaID = &id
	}
	return resp
}
