package tests

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/dto"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/model"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// In-memory repository stubs. They return gorm.ErrRecordNotFound for missing
// rows so the services' errors.Is checks behave like against Postgres, and
// their DB() returns nil so runTx degrades to a plain function call.

// ── ProveedorRepository ───────────────────────────────────────────────────────

type stubProveedorRepo struct {
	proveedores map[uuid.UUID]*model.Proveedor
}

func newStubProveedorRepo() *stubProveedorRepo {
	return &stubProveedorRepo{proveedores: make(map[uuid.UUID]*model.Proveedor)}
}

func (r *stubProveedorRepo) Create(_ context.Context, p *model.Proveedor) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.proveedores[p.ID] = p
	return nil
}

func (r *stubProveedorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Proveedor, error) {
	p, ok := r.proveedores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProveedorRepo) ExistsRFC(_ context.Context, rfc string, excluir *uuid.UUID) (bool, error) {
	for _, p := range r.proveedores {
		if excluir != nil && p.ID == *excluir {
			continue
		}
		if p.RFC == rfc {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubProveedorRepo) List(_ context.Context, incluirInactivos bool) ([]model.Proveedor, error) {
	var out []model.Proveedor
	for _, p := range r.proveedores {
		if !incluirInactivos && !p.Activo {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProveedorRepo) Update(_ context.Context, p *model.Proveedor) error {
	r.proveedores[p.ID] = p
	return nil
}

func (r *stubProveedorRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	p, ok := r.proveedores[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Activo = false
	return nil
}

var _ repository.ProveedorRepository = (*stubProveedorRepo)(nil)

// ── ProductoRepository ────────────────────────────────────────────────────────

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) FindActivosByIDs(_ context.Context, ids []uuid.UUID) ([]model.Producto, error) {
	var out []model.Producto
	for _, id := range ids {
		if p, ok := r.productos[id]; ok && p.Activo {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) ExistsNombre(_ context.Context, proveedorID uuid.UUID, nombre string) (bool, error) {
	for _, p := range r.productos {
		if p.ProveedorID == proveedorID && strings.EqualFold(p.Nombre, nombre) {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubProductoRepo) List(_ context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, error) {
	var out []model.Producto
	for _, p := range r.productos {
		switch filter.Activo {
		case "false":
			if p.Activo {
				continue
			}
		case "all":
		default:
			if !p.Activo {
				continue
			}
		}
		if filter.Nombre != "" && !strings.Contains(strings.ToLower(p.Nombre), strings.ToLower(filter.Nombre)) {
			continue
		}
		if filter.Categoria != "" && p.Categoria != filter.Categoria {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Activo = false
	return nil
}

func (r *stubProductoRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Activo = true
	return nil
}

func (r *stubProductoRepo) FindByProveedorID(_ context.Context, proveedorID uuid.UUID) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if p.ProveedorID == proveedorID && p.Activo {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) UpdatePreciosCompraTx(_ *gorm.DB, id uuid.UUID, precioPaquete, precioUnitario decimal.Decimal) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.PrecioPaquete = precioPaquete
	p.PrecioUnitario = precioUnitario
	return nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// ── CompraRepository ──────────────────────────────────────────────────────────

type stubCompraRepo struct {
	compras map[uuid.UUID]*model.Compra
}

func newStubCompraRepo() *stubCompraRepo {
	return &stubCompraRepo{compras: make(map[uuid.UUID]*model.Compra)}
}

func (r *stubCompraRepo) Create(_ context.Context, c *model.Compra) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	for i := range c.Items {
		if c.Items[i].ID == uuid.Nil {
			c.Items[i].ID = uuid.New()
		}
		c.Items[i].CompraID = c.ID
	}
	r.compras[c.ID] = c
	return nil
}

func (r *stubCompraRepo) FindByIDConItems(_ context.Context, id uuid.UUID) (*model.Compra, error) {
	return r.FindByIDConItemsTx(nil, id)
}

func (r *stubCompraRepo) FindByIDConItemsTx(_ *gorm.DB, id uuid.UUID) (*model.Compra, error) {
	c, ok := r.compras[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCompraRepo) List(_ context.Context) ([]model.Compra, error) {
	var out []model.Compra
	for _, c := range r.compras {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCompraRepo) ListByProveedor(_ context.Context, _ uuid.UUID) ([]model.Compra, error) {
	var out []model.Compra
	for _, c := range r.compras {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCompraRepo) UpdateItemAplicadoTx(_ *gorm.DB, itemID uuid.UUID, aplicado bool) error {
	for _, c := range r.compras {
		for i := range c.Items {
			if c.Items[i].ID == itemID {
				c.Items[i].InventarioAplicado = aplicado
				return nil
			}
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubCompraRepo) DB() *gorm.DB { return nil }

var _ repository.CompraRepository = (*stubCompraRepo)(nil)

// ── VentaRepository ───────────────────────────────────────────────────────────

type stubVentaRepo struct {
	ventas map[uuid.UUID]*model.Venta
	// mirrors the real repo's Preload("Items.Producto"); nil leaves items as stored
	productos map[uuid.UUID]*model.Producto
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{ventas: make(map[uuid.UUID]*model.Venta)}
}

func (r *stubVentaRepo) CreateTx(_ *gorm.DB, v *model.Venta) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	for i := range v.Items {
		if v.Items[i].ID == uuid.Nil {
			v.Items[i].ID = uuid.New()
		}
		v.Items[i].VentaID = v.ID
	}
	r.ventas[v.ID] = v
	return nil
}

func (r *stubVentaRepo) FindByIDConItems(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	return r.FindByIDConItemsTx(nil, id)
}

func (r *stubVentaRepo) FindByIDConItemsTx(_ *gorm.DB, id uuid.UUID) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for i := range v.Items {
		if v.Items[i].Producto == nil {
			v.Items[i].Producto = r.productos[v.Items[i].ProductoID]
		}
	}
	return v, nil
}

func (r *stubVentaRepo) List(_ context.Context) ([]model.Venta, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubVentaRepo) ListByCliente(_ context.Context, cliente string) ([]model.Venta, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		if strings.Contains(strings.ToLower(v.Cliente), strings.ToLower(cliente)) {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubVentaRepo) UpdateCompletadaTx(_ *gorm.DB, id uuid.UUID, completada bool) error {
	v, ok := r.ventas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.Completada = completada
	return nil
}

func (r *stubVentaRepo) UpdateItemAplicadoTx(_ *gorm.DB, itemID uuid.UUID, aplicado bool) error {
	for _, v := range r.ventas {
		for i := range v.Items {
			if v.Items[i].ID == itemID {
				v.Items[i].InventarioAplicado = aplicado
				return nil
			}
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

// ── InventarioRepository ──────────────────────────────────────────────────────

type stubInventarioRepo struct {
	// keyed by ProductoID: exactamente una fila por producto
	filas       map[uuid.UUID]*model.Inventario
	movimientos []*model.HistorialMovimiento
}

func newStubInventarioRepo() *stubInventarioRepo {
	return &stubInventarioRepo{filas: make(map[uuid.UUID]*model.Inventario)}
}

func (r *stubInventarioRepo) FindByProductoTx(_ *gorm.DB, productoID uuid.UUID) (*model.Inventario, error) {
	inv, ok := r.filas[productoID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return inv, nil
}

func (r *stubInventarioRepo) FindByProductoForUpdateTx(tx *gorm.DB, productoID uuid.UUID) (*model.Inventario, error) {
	return r.FindByProductoTx(tx, productoID)
}

func (r *stubInventarioRepo) CreateTx(_ *gorm.DB, inv *model.Inventario) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	r.filas[inv.ProductoID] = inv
	return nil
}

func (r *stubInventarioRepo) UpdateTx(_ *gorm.DB, inv *model.Inventario) error {
	r.filas[inv.ProductoID] = inv
	return nil
}

func (r *stubInventarioRepo) CreateMovimientoTx(_ *gorm.DB, mov *model.HistorialMovimiento) error {
	if mov.ID == uuid.Nil {
		mov.ID = uuid.New()
	}
	r.movimientos = append(r.movimientos, mov)
	return nil
}

func (r *stubInventarioRepo) FindByProducto(_ context.Context, productoID uuid.UUID) (*model.Inventario, error) {
	return r.FindByProductoTx(nil, productoID)
}

func (r *stubInventarioRepo) ListInventario(_ context.Context) ([]model.Inventario, error) {
	var out []model.Inventario
	for _, inv := range r.filas {
		out = append(out, *inv)
	}
	return out, nil
}

func (r *stubInventarioRepo) ListMovimientos(_ context.Context, filter repository.MovimientoFilter) ([]model.HistorialMovimiento, error) {
	var out []model.HistorialMovimiento
	for _, m := range r.movimientos {
		if filter.ProductoID != nil && m.ProductoID != *filter.ProductoID {
			continue
		}
		if filter.Tipo != nil && m.Tipo != *filter.Tipo {
			continue
		}
		if filter.FechaInicio != nil && m.FechaMovimiento.Before(*filter.FechaInicio) {
			continue
		}
		if filter.FechaFin != nil && !m.FechaMovimiento.Before(filter.FechaFin.AddDate(0, 0, 1)) {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubInventarioRepo) StockBajo(_ context.Context, limite int) ([]model.Inventario, error) {
	var out []model.Inventario
	for _, inv := range r.filas {
		if inv.Cantidad <= limite {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *stubInventarioRepo) CountProductosActivos(_ context.Context) (int64, error) {
	return int64(len(r.filas)), nil
}

func (r *stubInventarioRepo) SumPiezas(_ context.Context) (int64, error) {
	var total int64
	for _, inv := range r.filas {
		total += int64(inv.Cantidad)
	}
	return total, nil
}

func (r *stubInventarioRepo) ValorTotalCosto(_ context.Context) (float64, error) { return 0, nil }

func (r *stubInventarioRepo) CountMovimientosDesde(_ context.Context, desde time.Time) (int64, error) {
	var count int64
	for _, m := range r.movimientos {
		if !m.FechaMovimiento.Before(desde) {
			count++
		}
	}
	return count, nil
}

func (r *stubInventarioRepo) CountSinStock(_ context.Context) (int64, error) {
	var count int64
	for _, inv := range r.filas {
		if inv.Cantidad == 0 {
			count++
		}
	}
	return count, nil
}

func (r *stubInventarioRepo) DB() *gorm.DB { return nil }

var _ repository.InventarioRepository = (*stubInventarioRepo)(nil)

// ── CorteRepository ───────────────────────────────────────────────────────────

type stubCorteRepo struct {
	cortes      map[uuid.UUID]*model.CorteCaja
	movimientos []*model.MovimientoCaja
}

func newStubCorteRepo() *stubCorteRepo {
	return &stubCorteRepo{cortes: make(map[uuid.UUID]*model.CorteCaja)}
}

func (r *stubCorteRepo) Create(_ context.Context, c *model.CorteCaja) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.cortes[c.ID] = c
	return nil
}

func (r *stubCorteRepo) FindAbierto(_ context.Context) (*model.CorteCaja, error) {
	for _, c := range r.cortes {
		if c.Estado == model.CorteAbierto {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCorteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.CorteCaja, error) {
	c, ok := r.cortes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *c
	copia.Movimientos = r.movimientosDe(id)
	return &copia, nil
}

func (r *stubCorteRepo) Update(_ context.Context, c *model.CorteCaja) error {
	r.cortes[c.ID] = c
	return nil
}

func (r *stubCorteRepo) CreateMovimiento(_ context.Context, m *model.MovimientoCaja) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.movimientos = append(r.movimientos, m)
	return nil
}

func (r *stubCorteRepo) SumMovimientos(_ context.Context, corteID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, m := range r.movimientos {
		if m.CorteCajaID == corteID {
			total = total.Add(m.Monto)
		}
	}
	return total, nil
}

func (r *stubCorteRepo) ListPorDia(_ context.Context, fecha time.Time) ([]model.CorteCaja, error) {
	dia := time.Date(fecha.Year(), fecha.Month(), fecha.Day(), 0, 0, 0, 0, fecha.Location())
	return r.listarEnRango(dia, dia.AddDate(0, 0, 1)), nil
}

func (r *stubCorteRepo) ListPorMes(_ context.Context, year int, month time.Month) ([]model.CorteCaja, error) {
	inicio := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return r.listarEnRango(inicio, inicio.AddDate(0, 1, 0)), nil
}

func (r *stubCorteRepo) listarEnRango(desde, hasta time.Time) []model.CorteCaja {
	var out []model.CorteCaja
	for _, c := range r.cortes {
		if !c.FechaApertura.Before(desde) && c.FechaApertura.Before(hasta) {
			copia := *c
			copia.Movimientos = r.movimientosDe(c.ID)
			out = append(out, copia)
		}
	}
	return out
}

func (r *stubCorteRepo) movimientosDe(corteID uuid.UUID) []model.MovimientoCaja {
	var out []model.MovimientoCaja
	for _, m := range r.movimientos {
		if m.CorteCajaID == corteID {
			out = append(out, *m)
		}
	}
	return out
}

var _ repository.CorteRepository = (*stubCorteRepo)(nil)

// ── MembresiaRepository ───────────────────────────────────────────────────────

type stubMembresiaRepo struct {
	membresias map[uuid.UUID]*model.Membresia
	historial  []*model.MembresiaHistorial
}

func newStubMembresiaRepo() *stubMembresiaRepo {
	return &stubMembresiaRepo{membresias: make(map[uuid.UUID]*model.Membresia)}
}

func (r *stubMembresiaRepo) Create(_ context.Context, m *model.Membresia) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.membresias[m.ID] = m
	return nil
}

func (r *stubMembresiaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Membresia, error) {
	m, ok := r.membresias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *stubMembresiaRepo) FindByCodigo(_ context.Context, codigo string) (*model.Membresia, error) {
	for _, m := range r.membresias {
		if m.CodigoCliente == codigo {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubMembresiaRepo) ExistsCodigo(_ context.Context, codigo string) (bool, error) {
	for _, m := range r.membresias {
		if m.CodigoCliente == codigo {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubMembresiaRepo) Update(_ context.Context, m *model.Membresia) error {
	r.membresias[m.ID] = m
	return nil
}

func (r *stubMembresiaRepo) List(_ context.Context) ([]model.Membresia, error) {
	var out []model.Membresia
	for _, m := range r.membresias {
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubMembresiaRepo) ListPorVencer(_ context.Context, dias int) ([]model.Membresia, error) {
	ahora := time.Now()
	hoy := time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, ahora.Location())
	limite := hoy.AddDate(0, 0, dias+1)
	var out []model.Membresia
	for _, m := range r.membresias {
		if m.Activa && !m.FechaVencimiento.Before(hoy) && m.FechaVencimiento.Before(limite) {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubMembresiaRepo) CreateHistorial(_ context.Context, h *model.MembresiaHistorial) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	r.historial = append(r.historial, h)
	return nil
}

func (r *stubMembresiaRepo) ListHistorialPorCodigo(_ context.Context, codigo string) ([]model.MembresiaHistorial, error) {
	var out []model.MembresiaHistorial
	for _, h := range r.historial {
		if h.CodigoCliente == codigo {
			out = append(out, *h)
		}
	}
	return out, nil
}

var _ repository.MembresiaRepository = (*stubMembresiaRepo)(nil)

// ── VisitaRepository ──────────────────────────────────────────────────────────

type stubVisitaRepo struct {
	visitas map[uuid.UUID]*model.VentaVisita
}

func newStubVisitaRepo() *stubVisitaRepo {
	return &stubVisitaRepo{visitas: make(map[uuid.UUID]*model.VentaVisita)}
}

func (r *stubVisitaRepo) Create(_ context.Context, v *model.VentaVisita) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.visitas[v.ID] = v
	return nil
}

func (r *stubVisitaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.VentaVisita, error) {
	v, ok := r.visitas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubVisitaRepo) List(_ context.Context) ([]model.VentaVisita, error) {
	var out []model.VentaVisita
	for _, v := range r.visitas {
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubVisitaRepo) ListEnRango(_ context.Context, desde, hasta time.Time) ([]model.VentaVisita, error) {
	var out []model.VentaVisita
	for _, v := range r.visitas {
		if !v.FechaVenta.Before(desde) && v.FechaVenta.Before(hasta) {
			out = append(out, *v)
		}
	}
	return out, nil
}

var _ repository.VisitaRepository = (*stubVisitaRepo)(nil)

// ── PreRegistroRepository ─────────────────────────────────────────────────────

type stubPreRegistroRepo struct {
	registros map[uuid.UUID]*model.PreRegistro
}

func newStubPreRegistroRepo() *stubPreRegistroRepo {
	return &stubPreRegistroRepo{registros: make(map[uuid.UUID]*model.PreRegistro)}
}

func (r *stubPreRegistroRepo) Create(_ context.Context, p *model.PreRegistro) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.registros[p.ID] = p
	return nil
}

func (r *stubPreRegistroRepo) FindByID(_ context.Context, id uuid.UUID) (*model.PreRegistro, error) {
	p, ok := r.registros[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubPreRegistroRepo) List(_ context.Context) ([]model.PreRegistro, error) {
	var out []model.PreRegistro
	for _, p := range r.registros {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPreRegistroRepo) Update(_ context.Context, p *model.PreRegistro) error {
	r.registros[p.ID] = p
	return nil
}

func (r *stubPreRegistroRepo) CountPendientes(_ context.Context) (int64, error) {
	var count int64
	for _, p := range r.registros {
		if p.Estado == model.PreRegistroPendiente {
			count++
		}
	}
	return count, nil
}

var _ repository.PreRegistroRepository = (*stubPreRegistroRepo)(nil)

// ── DashboardRepository ───────────────────────────────────────────────────────
// Fixed-value stub: each test seeds the figures it wants to see aggregated.

type stubDashboardRepo struct {
	activas, vencidas, porVencer int64
	ventas, visitas              int64
	sumVentas, sumVisitas        decimal.Decimal
	sumPagos, gastos             decimal.Decimal
	top                          []repository.TopProducto
	meses                        []repository.IngresoMes
}

func (r *stubDashboardRepo) CountMembresiasActivas(_ context.Context) (int64, error) {
	return r.activas, nil
}

func (r *stubDashboardRepo) CountMembresiasVencidas(_ context.Context) (int64, error) {
	return r.vencidas, nil
}

func (r *stubDashboardRepo) CountMembresiasPorVencer(_ context.Context, _ int) (int64, error) {
	return r.porVencer, nil
}

func (r *stubDashboardRepo) SumVentas(_ context.Context, _, _ time.Time) (decimal.Decimal, error) {
	return r.sumVentas, nil
}

func (r *stubDashboardRepo) CountVentas(_ context.Context, _, _ time.Time) (int64, error) {
	return r.ventas, nil
}

func (r *stubDashboardRepo) SumVisitas(_ context.Context, _, _ time.Time) (decimal.Decimal, error) {
	return r.sumVisitas, nil
}

func (r *stubDashboardRepo) CountVisitas(_ context.Context, _, _ time.Time) (int64, error) {
	return r.visitas, nil
}

func (r *stubDashboardRepo) SumPagosMembresia(_ context.Context, _, _ time.Time) (decimal.Decimal, error) {
	return r.sumPagos, nil
}

func (r *stubDashboardRepo) SumComprasAplicadas(_ context.Context, _, _ time.Time) (decimal.Decimal, error) {
	return r.gastos, nil
}

func (r *stubDashboardRepo) TopProductos(_ context.Context, _, _ time.Time, _ int) ([]repository.TopProducto, error) {
	return r.top, nil
}

func (r *stubDashboardRepo) IngresosPorMes(_ context.Context, _ int) ([]repository.IngresoMes, error) {
	return r.meses, nil
}

var _ repository.DashboardRepository = (*stubDashboardRepo)(nil)

// ── Seed helpers ──────────────────────────────────────────────────────────────

func seedProveedor(repo *stubProveedorRepo, nombre, rfc string) *model.Proveedor {
	p := &model.Proveedor{
		ID:            uuid.New(),
		NombreEmpresa: nombre,
		RFC:           rfc,
		Activo:        true,
	}
	repo.proveedores[p.ID] = p
	return p
}

func seedProducto(repo *stubProductoRepo, nombre string, piezasPorPaquete int, precioFinal float64) *model.Producto {
	p := &model.Producto{
		ID:               uuid.New(),
		ProveedorID:      uuid.New(),
		Nombre:           nombre,
		Categoria:        "Suplementos",
		PrecioPaquete:    decimal.NewFromFloat(120),
		PrecioUnitario:   decimal.NewFromFloat(10),
		PrecioFinal:      decimal.NewFromFloat(precioFinal),
		PiezasPorPaquete: piezasPorPaquete,
		Activo:           true,
	}
	repo.productos[p.ID] = p
	return p
}

func seedInventario(repo *stubInventarioRepo, productoID uuid.UUID, cantidad int) *model.Inventario {
	inv := &model.Inventario{
		ID:                 uuid.New(),
		ProductoID:         productoID,
		Cantidad:           cantidad,
		FechaActualizacion: time.Now(),
	}
	repo.filas[productoID] = inv
	return inv
}

func seedCompra(repo *stubCompraRepo, folio *string, items ...model.CompraItem) *model.Compra {
	c := &model.Compra{
		ID:          uuid.New(),
		FechaCompra: time.Now(),
		Folio:       folio,
	}
	total := decimal.Zero
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		items[i].CompraID = c.ID
		items[i].Subtotal = items[i].PrecioPaquete.Mul(decimal.NewFromInt(int64(items[i].Cantidad)))
		total = total.Add(items[i].Subtotal)
	}
	c.Items = items
	c.Total = total
	repo.compras[c.ID] = c
	return c
}

func strPtr(s string) *string { return &s }

func mustParseUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}
