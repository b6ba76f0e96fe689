package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// AjusteInventarioRequest fija la cantidad RESULTANTE del producto, no un
// delta. Cero es válido; negativo se rechaza en validación.
type AjusteInventarioRequest struct {
	ProductoID string  `json:"producto_id" validate:"required,uuid"`
	Cantidad   int     `json:"cantidad"    validate:"min=0"`
	Motivo     string  `json:"motivo"      validate:"required,min=3"`
	Referencia *string `json:"referencia"` // documento externo, opcional
}

// ─── Filter DTOs ─────────────────────────────────────────────────────────────

type MovimientoQuery struct {
	ProductoID  string `form:"producto_id"  validate:"omitempty,uuid"`
	Tipo        int    `form:"tipo"         validate:"omitempty,min=1,max=3"`
	FechaInicio string `form:"fecha_inicio"` // YYYY-MM-DD
	FechaFin    string `form:"fecha_fin"`    // YYYY-MM-DD, inclusive
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type InventarioResponse struct {
	ProductoID       string          `json:"producto_id"`
	Producto         string          `json:"producto"`
	Proveedor        string          `json:"proveedor"`
	Cantidad         int             `json:"cantidad"`
	CantidadComprada int             `json:"cantidad_comprada"`
	CantidadVendida  int             `json:"cantidad_vendida"`
	PrecioUnitario   decimal.Decimal `json:"precio_unitario"`
	PrecioFinal      decimal.Decimal `json:"precio_final"`
	Actualizado      string          `json:"actualizado"`
}

type MovimientoResponse struct {
	ID         string  `json:"id"`
	ProductoID string  `json:"producto_id"`
	Producto   string  `json:"producto"`
	Tipo       string  `json:"tipo"`
	Cantidad   int     `json:"cantidad"`
	Motivo     string  `json:"motivo"`
	CompraID   *string `json:"compra_id,omitempty"`
	VentaID    *string `json:"venta_id,omitempty"`
	Referencia *string `json:"referencia,omitempty"`
	Fecha      string  `json:"fecha"`
}

type StockResponse struct {
	ProductoID string `json:"producto_id"`
	Cantidad   int    `json:"cantidad"`
}

// ReporteInventarioResponse es el resumen general de GET /v1/inventario/reporte.
type ReporteInventarioResponse struct {
	ProductosActivos   int64   `json:"productos_activos"`
	PiezasTotales      int64   `json:"piezas_totales"`
	ValorCosto         float64 `json:"valor_costo"`
	MovimientosSemana  int64   `json:"movimientos_semana"`
	ProductosSinStock  int64   `json:"productos_sin_stock"`
	ProductosStockBajo int     `json:"productos_stock_bajo"`
}
