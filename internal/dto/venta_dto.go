package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ItemVentaRequest: Cantidad son PIEZAS. PrecioUnitario en cero o negativo
// hace fallback al precio de venta vigente del producto.
type ItemVentaRequest struct {
	ProductoID     string          `json:"producto_id" validate:"required,uuid"`
	Cantidad       int             `json:"cantidad"    validate:"required,min=1"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

type RegistrarVentaRequest struct {
	Cliente   string             `json:"cliente"`
	TipoVenta string             `json:"tipo_venta"`
	Items     []ItemVentaRequest `json:"items" validate:"required,min=1,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemVentaResponse struct {
	ID             string          `json:"id"`
	ProductoID     string          `json:"producto_id"`
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type VentaResponse struct {
	ID         string              `json:"id"`
	Cliente    string              `json:"cliente"`
	TipoVenta  string              `json:"tipo_venta"`
	FechaVenta string              `json:"fecha_venta"`
	Total      decimal.Decimal     `json:"total"`
	Completada bool                `json:"completada"`
	Items      []ItemVentaResponse `json:"items"`
}
