package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ItemCompraRequest: Cantidad son PAQUETES; PrecioPaquete es el costo por paquete.
type ItemCompraRequest struct {
	ProductoID    string          `json:"producto_id"    validate:"required,uuid"`
	Cantidad      int             `json:"cantidad"       validate:"required,min=1"`
	PrecioPaquete decimal.Decimal `json:"precio_paquete" validate:"required"`
}

type RegistrarCompraRequest struct {
	Folio       *string             `json:"folio"`
	Comentarios *string             `json:"comentarios"`
	Items       []ItemCompraRequest `json:"items" validate:"required,min=1,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemCompraResponse struct {
	ID                 string          `json:"id"`
	ProductoID         string          `json:"producto_id"`
	Producto           string          `json:"producto"`
	Cantidad           int             `json:"cantidad"`
	PrecioPaquete      decimal.Decimal `json:"precio_paquete"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	InventarioAplicado bool            `json:"inventario_aplicado"`
}

type CompraResponse struct {
	ID          string               `json:"id"`
	FechaCompra string               `json:"fecha_compra"`
	Folio       *string              `json:"folio"`
	Comentarios *string              `json:"comentarios"`
	Total       decimal.Decimal      `json:"total"`
	Items       []ItemCompraResponse `json:"items"`
	// Aplicacion resume el resultado del pase a inventario; nil en listados.
	Aplicacion *AplicacionInventarioResponse `json:"aplicacion,omitempty"`
}

// AplicacionInventarioResponse resume un pase de compra a inventario: cuántas
// líneas se aplicaron y cuántas se omitieron (producto inexistente o línea
// ya aplicada).
type AplicacionInventarioResponse struct {
	Aplicadas int `json:"aplicadas"`
	Omitidas  int `json:"omitidas"`
}
