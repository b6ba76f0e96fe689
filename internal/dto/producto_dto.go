package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	ProveedorID string `json:"proveedor_id" validate:"required,uuid"`
	Nombre      string `json:"nombre"       validate:"required,min=2,max=120"`
	Categoria   string `json:"categoria"`
	// PrecioPaquete es el costo del paquete; PrecioUnitario se deriva si llega en cero
	PrecioPaquete    decimal.Decimal `json:"precio_paquete" validate:"required"`
	PrecioFinal      decimal.Decimal `json:"precio_final"`
	PiezasPorPaquete int             `json:"piezas_por_paquete"`
	FotoURL          *string         `json:"foto_url"`
}

type ActualizarProductoRequest struct {
	Nombre           *string          `json:"nombre"       validate:"omitempty,min=2,max=120"`
	Categoria        *string          `json:"categoria"`
	PrecioPaquete    *decimal.Decimal `json:"precio_paquete"`
	PrecioFinal      *decimal.Decimal `json:"precio_final"`
	PiezasPorPaquete *int             `json:"piezas_por_paquete"`
	FotoURL          *string          `json:"foto_url"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ProductoFilter struct {
	Nombre      string `form:"nombre"`
	Categoria   string `form:"categoria"`
	ProveedorID string `form:"proveedor_id" validate:"omitempty,uuid"`
	// Activo: "false" = inactivos, "all" = todos, default = activos
	Activo string `form:"activo"`
	Page   int    `form:"page,default=1"  validate:"min=1"`
	Limit  int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID               string          `json:"id"`
	ProveedorID      string          `json:"proveedor_id"`
	Proveedor        string          `json:"proveedor"`
	Nombre           string          `json:"nombre"`
	Categoria        string          `json:"categoria"`
	PrecioPaquete    decimal.Decimal `json:"precio_paquete"`
	PrecioUnitario   decimal.Decimal `json:"precio_unitario"`
	PrecioFinal      decimal.Decimal `json:"precio_final"`
	PiezasPorPaquete int             `json:"piezas_por_paquete"`
	FotoURL          *string         `json:"foto_url"`
	Activo           bool            `json:"activo"`
}

type ProductoListResponse struct {
	Data       []ProductoResponse `json:"data"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}
