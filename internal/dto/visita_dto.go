package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistrarVisitaRequest struct {
	NombreCliente string          `json:"nombre_cliente" validate:"required,min=2,max=150"`
	Costo         decimal.Decimal `json:"costo"          validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type VisitaResponse struct {
	ID            string          `json:"id"`
	NombreCliente string          `json:"nombre_cliente"`
	Costo         decimal.Decimal `json:"costo"`
	FechaVenta    string          `json:"fecha_venta"`
}
