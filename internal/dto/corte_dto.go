package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AbrirCorteRequest struct {
	MontoInicial decimal.Decimal `json:"monto_inicial" validate:"min=0"`
}

// MovimientoCajaRequest: Monto lleva signo — las compras entran en negativo.
type MovimientoCajaRequest struct {
	Tipo        string          `json:"tipo"        validate:"required,oneof=Venta Visita Membresía Renovación Compra"`
	Monto       decimal.Decimal `json:"monto"       validate:"required"`
	Descripcion string          `json:"descripcion" validate:"required,min=3"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MovimientoCajaResponse struct {
	ID          string          `json:"id"`
	Tipo        string          `json:"tipo"`
	Monto       decimal.Decimal `json:"monto"`
	Descripcion string          `json:"descripcion"`
	Fecha       string          `json:"fecha"`
}

type CorteResponse struct {
	ID            string                   `json:"id"`
	FechaApertura string                   `json:"fecha_apertura"`
	FechaCierre   *string                  `json:"fecha_cierre"`
	MontoInicial  decimal.Decimal          `json:"monto_inicial"`
	MontoFinal    *decimal.Decimal         `json:"monto_final"`
	Estado        string                   `json:"estado"` // abierto | cerrado
	Movimientos   []MovimientoCajaResponse `json:"movimientos"`
}
