package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EstadoCorte es el estado de una sesión de corte de caja.
type EstadoCorte int

const (
	CorteAbierto EstadoCorte = 0
	CorteCerrado EstadoCorte = 1
)

// CorteCaja es una sesión de caja: se abre con un monto inicial, acumula
// movimientos y se cierra calculando el monto final.
//
// Invariante: a lo más un corte en estado Abierto en todo el sistema
// (validado en el servicio y respaldado por un índice único parcial).
// Invariante: MontoFinal, una vez fijado, es MontoInicial + Σ Movimientos.Monto.
type CorteCaja struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FechaApertura time.Time   `gorm:"not null;index"`
	FechaCierre   *time.Time
	MontoInicial  decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	MontoFinal    *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Estado        EstadoCorte      `gorm:"not null;default:0;index"`

	Movimientos []MovimientoCaja `gorm:"foreignKey:CorteCajaID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default pluralization.
func (CorteCaja) TableName() string { return "cortes_caja" }

// MovimientoCaja es un evento inmutable del ledger de caja.
// Tipo: "Venta" | "Visita" | "Membresía" | "Renovación" | "Compra".
// Monto lleva signo: las compras se registran en negativo.
type MovimientoCaja struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CorteCajaID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Tipo        string          `gorm:"type:varchar(30);not null"`
	Monto       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Descripcion string          `gorm:"not null"`
	Fecha       time.Time       `gorm:"not null"`
}

func (MovimientoCaja) TableName() string { return "movimientos_caja" }
