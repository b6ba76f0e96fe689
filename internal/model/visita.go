package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VentaVisita es el cobro de una visita de un día (sin membresía).
type VentaVisita struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NombreCliente string          `gorm:"type:varchar(150);not null"`
	Costo         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	FechaVenta    time.Time       `gorm:"not null;index"`
}

// TableName overrides GORM's default pluralization.
func (VentaVisita) TableName() string { return "ventas_visitas" }
