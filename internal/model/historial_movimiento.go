package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TipoMovimiento clasifica un movimiento de inventario.
type TipoMovimiento int

const (
	MovimientoEntrada TipoMovimiento = 1
	MovimientoSalida  TipoMovimiento = 2
	MovimientoAjuste  TipoMovimiento = 3
)

func (t TipoMovimiento) String() string {
	switch t {
	case MovimientoEntrada:
		return "Entrada"
	case MovimientoSalida:
		return "Salida"
	case MovimientoAjuste:
		return "Ajuste"
	}
	return "Desconocido"
}

// HistorialMovimiento es la bitácora append-only del inventario: cada cambio
// de Inventario.Cantidad tiene exactamente una fila aquí.
//
// Cantidad siempre es positiva; la dirección la da el Tipo. Ojo con la
// asimetría: Entrada/Salida registran el DELTA del movimiento, Ajuste
// registra la cantidad RESULTANTE del ajuste.
type HistorialMovimiento struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductoID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Tipo       TipoMovimiento `gorm:"not null"`
	Cantidad   int            `gorm:"not null"`
	Motivo     string

	// Referencias opcionales al documento que originó el movimiento
	CompraID *uuid.UUID `gorm:"type:uuid;index"`
	VentaID  *uuid.UUID `gorm:"type:uuid;index"`

	// Precio por pieza/paquete vigente al momento del movimiento
	PrecioUnitario *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Referencia     *string          `gorm:"type:varchar(100)"`

	FechaMovimiento time.Time `gorm:"not null;index"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

// TableName overrides GORM's default pluralization.
func (HistorialMovimiento) TableName() string { return "historial_movimientos" }
