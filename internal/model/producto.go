package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto es un artículo de venta en mostrador. El proveedor lo surte en
// paquetes de PiezasPorPaquete unidades; la venta siempre es por pieza.
//
// Tres precios, con nombres distintos a propósito:
//   - PrecioPaquete: costo del paquete completo (lo que cobra el proveedor)
//   - PrecioUnitario: costo por pieza, derivado (PrecioPaquete / PiezasPorPaquete)
//   - PrecioFinal: precio de venta al público por pieza
type Producto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProveedorID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_proveedor_nombre"`
	Nombre      string    `gorm:"not null;uniqueIndex:idx_proveedor_nombre"`

	PrecioPaquete  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PrecioFinal    decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Categoria string  `gorm:"type:varchar(80)"`
	FotoURL   *string
	Activo    bool `gorm:"not null;default:true"`
	// PiezasPorPaquete se fuerza a 1 cuando llega ≤ 0
	PiezasPorPaquete int `gorm:"not null;default:1"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Proveedor *Proveedor `gorm:"foreignKey:ProveedorID"`
}
