package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venta es una venta de mostrador de productos.
type Venta struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Cliente    string    `gorm:"type:varchar(150);not null;default:'Mostrador'"`
	FechaVenta time.Time `gorm:"not null;index"`
	Total      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TipoVenta  string    `gorm:"type:varchar(50);not null;default:'Mostrador'"`
	Completada bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time

	Items []VentaItem `gorm:"foreignKey:VentaID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default pluralization.
func (Venta) TableName() string { return "ventas" }

// VentaItem es una línea de venta. Cantidad son PIEZAS (no paquetes) y
// PrecioUnitario es el precio de venta por pieza.
type VentaItem struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID uuid.UUID `gorm:"type:uuid;not null;index"`

	ProductoID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	InventarioAplicado bool `gorm:"not null;default:false"`

	Venta    *Venta    `gorm:"foreignKey:VentaID"`
	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (VentaItem) TableName() string { return "venta_items" }
