package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Compra es la cabecera de una compra a proveedor. Se persiste ANTES de
// aplicar el inventario: el flujo es en dos fases y cada item lleva su
// bandera InventarioAplicado hasta que el ledger lo materializa.
type Compra struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FechaCompra time.Time `gorm:"not null;index"`
	Folio       *string   `gorm:"type:varchar(50)"`
	Comentarios *string
	Total       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt   time.Time

	Items []CompraItem `gorm:"foreignKey:CompraID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default pluralization.
func (Compra) TableName() string { return "compras" }

// CompraItem es una línea de compra. Cantidad son PAQUETES, no piezas;
// PrecioPaquete es el costo por paquete.
type CompraItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompraID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductoID uuid.UUID `gorm:"type:uuid;not null;index"`

	Cantidad      int             `gorm:"not null"`
	PrecioPaquete decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	// InventarioAplicado marca si la línea ya se reflejó en inventario.
	// La pone en true el ledger, exactamente una vez por línea.
	InventarioAplicado bool `gorm:"not null;default:false"`

	Compra   *Compra   `gorm:"foreignKey:CompraID"`
	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (CompraItem) TableName() string { return "compra_items" }
