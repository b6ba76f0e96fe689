package model

import (
	"time"

	"github.com/google/uuid"
)

// Inventario lleva el stock en piezas de un producto: exactamente una fila
// por producto. Se crea perezosamente en la primera compra o ajuste manual
// y no se borra mientras exista el producto.
type Inventario struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductoID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`

	Cantidad int `gorm:"not null"`
	// Acumulados históricos de piezas compradas y vendidas
	CantidadComprada   int       `gorm:"not null;default:0"`
	CantidadVendida    int       `gorm:"not null;default:0"`
	FechaActualizacion time.Time `gorm:"not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID;constraint:OnDelete:CASCADE"`
}

// TableName keeps the singular name used by the reporting queries.
func (Inventario) TableName() string { return "inventario" }
