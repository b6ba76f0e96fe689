package model

import (
	"time"

	"github.com/google/uuid"
)

// Proveedor es un proveedor de productos del gimnasio.
// Nunca se elimina: se desactiva con Activo=false.
type Proveedor struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NombreEmpresa   string    `gorm:"not null"`
	PersonaContacto string
	Telefono        string
	Email           string
	Direccion       string
	RFC             string `gorm:"uniqueIndex;not null"`
	Activo          bool   `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Productos []Producto `gorm:"foreignKey:ProveedorID"`
}

// TableName overrides GORM's default pluralization (proveedors → proveedores).
func (Proveedor) TableName() string { return "proveedores" }
