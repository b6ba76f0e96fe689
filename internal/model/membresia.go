package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Membresia es un socio del gimnasio con su membresía vigente.
type Membresia struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CodigoCliente string    `gorm:"type:varchar(10);uniqueIndex;not null"`
	Nombre        string    `gorm:"type:varchar(150);not null"`
	Edad          int
	Telefono      string
	Direccion     string
	Correo        string

	Rutina                string
	EnfermedadesOLesiones string
	FotoURL               string

	FechaRegistro    time.Time `gorm:"not null"`
	FechaVencimiento time.Time `gorm:"not null;index"`
	FormaPago        string    `gorm:"type:varchar(30)"`
	Tipo             string    `gorm:"type:varchar(30)"`
	Nivel            string    `gorm:"type:varchar(30)"`
	MontoPagado      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Activa           bool      `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Historial []MembresiaHistorial `gorm:"foreignKey:MembresiaID"`
}

// TableName overrides GORM's default pluralization.
func (Membresia) TableName() string { return "membresias" }

// MembresiaHistorial registra cada pago de renovación.
type MembresiaHistorial struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MembresiaID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CodigoCliente string    `gorm:"type:varchar(10);index;not null"`

	FechaPago     time.Time       `gorm:"not null"`
	PeriodoInicio time.Time       `gorm:"not null"`
	PeriodoFin    time.Time       `gorm:"not null"`
	FormaPago     string          `gorm:"type:varchar(30)"`
	MontoPagado   decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Membresia *Membresia `gorm:"foreignKey:MembresiaID"`
}

func (MembresiaHistorial) TableName() string { return "membresias_historial" }
