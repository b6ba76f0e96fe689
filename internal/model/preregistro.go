package model

import (
	"time"

	"github.com/google/uuid"
)

// EstadoPreRegistro es el estado del flujo de pre-registro web.
type EstadoPreRegistro int

const (
	PreRegistroPendiente EstadoPreRegistro = 0
	PreRegistroAceptado  EstadoPreRegistro = 1
	PreRegistroRechazado EstadoPreRegistro = 2
	// Un pendiente con más de 3 días se reporta como vencido
	PreRegistroVencido EstadoPreRegistro = 3
)

// PreRegistro es una solicitud de inscripción capturada desde el sitio
// público, pendiente de que recepción la acepte o rechace.
type PreRegistro struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre        string            `gorm:"type:varchar(150);not null"`
	Correo        string            `gorm:"not null"`
	Telefono      string
	FechaRegistro time.Time         `gorm:"not null"`
	Estado        EstadoPreRegistro `gorm:"not null;default:0"`
}

// TableName overrides GORM's default pluralization.
func (PreRegistro) TableName() string { return "pre_registros" }
