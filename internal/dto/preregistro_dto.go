package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearPreRegistroRequest struct {
	Nombre   string `json:"nombre"   validate:"required,min=2,max=150"`
	Correo   string `json:"correo"   validate:"required,email"`
	Telefono string `json:"telefono"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PreRegistroResponse struct {
	ID            string `json:"id"`
	Nombre        string `json:"nombre"`
	Correo        string `json:"correo"`
	Telefono      string `json:"telefono"`
	FechaRegistro string `json:"fecha_registro"`
	// Estado: pendiente | aceptado | rechazado | vencido
	Estado string `json:"estado"`
}
