package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProveedorRequest struct {
	NombreEmpresa   string `json:"nombre_empresa"   validate:"required,min=2,max=150"`
	PersonaContacto string `json:"persona_contacto"`
	Telefono        string `json:"telefono"`
	Email           string `json:"email"            validate:"omitempty,email"`
	Direccion       string `json:"direccion"`
	RFC             string `json:"rfc"              validate:"required,min=12,max=13"`
}

type ActualizarProveedorRequest struct {
	NombreEmpresa   *string `json:"nombre_empresa"   validate:"omitempty,min=2,max=150"`
	PersonaContacto *string `json:"persona_contacto"`
	Telefono        *string `json:"telefono"`
	Email           *string `json:"email"            validate:"omitempty,email"`
	Direccion       *string `json:"direccion"`
	RFC             *string `json:"rfc"              validate:"omitempty,min=12,max=13"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProveedorResponse struct {
	ID              string `json:"id"`
	NombreEmpresa   string `json:"nombre_empresa"`
	PersonaContacto string `json:"persona_contacto"`
	Telefono        string `json:"telefono"`
	Email           string `json:"email"`
	Direccion       string `json:"direccion"`
	RFC             string `json:"rfc"`
	Activo          bool   `json:"activo"`
	CreatedAt       string `json:"created_at"`
}
