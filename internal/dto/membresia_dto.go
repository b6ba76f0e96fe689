package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearMembresiaRequest struct {
	Nombre                string          `json:"nombre"    validate:"required,min=2,max=150"`
	Edad                  int             `json:"edad"      validate:"min=0,max=120"`
	Telefono              string          `json:"telefono"`
	Direccion             string          `json:"direccion"`
	Correo                string          `json:"correo"    validate:"omitempty,email"`
	Rutina                string          `json:"rutina"`
	EnfermedadesOLesiones string          `json:"enfermedades_o_lesiones"`
	FotoURL               string          `json:"foto_url"`
	FormaPago             string          `json:"forma_pago"`
	Tipo                  string          `json:"tipo"`
	Nivel                 string          `json:"nivel"`
	MontoPagado           decimal.Decimal `json:"monto_pagado" validate:"required"`
	// MesesVigencia por defecto 1
	MesesVigencia int `json:"meses_vigencia" validate:"min=0,max=12"`
}

type RenovarMembresiaRequest struct {
	FormaPago     string          `json:"forma_pago"`
	MontoPagado   decimal.Decimal `json:"monto_pagado"   validate:"required"`
	MesesVigencia int             `json:"meses_vigencia" validate:"min=0,max=12"`
}

type ActualizarMembresiaRequest struct {
	Nombre                *string `json:"nombre"    validate:"omitempty,min=2,max=150"`
	Edad                  *int    `json:"edad"      validate:"omitempty,min=0,max=120"`
	Telefono              *string `json:"telefono"`
	Direccion             *string `json:"direccion"`
	Correo                *string `json:"correo"    validate:"omitempty,email"`
	Rutina                *string `json:"rutina"`
	EnfermedadesOLesiones *string `json:"enfermedades_o_lesiones"`
	FotoURL               *string `json:"foto_url"`
	Tipo                  *string `json:"tipo"`
	Nivel                 *string `json:"nivel"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MembresiaResponse struct {
	ID                    string          `json:"id"`
	CodigoCliente         string          `json:"codigo_cliente"`
	Nombre                string          `json:"nombre"`
	Edad                  int             `json:"edad"`
	Telefono              string          `json:"telefono"`
	Direccion             string          `json:"direccion"`
	Correo                string          `json:"correo"`
	Rutina                string          `json:"rutina"`
	EnfermedadesOLesiones string          `json:"enfermedades_o_lesiones"`
	FotoURL               string          `json:"foto_url"`
	FechaRegistro         string          `json:"fecha_registro"`
	FechaVencimiento      string          `json:"fecha_vencimiento"`
	FormaPago             string          `json:"forma_pago"`
	Tipo                  string          `json:"tipo"`
	Nivel                 string          `json:"nivel"`
	MontoPagado           decimal.Decimal `json:"monto_pagado"`
	Activa                bool            `json:"activa"`
	Vigente               bool            `json:"vigente"`
}

type PagoMembresiaResponse struct {
	ID            string          `json:"id"`
	CodigoCliente string          `json:"codigo_cliente"`
	FechaPago     string          `json:"fecha_pago"`
	PeriodoInicio string          `json:"periodo_inicio"`
	PeriodoFin    string          `json:"periodo_fin"`
	FormaPago     string          `json:"forma_pago"`
	MontoPagado   decimal.Decimal `json:"monto_pagado"`
}
