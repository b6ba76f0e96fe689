package dto

import "github.com/shopspring/decimal"

// ─── Response DTOs ───────────────────────────────────────────────────────────

type IngresosPeriodo struct {
	Ventas     decimal.Decimal `json:"ventas"`
	Visitas    decimal.Decimal `json:"visitas"`
	Membresias decimal.Decimal `json:"membresias"`
	Total      decimal.Decimal `json:"total"`
}

type TopProductoResponse struct {
	ProductoID string          `json:"producto_id"`
	Nombre     string          `json:"nombre"`
	Piezas     int64           `json:"piezas"`
	Importe    decimal.Decimal `json:"importe"`
}

type IngresoMesResponse struct {
	Mes        int             `json:"mes"`
	Ventas     decimal.Decimal `json:"ventas"`
	Visitas    decimal.Decimal `json:"visitas"`
	Membresias decimal.Decimal `json:"membresias"`
	Total      decimal.Decimal `json:"total"`
}

// DashboardResponse es el resumen de GET /v1/dashboard; se cachea en Redis.
type DashboardResponse struct {
	MembresiasActivas   int64 `json:"membresias_activas"`
	MembresiasVencidas  int64 `json:"membresias_vencidas"`
	MembresiasPorVencer int64 `json:"membresias_por_vencer"`

	VisitasHoy int64 `json:"visitas_hoy"`
	VentasHoy  int64 `json:"ventas_hoy"`

	IngresosHoy IngresosPeriodo `json:"ingresos_hoy"`
	IngresosMes IngresosPeriodo `json:"ingresos_mes"`
	// GastosMes suma sólo compras con todas sus líneas aplicadas al inventario
	GastosMes decimal.Decimal `json:"gastos_mes"`

	ProductosStockBajo     int   `json:"productos_stock_bajo"`
	PreRegistrosPendientes int64 `json:"pre_registros_pendientes"`

	TopProductos     []TopProductoResponse `json:"top_productos"`
	IngresosPorMes   []IngresoMesResponse  `json:"ingresos_por_mes"`
	GeneradoEn       string                `json:"generado_en"`
	DesdeCache       bool                  `json:"desde_cache"`
}
