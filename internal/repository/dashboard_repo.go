package repository

import (
	"context"
	"time"

	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TopProducto es una fila del ranking de productos más vendidos.
type TopProducto struct {
	ProductoID uuid.UUID
	Nombre     string
	Piezas     int64
	Importe    decimal.Decimal
}

// IngresoMes agrupa los ingresos de un mes calendario por origen.
type IngresoMes struct {
	Mes        int
	Ventas     decimal.Decimal
	Visitas    decimal.Decimal
	Membresias decimal.Decimal
}

type DashboardRepository interface {
	CountMembresiasActivas(ctx context.Context) (int64, error)
	CountMembresiasVencidas(ctx context.Context) (int64, error)
	CountMembresiasPorVencer(ctx context.Context, dias int) (int64, error)

	SumVentas(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error)
	CountVentas(ctx context.Context, desde, hasta time.Time) (int64, error)
	SumVisitas(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error)
	CountVisitas(ctx context.Context, desde, hasta time.Time) (int64, error)
	SumPagosMembresia(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error)

	// SumComprasAplicadas suma sólo compras con TODAS sus líneas aplicadas
	// al inventario; las parciales no cuentan como gasto todavía.
	SumComprasAplicadas(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error)

	TopProductos(ctx context.Context, desde, hasta time.Time, limite int) ([]TopProducto, error)
	IngresosPorMes(ctx context.Context, year int) ([]IngresoMes, error)
}

type dashboardRepo struct{ db *gorm.DB }

func NewDashboardRepository(db *gorm.DB) DashboardRepository { return &dashboardRepo{db: db} }

func (r *dashboardRepo) CountMembresiasActivas(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Membresia{}).
		Where("activa = true AND fecha_vencimiento >= ?", time.Now()).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepo) CountMembresiasVencidas(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Membresia{}).
		Where("activa = true AND fecha_vencimiento < ?", time.Now()).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepo) CountMembresiasPorVencer(ctx context.Context, dias int) (int64, error) {
	ahora := time.Now()
	hoy := time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, ahora.Location())
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Membresia{}).
		Where("activa = true AND fecha_vencimiento >= ? AND fecha_vencimiento < ?",
			hoy, hoy.AddDate(0, 0, dias+1)).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepo) SumVentas(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&model.Venta{}).
		Where("completada = true AND fecha_venta >= ? AND fecha_venta < ?", desde, hasta).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error
	return total, err
}

func (r *dashboardRepo) CountVentas(ctx context.Context, desde, hasta time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Venta{}).
		Where("completada = true AND fecha_venta >= ? AND fecha_venta < ?", desde, hasta).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepo) SumVisitas(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&model.VentaVisita{}).
		Where("fecha_venta >= ? AND fecha_venta < ?", desde, hasta).
		Select("COALESCE(SUM(costo), 0)").
		Scan(&total).Error
	return total, err
}

func (r *dashboardRepo) CountVisitas(ctx context.Context, desde, hasta time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.VentaVisita{}).
		Where("fecha_venta >= ? AND fecha_venta < ?", desde, hasta).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepo) SumPagosMembresia(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&model.MembresiaHistorial{}).
		Where("fecha_pago >= ? AND fecha_pago < ?", desde, hasta).
		Select("COALESCE(SUM(monto_pagado), 0)").
		Scan(&total).Error
	return total, err
}

func (r *dashboardRepo) SumComprasAplicadas(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&model.Compra{}).
		Where("fecha_compra >= ? AND fecha_compra < ?", desde, hasta).
		Where("NOT EXISTS (SELECT 1 FROM compra_items WHERE compra_items.compra_id = compras.id AND compra_items.inventario_aplicado = false)").
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error
	return total, err
}

func (r *dashboardRepo) TopProductos(ctx context.Context, desde, hasta time.Time, limite int) ([]TopProducto, error) {
	var top []TopProducto
	err := r.db.WithContext(ctx).Model(&model.VentaItem{}).
		Joins("JOIN ventas ON ventas.id = venta_items.venta_id").
		Joins("JOIN productos ON productos.id = venta_items.producto_id").
		Where("ventas.completada = true AND ventas.fecha_venta >= ? AND ventas.fecha_venta < ?", desde, hasta).
		Select("venta_items.producto_id AS producto_id, productos.nombre AS nombre, SUM(venta_items.cantidad) AS piezas, SUM(venta_items.subtotal) AS importe").
		Group("venta_items.producto_id, productos.nombre").
		Order("piezas DESC").
		Limit(limite).
		Scan(&top).Error
	return top, err
}

func (r *dashboardRepo) IngresosPorMes(ctx context.Context, year int) ([]IngresoMes, error) {
	inicio := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	fin := inicio.AddDate(1, 0, 0)

	type fila struct {
		Mes   int
		Total decimal.Decimal
	}
	meses := make([]IngresoMes, 12)
	for i := range meses {
		meses[i].Mes = i + 1
		meses[i].Ventas = decimal.Zero
		meses[i].Visitas = decimal.Zero
		meses[i].Membresias = decimal.Zero
	}

	var ventas []fila
	if err := r.db.WithContext(ctx).Model(&model.Venta{}).
		Where("completada = true AND fecha_venta >= ? AND fecha_venta < ?", inicio, fin).
		Select("EXTRACT(MONTH FROM fecha_venta)::int AS mes, COALESCE(SUM(total), 0) AS total").
		Group("mes").
		Scan(&ventas).Error; err != nil {
		return nil, err
	}
	for _, f := range ventas {
		meses[f.Mes-1].Ventas = f.Total
	}

	var visitas []fila
	if err := r.db.WithContext(ctx).Model(&model.VentaVisita{}).
		Where("fecha_venta >= ? AND fecha_venta < ?", inicio, fin).
		Select("EXTRACT(MONTH FROM fecha_venta)::int AS mes, COALESCE(SUM(costo), 0) AS total").
		Group("mes").
		Scan(&visitas).Error; err != nil {
		return nil, err
	}
	for _, f := range visitas {
		meses[f.Mes-1].Visitas = f.Total
	}

	var pagos []fila
	if err := r.db.WithContext(ctx).Model(&model.MembresiaHistorial{}).
		Where("fecha_pago >= ? AND fecha_pago < ?", inicio, fin).
		Select("EXTRACT(MONTH FROM fecha_pago)::int AS mes, COALESCE(SUM(monto_pagado), 0) AS total").
		Group("mes").
		Scan(&pagos).Error; err != nil {
		return nil, err
	}
	for _, f := range pagos {
		meses[f.Mes-1].Membresias = f.Total
	}

	return meses, nil
}
