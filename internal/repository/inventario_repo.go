package repository

import (
	"context"
	"time"

	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MovimientoFilter filters the append-only movement history.
type MovimientoFilter struct {
	ProductoID  *uuid.UUID
	Tipo        *model.TipoMovimiento
	FechaInicio *time.Time
	FechaFin    *time.Time
}

type InventarioRepository interface {
	FindByProductoTx(tx *gorm.DB, productoID uuid.UUID) (*model.Inventario, error)
	// FindByProductoForUpdateTx locks the row (SELECT ... FOR UPDATE) so the
	// stock check and the decrement commit as one atomic read-modify-write.
	FindByProductoForUpdateTx(tx *gorm.DB, productoID uuid.UUID) (*model.Inventario, error)
	CreateTx(tx *gorm.DB, inv *model.Inventario) error
	UpdateTx(tx *gorm.DB, inv *model.Inventario) error
	CreateMovimientoTx(tx *gorm.DB, mov *model.HistorialMovimiento) error

	FindByProducto(ctx context.Context, productoID uuid.UUID) (*model.Inventario, error)
	ListInventario(ctx context.Context) ([]model.Inventario, error)
	ListMovimientos(ctx context.Context, filter MovimientoFilter) ([]model.HistorialMovimiento, error)
	StockBajo(ctx context.Context, limite int) ([]model.Inventario, error)

	// Reporte general
	CountProductosActivos(ctx context.Context) (int64, error)
	SumPiezas(ctx context.Context) (int64, error)
	ValorTotalCosto(ctx context.Context) (float64, error)
	CountMovimientosDesde(ctx context.Context, desde time.Time) (int64, error)
	CountSinStock(ctx context.Context) (int64, error)

	DB() *gorm.DB
}

type inventarioRepo struct{ db *gorm.DB }

func NewInventarioRepository(db *gorm.DB) InventarioRepository { return &inventarioRepo{db: db} }

func (r *inventarioRepo) FindByProductoTx(tx *gorm.DB, productoID uuid.UUID) (*model.Inventario, error) {
	var inv model.Inventario
	err := tx.Where("producto_id = ?", productoID).First(&inv).Error
	return &inv, err
}

func (r *inventarioRepo) FindByProductoForUpdateTx(tx *gorm.DB, productoID uuid.UUID) (*model.Inventario, error) {
	var inv model.Inventario
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("producto_id = ?", productoID).First(&inv).Error
	return &inv, err
}

func (r *inventarioRepo) CreateTx(tx *gorm.DB, inv *model.Inventario) error {
	return tx.Create(inv).Error
}

func (r *inventarioRepo) UpdateTx(tx *gorm.DB, inv *model.Inventario) error {
	return tx.Save(inv).Error
}

func (r *inventarioRepo) CreateMovimientoTx(tx *gorm.DB, mov *model.HistorialMovimiento) error {
	return tx.Create(mov).Error
}

func (r *inventarioRepo) FindByProducto(ctx context.Context, productoID uuid.UUID) (*model.Inventario, error) {
	return r.FindByProductoTx(r.db.WithContext(ctx), productoID)
}

func (r *inventarioRepo) ListInventario(ctx context.Context) ([]model.Inventario, error) {
	var inventario []model.Inventario
	err := r.db.WithContext(ctx).
		Preload("Producto.Proveedor").
		Joins("JOIN productos ON productos.id = inventario.producto_id").
		Order("productos.nombre ASC").
		Find(&inventario).Error
	return inventario, err
}

func (r *inventarioRepo) ListMovimientos(ctx context.Context, filter MovimientoFilter) ([]model.HistorialMovimiento, error) {
	q := r.db.WithContext(ctx).Model(&model.HistorialMovimiento{}).
		Preload("Producto.Proveedor")

	if filter.ProductoID != nil {
		q = q.Where("producto_id = ?", *filter.ProductoID)
	}
	if filter.Tipo != nil {
		q = q.Where("tipo = ?", *filter.Tipo)
	}
	if filter.FechaInicio != nil {
		q = q.Where("fecha_movimiento >= ?", *filter.FechaInicio)
	}
	if filter.FechaFin != nil {
		// inclusive end-of-day semantics
		q = q.Where("fecha_movimiento < ?", filter.FechaFin.AddDate(0, 0, 1))
	}

	var movimientos []model.HistorialMovimiento
	err := q.Order("fecha_movimiento DESC").Find(&movimientos).Error
	return movimientos, err
}

func (r *inventarioRepo) StockBajo(ctx context.Context, limite int) ([]model.Inventario, error) {
	var inventario []model.Inventario
	err := r.db.WithContext(ctx).
		Preload("Producto.Proveedor").
		Joins("JOIN productos ON productos.id = inventario.producto_id").
		Where("inventario.cantidad <= ? AND productos.activo = true", limite).
		Order("inventario.cantidad ASC").
		Find(&inventario).Error
	return inventario, err
}

func (r *inventarioRepo) CountProductosActivos(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).Where("activo = true").Count(&count).Error
	return count, err
}

func (r *inventarioRepo) SumPiezas(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Inventario{}).
		Select("COALESCE(SUM(cantidad), 0)").Scan(&total).Error
	return total, err
}

func (r *inventarioRepo) ValorTotalCosto(ctx context.Context) (float64, error) {
	var valor float64
	err := r.db.WithContext(ctx).Model(&model.Inventario{}).
		Joins("JOIN productos ON productos.id = inventario.producto_id").
		Where("productos.activo = true").
		Select("COALESCE(SUM(inventario.cantidad * productos.precio_unitario), 0)").
		Scan(&valor).Error
	return valor, err
}

func (r *inventarioRepo) CountMovimientosDesde(ctx context.Context, desde time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.HistorialMovimiento{}).
		Where("fecha_movimiento >= ?", desde).Count(&count).Error
	return count, err
}

func (r *inventarioRepo) CountSinStock(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Inventario{}).
		Joins("JOIN productos ON productos.id = inventario.producto_id").
		Where("inventario.cantidad = 0 AND productos.activo = true").
		Count(&count).Error
	return count, err
}

func (r *inventarioRepo) DB() *gorm.DB { return r.db }
