package repository

import (
	"context"
	"time"

	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CorteRepository interface {
	Create(ctx context.Context, c *model.CorteCaja) error
	// FindAbierto returns the single corte in estado Abierto, or
	// gorm.ErrRecordNotFound when none is open.
	FindAbierto(ctx context.Context) (*model.CorteCaja, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.CorteCaja, error)
	Update(ctx context.Context, c *model.CorteCaja) error
	CreateMovimiento(ctx context.Context, m *model.MovimientoCaja) error
	SumMovimientos(ctx context.Context, corteID uuid.UUID) (decimal.Decimal, error)
	ListPorDia(ctx context.Context, fecha time.Time) ([]model.CorteCaja, error)
	ListPorMes(ctx context.Context, year int, month time.Month) ([]model.CorteCaja, error)
}

type corteRepo struct{ db *gorm.DB }

func NewCorteRepository(db *gorm.DB) CorteRepository { return &corteRepo{db: db} }

func (r *corteRepo) Create(ctx context.Context, c *model.CorteCaja) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *corteRepo) FindAbierto(ctx context.Context) (*model.CorteCaja, error) {
	var c model.CorteCaja
	err := r.db.WithContext(ctx).Where("estado = ?", model.CorteAbierto).First(&c).Error
	return &c, err
}

func (r *corteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.CorteCaja, error) {
	var c model.CorteCaja
	err := r.db.WithContext(ctx).
		Preload("Movimientos", func(db *gorm.DB) *gorm.DB { return db.Order("fecha ASC") }).
		First(&c, "id = ?", id).Error
	return &c, err
}

func (r *corteRepo) Update(ctx context.Context, c *model.CorteCaja) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *corteRepo) CreateMovimiento(ctx context.Context, m *model.MovimientoCaja) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *corteRepo) SumMovimientos(ctx context.Context, corteID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&model.MovimientoCaja{}).
		Where("corte_caja_id = ?", corteID).
		Select("COALESCE(SUM(monto), 0)").
		Scan(&total).Error
	return total, err
}

func (r *corteRepo) ListPorDia(ctx context.Context, fecha time.Time) ([]model.CorteCaja, error) {
	dia := time.Date(fecha.Year(), fecha.Month(), fecha.Day(), 0, 0, 0, 0, fecha.Location())
	var cortes []model.CorteCaja
	err := r.db.WithContext(ctx).
		Preload("Movimientos").
		Where("fecha_apertura >= ? AND fecha_apertura < ?", dia, dia.AddDate(0, 0, 1)).
		Order("fecha_apertura ASC").
		Find(&cortes).Error
	return cortes, err
}

func (r *corteRepo) ListPorMes(ctx context.Context, year int, month time.Month) ([]model.CorteCaja, error) {
	inicio := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	var cortes []model.CorteCaja
	err := r.db.WithContext(ctx).
		Preload("Movimientos").
		Where("fecha_apertura >= ? AND fecha_apertura < ?", inicio, inicio.AddDate(0, 1, 0)).
		Order("fecha_apertura ASC").
		Find(&cortes).Error
	return cortes, err
}
