package repository

import (
	"context"
	"time"

	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VisitaRepository interface {
	Create(ctx context.Context, v *model.VentaVisita) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.VentaVisita, error)
	List(ctx context.Context) ([]model.VentaVisita, error)
	// ListEnRango: visitas con fecha_venta en [desde, hasta)
	ListEnRango(ctx context.Context, desde, hasta time.Time) ([]model.VentaVisita, error)
}

type visitaRepo struct{ db *gorm.DB }

func NewVisitaRepository(db *gorm.DB) VisitaRepository { return &visitaRepo{db: db} }

func (r *visitaRepo) Create(ctx context.Context, v *model.VentaVisita) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *visitaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.VentaVisita, error) {
	var v model.VentaVisita
	err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error
	return &v, err
}

func (r *visitaRepo) List(ctx context.Context) ([]model.VentaVisita, error) {
	var visitas []model.VentaVisita
	err := r.db.WithContext(ctx).Order("fecha_venta DESC").Find(&visitas).Error
	return visitas, err
}

func (r *visitaRepo) ListEnRango(ctx context.Context, desde, hasta time.Time) ([]model.VentaVisita, error) {
	var visitas []model.VentaVisita
	err := r.db.WithContext(ctx).
		Where("fecha_venta >= ? AND fecha_venta < ?", desde, hasta).
		Order("fecha_venta DESC").
		Find(&visitas).Error
	return visitas, err
}
