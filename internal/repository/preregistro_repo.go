package repository

import (
	"context"

	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PreRegistroRepository interface {
	Create(ctx context.Context, p *model.PreRegistro) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.PreRegistro, error)
	List(ctx context.Context) ([]model.PreRegistro, error)
	Update(ctx context.Context, p *model.PreRegistro) error
	CountPendientes(ctx context.Context) (int64, error)
}

type preRegistroRepo struct{ db *gorm.DB }

func NewPreRegistroRepository(db *gorm.DB) PreRegistroRepository { return &preRegistroRepo{db: db} }

func (r *preRegistroRepo) Create(ctx context.Context, p *model.PreRegistro) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *preRegistroRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.PreRegistro, error) {
	var p model.PreRegistro
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *preRegistroRepo) List(ctx context.Context) ([]model.PreRegistro, error) {
	var registros []model.PreRegistro
	err := r.db.WithContext(ctx).Order("fecha_registro DESC").Find(&registros).Error
	return registros, err
}

func (r *preRegistroRepo) Update(ctx context.Context, p *model.PreRegistro) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *preRegistroRepo) CountPendientes(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PreRegistro{}).
		Where("estado = ?", model.PreRegistroPendiente).Count(&count).Error
	return count, err
}
