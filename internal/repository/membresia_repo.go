package repository

import (
	"context"
	"time"

	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembresiaRepository interface {
	Create(ctx context.Context, m *model.Membresia) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Membresia, error)
	FindByCodigo(ctx context.Context, codigo string) (*model.Membresia, error)
	ExistsCodigo(ctx context.Context, codigo string) (bool, error)
	Update(ctx context.Context, m *model.Membresia) error
	List(ctx context.Context) ([]model.Membresia, error)
	// ListPorVencer: activas cuyo vencimiento cae en [hoy, hoy+dias]
	ListPorVencer(ctx context.Context, dias int) ([]model.Membresia, error)
	CreateHistorial(ctx context.Context, h *model.MembresiaHistorial) error
	ListHistorialPorCodigo(ctx context.Context, codigo string) ([]model.MembresiaHistorial, error)
}

type membresiaRepo struct{ db *gorm.DB }

func NewMembresiaRepository(db *gorm.DB) MembresiaRepository { return &membresiaRepo{db: db} }

func (r *membresiaRepo) Create(ctx context.Context, m *model.Membresia) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *membresiaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Membresia, error) {
	var m model.Membresia
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	return &m, err
}

func (r *membresiaRepo) FindByCodigo(ctx context.Context, codigo string) (*model.Membresia, error) {
	var m model.Membresia
	err := r.db.WithContext(ctx).Where("codigo_cliente = ?", codigo).First(&m).Error
	return &m, err
}

func (r *membresiaRepo) ExistsCodigo(ctx context.Context, codigo string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Membresia{}).
		Where("codigo_cliente = ?", codigo).Count(&count).Error
	return count > 0, err
}

func (r *membresiaRepo) Update(ctx context.Context, m *model.Membresia) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *membresiaRepo) List(ctx context.Context) ([]model.Membresia, error) {
	var membresias []model.Membresia
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&membresias).Error
	return membresias, err
}

func (r *membresiaRepo) ListPorVencer(ctx context.Context, dias int) ([]model.Membresia, error) {
	ahora := time.Now()
	hoy := time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, ahora.Location())
	limite := hoy.AddDate(0, 0, dias+1)
	var membresias []model.Membresia
	err := r.db.WithContext(ctx).
		Where("activa = true AND fecha_vencimiento >= ? AND fecha_vencimiento < ?", hoy, limite).
		Order("fecha_vencimiento ASC").
		Find(&membresias).Error
	return membresias, err
}

func (r *membresiaRepo) CreateHistorial(ctx context.Context, h *model.MembresiaHistorial) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *membresiaRepo) ListHistorialPorCodigo(ctx context.Context, codigo string) ([]model.MembresiaHistorial, error) {
	var historial []model.MembresiaHistorial
	err := r.db.WithContext(ctx).
		Where("codigo_cliente = ?", codigo).
		Order("fecha_pago DESC").
		Find(&historial).Error
	return historial, err
}
