package repository

import (
	"context"

	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VentaRepository interface {
	// CreateTx persists the header and its items inside the caller's
	// transaction: sale creation and inventory application are one atomic
	// unit of work.
	CreateTx(tx *gorm.DB, v *model.Venta) error
	FindByIDConItems(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	FindByIDConItemsTx(tx *gorm.DB, id uuid.UUID) (*model.Venta, error)
	List(ctx context.Context) ([]model.Venta, error)
	ListByCliente(ctx context.Context, cliente string) ([]model.Venta, error)
	UpdateCompletadaTx(tx *gorm.DB, id uuid.UUID, completada bool) error
	UpdateItemAplicadoTx(tx *gorm.DB, itemID uuid.UUID, aplicado bool) error
	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) CreateTx(tx *gorm.DB, v *model.Venta) error {
	return tx.Create(v).Error
}

func (r *ventaRepo) FindByIDConItems(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	return r.FindByIDConItemsTx(r.db.WithContext(ctx), id)
}

func (r *ventaRepo) FindByIDConItemsTx(tx *gorm.DB, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := tx.Preload("Items.Producto").First(&v, "id = ?", id).Error
	return &v, err
}

func (r *ventaRepo) List(ctx context.Context) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).
		Preload("Items.Producto").
		Order("fecha_venta DESC").
		Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) ListByCliente(ctx context.Context, cliente string) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).
		Preload("Items.Producto").
		Where("cliente ILIKE ?", "%"+cliente+"%").
		Order("fecha_venta DESC").
		Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) UpdateCompletadaTx(tx *gorm.DB, id uuid.UUID, completada bool) error {
	return tx.Model(&model.Venta{}).Where("id = ?", id).Update("completada", completada).Error
}

func (r *ventaRepo) UpdateItemAplicadoTx(tx *gorm.DB, itemID uuid.UUID, aplicado bool) error {
	return tx.Model(&model.VentaItem{}).Where("id = ?", itemID).
		Update("inventario_aplicado", aplicado).Error
}

func (r *ventaRepo) DB() *gorm.DB { return r.db }
