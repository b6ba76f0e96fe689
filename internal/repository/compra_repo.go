package repository

import (
	"context"

	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompraRepository interface {
	// Create persists the header and its items in one transaction. The
	// inventory application runs later as its own unit of work (two-phase).
	Create(ctx context.Context, c *model.Compra) error
	FindByIDConItems(ctx context.Context, id uuid.UUID) (*model.Compra, error)
	FindByIDConItemsTx(tx *gorm.DB, id uuid.UUID) (*model.Compra, error)
	List(ctx context.Context) ([]model.Compra, error)
	ListByProveedor(ctx context.Context, proveedorID uuid.UUID) ([]model.Compra, error)
	UpdateItemAplicadoTx(tx *gorm.DB, itemID uuid.UUID, aplicado bool) error
	DB() *gorm.DB
}

type compraRepo struct{ db *gorm.DB }

func NewCompraRepository(db *gorm.DB) CompraRepository { return &compraRepo{db: db} }

func (r *compraRepo) Create(ctx context.Context, c *model.Compra) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *compraRepo) FindByIDConItems(ctx context.Context, id uuid.UUID) (*model.Compra, error) {
	return r.FindByIDConItemsTx(r.db.WithContext(ctx), id)
}

func (r *compraRepo) FindByIDConItemsTx(tx *gorm.DB, id uuid.UUID) (*model.Compra, error) {
	var c model.Compra
	err := tx.Preload("Items.Producto.Proveedor").First(&c, "id = ?", id).Error
	return &c, err
}

func (r *compraRepo) List(ctx context.Context) ([]model.Compra, error) {
	var compras []model.Compra
	err := r.db.WithContext(ctx).
		Preload("Items.Producto.Proveedor").
		Order("fecha_compra DESC").
		Find(&compras).Error
	return compras, err
}

func (r *compraRepo) ListByProveedor(ctx context.Context, proveedorID uuid.UUID) ([]model.Compra, error) {
	var compras []model.Compra
	err := r.db.WithContext(ctx).
		Preload("Items.Producto").
		Where("id IN (?)", r.db.Model(&model.CompraItem{}).
			Select("compra_items.compra_id").
			Joins("JOIN productos ON productos.id = compra_items.producto_id").
			Where("productos.proveedor_id = ?", proveedorID)).
		Order("fecha_compra DESC").
		Find(&compras).Error
	return compras, err
}

func (r *compraRepo) UpdateItemAplicadoTx(tx *gorm.DB, itemID uuid.UUID, aplicado bool) error {
	return tx.Model(&model.CompraItem{}).Where("id = ?", itemID).
		Update("inventario_aplicado", aplicado).Error
}

func (r *compraRepo) DB() *gorm.DB { return r.db }
