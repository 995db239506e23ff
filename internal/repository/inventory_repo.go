package repository

import (
	"context"

	"lavapos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InventoryRepository interface {
	Create(ctx context.Context, i *model.InventoryItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error)
	List(ctx context.Context) ([]model.InventoryItem, error)
	Update(ctx context.Context, i *model.InventoryItem) error
	// FindLowStock returns items with current_stock <= min_stock in storage order.
	FindLowStock(ctx context.Context) ([]model.InventoryItem, error)

	// Used inside transactions; callers pass the tx instance (nil outside one).
	AddStockTx(tx *gorm.DB, id uuid.UUID, delta decimal.Decimal) error
	CreateMovementTx(tx *gorm.DB, m *model.StockMovement) error
	ListMovements(ctx context.Context, itemID uuid.UUID) ([]model.StockMovement, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	// The in-memory backend returns nil.
	DB() *gorm.DB
}

type inventoryRepo struct{ db *gorm.DB }

func NewInventoryRepository(db *gorm.DB) InventoryRepository { return &inventoryRepo{db: db} }

func (r *inventoryRepo) Create(ctx context.Context, i *model.InventoryItem) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *inventoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error) {
	var i model.InventoryItem
	err := r.db.WithContext(ctx).First(&i, "id = ?", id).Error
	return &i, err
}

func (r *inventoryRepo) List(ctx context.Context) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&items).Error
	return items, err
}

func (r *inventoryRepo) Update(ctx context.Context, i *model.InventoryItem) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *inventoryRepo) FindLowStock(ctx context.Context) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := r.db.WithContext(ctx).Where("current_stock <= min_stock").
		Order("created_at ASC").Find(&items).Error
	return items, err
}

func (r *inventoryRepo) AddStockTx(tx *gorm.DB, id uuid.UUID, delta decimal.Decimal) error {
	if tx == nil {
		tx = r.db
	}
	res := tx.Model(&model.InventoryItem{}).Where("id = ?", id).
		Update("current_stock", gorm.Expr("current_stock + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *inventoryRepo) CreateMovementTx(tx *gorm.DB, m *model.StockMovement) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(m).Error
}

func (r *inventoryRepo) ListMovements(ctx context.Context, itemID uuid.UUID) ([]model.StockMovement, error) {
	var movements []model.StockMovement
	err := r.db.WithContext(ctx).Where("inventory_item_id = ?", itemID).
		Order("created_at ASC").Find(&movements).Error
	return movements, err
}

func (r *inventoryRepo) DB() *gorm.DB { return r.db }
