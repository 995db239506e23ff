package repository

import (
	"context"

	"lavapos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseRepository interface {
	// Create persists the purchase together with its items.
	Create(ctx context.Context, p *model.Purchase) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Purchase, error)
	List(ctx context.Context) ([]model.Purchase, error)
	UpdateStatusTx(tx *gorm.DB, id uuid.UUID, status string) error

	// DB exposes the underlying *gorm.DB for the receive-purchase transaction.
	// The in-memory backend returns nil.
	DB() *gorm.DB
}

type purchaseRepo struct{ db *gorm.DB }

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository { return &purchaseRepo{db: db} }

func (r *purchaseRepo) Create(ctx context.Context, p *model.Purchase) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *purchaseRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Purchase, error) {
	var p model.Purchase
	err := r.db.WithContext(ctx).Preload("Items").First(&p, "id = ?", id).Error
	return &p, err
}

func (r *purchaseRepo) List(ctx context.Context) ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.db.WithContext(ctx).Preload("Items").
		Order("purchase_date ASC").Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepo) UpdateStatusTx(tx *gorm.DB, id uuid.UUID, status string) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Model(&model.Purchase{}).Where("id = ?", id).Update("status", status).Error
}

func (r *purchaseRepo) DB() *gorm.DB { return r.db }
