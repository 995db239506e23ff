package repository

import (
	"context"
	"time"

	"lavapos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleRepository interface {
	// Create persists the sale together with its line items, within tx when
	// one is given (nil outside a transaction).
	Create(ctx context.Context, tx *gorm.DB, s *model.Sale) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error)
	List(ctx context.Context) ([]model.Sale, error)
	// ListByDay returns sales whose saleDate falls on the same calendar day
	// as day (midnight-to-midnight, local time), in insertion order.
	ListByDay(ctx context.Context, day time.Time) ([]model.Sale, error)
	// ListBetween returns sales with from <= saleDate < to, in insertion order.
	ListBetween(ctx context.Context, from, to time.Time) ([]model.Sale, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	ListLineItems(ctx context.Context, saleID uuid.UUID) ([]model.SaleLineItem, error)

	// DB exposes the underlying *gorm.DB so the sale workflow can open its
	// transaction. The in-memory backend returns nil.
	DB() *gorm.DB
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) DB() *gorm.DB { return r.db }

func (r *saleRepo) Create(ctx context.Context, tx *gorm.DB, s *model.Sale) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(s).Error
}

func (r *saleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).Preload("Items").First(&s, "id = ?", id).Error
	return &s, err
}

func (r *saleRepo) List(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).Preload("Items").
		Order("sale_date ASC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) ListByDay(ctx context.Context, day time.Time) ([]model.Sale, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return r.ListBetween(ctx, start, start.AddDate(0, 0, 1))
}

func (r *saleRepo) ListBetween(ctx context.Context, from, to time.Time) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).
		Where("sale_date >= ? AND sale_date < ?", from, to).
		Order("sale_date ASC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&model.Sale{}).
		Where("id = ?", id).Update("status", status).Error
}

func (r *saleRepo) ListLineItems(ctx context.Context, saleID uuid.UUID) ([]model.SaleLineItem, error) {
	var items []model.SaleLineItem
	err := r.db.WithContext(ctx).Where("sale_id = ?", saleID).Find(&items).Error
	return items, err
}
