package repository

import (
	"context"

	"lavapos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WashServiceRepository interface {
	Create(ctx context.Context, s *model.WashService) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.WashService, error)
	// List returns the catalog in insertion order. activeOnly excludes
	// deactivated services ("available to add" lists).
	List(ctx context.Context, activeOnly bool) ([]model.WashService, error)
	Update(ctx context.Context, s *model.WashService) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	Reactivate(ctx context.Context, id uuid.UUID) error
}

type washServiceRepo struct{ db *gorm.DB }

func NewWashServiceRepository(db *gorm.DB) WashServiceRepository { return &washServiceRepo{db: db} }

func (r *washServiceRepo) Create(ctx context.Context, s *model.WashService) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *washServiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.WashService, error) {
	var s model.WashService
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *washServiceRepo) List(ctx context.Context, activeOnly bool) ([]model.WashService, error) {
	var services []model.WashService
	q := r.db.WithContext(ctx)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Order("created_at ASC").Find(&services).Error
	return services, err
}

func (r *washServiceRepo) Update(ctx context.Context, s *model.WashService) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *washServiceRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.setActive(ctx, id, false)
}

func (r *washServiceRepo) Reactivate(ctx context.Context, id uuid.UUID) error {
	return r.setActive(ctx, id, true)
}

func (r *washServiceRepo) setActive(ctx context.Context, id uuid.UUID, active bool) error {
	res := r.db.WithContext(ctx).Model(&model.WashService{}).
		Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
