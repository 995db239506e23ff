package repository

import (
	"context"

	"lavapos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehicleRepository interface {
	Create(ctx context.Context, tx *gorm.DB, v *model.Vehicle) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Vehicle, error)
	// FindByPlate resolves a returning vehicle during sale creation.
	FindByPlate(ctx context.Context, plate string) (*model.Vehicle, error)
	List(ctx context.Context) ([]model.Vehicle, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Vehicle, error)
}

type vehicleRepo struct{ db *gorm.DB }

func NewVehicleRepository(db *gorm.DB) VehicleRepository { return &vehicleRepo{db: db} }

func (r *vehicleRepo) Create(ctx context.Context, tx *gorm.DB, v *model.Vehicle) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(v).Error
}

func (r *vehicleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	var v model.Vehicle
	err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error
	return &v, err
}

func (r *vehicleRepo) FindByPlate(ctx context.Context, plate string) (*model.Vehicle, error) {
	var v model.Vehicle
	err := r.db.WithContext(ctx).Where("license_plate = ?", plate).First(&v).Error
	return &v, err
}

func (r *vehicleRepo) List(ctx context.Context) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&vehicles).Error
	return vehicles, err
}

func (r *vehicleRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).
		Order("created_at ASC").Find(&vehicles).Error
	return vehicles, err
}
