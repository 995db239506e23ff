// Package memory provides map-backed implementations of the repository
// interfaces for development and tests. Collections preserve insertion order
// and every store serializes its mutations behind a mutex, so concurrent
// status updates or stock adjustments to the same record cannot interleave.
//
// Transaction-scoped methods accept the same *gorm.DB parameter as the gorm
// backend and ignore it; callers pass nil.
package memory

import (
	"context"
	"sync"
	"time"

	"lavapos/internal/model"
	"lavapos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// notFound mirrors the gorm backend so services can treat both identically.
var notFound = gorm.ErrRecordNotFound

// ─── Customers ───────────────────────────────────────────────────────────────

type CustomerRepo struct {
	mu    sync.Mutex
	byID  map[uuid.UUID]model.Customer
	order []uuid.UUID
}

func NewCustomerRepository() *CustomerRepo {
	return &CustomerRepo{byID: make(map[uuid.UUID]model.Customer)}
}

func (r *CustomerRepo) Create(_ context.Context, _ *gorm.DB, c *model.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	r.byID[c.ID] = *c
	r.order = append(r.order, c.ID)
	return nil
}

func (r *CustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, notFound
	}
	return &c, nil
}

func (r *CustomerRepo) List(_ context.Context) ([]model.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Customer, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// ─── Vehicles ────────────────────────────────────────────────────────────────

type VehicleRepo struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]model.Vehicle
	byPlate map[string]uuid.UUID
	order   []uuid.UUID
}

func NewVehicleRepository() *VehicleRepo {
	return &VehicleRepo{
		byID:    make(map[uuid.UUID]model.Vehicle),
		byPlate: make(map[string]uuid.UUID),
	}
}

func (r *VehicleRepo) Create(_ context.Context, _ *gorm.DB, v *model.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now()
	}
	r.byID[v.ID] = *v
	r.byPlate[v.LicensePlate] = v.ID
	r.order = append(r.order, v.ID)
	return nil
}

func (r *VehicleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.byID[id]
	if !ok {
		return nil, notFound
	}
	return &v, nil
}

func (r *VehicleRepo) FindByPlate(_ context.Context, plate string) (*model.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byPlate[plate]
	if !ok {
		return nil, notFound
	}
	v := r.byID[id]
	return &v, nil
}

func (r *VehicleRepo) List(_ context.Context) ([]model.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Vehicle, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *VehicleRepo) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]model.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Vehicle
	for _, id := range r.order {
		v := r.byID[id]
		if v.CustomerID != nil && *v.CustomerID == customerID {
			out = append(out, v)
		}
	}
	return out, nil
}

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

// ─── Suppliers ───────────────────────────────────────────────────────────────

type SupplierRepo struct {
	mu    sync.Mutex
	byID  map[uuid.UUID]model.Supplier
	order []uuid.UUID
}

func NewSupplierRepository() *SupplierRepo {
	return &SupplierRepo{byID: make(map[uuid.UUID]model.Supplier)}
}

func (r *SupplierRepo) Create(_ context.Context, s *model.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	r.byID[s.ID] = *s
	r.order = append(r.order, s.ID)
	return nil
}

func (r *SupplierRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byID[id]
	if !ok {
		return nil, notFound
	}
	return &s, nil
}

func (r *SupplierRepo) List(_ context.Context) ([]model.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Supplier, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// ─── Users ───────────────────────────────────────────────────────────────────

type UserRepo struct {
	mu         sync.Mutex
	byUsername map[string]model.User
}

func NewUserRepository() *UserRepo {
	return &UserRepo{byUsername: make(map[string]model.User)}
}

func (r *UserRepo) Create(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.byUsername[u.Username] = *u
	return nil
}

func (r *UserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byUsername[username]
	if !ok {
		return nil, notFound
	}
	return &u, nil
}

var _ repository.UserRepository = (*UserRepo)(nil)
