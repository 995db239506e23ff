package memory

import (
	"context"
	"sync"
	"time"

	"lavapos/internal/model"
	"lavapos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ─── Wash service catalog ────────────────────────────────────────────────────

type WashServiceRepo struct {
	mu    sync.Mutex
	byID  map[uuid.UUID]model.WashService
	order []uuid.UUID
}

func NewWashServiceRepository() *WashServiceRepo {
	return &WashServiceRepo{byID: make(map[uuid.UUID]model.WashService)}
}

func (r *WashServiceRepo) Create(_ context.Context, s *model.WashService) error {
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

func (r *WashServiceRepo) FindByID(_ context.Context, id uuid.UUID) (*model.WashService, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byID[id]
	if !ok {
		return nil, notFound
	}
	return &s, nil
}

func (r *WashServiceRepo) List(_ context.Context, activeOnly bool) ([]model.WashService, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.WashService, 0, len(r.order))
	for _, id := range r.order {
		s := r.byID[id]
		if activeOnly && !s.IsActive {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *WashServiceRepo) Update(_ context.Context, s *model.WashService) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[s.ID]; !ok {
		return notFound
	}
	r.byID[s.ID] = *s
	return nil
}

func (r *WashServiceRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.setActive(id, false)
}

func (r *WashServiceRepo) Reactivate(ctx context.Context, id uuid.UUID) error {
	return r.setActive(id, true)
}

func (r *WashServiceRepo) setActive(id uuid.UUID, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byID[id]
	if !ok {
		return notFound
	}
	s.IsActive = active
	r.byID[id] = s
	return nil
}

var _ repository.WashServiceRepository = (*WashServiceRepo)(nil)

// ─── Inventory ───────────────────────────────────────────────────────────────

type InventoryRepo struct {
	mu        sync.Mutex
	byID      map[uuid.UUID]model.InventoryItem
	order     []uuid.UUID
	movements []model.StockMovement
}

func NewInventoryRepository() *InventoryRepo {
	return &InventoryRepo{byID: make(map[uuid.UUID]model.InventoryItem)}
}

func (r *InventoryRepo) Create(_ context.Context, i *model.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.CreatedAt.IsZero() {
		i.CreatedAt = time.Now()
	}
	r.byID[i.ID] = *i
	r.order = append(r.order, i.ID)
	return nil
}

func (r *InventoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.byID[id]
	if !ok {
		return nil, notFound
	}
	return &i, nil
}

func (r *InventoryRepo) List(_ context.Context) ([]model.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.InventoryItem, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *InventoryRepo) Update(_ context.Context, i *model.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[i.ID]; !ok {
		return notFound
	}
	r.byID[i.ID] = *i
	return nil
}

func (r *InventoryRepo) FindLowStock(_ context.Context) ([]model.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.InventoryItem
	for _, id := range r.order {
		i := r.byID[id]
		if i.IsLowStock() {
			out = append(out, i)
		}
	}
	return out, nil
}

func (r *InventoryRepo) AddStockTx(_ *gorm.DB, id uuid.UUID, delta decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.byID[id]
	if !ok {
		return notFound
	}
	i.CurrentStock = i.CurrentStock.Add(delta)
	r.byID[id] = i
	return nil
}

func (r *InventoryRepo) CreateMovementTx(_ *gorm.DB, m *model.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	r.movements = append(r.movements, *m)
	return nil
}

func (r *InventoryRepo) ListMovements(_ context.Context, itemID uuid.UUID) ([]model.StockMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.StockMovement
	for _, m := range r.movements {
		if m.InventoryItemID == itemID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *InventoryRepo) DB() *gorm.DB { return nil }

var _ repository.InventoryRepository = (*InventoryRepo)(nil)
