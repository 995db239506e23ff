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

// ─── Sales ───────────────────────────────────────────────────────────────────

type SaleRepo struct {
	mu    sync.Mutex
	byID  map[uuid.UUID]model.Sale
	order []uuid.UUID
}

func NewSaleRepository() *SaleRepo {
	return &SaleRepo{byID: make(map[uuid.UUID]model.Sale)}
}

func (r *SaleRepo) DB() *gorm.DB { return nil }

func (r *SaleRepo) Create(_ context.Context, _ *gorm.DB, s *model.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	for i := range s.Items {
		if s.Items[i].ID == uuid.Nil {
			s.Items[i].ID = uuid.New()
		}
		s.Items[i].SaleID = s.ID
	}
	r.byID[s.ID] = *s
	r.order = append(r.order, s.ID)
	return nil
}

func (r *SaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byID[id]
	if !ok {
		return nil, notFound
	}
	return &s, nil
}

func (r *SaleRepo) List(_ context.Context) ([]model.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Sale, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *SaleRepo) ListByDay(ctx context.Context, day time.Time) ([]model.Sale, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return r.ListBetween(ctx, start, start.AddDate(0, 0, 1))
}

func (r *SaleRepo) ListBetween(_ context.Context, from, to time.Time) ([]model.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Sale
	for _, id := range r.order {
		s := r.byID[id]
		if !s.SaleDate.Before(from) && s.SaleDate.Before(to) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *SaleRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byID[id]
	if !ok {
		return notFound
	}
	s.Status = status
	r.byID[id] = s
	return nil
}

func (r *SaleRepo) ListLineItems(_ context.Context, saleID uuid.UUID) ([]model.SaleLineItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byID[saleID]
	if !ok {
		return nil, notFound
	}
	items := make([]model.SaleLineItem, len(s.Items))
	copy(items, s.Items)
	return items, nil
}

var _ repository.SaleRepository = (*SaleRepo)(nil)

// ─── Purchases ───────────────────────────────────────────────────────────────

type PurchaseRepo struct {
	mu    sync.Mutex
	byID  map[uuid.UUID]model.Purchase
	order []uuid.UUID
}

func NewPurchaseRepository() *PurchaseRepo {
	return &PurchaseRepo{byID: make(map[uuid.UUID]model.Purchase)}
}

func (r *PurchaseRepo) DB() *gorm.DB { return nil }

func (r *PurchaseRepo) Create(_ context.Context, p *model.Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	for i := range p.Items {
		if p.Items[i].ID == uuid.Nil {
			p.Items[i].ID = uuid.New()
		}
		p.Items[i].PurchaseID = p.ID
	}
	r.byID[p.ID] = *p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *PurchaseRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Purchase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, notFound
	}
	return &p, nil
}

func (r *PurchaseRepo) List(_ context.Context) ([]model.Purchase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Purchase, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *PurchaseRepo) UpdateStatusTx(_ *gorm.DB, id uuid.UUID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return notFound
	}
	p.Status = status
	r.byID[id] = p
	return nil
}

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)
