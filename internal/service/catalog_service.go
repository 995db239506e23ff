package service

import (
	"context"
	"fmt"

	"lavapos/internal/dto"
	"lavapos/internal/model"
	"lavapos/internal/repository"

	"github.com/google/uuid"
)

// CatalogService manages the sellable wash-service catalog. Services are
// never deleted: deactivation keeps history intact while hiding them from
// "available to add" lists.
type CatalogService interface {
	Create(ctx context.Context, req dto.CreateWashServiceRequest) (*dto.WashServiceResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateWashServiceRequest) (*dto.WashServiceResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.WashServiceResponse, error)
	List(ctx context.Context, activeOnly bool) ([]dto.WashServiceResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	Reactivate(ctx context.Context, id uuid.UUID) error
}

type catalogService struct {
	repo repository.WashServiceRepository
}

func NewCatalogService(repo repository.WashServiceRepository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) Create(ctx context.Context, req dto.CreateWashServiceRequest) (*dto.WashServiceResponse, error) {
	if req.Price.IsNegative() {
		return nil, validationf("el precio no puede ser negativo")
	}
	if req.EstimatedMinutes <= 0 {
		return nil, validationf("la duracion estimada debe ser mayor a cero")
	}
	svc := model.WashService{
		Name:             req.Name,
		Description:      req.Description,
		Price:            req.Price,
		EstimatedMinutes: req.EstimatedMinutes,
		IsActive:         true,
	}
	if err := s.repo.Create(ctx, &svc); err != nil {
		return nil, err
	}
	return washServiceToResponse(&svc), nil
}

func (s *catalogService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateWashServiceRequest) (*dto.WashServiceResponse, error) {
	svc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("servicio %s: %w", id, ErrNotFound)
	}
	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, validationf("el precio no puede ser negativo")
		}
		svc.Price = *req.Price
	}
	if req.EstimatedMinutes != nil {
		if *req.EstimatedMinutes <= 0 {
			return nil, validationf("la duracion estimada debe ser mayor a cero")
		}
		svc.EstimatedMinutes = *req.EstimatedMinutes
	}
	if err := s.repo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return washServiceToResponse(svc), nil
}

func (s *catalogService) Get(ctx context.Context, id uuid.UUID) (*dto.WashServiceResponse, error) {
	svc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("servicio %s: %w", id, ErrNotFound)
	}
	return washServiceToResponse(svc), nil
}

func (s *catalogService) List(ctx context.Context, activeOnly bool) ([]dto.WashServiceResponse, error) {
	services, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WashServiceResponse, 0, len(services))
	for i := range services {
		out = append(out, *washServiceToResponse(&services[i]))
	}
	return out, nil
}

func (s *catalogService) Deactivate(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("servicio %s: %w", id, ErrNotFound)
	}
	return nil
}

func (s *catalogService) Reactivate(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Reactivate(ctx, id); err != nil {
		return fmt.Errorf("servicio %s: %w", id, ErrNotFound)
	}
	return nil
}

func washServiceToResponse(svc *model.WashService) *dto.WashServiceResponse {
	return &dto.WashServiceResponse{
		ID:               svc.ID.String(),
		Name:             svc.Name,
		Description:      svc.Description,
		Price:            svc.Price,
		EstimatedMinutes: svc.EstimatedMinutes,
		IsActive:         svc.IsActive,
	}
}
