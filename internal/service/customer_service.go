package service

import (
	"context"
	"fmt"

	"lavapos/internal/dto"
	"lavapos/internal/model"
	"lavapos/internal/repository"

	"github.com/google/uuid"
)

// CustomerService covers standalone customer and vehicle registration. Most
// customers are created implicitly by the sale workflow instead.
type CustomerService interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error)
	ListCustomers(ctx context.Context) ([]dto.CustomerResponse, error)

	CreateVehicle(ctx context.Context, req dto.CreateVehicleRequest) (*dto.VehicleResponse, error)
	ListVehicles(ctx context.Context) ([]dto.VehicleResponse, error)
	ListCustomerVehicles(ctx context.Context, customerID uuid.UUID) ([]dto.VehicleResponse, error)
}

type customerService struct {
	customers repository.CustomerRepository
	vehicles  repository.VehicleRepository
}

func NewCustomerService(customers repository.CustomerRepository, vehicles repository.VehicleRepository) CustomerService {
	return &customerService{customers: customers, vehicles: vehicles}
}

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	customer := model.Customer{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}
	if err := s.customers.Create(ctx, nil, &customer); err != nil {
		return nil, err
	}
	return customerToResponse(&customer), nil
}

func (s *customerService) GetCustomer(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cliente %s: %w", id, ErrNotFound)
	}
	return customerToResponse(customer), nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, *customerToResponse(&customers[i]))
	}
	return out, nil
}

func (s *customerService) CreateVehicle(ctx context.Context, req dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	if _, err := s.vehicles.FindByPlate(ctx, req.LicensePlate); err == nil {
		return nil, validationf("ya existe un vehiculo con placa %s", req.LicensePlate)
	}

	var customerID *uuid.UUID
	if req.CustomerID != nil {
		cid, err := uuid.Parse(*req.CustomerID)
		if err != nil {
			return nil, validationf("customerId invalido: %s", *req.CustomerID)
		}
		if _, err := s.customers.FindByID(ctx, cid); err != nil {
			return nil, fmt.Errorf("cliente %s: %w", cid, ErrNotFound)
		}
		customerID = &cid
	}

	vehicle := model.Vehicle{
		CustomerID:   customerID,
		LicensePlate: req.LicensePlate,
		VehicleType:  req.VehicleType,
		Color:        req.Color,
		Year:         req.Year,
		Brand:        req.Brand,
		Model:        req.Model,
	}
	if err := s.vehicles.Create(ctx, nil, &vehicle); err != nil {
		return nil, err
	}
	return vehicleToResponse(&vehicle), nil
}

func (s *customerService) ListVehicles(ctx context.Context) ([]dto.VehicleResponse, error) {
	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		return nil, err
	}
	return vehiclesToResponses(vehicles), nil
}

func (s *customerService) ListCustomerVehicles(ctx context.Context, customerID uuid.UUID) ([]dto.VehicleResponse, error) {
	if _, err := s.customers.FindByID(ctx, customerID); err != nil {
		return nil, fmt.Errorf("cliente %s: %w", customerID, ErrNotFound)
	}
	vehicles, err := s.vehicles.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return vehiclesToResponses(vehicles), nil
}

func customerToResponse(c *model.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:    c.ID.String(),
		Name:  c.Name,
		Phone: c.Phone,
		Email: c.Email,
	}
}

func vehicleToResponse(v *model.Vehicle) *dto.VehicleResponse {
	var customerID *string
	if v.CustomerID != nil {
		s := v.CustomerID.String()
		customerID = &s
	}
	return &dto.VehicleResponse{
		ID:           v.ID.String(),
		CustomerID:   customerID,
		LicensePlate: v.LicensePlate,
		VehicleType:  v.VehicleType,
		Color:        v.Color,
		Year:         v.Year,
		Brand:        v.Brand,
		Model:        v.Model,
	}
}

func vehiclesToResponses(vehicles []model.Vehicle) []dto.VehicleResponse {
	out := make([]dto.VehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		out = append(out, *vehicleToResponse(&vehicles[i]))
	}
	return out
}
