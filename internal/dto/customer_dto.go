package dto

type CreateCustomerRequest struct {
	Name  string  `json:"name"  validate:"required"`
	Phone *string `json:"phone"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type CustomerResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

type CreateVehicleRequest struct {
	CustomerID   *string `json:"customerId"   validate:"omitempty,uuid"`
	LicensePlate string  `json:"licensePlate" validate:"required"`
	VehicleType  string  `json:"vehicleType"  validate:"required"`
	Color        *string `json:"color"`
	Year         *int    `json:"year" validate:"omitempty,min=1900"`
	Brand        *string `json:"brand"`
	Model        *string `json:"model"`
}

type VehicleResponse struct {
	ID           string  `json:"id"`
	CustomerID   *string `json:"customerId"`
	LicensePlate string  `json:"licensePlate"`
	VehicleType  string  `json:"vehicleType"`
	Color        *string `json:"color"`
	Year         *int    `json:"year"`
	Brand        *string `json:"brand"`
	Model        *string `json:"model"`
}
