package handler

import (
	"net/http"

	"lavapos/internal/dto"
	"lavapos/internal/service"

	"github.com/gin-gonic/gin"
)

type VehiclesHandler struct{ svc service.CustomerService }

func NewVehiclesHandler(svc service.CustomerService) *VehiclesHandler {
	return &VehiclesHandler{svc: svc}
}

// Create godoc
// @Summary      Registrar vehiculo
// @Description  La placa es unica en todo el sistema.
// @Tags         vehiculos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateVehicleRequest true "Datos del vehiculo"
// @Success      201  {object} dto.VehicleResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/vehicles [post]
func (h *VehiclesHandler) Create(c *gin.Context) {
	var req dto.CreateVehicleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateVehicle(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary      Listar vehiculos
// @Tags         vehiculos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.VehicleResponse
// @Router       /v1/vehicles [get]
func (h *VehiclesHandler) List(c *gin.Context) {
	resp, err := h.svc.ListVehicles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
