package handler

import (
	"net/http"

	"lavapos/internal/dto"
	"lavapos/internal/service"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct{ svc service.CatalogService }

func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// Create godoc
// @Summary      Crear servicio de lavado
// @Tags         servicios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateWashServiceRequest true "Datos del servicio"
// @Success      201  {object} dto.WashServiceResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/services [post]
func (h *CatalogHandler) Create(c *gin.Context) {
	var req dto.CreateWashServiceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary      Listar servicios de lavado
// @Tags         servicios
// @Produce      json
// @Security     BearerAuth
// @Param        active query bool false "Solo servicios activos"
// @Success      200 {array} dto.WashServiceResponse
// @Router       /v1/services [get]
func (h *CatalogHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	resp, err := h.svc.List(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary      Obtener servicio por ID
// @Tags         servicios
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del servicio"
// @Success      200 {object} dto.WashServiceResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/services/{id} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary      Actualizar servicio
// @Description  Actualizacion parcial; los campos omitidos no cambian.
// @Tags         servicios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                       true "UUID del servicio"
// @Param        body body dto.UpdateWashServiceRequest true "Campos a actualizar"
// @Success      200  {object} dto.WashServiceResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/services/{id} [put]
func (h *CatalogHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateWashServiceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Deactivate godoc
// @Summary      Desactivar servicio
// @Description  El servicio deja de poder venderse pero conserva su historial.
// @Tags         servicios
// @Security     BearerAuth
// @Param        id path string true "UUID del servicio"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/services/{id} [delete]
func (h *CatalogHandler) Deactivate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Deactivate(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Reactivate godoc
// @Summary      Reactivar servicio
// @Tags         servicios
// @Security     BearerAuth
// @Param        id path string true "UUID del servicio"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/services/{id}/reactivate [patch]
func (h *CatalogHandler) Reactivate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Reactivate(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
