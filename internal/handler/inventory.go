package handler

import (
	"net/http"
	"time"

	"lavapos/internal/dto"
	"lavapos/internal/model"
	"lavapos/internal/service"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct{ svc service.InventoryService }

func NewInventoryHandler(svc service.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// Create godoc
// @Summary      Crear articulo de inventario
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateInventoryItemRequest true "Datos del articulo"
// @Success      201  {object} dto.InventoryItemResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/inventory [post]
func (h *InventoryHandler) Create(c *gin.Context) {
	var req dto.CreateInventoryItemRequest
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
// @Summary      Listar inventario
// @Tags         inventario
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.InventoryItemResponse
// @Router       /v1/inventory [get]
func (h *InventoryHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary      Obtener articulo por ID
// @Tags         inventario
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del articulo"
// @Success      200 {object} dto.InventoryItemResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/inventory/{id} [get]
func (h *InventoryHandler) Get(c *gin.Context) {
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
// @Summary      Actualizar articulo
// @Description  Actualizacion parcial; los campos omitidos no cambian.
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                         true "UUID del articulo"
// @Param        body body dto.UpdateInventoryItemRequest true "Campos a actualizar"
// @Success      200  {object} dto.InventoryItemResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/inventory/{id} [put]
func (h *InventoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateInventoryItemRequest
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

// AdjustStock godoc
// @Summary      Ajuste manual de stock
// @Description  Aplica un delta (positivo o negativo) y registra el movimiento con su motivo.
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                 true "UUID del articulo"
// @Param        body body dto.AdjustStockRequest true "Delta y motivo"
// @Success      200  {object} dto.InventoryItemResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /v1/inventory/{id}/stock [patch]
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AdjustStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AdjustStock(c.Request.Context(), id, req.Delta, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListMovements godoc
// @Summary      Historial de movimientos de stock
// @Tags         inventario
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del articulo"
// @Success      200 {array} dto.StockMovementResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/inventory/{id}/movements [get]
func (h *InventoryHandler) ListMovements(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	movements, err := h.svc.ListMovements(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.StockMovementResponse, 0, len(movements))
	for i := range movements {
		out = append(out, movementToResponse(&movements[i]))
	}
	c.JSON(http.StatusOK, out)
}

func movementToResponse(m *model.StockMovement) dto.StockMovementResponse {
	var ref *string
	if m.ReferenceID != nil {
		s := m.ReferenceID.String()
		ref = &s
	}
	return dto.StockMovementResponse{
		ID:              m.ID.String(),
		InventoryItemID: m.InventoryItemID.String(),
		Type:            m.Type,
		Quantity:        m.Quantity,
		StockBefore:     m.StockBefore,
		StockAfter:      m.StockAfter,
		Reason:          m.Reason,
		ReferenceID:     ref,
		CreatedAt:       m.CreatedAt.Format(time.RFC3339),
	}
}
