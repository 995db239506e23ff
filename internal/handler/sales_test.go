package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"lavapos/internal/model"
	"lavapos/internal/repository/memory"
	"lavapos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSalesRouter(t *testing.T) (*gin.Engine, *memory.WashServiceRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog := memory.NewWashServiceRepository()
	svc := service.NewSaleService(
		memory.NewSaleRepository(),
		memory.NewCustomerRepository(),
		memory.NewVehicleRepository(),
		catalog,
		decimal.RequireFromString("0.15"),
	)
	h := NewSalesHandler(svc)

	r := gin.New()
	r.POST("/v1/sales", h.Create)
	r.PATCH("/v1/sales/:id/status", h.UpdateStatus)
	return r, catalog
}

func seedService(t *testing.T, catalog *memory.WashServiceRepo, name, price string, minutes int) string {
	t.Helper()
	svc := &model.WashService{
		Name:             name,
		Price:            decimal.RequireFromString(price),
		EstimatedMinutes: minutes,
		IsActive:         true,
	}
	require.NoError(t, catalog.Create(context.Background(), svc))
	return svc.ID.String()
}

func postJSON(t *testing.T, r *gin.Engine, method, path string, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPostSaleReturnsCreatedTotals(t *testing.T) {
	r, catalog := newSalesRouter(t)
	basico := seedService(t, catalog, "Lavado Básico", "150.00", 30)
	premium := seedService(t, catalog, "Lavado Premium", "280.00", 45)

	w := postJSON(t, r, http.MethodPost, "/v1/sales", map[string]interface{}{
		"customerName":  "Ana Morales",
		"licensePlate":  "HAB-1234",
		"vehicleType":   "sedan",
		"paymentMethod": "efectivo",
		"services": []map[string]interface{}{
			{"serviceId": basico, "quantity": 1},
			{"serviceId": premium, "quantity": 2},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "710", resp["subtotal"])
	assert.Equal(t, "106.5", resp["taxAmount"])
	assert.Equal(t, "816.5", resp["totalAmount"])
	assert.Equal(t, "pending", resp["status"])
	assert.Equal(t, float64(120), resp["estimatedCompletionTime"])
}

func TestPostSaleValidation(t *testing.T) {
	r, _ := newSalesRouter(t)

	// services vacio → falla la validacion de struct
	w := postJSON(t, r, http.MethodPost, "/v1/sales", map[string]interface{}{
		"customerName":  "Ana Morales",
		"licensePlate":  "HAB-1234",
		"vehicleType":   "sedan",
		"paymentMethod": "efectivo",
		"services":      []map[string]interface{}{},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// metodo de pago desconocido
	w = postJSON(t, r, http.MethodPost, "/v1/sales", map[string]interface{}{
		"customerName":  "Ana Morales",
		"licensePlate":  "HAB-1234",
		"vehicleType":   "sedan",
		"paymentMethod": "cheque",
		"services":      []map[string]interface{}{{"serviceId": "00000000-0000-4000-8000-000000000000"}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestPatchSaleStatusConflict(t *testing.T) {
	r, catalog := newSalesRouter(t)
	svcID := seedService(t, catalog, "Encerado", "200.00", 25)

	w := postJSON(t, r, http.MethodPost, "/v1/sales", map[string]interface{}{
		"customerName":  "Ana Morales",
		"licensePlate":  "HAB-1234",
		"vehicleType":   "sedan",
		"paymentMethod": "tarjeta",
		"services":      []map[string]interface{}{{"serviceId": svcID}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	saleID := created["id"].(string)

	// pending → completed no esta permitido
	w = postJSON(t, r, http.MethodPatch, fmt.Sprintf("/v1/sales/%s/status", saleID), map[string]interface{}{
		"status": "completed",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = postJSON(t, r, http.MethodPatch, fmt.Sprintf("/v1/sales/%s/status", saleID), map[string]interface{}{
		"status": "in-progress",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
