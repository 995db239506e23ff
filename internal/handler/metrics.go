package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"lavapos/internal/apierror"
	"lavapos/internal/dto"
	"lavapos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Dashboard aggregates change with every sale, so the cache is short-lived.
const metricsCacheTTL = 30 * time.Second

// MetricsHandler serves dashboard and report aggregates, with a best-effort
// Redis cache in front. A nil Redis client disables caching entirely.
type MetricsHandler struct {
	svc service.MetricsService
	rdb *redis.Client
}

func NewMetricsHandler(svc service.MetricsService, rdb *redis.Client) *MetricsHandler {
	return &MetricsHandler{svc: svc, rdb: rdb}
}

// Daily godoc
// @Summary      Metricas del dia
// @Description  Ventas del dia, servicios completados, tiempo promedio y articulos con stock bajo.
// @Tags         metricas
// @Produce      json
// @Security     BearerAuth
// @Param        date query string false "Fecha YYYY-MM-DD (default: hoy)"
// @Success      200  {object} dto.SalesMetricsResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/metrics/daily [get]
func (h *MetricsHandler) Daily(c *gin.Context) {
	ref, ok := h.refDate(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	cacheKey := "metrics:daily:" + ref.Format("2006-01-02")

	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.SalesMetricsResponse
			if json.Unmarshal(cached, &resp) == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	resp, err := h.svc.DailyMetrics(ctx, ref)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.rdb != nil {
		if b, err := json.Marshal(resp); err == nil {
			_ = h.rdb.Set(context.Background(), cacheKey, b, metricsCacheTTL).Err()
		}
	}
	c.JSON(http.StatusOK, resp)
}

// LowStock godoc
// @Summary      Articulos con stock bajo
// @Description  Articulos cuyo stock actual es menor o igual al minimo configurado.
// @Tags         metricas
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.InventoryItemResponse
// @Router       /v1/metrics/low-stock [get]
func (h *MetricsHandler) LowStock(c *gin.Context) {
	resp, err := h.svc.LowStockItems(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Revenue godoc
// @Summary      Reporte de ingresos
// @Description  Ingresos del periodo con desglose por metodo de pago.
// @Tags         metricas
// @Produce      json
// @Security     BearerAuth
// @Param        period query string false "day | week | month (default day)"
// @Param        date   query string false "Fecha de referencia YYYY-MM-DD (default: hoy)"
// @Success      200    {object} dto.RevenueReportResponse
// @Failure      400    {object} apierror.APIError
// @Router       /v1/metrics/revenue [get]
func (h *MetricsHandler) Revenue(c *gin.Context) {
	ref, ok := h.refDate(c)
	if !ok {
		return
	}
	period := c.DefaultQuery("period", "day")

	resp, err := h.svc.RevenueReport(c.Request.Context(), period, ref)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// refDate parses the optional date query parameter, defaulting to today.
func (h *MetricsHandler) refDate(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), true
	}
	ref, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Fecha invalida, se espera YYYY-MM-DD"))
		return time.Time{}, false
	}
	return ref, true
}
