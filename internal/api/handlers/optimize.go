package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"inventory-optimizer/internal/allocator"
	"inventory-optimizer/internal/api/middleware"
	"inventory-optimizer/internal/api/models"
	"inventory-optimizer/internal/cache"
	"inventory-optimizer/internal/metrics"
	"inventory-optimizer/internal/model"

	"github.com/gin-gonic/gin"
)

// AllocationIDHeader carries the id under which a result was cached.
const AllocationIDHeader = "X-Allocation-ID"

const outcomeInvalidRequest = "INVALID_REQUEST"

// OptimizeHandler handles inventory optimization requests
type OptimizeHandler struct {
	allocator *allocator.Allocator
	results   *cache.ResultCache
	metrics   *metrics.Metrics
}

// NewOptimizeHandler creates a new optimize handler. results and m may be nil.
func NewOptimizeHandler(a *allocator.Allocator, results *cache.ResultCache, m *metrics.Metrics) *OptimizeHandler {
	if a == nil {
		a = allocator.New()
	}
	return &OptimizeHandler{
		allocator: a,
		results:   results,
		metrics:   m,
	}
}

// Optimize handles POST /optimize and POST /api/v1/optimize
func (h *OptimizeHandler) Optimize(c *gin.Context) {
	start := time.Now()

	var req models.OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		msg := fmt.Sprintf("Invalid JSON: %v", err)
		if errors.Is(err, io.EOF) {
			msg = "No JSON received"
		}
		h.reject(c, http.StatusBadRequest, outcomeInvalidRequest, start, msg)
		return
	}
	if req.Empty() {
		h.reject(c, http.StatusBadRequest, outcomeInvalidRequest, start, "No JSON received")
		return
	}

	res, err := h.allocator.OptimizeRecords(req.MaxSpace, req.Data)
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			h.reject(c, http.StatusBadRequest, string(verr.Kind), start, err.Error())
			return
		}
		h.reject(c, http.StatusInternalServerError, "INTERNAL_ERROR", start, err.Error())
		return
	}

	h.metrics.ObserveSuccess(time.Since(start), res.FillRatio(), len(res.Allocation))
	if id := h.results.Put(res); id != "" {
		c.Header(AllocationIDHeader, id)
	}
	log.Printf("[Optimize] request_id=%s max_space=%g lines=%d total_value=%.2f remaining_space=%.2f",
		middleware.RequestID(c), res.MaxSpace, len(res.Allocation), res.TotalValue, res.RemainingSpace)

	c.JSON(http.StatusOK, res)
}

// GetResult handles GET /api/v1/optimize/:id
func (h *OptimizeHandler) GetResult(c *gin.Context) {
	id := c.Param("id")
	res, ok := h.results.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: fmt.Sprintf("allocation result %s not found or expired", id),
		})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *OptimizeHandler) reject(c *gin.Context, status int, outcome string, start time.Time, msg string) {
	h.metrics.ObserveFailure(outcome, time.Since(start))
	log.Printf("[Optimize] request_id=%s rejected (%s): %s", middleware.RequestID(c), outcome, msg)
	c.JSON(status, models.ErrorResponse{Error: msg})
}
