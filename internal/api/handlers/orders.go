package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tastebite/orderapi/internal/domain"
	"github.com/tastebite/orderapi/internal/placement"
	"github.com/tastebite/orderapi/internal/tracking"
	"github.com/tastebite/orderapi/pkg/errors"
)

// OrderResponse represents the order snapshot
type OrderResponse struct {
	ID        string              `json:"id"`
	Number    string              `json:"number"`
	Status    string              `json:"status"`
	Items     []OrderItemResponse `json:"items"`
	Summary   SummaryResponse     `json:"summary"`
	CreatedAt string              `json:"created_at"`
	UpdatedAt string              `json:"updated_at"`
}

type OrderItemResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

// TrackingResponse is the rendered fulfillment timeline for an order.
// StatusUnavailable is set when the current status token is not a defined
// stage; every step is then pending. This is distinct from loading.
type TrackingResponse struct {
	OrderNumber       string         `json:"order_number"`
	Status            string         `json:"status"`
	StatusUnavailable bool           `json:"status_unavailable"`
	Steps             []StepResponse `json:"steps"`
}

type StepResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	State string `json:"state"`
}

// HandleGetOrder handles GET /v1/orders/:id
func HandleGetOrder(store *placement.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, ok := resolveOrder(c, store, logger)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, toOrderResponse(order))
	}
}

// HandleListOrders handles GET /v1/orders
func HandleListOrders(store *placement.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := store.List()
		out := make([]OrderResponse, 0, len(orders))
		for _, o := range orders {
			out = append(out, toOrderResponse(o))
		}
		c.JSON(http.StatusOK, gin.H{"orders": out, "count": len(out)})
	}
}

// HandleGetOrderTracking handles GET /v1/orders/:id/tracking
func HandleGetOrderTracking(store *placement.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, ok := resolveOrder(c, store, logger)
		if !ok {
			return
		}

		progress := tracking.Project(string(order.Status))
		steps := make([]StepResponse, 0, len(progress.Steps))
		for _, s := range progress.Steps {
			steps = append(steps, StepResponse{ID: s.ID, Label: s.Label, State: string(s.State)})
		}

		c.JSON(http.StatusOK, TrackingResponse{
			OrderNumber:       order.Number,
			Status:            string(order.Status),
			StatusUnavailable: progress.Unavailable,
			Steps:             steps,
		})
	}
}

func resolveOrder(c *gin.Context, store *placement.Store, logger *zap.Logger) (*domain.Order, bool) {
	idParam := c.Param("id")
	orderID, err := uuid.Parse(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order ID"})
		return nil, false
	}

	order, err := store.Get(orderID)
	if err != nil {
		if _, isNotFound := err.(*errors.ErrNotFound); isNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return nil, false
		}
		logger.Error("Failed to get order", zap.Error(err), zap.String("order_id", idParam))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return nil, false
	}
	return order, true
}

func toOrderResponse(o *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ID:        it.ID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice.StringFixed(2),
			Quantity:  it.Quantity,
			LineTotal: it.LineTotal().StringFixed(2),
		})
	}
	return OrderResponse{
		ID:        o.ID.String(),
		Number:    o.Number,
		Status:    string(o.Status),
		Items:     items,
		Summary:   toSummaryResponse(o.Summary),
		CreatedAt: o.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: o.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
