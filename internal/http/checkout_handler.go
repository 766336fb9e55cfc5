package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/evgear/store-backend/internal/domain"
	"github.com/evgear/store-backend/internal/service"
)

// CheckoutService is what the checkout handler needs from the core.
type CheckoutService interface {
	Checkout(ctx context.Context, req *service.CheckoutRequest) (*service.CheckoutResponse, error)
}

type CheckoutHandler struct {
	checkout CheckoutService
	timeout  time.Duration
}

func NewCheckoutHandler(checkout CheckoutService, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		timeout:  timeout,
	}
}

type CartItemDTO struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type CheckoutRequestDTO struct {
	Items        []CartItemDTO `json:"items"`
	CustomerName string        `json:"customer_name"`
	Email        string        `json:"email"`
	Address      string        `json:"address"`
}

type CheckoutResponseDTO struct {
	OrderID string  `json:"order_id"`
	Total   float64 `json:"total"`
}

// POST /checkout
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	items := make([]domain.CartItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = domain.CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	resp, err := h.checkout.Checkout(ctx, &service.CheckoutRequest{
		Items:        items,
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Address:      req.Address,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, CheckoutResponseDTO{
		OrderID: resp.OrderID,
		Total:   resp.Total,
	})
}
