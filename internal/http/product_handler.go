package http

import (
	"context"
	"net/http"
	"time"

	"github.com/evgear/store-backend/internal/domain"
	"github.com/evgear/store-backend/internal/service"
)

// CatalogService is what the product handlers need from the catalog.
// Consumers define this interface, not the service implementation.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	Seed(ctx context.Context) (*service.SeedResult, error)
}

type ProductHandler struct {
	catalog CatalogService
	timeout time.Duration
}

func NewProductHandler(catalog CatalogService, timeout time.Duration) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		timeout: timeout,
	}
}

type ProductResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	InStock     bool    `json:"in_stock"`
	Image       string  `json:"image"`
}

type ProductsResponse struct {
	Items []ProductResponse `json:"items"`
}

// GET /products
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	products, err := h.catalog.ListProducts(ctx)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	items := make([]ProductResponse, len(products))
	for i, p := range products {
		items[i] = ProductResponse{
			ID:          p.ID.Hex(),
			Title:       p.Title,
			Description: p.Description,
			Price:       p.Price,
			Category:    p.Category,
			InStock:     p.InStock,
			Image:       p.Image,
		}
	}

	respondJSON(w, http.StatusOK, &ProductsResponse{Items: items})
}

type SeedResponseDTO struct {
	Seeded  bool   `json:"seeded"`
	Count   int    `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
}

// POST /seed
func (h *ProductHandler) Seed(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	res, err := h.catalog.Seed(ctx)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	if !res.Seeded {
		respondJSON(w, http.StatusOK, SeedResponseDTO{Seeded: false, Message: "Products already exist"})
		return
	}

	respondJSON(w, http.StatusOK, SeedResponseDTO{Seeded: true, Count: res.Count})
}
