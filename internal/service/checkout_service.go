package service

import (
	"context"
	"fmt"

	"github.com/evgear/store-backend/internal/domain"
	"github.com/evgear/store-backend/internal/repository"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CheckoutRequest struct {
	Items        []domain.CartItem
	CustomerName string
	Email        string
	Address      string
}

type CheckoutResponse struct {
	OrderID string
	Total   float64
}

// CheckoutService turns a cart of product references into a priced,
// persisted order: resolve every reference in one batch, assemble the
// order line by line, then hand it to the order store.
type CheckoutService struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
}

func NewCheckoutService(products repository.ProductRepository, orders repository.OrderRepository) *CheckoutService {
	return &CheckoutService{
		products: products,
		orders:   orders,
	}
}

func (s *CheckoutService) Checkout(ctx context.Context, req *CheckoutRequest) (*CheckoutResponse, error) {
	resolved, err := s.resolveProducts(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	order, err := assembleOrder(req, resolved)
	if err != nil {
		return nil, err
	}

	orderID, err := s.orders.Insert(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	return &CheckoutResponse{
		OrderID: orderID.Hex(),
		Total:   order.Total,
	}, nil
}

// resolveProducts parses every cart reference and fetches the matching
// products in a single batch query. An unparseable reference fails the
// whole request; a parseable reference with no matching product is
// simply absent from the returned map.
func (s *CheckoutService) resolveProducts(ctx context.Context, items []domain.CartItem) (map[string]domain.Product, error) {
	ids := make([]primitive.ObjectID, 0, len(items))
	for _, item := range items {
		id, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			return nil, newValidationError("invalid product id: %s", item.ProductID)
		}
		ids = append(ids, id)
	}

	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	resolved := make(map[string]domain.Product, len(products))
	for _, p := range products {
		resolved[p.ID.Hex()] = p
	}

	return resolved, nil
}

// assembleOrder walks the cart in input order and builds the order
// record. Each line snapshots the product's title and price at
// checkout time; quantities below 1 are clamped to 1. The first line
// referencing an unresolved product aborts the whole assembly.
func assembleOrder(req *CheckoutRequest, resolved map[string]domain.Product) (*domain.Order, error) {
	items := make([]domain.OrderItem, 0, len(req.Items))
	total := decimal.Zero

	for _, line := range req.Items {
		product, ok := resolved[line.ProductID]
		if !ok {
			return nil, newValidationError("product not found: %s", line.ProductID)
		}

		qty := line.Quantity
		if qty < 1 {
			qty = 1
		}

		price := product.Price
		total = total.Add(decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(qty))))

		items = append(items, domain.OrderItem{
			ProductID: line.ProductID,
			Title:     product.Title,
			Quantity:  qty,
			Price:     price,
		})
	}

	return &domain.Order{
		Items:        items,
		Total:        total.Round(2).InexactFloat64(),
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Address:      req.Address,
	}, nil
}
