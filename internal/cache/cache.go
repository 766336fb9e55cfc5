package cache

import (
	"context"
	"errors"

	"github.com/evgear/store-backend/internal/domain"
)

// ProductCache holds the rendered product listing so catalog reads do
// not hit Mongo on every request.
type ProductCache interface {
	Get(ctx context.Context) ([]domain.Product, error)
	Set(ctx context.Context, products []domain.Product) error
	Delete(ctx context.Context) error
}

var ErrCacheMiss = errors.New("cache miss")
