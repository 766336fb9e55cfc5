package repository

import (
	"context"
	"errors"

	"github.com/evgear/store-backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrUnavailable marks a backing-store failure (unreachable, timed out).
// Handlers map it to a server-error response; it is never retried here.
var ErrUnavailable = errors.New("backing store unavailable")

// ProductRepository defines the read side of the catalog plus the
// seeding insert. Consumers define this interface, not the MongoDB
// implementation.
type ProductRepository interface {
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Product, error)
	List(ctx context.Context, limit int64) ([]domain.Product, error)
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, product *domain.Product) (primitive.ObjectID, error)
}

// OrderRepository persists finished orders. Insert is write-once; the
// returned id becomes the checkout response's order reference.
type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) (primitive.ObjectID, error)
}
