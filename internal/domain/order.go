package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is one requested line in a checkout request: a product
// reference plus a quantity. The reference is the hex form of the
// product's ObjectID.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderItem is a priced, resolved line within a persisted order.
// Title and price are snapshots taken at checkout time; later product
// edits do not touch past orders.
type OrderItem struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Title     string  `bson:"title" json:"title"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Price     float64 `bson:"price" json:"price"`
}

// Order is the persisted result of a checkout. It owns its items;
// they have no identity outside the order document.
type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Items        []OrderItem        `bson:"items" json:"items"`
	Total        float64            `bson:"total" json:"total"`
	CustomerName string             `bson:"customer_name" json:"customer_name"`
	Email        string             `bson:"email" json:"email"`
	Address      string             `bson:"address" json:"address"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
