package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a sellable catalog item. Checkout treats products as
// read-only; only seeding writes them.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category" json:"category"`
	InStock     bool               `bson:"in_stock" json:"in_stock"`
	Image       string             `bson:"image" json:"image"`
}
