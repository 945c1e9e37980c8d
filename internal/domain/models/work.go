// internal/domain/models/work.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Work is a work-experience entry.
//
// Start and End are free-form date tokens ("2025-06", "Present");
// listing sorts on the raw string, so "Present" orders by byte value
// against numeric months.
type Work struct {
	ID         primitive.ObjectID `bson:"_id" json:"_id"`
	Company    string             `bson:"company,omitempty" json:"company,omitempty"`
	Role       string             `bson:"role,omitempty" json:"role,omitempty"`
	Start      string             `bson:"start,omitempty" json:"start,omitempty"`
	End        string             `bson:"end,omitempty" json:"end,omitempty"`
	Highlights []string           `bson:"highlights" json:"highlights"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
