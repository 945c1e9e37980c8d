// internal/domain/models/project.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is a portfolio project entry.
//
// Skills are free-text skill names (not references into the skills
// collection); the list endpoint filters on exact element match.
type Project struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Links       ProjectLinks       `bson:"links" json:"links"`
	Skills      []string           `bson:"skills" json:"skills"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// ProjectLinks holds the repository and live-demo links for a project.
type ProjectLinks struct {
	GitHub string `bson:"github,omitempty" json:"github,omitempty"`
	Demo   string `bson:"demo,omitempty" json:"demo,omitempty"`
}
