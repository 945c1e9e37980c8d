// internal/domain/models/profile.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile is the singleton owner record for the portfolio.
//
// Exactly one profile document is expected to exist. Rather than
// addressing it with a match-everything filter, the document carries a
// fixed key field with a unique index, so concurrent upserts resolve to
// the same document.
type Profile struct {
	ID primitive.ObjectID `bson:"_id" json:"_id"`

	// Key is the fixed singleton key ("profile"). Internal only.
	Key string `bson:"key" json:"-"`

	Name      string       `bson:"name" json:"name"`
	Email     string       `bson:"email,omitempty" json:"email,omitempty"`
	Bio       string       `bson:"bio,omitempty" json:"bio,omitempty"`
	Education []string     `bson:"education" json:"education"`
	Links     ProfileLinks `bson:"links" json:"links"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// ProfileLinks holds the outbound links shown on the portfolio header.
type ProfileLinks struct {
	GitHub    string `bson:"github,omitempty" json:"github,omitempty"`
	LinkedIn  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Portfolio string `bson:"portfolio,omitempty" json:"portfolio,omitempty"`
}

// ProfileKey is the fixed key value stored on the singleton document.
const ProfileKey = "profile"
