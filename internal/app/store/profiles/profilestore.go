// internal/app/store/profiles/profilestore.go
package profilestore

import (
	"context"
	"time"

	"github.com/nitinpratap/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the profiles collection.
//
// The collection holds at most one document, addressed by the fixed
// key field (unique index ensured at startup). Upserting on the key
// filter is atomic, so concurrent writers cannot create a second
// profile.
type Store struct {
	c *mongo.Collection
}

// New creates a new profile store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("profiles")}
}

// Update holds the fields a caller may set on the profile.
// Nil fields are left untouched on an existing document.
type Update struct {
	Name      *string
	Email     *string
	Bio       *string
	Education *[]string
	Links     *models.ProfileLinks
}

// Get returns the singleton profile.
// Returns mongo.ErrNoDocuments if no profile has been created yet.
func (s *Store) Get(ctx context.Context) (models.Profile, error) {
	var p models.Profile
	if err := s.c.FindOne(ctx, bson.M{"key": models.ProfileKey}).Decode(&p); err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

// Upsert creates the profile if absent, otherwise merges the provided
// fields into the existing document. Returns the resulting document.
func (s *Store) Upsert(ctx context.Context, u Update) (models.Profile, error) {
	now := time.Now().UTC()

	set := bson.M{"updated_at": now}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Email != nil {
		set["email"] = *u.Email
	}
	if u.Bio != nil {
		set["bio"] = *u.Bio
	}
	if u.Education != nil {
		set["education"] = *u.Education
	}
	if u.Links != nil {
		set["links"] = *u.Links
	}

	setOnInsert := bson.M{
		"_id":        primitive.NewObjectID(),
		"key":        models.ProfileKey,
		"created_at": now,
	}
	// Same path in $set and $setOnInsert is a conflict, so the empty
	// slice default only applies when the payload omitted education.
	if u.Education == nil {
		setOnInsert["education"] = []string{}
	}

	update := bson.M{
		"$set":         set,
		"$setOnInsert": setOnInsert,
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var p models.Profile
	err := s.c.FindOneAndUpdate(ctx, bson.M{"key": models.ProfileKey}, update, opts).Decode(&p)
	if err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

// DeleteAll removes every profile document. Used by the seeder.
func (s *Store) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
