// internal/app/store/work/workstore.go
package workstore

import (
	"context"
	"time"

	"github.com/nitinpratap/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the work collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new work-experience store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("work")}
}

// Create inserts a new work entry. No field is required.
func (s *Store) Create(ctx context.Context, w models.Work) (models.Work, error) {
	now := time.Now().UTC()
	w.ID = primitive.NewObjectID()
	w.CreatedAt = now
	w.UpdatedAt = now
	if w.Highlights == nil {
		w.Highlights = []string{}
	}

	if _, err := s.c.InsertOne(ctx, w); err != nil {
		return models.Work{}, err
	}
	return w, nil
}

// List returns all work entries sorted by start descending. The sort
// compares the raw start strings, so "Present" orders against numeric
// months purely by byte value.
func (s *Store) List(ctx context.Context) ([]models.Work, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	entries := []models.Work{}
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteAll removes every work document. Used by the seeder.
func (s *Store) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// InsertMany inserts a batch of work entries, stamping ids and
// timestamps. Used by the seeder.
func (s *Store) InsertMany(ctx context.Context, entries []models.Work) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, len(entries))
	for i := range entries {
		entries[i].ID = primitive.NewObjectID()
		entries[i].CreatedAt = now
		entries[i].UpdatedAt = now
		if entries[i].Highlights == nil {
			entries[i].Highlights = []string{}
		}
		docs[i] = entries[i]
	}

	res, err := s.c.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}
