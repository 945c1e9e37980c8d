// internal/app/store/skills/skillstore.go
package skillstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/nitinpratap/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrMissingSkillName is returned when a create payload has no skill name.
	ErrMissingSkillName = errors.New("skill_name is required")

	// ErrInvalidLevel is returned when the level is not one of
	// beginner, intermediate, or advanced.
	ErrInvalidLevel = errors.New("level must be beginner, intermediate, or advanced")
)

// Store provides access to the skills collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new skill store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("skills")}
}

// Create inserts a new skill. An empty level defaults to intermediate;
// an unrecognized level is rejected.
func (s *Store) Create(ctx context.Context, sk models.Skill) (models.Skill, error) {
	if strings.TrimSpace(sk.SkillName) == "" {
		return models.Skill{}, ErrMissingSkillName
	}
	if sk.Level == "" {
		sk.Level = models.LevelIntermediate
	}
	if !models.ValidLevel(sk.Level) {
		return models.Skill{}, ErrInvalidLevel
	}

	now := time.Now().UTC()
	sk.ID = primitive.NewObjectID()
	sk.CreatedAt = now
	sk.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, sk); err != nil {
		return models.Skill{}, err
	}
	return sk, nil
}

// List returns all skills, top skills first, then alphabetically by
// skill name within each group.
func (s *Store) List(ctx context.Context) ([]models.Skill, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "top", Value: -1},
		{Key: "skill_name", Value: 1},
	})
	return s.find(ctx, bson.M{}, opts)
}

// ListTop returns only skills flagged as top, alphabetically by name.
func (s *Store) ListTop(ctx context.Context) ([]models.Skill, error) {
	opts := options.Find().SetSort(bson.D{{Key: "skill_name", Value: 1}})
	return s.find(ctx, bson.M{"top": true}, opts)
}

func (s *Store) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Skill, error) {
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	skills := []models.Skill{}
	if err := cur.All(ctx, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

// Delete removes the skill with the given id. Deleting an id that does
// not exist is not an error; the returned count is 0 or 1.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteAll removes every skill document. Used by the seeder.
func (s *Store) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// InsertMany inserts a batch of skills through the same defaulting and
// validation as Create. Used by the seeder.
func (s *Store) InsertMany(ctx context.Context, skills []models.Skill) (int, error) {
	if len(skills) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, len(skills))
	for i := range skills {
		if strings.TrimSpace(skills[i].SkillName) == "" {
			return 0, ErrMissingSkillName
		}
		if skills[i].Level == "" {
			skills[i].Level = models.LevelIntermediate
		}
		if !models.ValidLevel(skills[i].Level) {
			return 0, ErrInvalidLevel
		}
		skills[i].ID = primitive.NewObjectID()
		skills[i].CreatedAt = now
		skills[i].UpdatedAt = now
		docs[i] = skills[i]
	}

	res, err := s.c.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}
