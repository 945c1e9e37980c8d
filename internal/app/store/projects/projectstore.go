// internal/app/store/projects/projectstore.go
package projectstore

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

// ErrMissingTitle is returned when a create payload has no title.
var ErrMissingTitle = errors.New("project title is required")

// Store provides access to the projects collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new project store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("projects")}
}

// Create inserts a new project and returns it with its generated id
// and timestamps.
func (s *Store) Create(ctx context.Context, p models.Project) (models.Project, error) {
	if strings.TrimSpace(p.Title) == "" {
		return models.Project{}, ErrMissingTitle
	}

	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Skills == nil {
		p.Skills = []string{}
	}

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// List returns all projects, most recently created first. If skill is
// non-empty, only projects whose skills array contains it (exact,
// case-sensitive element match) are returned.
func (s *Store) List(ctx context.Context, skill string) ([]models.Project, error) {
	filter := bson.M{}
	if skill != "" {
		filter["skills"] = skill
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	projects := []models.Project{}
	if err := cur.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetByID returns the project with the given id.
// Returns mongo.ErrNoDocuments if no such project exists.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Project, error) {
	var p models.Project
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// Update holds the fields a caller may change on a project.
// Nil fields are left untouched.
type Update struct {
	Title       *string
	Description *string
	Links       *models.ProjectLinks
	Skills      *[]string
}

// Update merges the provided fields into the project and refreshes its
// updated_at timestamp, returning the updated document.
// Returns mongo.ErrNoDocuments if no such project exists.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, u Update) (models.Project, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if u.Title != nil {
		set["title"] = *u.Title
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Links != nil {
		set["links"] = *u.Links
	}
	if u.Skills != nil {
		set["skills"] = *u.Skills
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var p models.Project
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&p)
	if err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// Delete removes the project with the given id and returns the deleted
// document. Returns mongo.ErrNoDocuments if no such project exists.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (models.Project, error) {
	var p models.Project
	if err := s.c.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// DeleteAll removes every project document. Used by the seeder.
func (s *Store) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// InsertMany inserts a batch of projects, stamping ids and timestamps.
// Used by the seeder.
func (s *Store) InsertMany(ctx context.Context, projects []models.Project) (int, error) {
	if len(projects) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, len(projects))
	for i := range projects {
		projects[i].ID = primitive.NewObjectID()
		projects[i].CreatedAt = now
		projects[i].UpdatedAt = now
		if projects[i].Skills == nil {
			projects[i].Skills = []string{}
		}
		docs[i] = projects[i]
	}

	res, err := s.c.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}
