package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nitinpratap/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateProject inserts a test project with the given title and skills.
func (f *Fixtures) CreateProject(ctx context.Context, title string, skills ...string) models.Project {
	f.t.Helper()

	now := time.Now().UTC()
	if skills == nil {
		skills = []string{}
	}
	p := models.Project{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: "Test project description",
		Skills:      skills,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection("projects").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test project: %v", err)
	}
	return p
}

// CreateSkill inserts a test skill.
func (f *Fixtures) CreateSkill(ctx context.Context, name, level string, top bool) models.Skill {
	f.t.Helper()

	now := time.Now().UTC()
	sk := models.Skill{
		ID:        primitive.NewObjectID(),
		SkillName: name,
		Level:     level,
		Top:       top,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("skills").InsertOne(ctx, sk); err != nil {
		f.t.Fatalf("failed to create test skill: %v", err)
	}
	return sk
}

// CreateWork inserts a test work entry.
func (f *Fixtures) CreateWork(ctx context.Context, company, role, start, end string) models.Work {
	f.t.Helper()

	now := time.Now().UTC()
	w := models.Work{
		ID:         primitive.NewObjectID(),
		Company:    company,
		Role:       role,
		Start:      start,
		End:        end,
		Highlights: []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("work").InsertOne(ctx, w); err != nil {
		f.t.Fatalf("failed to create test work entry: %v", err)
	}
	return w
}

// CreateProfile inserts the singleton test profile.
func (f *Fixtures) CreateProfile(ctx context.Context, name string) models.Profile {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.Profile{
		ID:        primitive.NewObjectID(),
		Key:       models.ProfileKey,
		Name:      name,
		Education: []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("profiles").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test profile: %v", err)
	}
	return p
}
