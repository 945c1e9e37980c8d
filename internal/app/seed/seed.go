// internal/app/seed/seed.go

// Package seed wipes the portfolio collections and repopulates them
// with the fixture dataset. It is run by the folioseed command, never
// by the serving process.
package seed

import (
	"context"

	"github.com/google/uuid"
	profilestore "github.com/nitinpratap/folio/internal/app/store/profiles"
	projectstore "github.com/nitinpratap/folio/internal/app/store/projects"
	skillstore "github.com/nitinpratap/folio/internal/app/store/skills"
	workstore "github.com/nitinpratap/folio/internal/app/store/work"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Run clears all four collections and inserts the fixture dataset.
// Each run is tagged with a run id in the logs so overlapping or
// repeated seeds can be told apart.
func Run(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	runID := uuid.NewString()
	log := logger.With(zap.String("seed_run", runID))

	profiles := profilestore.New(db)
	projects := projectstore.New(db)
	skills := skillstore.New(db)
	work := workstore.New(db)

	// Clear old data.
	for name, wipe := range map[string]func(context.Context) (int64, error){
		"profiles": profiles.DeleteAll,
		"projects": projects.DeleteAll,
		"skills":   skills.DeleteAll,
		"work":     work.DeleteAll,
	} {
		n, err := wipe(ctx)
		if err != nil {
			log.Error("wipe failed", zap.String("collection", name), zap.Error(err))
			return err
		}
		log.Info("collection cleared", zap.String("collection", name), zap.Int64("removed", n))
	}

	if _, err := profiles.Upsert(ctx, fixtureProfile()); err != nil {
		log.Error("profile seed failed", zap.Error(err))
		return err
	}
	log.Info("profile seeded")

	n, err := skills.InsertMany(ctx, fixtureSkills())
	if err != nil {
		log.Error("skill seed failed", zap.Error(err))
		return err
	}
	log.Info("skills seeded", zap.Int("count", n))

	n, err = projects.InsertMany(ctx, fixtureProjects())
	if err != nil {
		log.Error("project seed failed", zap.Error(err))
		return err
	}
	log.Info("projects seeded", zap.Int("count", n))

	n, err = work.InsertMany(ctx, fixtureWork())
	if err != nil {
		log.Error("work seed failed", zap.Error(err))
		return err
	}
	log.Info("work seeded", zap.Int("count", n))

	return nil
}
