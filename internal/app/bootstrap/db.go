// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// EnsureSchema creates the indexes the stores rely on.
//
// The unique index on profiles.key is what makes the singleton upsert
// safe under concurrent writers: two racing upserts on the key filter
// cannot both insert.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.MongoDatabase

	_, err := db.Collection("profiles").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		logger.Error("profiles key index failed", zap.Error(err))
		return err
	}

	// Query-shape indexes for the list endpoints.
	_, err = db.Collection("projects").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "skills", Value: 1}}},
	})
	if err != nil {
		logger.Error("projects indexes failed", zap.Error(err))
		return err
	}

	_, err = db.Collection("skills").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "top", Value: -1}, {Key: "skill_name", Value: 1}},
	})
	if err != nil {
		logger.Error("skills index failed", zap.Error(err))
		return err
	}

	_, err = db.Collection("work").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "start", Value: -1}},
	})
	if err != nil {
		logger.Error("work index failed", zap.Error(err))
		return err
	}

	return nil
}
