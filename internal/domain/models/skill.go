// internal/domain/models/skill.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Skill proficiency levels.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Skill is a single entry in the skills list.
//
// Top marks a skill for highlighted display; it is independent of the
// proficiency level.
type Skill struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	SkillName string             `bson:"skill_name" json:"skill_name"`
	Level     string             `bson:"level" json:"level"`
	Top       bool               `bson:"top" json:"top"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// ValidLevel reports whether level is one of the recognized
// proficiency levels.
func ValidLevel(level string) bool {
	switch level {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}
