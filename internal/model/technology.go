package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExpertiseLevel grades how deep the team's experience with a technology runs.
type ExpertiseLevel string

const (
	ExpertiseBeginner     ExpertiseLevel = "beginner"
	ExpertiseIntermediate ExpertiseLevel = "intermediate"
	ExpertiseAdvanced     ExpertiseLevel = "advanced"
	ExpertiseExpert       ExpertiseLevel = "expert"
)

// TechnologyItem is an embedded entry inside a category. It carries its own
// id so item-level update/delete can target it within the parent array.
type TechnologyItem struct {
	ID              primitive.ObjectID `bson:"_id" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Icon            string             `bson:"icon,omitempty" json:"icon,omitempty"`
	ExpertiseLevel  ExpertiseLevel     `bson:"expertiseLevel" json:"expertiseLevel"`
	ExperienceYears int                `bson:"experienceYears" json:"experienceYears"`
	UseCases        []string           `bson:"useCases" json:"useCases"`
	Featured        bool               `bson:"featured" json:"featured"`
}

// TechnologyCategory groups technology items under a named category.
// Concurrent item mutations are last-write-wins at the document level.
type TechnologyCategory struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug        string             `bson:"slug" json:"slug"`
	Category    string             `bson:"category" json:"category"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Items       []TechnologyItem   `bson:"items" json:"items"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (t *TechnologyCategory) GetID() primitive.ObjectID   { return t.ID }
func (t *TechnologyCategory) SetID(id primitive.ObjectID) { t.ID = id }

func (t *TechnologyCategory) Touch(now time.Time) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
}
