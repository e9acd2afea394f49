package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Testimonial is a client quote. Slug derives from name+company.
type Testimonial struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug            string             `bson:"slug" json:"slug"`
	Name            string             `bson:"name" json:"name"`
	Role            string             `bson:"role,omitempty" json:"role,omitempty"`
	Company         string             `bson:"company,omitempty" json:"company,omitempty"`
	Industry        string             `bson:"industry,omitempty" json:"industry,omitempty"`
	ServiceProvided string             `bson:"serviceProvided,omitempty" json:"serviceProvided,omitempty"`
	ProjectType     string             `bson:"projectType,omitempty" json:"projectType,omitempty"`
	Rating          int                `bson:"rating" json:"rating"`
	Content         string             `bson:"content" json:"content"`
	Metrics         map[string]string  `bson:"metrics" json:"metrics"`
	AvatarURL       string             `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	LinkedIn        string             `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Website         string             `bson:"website,omitempty" json:"website,omitempty"`
	Verified        bool               `bson:"verified" json:"verified"`
	Featured        bool               `bson:"featured" json:"featured"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (t *Testimonial) GetID() primitive.ObjectID   { return t.ID }
func (t *Testimonial) SetID(id primitive.ObjectID) { t.ID = id }

func (t *Testimonial) Touch(now time.Time) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
}
