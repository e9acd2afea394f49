package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmploymentType is the closed set of position types.
type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full-time"
	EmploymentPartTime   EmploymentType = "part-time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
	EmploymentFreelance  EmploymentType = "freelance"
)

// Career is an open position listed on the careers page.
type Career struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Department   string             `bson:"department,omitempty" json:"department,omitempty"`
	Location     string             `bson:"location,omitempty" json:"location,omitempty"`
	Experience   string             `bson:"experience,omitempty" json:"experience,omitempty"`
	Type         EmploymentType     `bson:"type" json:"type"`
	Description  string             `bson:"description" json:"description"`
	Requirements []string           `bson:"requirements" json:"requirements"`
	Benefits     []string           `bson:"benefits" json:"benefits"`
	ApplyLink    string             `bson:"applyLink,omitempty" json:"applyLink,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (c *Career) GetID() primitive.ObjectID   { return c.ID }
func (c *Career) SetID(id primitive.ObjectID) { c.ID = id }

func (c *Career) Touch(now time.Time) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
}
