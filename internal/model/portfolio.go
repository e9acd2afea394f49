package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectStatus is the delivery state of a portfolio project.
type ProjectStatus string

const (
	ProjectInProgress ProjectStatus = "in-progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectLive       ProjectStatus = "live"
	ProjectArchived   ProjectStatus = "archived"
)

// PortfolioClient is the embedded client descriptor.
type PortfolioClient struct {
	Name     string `bson:"name,omitempty" json:"name,omitempty"`
	Location string `bson:"location,omitempty" json:"location,omitempty"`
}

// PortfolioLinks holds the optional outbound URLs for a project.
type PortfolioLinks struct {
	Live      string `bson:"live,omitempty" json:"live,omitempty"`
	CaseStudy string `bson:"caseStudy,omitempty" json:"caseStudy,omitempty"`
	GitHub    string `bson:"github,omitempty" json:"github,omitempty"`
}

// Portfolio is a delivered project shown in the portfolio section.
type Portfolio struct {
	ID               primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Slug             string              `bson:"slug" json:"slug"`
	Title            string              `bson:"title" json:"title"`
	Category         string              `bson:"category,omitempty" json:"category,omitempty"`
	Industry         string              `bson:"industry,omitempty" json:"industry,omitempty"`
	Client           PortfolioClient     `bson:"client" json:"client"`
	Description      string              `bson:"description" json:"description"`
	KeyFeatures      []string            `bson:"keyFeatures" json:"keyFeatures"`
	TechStack        map[string][]string `bson:"techStack" json:"techStack"`
	Metrics          map[string]string   `bson:"metrics" json:"metrics"`
	Timeline         string              `bson:"timeline,omitempty" json:"timeline,omitempty"`
	Status           ProjectStatus       `bson:"status" json:"status"`
	ServicesProvided []string            `bson:"servicesProvided" json:"servicesProvided"`
	Links            PortfolioLinks      `bson:"links" json:"links"`
	ThumbnailURL     string              `bson:"thumbnailUrl,omitempty" json:"thumbnailUrl,omitempty"`
	Featured         bool                `bson:"featured" json:"featured"`
	CreatedAt        time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time           `bson:"updatedAt" json:"updatedAt"`
}

func (p *Portfolio) GetID() primitive.ObjectID   { return p.ID }
func (p *Portfolio) SetID(id primitive.ObjectID) { p.ID = id }

func (p *Portfolio) Touch(now time.Time) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}
