package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SEO is the nested meta block shared by content entities.
type SEO struct {
	MetaTitle       string `bson:"metaTitle,omitempty" json:"metaTitle,omitempty"`
	MetaDescription string `bson:"metaDescription,omitempty" json:"metaDescription,omitempty"`
}

// Service is a business-service offering shown on the marketing site.
type Service struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug         string             `bson:"slug" json:"slug"`
	Title        string             `bson:"title" json:"title"`
	Tagline      string             `bson:"tagline,omitempty" json:"tagline,omitempty"`
	Description  string             `bson:"description" json:"description"`
	Overview     string             `bson:"overview,omitempty" json:"overview,omitempty"`
	Icon         string             `bson:"icon,omitempty" json:"icon,omitempty"`
	ImageURL     string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Features     []string           `bson:"features" json:"features"`
	Deliverables []string           `bson:"deliverables" json:"deliverables"`
	Process      []string           `bson:"process" json:"process"`
	TechStack    []string           `bson:"techStack" json:"techStack"`
	Benefits     []string           `bson:"benefits" json:"benefits"`
	IdealFor     []string           `bson:"idealFor" json:"idealFor"`
	CTA          string             `bson:"cta,omitempty" json:"cta,omitempty"`
	SEO          SEO                `bson:"seo" json:"seo"`
	PricingHint  string             `bson:"pricingHint,omitempty" json:"pricingHint,omitempty"`
	Featured     bool               `bson:"featured" json:"featured"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (s *Service) GetID() primitive.ObjectID   { return s.ID }
func (s *Service) SetID(id primitive.ObjectID) { s.ID = id }

func (s *Service) Touch(now time.Time) {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now
}
