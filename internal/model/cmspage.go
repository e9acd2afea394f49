package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PageStatus is the publication state of a CMS page.
type PageStatus string

const (
	PageDraft     PageStatus = "draft"
	PagePublished PageStatus = "published"
	PageArchived  PageStatus = "archived"
)

// CMSPage is an editor-managed content page.
type CMSPage struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug            string             `bson:"slug" json:"slug"`
	Title           string             `bson:"title" json:"title"`
	Status          PageStatus         `bson:"status" json:"status"`
	MetaTitle       string             `bson:"metaTitle,omitempty" json:"metaTitle,omitempty"`
	MetaDescription string             `bson:"metaDescription,omitempty" json:"metaDescription,omitempty"`
	Content         string             `bson:"content" json:"content"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (p *CMSPage) GetID() primitive.ObjectID   { return p.ID }
func (p *CMSPage) SetID(id primitive.ObjectID) { p.ID = id }

func (p *CMSPage) Touch(now time.Time) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}
