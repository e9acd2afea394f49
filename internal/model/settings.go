package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WebsiteConfigKey is the fixed key of the singleton settings document. A
// unique index on this field is the final guard against a second document.
const WebsiteConfigKey = "website"

// SiteSettings holds site-wide display settings.
type SiteSettings struct {
	Name        string `bson:"name,omitempty" json:"name,omitempty"`
	Tagline     string `bson:"tagline,omitempty" json:"tagline,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	LogoURL     string `bson:"logoUrl,omitempty" json:"logoUrl,omitempty"`
	FaviconURL  string `bson:"faviconUrl,omitempty" json:"faviconUrl,omitempty"`
}

// CompanySettings holds company contact details.
type CompanySettings struct {
	Name    string `bson:"name,omitempty" json:"name,omitempty"`
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
}

// SocialSettings holds outbound social profile URLs.
type SocialSettings struct {
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	LinkedIn  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	GitHub    string `bson:"github,omitempty" json:"github,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	YouTube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
}

// SEOSettings holds default meta values for pages without their own.
type SEOSettings struct {
	MetaTitle       string `bson:"metaTitle,omitempty" json:"metaTitle,omitempty"`
	MetaDescription string `bson:"metaDescription,omitempty" json:"metaDescription,omitempty"`
	Keywords        string `bson:"keywords,omitempty" json:"keywords,omitempty"`
	OGImageURL      string `bson:"ogImageUrl,omitempty" json:"ogImageUrl,omitempty"`
}

// WebsiteConfig is the singleton site configuration document.
type WebsiteConfig struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Key       string             `bson:"key" json:"-"`
	Site      SiteSettings       `bson:"site" json:"site"`
	Company   CompanySettings    `bson:"company" json:"company"`
	Social    SocialSettings     `bson:"social" json:"social"`
	SEO       SEOSettings        `bson:"seo" json:"seo"`
	Features  map[string]bool    `bson:"features" json:"features"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (w *WebsiteConfig) GetID() primitive.ObjectID   { return w.ID }
func (w *WebsiteConfig) SetID(id primitive.ObjectID) { w.ID = id }

func (w *WebsiteConfig) Touch(now time.Time) {
	if w.CreatedAt.IsZero() {
		w.CreatedAt = now
	}
	w.UpdatedAt = now
}

// DefaultWebsiteConfig is what the first get() materializes.
func DefaultWebsiteConfig() *WebsiteConfig {
	return &WebsiteConfig{
		Key:      WebsiteConfigKey,
		Features: map[string]bool{},
	}
}
