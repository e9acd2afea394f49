package dto

// UpdateSettingsRequest deep-merges into the singleton config. The nested
// sections apply field-by-field; Features replaces the flag map wholesale
// after boolean coercion of its values.
type UpdateSettingsRequest struct {
	Site    *SiteSection    `json:"site" form:"-"`
	Company *CompanySection `json:"company" form:"-"`
	Social  *SocialSection  `json:"social" form:"-"`
	SEO     *SEOSection     `json:"seo" form:"-"`
	// Features is a JSON object of flag -> bool (or string boolean).
	Features string `json:"features" form:"features"`
}

type SiteSection struct {
	Name        *string `json:"name" binding:"omitempty,max=150"`
	Tagline     *string `json:"tagline" binding:"omitempty,max=300"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	LogoURL     *string `json:"logoUrl" binding:"omitempty,max=500"`
	FaviconURL  *string `json:"faviconUrl" binding:"omitempty,max=500"`
}

type CompanySection struct {
	Name    *string `json:"name" binding:"omitempty,max=150"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone" binding:"omitempty,max=30"`
	Address *string `json:"address" binding:"omitempty,max=500"`
}

type SocialSection struct {
	Twitter   *string `json:"twitter" binding:"omitempty,url"`
	LinkedIn  *string `json:"linkedin" binding:"omitempty,url"`
	GitHub    *string `json:"github" binding:"omitempty,url"`
	Instagram *string `json:"instagram" binding:"omitempty,url"`
	YouTube   *string `json:"youtube" binding:"omitempty,url"`
}

type SEOSection struct {
	MetaTitle       *string `json:"metaTitle" binding:"omitempty,max=200"`
	MetaDescription *string `json:"metaDescription" binding:"omitempty,max=400"`
	Keywords        *string `json:"keywords" binding:"omitempty,max=500"`
	OGImageURL      *string `json:"ogImageUrl" binding:"omitempty,max=500"`
}
