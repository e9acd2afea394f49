package dto

// CreateServiceRequest accepts the multipart admin form. List fields arrive
// newline- or comma-delimited; Featured is a string boolean.
type CreateServiceRequest struct {
	Title           string `json:"title" form:"title" binding:"required,max=200"`
	Slug            string `json:"slug" form:"slug" binding:"omitempty,max=120"`
	Tagline         string `json:"tagline" form:"tagline" binding:"omitempty,max=300"`
	Description     string `json:"description" form:"description" binding:"required"`
	Overview        string `json:"overview" form:"overview"`
	Icon            string `json:"icon" form:"icon" binding:"omitempty,max=100"`
	Features        string `json:"features" form:"features"`
	Deliverables    string `json:"deliverables" form:"deliverables"`
	Process         string `json:"process" form:"process"`
	TechStack       string `json:"techStack" form:"techStack"`
	Benefits        string `json:"benefits" form:"benefits"`
	IdealFor        string `json:"idealFor" form:"idealFor"`
	CTA             string `json:"cta" form:"cta" binding:"omitempty,max=100"`
	MetaTitle       string `json:"metaTitle" form:"metaTitle" binding:"omitempty,max=200"`
	MetaDescription string `json:"metaDescription" form:"metaDescription" binding:"omitempty,max=400"`
	PricingHint     string `json:"pricingHint" form:"pricingHint" binding:"omitempty,max=200"`
	Featured        string `json:"featured" form:"featured"`
}

// UpdateServiceRequest applies only the supplied fields.
type UpdateServiceRequest struct {
	Title           *string `json:"title" form:"title" binding:"omitempty,max=200"`
	Slug            *string `json:"slug" form:"slug" binding:"omitempty,max=120"`
	Tagline         *string `json:"tagline" form:"tagline" binding:"omitempty,max=300"`
	Description     *string `json:"description" form:"description"`
	Overview        *string `json:"overview" form:"overview"`
	Icon            *string `json:"icon" form:"icon" binding:"omitempty,max=100"`
	Features        *string `json:"features" form:"features"`
	Deliverables    *string `json:"deliverables" form:"deliverables"`
	Process         *string `json:"process" form:"process"`
	TechStack       *string `json:"techStack" form:"techStack"`
	Benefits        *string `json:"benefits" form:"benefits"`
	IdealFor        *string `json:"idealFor" form:"idealFor"`
	CTA             *string `json:"cta" form:"cta" binding:"omitempty,max=100"`
	MetaTitle       *string `json:"metaTitle" form:"metaTitle" binding:"omitempty,max=200"`
	MetaDescription *string `json:"metaDescription" form:"metaDescription" binding:"omitempty,max=400"`
	PricingHint     *string `json:"pricingHint" form:"pricingHint" binding:"omitempty,max=200"`
	Featured        *string `json:"featured" form:"featured"`
}
