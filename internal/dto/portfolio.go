package dto

// CreatePortfolioRequest. TechStack is a JSON object of category -> tools,
// Metrics a JSON object of label -> value; both are parsed defensively.
type CreatePortfolioRequest struct {
	Title            string `json:"title" form:"title" binding:"required,max=200"`
	Slug             string `json:"slug" form:"slug" binding:"omitempty,max=120"`
	Category         string `json:"category" form:"category" binding:"omitempty,max=100"`
	Industry         string `json:"industry" form:"industry" binding:"omitempty,max=100"`
	ClientName       string `json:"clientName" form:"clientName" binding:"omitempty,max=150"`
	ClientLocation   string `json:"clientLocation" form:"clientLocation" binding:"omitempty,max=150"`
	Description      string `json:"description" form:"description" binding:"required"`
	KeyFeatures      string `json:"keyFeatures" form:"keyFeatures"`
	TechStack        string `json:"techStack" form:"techStack"`
	Metrics          string `json:"metrics" form:"metrics"`
	Timeline         string `json:"timeline" form:"timeline" binding:"omitempty,max=100"`
	Status           string `json:"status" form:"status" binding:"omitempty,oneof=in-progress completed live archived"`
	ServicesProvided string `json:"servicesProvided" form:"servicesProvided"`
	LiveURL          string `json:"liveUrl" form:"liveUrl" binding:"omitempty,url"`
	CaseStudyURL     string `json:"caseStudyUrl" form:"caseStudyUrl" binding:"omitempty,url"`
	GitHubURL        string `json:"githubUrl" form:"githubUrl" binding:"omitempty,url"`
	Featured         string `json:"featured" form:"featured"`
}

type UpdatePortfolioRequest struct {
	Title            *string `json:"title" form:"title" binding:"omitempty,max=200"`
	Slug             *string `json:"slug" form:"slug" binding:"omitempty,max=120"`
	Category         *string `json:"category" form:"category" binding:"omitempty,max=100"`
	Industry         *string `json:"industry" form:"industry" binding:"omitempty,max=100"`
	ClientName       *string `json:"clientName" form:"clientName" binding:"omitempty,max=150"`
	ClientLocation   *string `json:"clientLocation" form:"clientLocation" binding:"omitempty,max=150"`
	Description      *string `json:"description" form:"description"`
	KeyFeatures      *string `json:"keyFeatures" form:"keyFeatures"`
	TechStack        *string `json:"techStack" form:"techStack"`
	Metrics          *string `json:"metrics" form:"metrics"`
	Timeline         *string `json:"timeline" form:"timeline" binding:"omitempty,max=100"`
	Status           *string `json:"status" form:"status" binding:"omitempty,oneof=in-progress completed live archived"`
	ServicesProvided *string `json:"servicesProvided" form:"servicesProvided"`
	LiveURL          *string `json:"liveUrl" form:"liveUrl" binding:"omitempty,url"`
	CaseStudyURL     *string `json:"caseStudyUrl" form:"caseStudyUrl" binding:"omitempty,url"`
	GitHubURL        *string `json:"githubUrl" form:"githubUrl" binding:"omitempty,url"`
	Featured         *string `json:"featured" form:"featured"`
}
