package dto

// CreateTechnologyCategoryRequest creates a category, optionally seeding it
// with items supplied as a JSON array.
type CreateTechnologyCategoryRequest struct {
	Category    string `json:"category" form:"category" binding:"required,max=100"`
	Slug        string `json:"slug" form:"slug" binding:"omitempty,max=120"`
	Description string `json:"description" form:"description" binding:"omitempty,max=500"`
}

type UpdateTechnologyCategoryRequest struct {
	Category    *string `json:"category" form:"category" binding:"omitempty,max=100"`
	Slug        *string `json:"slug" form:"slug" binding:"omitempty,max=120"`
	Description *string `json:"description" form:"description" binding:"omitempty,max=500"`
}

// CreateTechnologyItemRequest adds an item inside a category.
type CreateTechnologyItemRequest struct {
	Name            string `json:"name" form:"name" binding:"required,max=100"`
	Icon            string `json:"icon" form:"icon" binding:"omitempty,max=100"`
	ExpertiseLevel  string `json:"expertiseLevel" form:"expertiseLevel" binding:"omitempty,oneof=beginner intermediate advanced expert"`
	ExperienceYears int    `json:"experienceYears" form:"experienceYears" binding:"omitempty,min=0,max=50"`
	UseCases        string `json:"useCases" form:"useCases"`
	Featured        string `json:"featured" form:"featured"`
}

type UpdateTechnologyItemRequest struct {
	Name            *string `json:"name" form:"name" binding:"omitempty,max=100"`
	Icon            *string `json:"icon" form:"icon" binding:"omitempty,max=100"`
	ExpertiseLevel  *string `json:"expertiseLevel" form:"expertiseLevel" binding:"omitempty,oneof=beginner intermediate advanced expert"`
	ExperienceYears *int    `json:"experienceYears" form:"experienceYears" binding:"omitempty,min=0,max=50"`
	UseCases        *string `json:"useCases" form:"useCases"`
	Featured        *string `json:"featured" form:"featured"`
}
