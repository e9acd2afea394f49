package dto

type CreateCMSPageRequest struct {
	Title           string `json:"title" form:"title" binding:"required,max=200"`
	Slug            string `json:"slug" form:"slug" binding:"omitempty,max=120"`
	Status          string `json:"status" form:"status" binding:"omitempty,oneof=draft published archived"`
	MetaTitle       string `json:"metaTitle" form:"metaTitle" binding:"omitempty,max=200"`
	MetaDescription string `json:"metaDescription" form:"metaDescription" binding:"omitempty,max=400"`
	Content         string `json:"content" form:"content"`
}

type UpdateCMSPageRequest struct {
	Title           *string `json:"title" form:"title" binding:"omitempty,max=200"`
	Slug            *string `json:"slug" form:"slug" binding:"omitempty,max=120"`
	Status          *string `json:"status" form:"status" binding:"omitempty,oneof=draft published archived"`
	MetaTitle       *string `json:"metaTitle" form:"metaTitle" binding:"omitempty,max=200"`
	MetaDescription *string `json:"metaDescription" form:"metaDescription" binding:"omitempty,max=400"`
	Content         *string `json:"content" form:"content"`
}
