package dto

type CreateCareerRequest struct {
	Title        string `json:"title" form:"title" binding:"required,max=200"`
	Department   string `json:"department" form:"department" binding:"omitempty,max=100"`
	Location     string `json:"location" form:"location" binding:"omitempty,max=150"`
	Experience   string `json:"experience" form:"experience" binding:"omitempty,max=100"`
	Type         string `json:"type" form:"type" binding:"omitempty,oneof=full-time part-time contract internship freelance"`
	Description  string `json:"description" form:"description" binding:"required"`
	Requirements string `json:"requirements" form:"requirements"`
	Benefits     string `json:"benefits" form:"benefits"`
	ApplyLink    string `json:"applyLink" form:"applyLink" binding:"omitempty,url"`
}

type UpdateCareerRequest struct {
	Title        *string `json:"title" form:"title" binding:"omitempty,max=200"`
	Department   *string `json:"department" form:"department" binding:"omitempty,max=100"`
	Location     *string `json:"location" form:"location" binding:"omitempty,max=150"`
	Experience   *string `json:"experience" form:"experience" binding:"omitempty,max=100"`
	Type         *string `json:"type" form:"type" binding:"omitempty,oneof=full-time part-time contract internship freelance"`
	Description  *string `json:"description" form:"description"`
	Requirements *string `json:"requirements" form:"requirements"`
	Benefits     *string `json:"benefits" form:"benefits"`
	ApplyLink    *string `json:"applyLink" form:"applyLink" binding:"omitempty,url"`
}
