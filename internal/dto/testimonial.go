package dto

type CreateTestimonialRequest struct {
	Name            string `json:"name" form:"name" binding:"required,max=150"`
	Role            string `json:"role" form:"role" binding:"omitempty,max=100"`
	Company         string `json:"company" form:"company" binding:"omitempty,max=150"`
	Industry        string `json:"industry" form:"industry" binding:"omitempty,max=100"`
	ServiceProvided string `json:"serviceProvided" form:"serviceProvided" binding:"omitempty,max=200"`
	ProjectType     string `json:"projectType" form:"projectType" binding:"omitempty,max=100"`
	Rating          int    `json:"rating" form:"rating" binding:"required,min=1,max=5"`
	Content         string `json:"content" form:"content" binding:"required"`
	Metrics         string `json:"metrics" form:"metrics"`
	LinkedIn        string `json:"linkedin" form:"linkedin" binding:"omitempty,url"`
	Website         string `json:"website" form:"website" binding:"omitempty,url"`
	Verified        string `json:"verified" form:"verified"`
	Featured        string `json:"featured" form:"featured"`
}

type UpdateTestimonialRequest struct {
	Name            *string `json:"name" form:"name" binding:"omitempty,max=150"`
	Role            *string `json:"role" form:"role" binding:"omitempty,max=100"`
	Company         *string `json:"company" form:"company" binding:"omitempty,max=150"`
	Industry        *string `json:"industry" form:"industry" binding:"omitempty,max=100"`
	ServiceProvided *string `json:"serviceProvided" form:"serviceProvided" binding:"omitempty,max=200"`
	ProjectType     *string `json:"projectType" form:"projectType" binding:"omitempty,max=100"`
	Rating          *int    `json:"rating" form:"rating" binding:"omitempty,min=1,max=5"`
	Content         *string `json:"content" form:"content"`
	Metrics         *string `json:"metrics" form:"metrics"`
	LinkedIn        *string `json:"linkedin" form:"linkedin" binding:"omitempty,url"`
	Website         *string `json:"website" form:"website" binding:"omitempty,url"`
	Verified        *string `json:"verified" form:"verified"`
	Featured        *string `json:"featured" form:"featured"`
}
