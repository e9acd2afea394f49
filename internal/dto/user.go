package dto

// CreateUserRequest is the admin-side account creation. Permissions is a
// newline/comma list of extra grants on top of the role defaults.
type CreateUserRequest struct {
	Email       string `json:"email" form:"email" binding:"required,email,max=254"`
	Password    string `json:"password" form:"password" binding:"required,min=8,max=128"`
	FirstName   string `json:"firstName" form:"firstName" binding:"required,max=100"`
	LastName    string `json:"lastName" form:"lastName" binding:"required,max=100"`
	DisplayName string `json:"displayName" form:"displayName" binding:"omitempty,max=150"`
	Role        string `json:"role" form:"role" binding:"omitempty,oneof=super_admin admin editor client"`
	Status      string `json:"status" form:"status" binding:"omitempty,oneof=active inactive pending suspended"`
	Permissions string `json:"permissions" form:"permissions"`
}

type UpdateUserRequest struct {
	Email       *string `json:"email" form:"email" binding:"omitempty,email,max=254"`
	Password    *string `json:"password" form:"password" binding:"omitempty,min=8,max=128"`
	FirstName   *string `json:"firstName" form:"firstName" binding:"omitempty,max=100"`
	LastName    *string `json:"lastName" form:"lastName" binding:"omitempty,max=100"`
	DisplayName *string `json:"displayName" form:"displayName" binding:"omitempty,max=150"`
	Role        *string `json:"role" form:"role" binding:"omitempty,oneof=super_admin admin editor client"`
	Status      *string `json:"status" form:"status" binding:"omitempty,oneof=active inactive pending suspended"`
	Permissions *string `json:"permissions" form:"permissions"`
	Bio         *string `json:"bio" form:"bio"`
	Phone       *string `json:"phone" form:"phone" binding:"omitempty,max=30"`
	Location    *string `json:"location" form:"location" binding:"omitempty,max=150"`
	Department  *string `json:"department" form:"department" binding:"omitempty,max=100"`
	Position    *string `json:"position" form:"position" binding:"omitempty,max=100"`
	Company     *string `json:"company" form:"company" binding:"omitempty,max=150"`
}
