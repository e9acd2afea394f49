package dto

// RegisterRequest creates a new account. New accounts start as pending
// clients until verified or promoted.
type RegisterRequest struct {
	Email     string `json:"email" form:"email" binding:"required,email,max=254"`
	Password  string `json:"password" form:"password" binding:"required,min=8,max=128"`
	FirstName string `json:"firstName" form:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" form:"lastName" binding:"required,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

// RefreshRequest carries the refresh token when it is not supplied via
// cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" form:"refreshToken"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" form:"email" binding:"required,email"`
}

// ResetPasswordRequest: confirm must equal the new password.
type ResetPasswordRequest struct {
	Token           string `json:"token" form:"token" binding:"required"`
	Password        string `json:"password" form:"password" binding:"required,min=8,max=128"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" binding:"required,eqfield=Password"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" form:"token" binding:"required"`
}

// UpdateProfileRequest is the authenticated /me update. Pointer fields are
// only applied when present.
type UpdateProfileRequest struct {
	FirstName   *string `json:"firstName" form:"firstName" binding:"omitempty,max=100"`
	LastName    *string `json:"lastName" form:"lastName" binding:"omitempty,max=100"`
	DisplayName *string `json:"displayName" form:"displayName" binding:"omitempty,max=150"`
	Bio         *string `json:"bio" form:"bio"`
	Phone       *string `json:"phone" form:"phone" binding:"omitempty,max=30"`
	Location    *string `json:"location" form:"location" binding:"omitempty,max=150"`
	Department  *string `json:"department" form:"department" binding:"omitempty,max=100"`
	Position    *string `json:"position" form:"position" binding:"omitempty,max=100"`
	Company     *string `json:"company" form:"company" binding:"omitempty,max=150"`
}

// ChangePasswordRequest for the authenticated change-password flow.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" form:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" form:"newPassword" binding:"required,min=8,max=128,nefield=CurrentPassword"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" binding:"required,eqfield=NewPassword"`
}
