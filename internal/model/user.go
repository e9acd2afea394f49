package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleEditor     Role = "editor"
	RoleClient     Role = "client"
)

// ValidRoles lists every assignable role.
var ValidRoles = []Role{RoleSuperAdmin, RoleAdmin, RoleEditor, RoleClient}

func (r Role) Valid() bool {
	for _, v := range ValidRoles {
		if r == v {
			return true
		}
	}
	return false
}

// UserStatus is the account lifecycle state.
type UserStatus string

const (
	StatusActive    UserStatus = "active"
	StatusInactive  UserStatus = "inactive"
	StatusPending   UserStatus = "pending"
	StatusSuspended UserStatus = "suspended"
)

// UserProfile holds optional descriptive fields.
type UserProfile struct {
	Bio        string `bson:"bio,omitempty" json:"bio,omitempty"`
	Phone      string `bson:"phone,omitempty" json:"phone,omitempty"`
	Location   string `bson:"location,omitempty" json:"location,omitempty"`
	Department string `bson:"department,omitempty" json:"department,omitempty"`
	Position   string `bson:"position,omitempty" json:"position,omitempty"`
	Company    string `bson:"company,omitempty" json:"company,omitempty"`
}

// UserSecurity tracks authentication state. LoginAttempts is incremented on
// failed logins; nothing reads it to enforce lockout yet, so LockoutUntil
// stays unset until a lockout policy lands.
type UserSecurity struct {
	TwoFactorEnabled  bool       `bson:"twoFactorEnabled" json:"twoFactorEnabled"`
	LastLoginAt       *time.Time `bson:"lastLoginAt,omitempty" json:"lastLoginAt,omitempty"`
	LoginAttempts     int        `bson:"loginAttempts" json:"-"`
	LockoutUntil      *time.Time `bson:"lockoutUntil,omitempty" json:"-"`
	PasswordChangedAt *time.Time `bson:"passwordChangedAt,omitempty" json:"-"`
}

// UserMetadata holds verification/reset state. Token fields store one-way
// hashes, never the raw token.
type UserMetadata struct {
	EmailVerified         bool               `bson:"emailVerified" json:"emailVerified"`
	VerificationTokenHash string             `bson:"verificationTokenHash,omitempty" json:"-"`
	ResetTokenHash        string             `bson:"resetTokenHash,omitempty" json:"-"`
	ResetTokenExpiresAt   *time.Time         `bson:"resetTokenExpiresAt,omitempty" json:"-"`
	CreatedBy             primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
}

// User is a dashboard account. Password holds the bcrypt hash and is never
// serialized in any output.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email       string             `bson:"email" json:"email"`
	Password    string             `bson:"password" json:"-"`
	FirstName   string             `bson:"firstName" json:"firstName"`
	LastName    string             `bson:"lastName" json:"lastName"`
	DisplayName string             `bson:"displayName,omitempty" json:"displayName,omitempty"`
	AvatarURL   string             `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	Role        Role               `bson:"role" json:"role"`
	Status      UserStatus         `bson:"status" json:"status"`
	// Permissions are explicit grants layered on top of the role defaults,
	// additive only.
	Permissions []string     `bson:"permissions" json:"permissions"`
	Profile     UserProfile  `bson:"profile" json:"profile"`
	Security    UserSecurity `bson:"security" json:"security"`
	Metadata    UserMetadata `bson:"metadata" json:"metadata"`
	CreatedAt   time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time    `bson:"updatedAt" json:"updatedAt"`
}

func (u *User) GetID() primitive.ObjectID   { return u.ID }
func (u *User) SetID(id primitive.ObjectID) { u.ID = id }

func (u *User) Touch(now time.Time) {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
}

// FullName returns the display name, falling back to first+last.
func (u *User) FullName() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.FirstName + " " + u.LastName
}
