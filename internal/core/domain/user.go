package domain

import "time"

// UserRole is the closed set of roles a platform account can hold.
type UserRole string

const (
	RoleUser   UserRole = "USER"   // buyer / tenant
	RoleOwner  UserRole = "OWNER"  // property owner
	RoleBroker UserRole = "BROKER" // real-estate broker
	RoleAdmin  UserRole = "ADMIN"  // back-office administrator
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleUser, RoleOwner, RoleBroker, RoleAdmin:
		return true
	}
	return false
}

// User models a platform account. Accounts with an empty PasswordHash
// (e.g. social-login accounts) cannot authenticate against this API.
type User struct {
	ID            string     `json:"id" bson:"_id,omitempty"`
	Name          string     `json:"name,omitempty" bson:"name,omitempty"`
	Email         string     `json:"email" bson:"email"`
	EmailVerified *time.Time `json:"email_verified,omitempty" bson:"email_verified,omitempty"`
	PasswordHash  string     `json:"-" bson:"password_hash,omitempty"`
	Image         string     `json:"image,omitempty" bson:"image,omitempty"`
	Phone         string     `json:"phone,omitempty" bson:"phone,omitempty"`
	CPF           string     `json:"cpf,omitempty" bson:"cpf,omitempty"`
	Role          UserRole   `json:"role" bson:"role"`
	CreatedAt     time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" bson:"updated_at"`
}
