package dtos

import "time"

type UserRole string

const (
	UserRoleAdmin           UserRole = "Admin"
	UserRoleSecurityAnalyst UserRole = "SecurityAnalyst"
	UserRoleSecurityManager UserRole = "SecurityManager"
	UserRoleViewer          UserRole = "Viewer"
)

type UserCreateRequest struct {
	Username string   `json:"username" validate:"required"`
	Email    string   `json:"email" validate:"required,email"`
	FullName string   `json:"fullName" validate:"required"`
	Role     UserRole `json:"role" validate:"required,oneof=Admin SecurityAnalyst SecurityManager Viewer"`
}

type UserDTO struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      UserRole  `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UserFilter struct {
	Role     *UserRole `query:"role" validate:"omitempty,oneof=Admin SecurityAnalyst SecurityManager Viewer"`
	IsActive *bool     `query:"isActive"`
}
