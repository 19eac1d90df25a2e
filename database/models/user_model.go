package models

import "github.com/graylake-dev/postureguard/dtos"

type User struct {
	Model
	Username string        `json:"username" gorm:"type:text;not null;uniqueIndex"`
	Email    string        `json:"email" gorm:"type:text;not null;uniqueIndex"`
	FullName string        `json:"fullName" gorm:"type:text;not null"`
	Role     dtos.UserRole `json:"role" gorm:"type:text;not null;default:'Viewer'"`
	IsActive bool          `json:"isActive" gorm:"not null;default:true"`
}

func (User) TableName() string {
	return "users"
}
