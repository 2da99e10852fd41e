package models

import (
	"time"

	"gorm.io/gorm"
)

// User is an account in the community. Reputation is adjusted only by the
// reputation service, never by handlers directly.
type User struct {
	gorm.Model
	Username   string    `gorm:"column:username;uniqueIndex;not null" json:"username"`
	Email      string    `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"column:password;not null" json:"-"`
	AvatarURL  string    `gorm:"column:avatar_url" json:"avatar_url"`
	Reputation int       `gorm:"column:reputation;not null;default:0" json:"reputation"`
	IsAdmin    bool      `gorm:"column:is_admin;not null;default:false" json:"is_admin"`
	IsActive   bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	LastLogin  time.Time `gorm:"column:last_login" json:"last_login"`
}

func (User) TableName() string {
	return "users"
}

// RegisterRequest defines the input for account creation
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest defines the input for authentication
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the session token back to the client
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
