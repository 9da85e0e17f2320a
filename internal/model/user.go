package model

import "time"

// User represents a registered user. Email is the login identity.
// Role flags and activity tracking are never exposed over the API.
type User struct {
	ID           uint       `json:"pk" gorm:"primaryKey"`
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"`
	FirstName    string     `json:"first_name" gorm:"size:150"`
	LastName     string     `json:"last_name" gorm:"size:150"`
	Phone        *string    `json:"phone" gorm:"size:30"`
	Country      *string    `json:"country" gorm:"size:40"`
	Avatar       *string    `json:"avatar" gorm:"size:255"`
	IsSuperuser  bool       `json:"-" gorm:"default:false"`
	IsModerator  bool       `json:"-" gorm:"default:false;index"`
	IsActive     bool       `json:"-" gorm:"default:true;index"`
	LastLogin    *time.Time `json:"-"`
	CreatedAt    time.Time  `json:"-"`
	UpdatedAt    time.Time  `json:"-"`
}
