package model

import "time"

// Lesson represents a lesson, optionally attached to a module.
// Lessons may only be attached to modules owned by the acting user.
type Lesson struct {
	ID          uint      `json:"pk" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:150;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Preview     *string   `json:"preview" gorm:"size:255"`
	VideoURL    *string   `json:"video_url" gorm:"size:255"`
	Content     string    `json:"content" gorm:"type:text"`
	ModuleID    *uint     `json:"module" gorm:"index"`
	OwnerID     *uint     `json:"owner" gorm:"index"`
	Owner       *User     `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
