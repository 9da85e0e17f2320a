package model

import "time"

// Module represents an educational module owned by a user.
// When the owner account is removed the module survives with a null owner;
// deleting the module cascades to its lessons.
type Module struct {
	ID          uint      `json:"pk" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:150;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Preview     *string   `json:"preview" gorm:"size:255"`
	OwnerID     *uint     `json:"owner" gorm:"index"`
	Owner       *User     `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL"`
	Lessons     []Lesson  `json:"lessons" gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`

	// LessonsCount mirrors len(Lessons) for serialized responses.
	LessonsCount int `json:"lessons_count" gorm:"-"`
}
