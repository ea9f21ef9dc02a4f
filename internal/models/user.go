package models

import (
	"time"
)

// User is the minimal identity row the quiz subsystem needs. Registration,
// password storage and session handling live in the auth service.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"not null;size:20;uniqueIndex" validate:"required,min=2,max=20"`
	Email     string    `json:"email" gorm:"not null;size:120;uniqueIndex" validate:"required,email"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Comments []Comment  `json:"comments,omitempty" gorm:"foreignKey:UserID"`
	Attempts []UserQuiz `json:"attempts,omitempty" gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "users"
}
