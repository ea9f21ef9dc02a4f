package models

import (
	"time"
)

// Comment on an article. Posting is gated on a passed quiz for the article.
type Comment struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Content    string    `json:"content" gorm:"type:text;not null" validate:"required,min=1"`
	UserID     uint      `json:"user_id" gorm:"not null;index"`
	ArticleID  uint      `json:"article_id" gorm:"not null;index"`
	DatePosted time.Time `json:"date_posted" gorm:"not null"`

	Author User `json:"author,omitempty" gorm:"foreignKey:UserID"`
}

func (Comment) TableName() string {
	return "comments"
}
