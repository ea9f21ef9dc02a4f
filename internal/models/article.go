package models

import (
	"time"
)

// Article is an ingested news item. Content is immutable after ingest and the
// title is unique, which is what the RSS fetcher dedupes on.
type Article struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title" gorm:"not null;size:200;uniqueIndex" validate:"required,min=1,max=200"`
	Content    string    `json:"content" gorm:"type:text;not null" validate:"required"`
	Source     string    `json:"source" gorm:"not null;size:200" validate:"required,max=200"`
	DatePosted time.Time `json:"date_posted" gorm:"not null;index"`

	// Relations. An article owns at most one quiz.
	Quiz     *Quiz     `json:"quiz,omitempty" gorm:"foreignKey:ArticleID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:ArticleID"`
}

func (Article) TableName() string {
	return "articles"
}
