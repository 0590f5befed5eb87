package entity

import (
	"time"

	"gorm.io/gorm"
)

// Headline is an archived news title. Subscribers are never stored.
type Headline struct {
	gorm.Model
	ExternalID  string    `json:"id" gorm:"unique;not null;size:36"`
	Title       string    `json:"title" gorm:"size:1024;not null"`
	PublishedAt time.Time `json:"published_at" gorm:"index"`
}
