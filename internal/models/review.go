package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is user-generated and live immediately; there is no moderation
// queue. Password, when set, is the deletion credential for anonymous
// submissions; UserID, when set, allows ownership deletion without it.
type Review struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserNickname   string     `gorm:"not null;size:100" json:"user_nickname"`
	Rating         int        `gorm:"not null" json:"rating"`
	Text           string     `gorm:"type:text;not null" json:"text"`
	BeforeImageURL string     `gorm:"type:text" json:"before_image_url"`
	AfterImageURL  string     `gorm:"type:text" json:"after_image_url"`
	Password       string     `gorm:"size:100" json:"-"`
	UserID         *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (r *Review) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
