package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile mirrors the identity-provider user into the store. Credits are
// mutated only through the credit expression updates in ProfileService and
// by payment approval.
type Profile struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string         `gorm:"size:100" json:"name"`
	Nickname  string         `gorm:"size:100" json:"nickname"`
	Email     string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Credits   int            `gorm:"not null;default:0" json:"credits"`
	IsAdmin   bool           `gorm:"default:false" json:"is_admin"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *Profile) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
