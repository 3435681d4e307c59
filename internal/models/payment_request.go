package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment request lifecycle: PENDING is the only initial state and the only
// state that may transition; APPROVED and REJECTED are terminal.
const (
	PaymentStatusPending  = "PENDING"
	PaymentStatusApproved = "APPROVED"
	PaymentStatusRejected = "REJECTED"
)

// PaymentRequest is a user's claim of an off-platform bank transfer awaiting
// admin verification. Requester display fields are a snapshot taken at
// submission time; later profile edits do not change historical requests.
type PaymentRequest struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	UserName     string    `gorm:"size:100" json:"user_name"`
	UserNickname string    `gorm:"size:100" json:"user_nickname"`
	UserEmail    string    `gorm:"size:255" json:"user_email"`
	Amount       int       `gorm:"not null" json:"amount"`
	Credits      int       `gorm:"not null" json:"credits"`
	PackageName  string    `gorm:"size:100" json:"package_name"`
	Status       string    `gorm:"not null;default:'PENDING';size:20;index" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (r *PaymentRequest) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
