package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OrderStatusCreated = "CREATED"
	OrderStatusPaid    = "PAID"
	OrderStatusFailed  = "FAILED"
)

const (
	ProductTypeDigital = "DIGITAL"
	ProductTypeCanvas  = "CANVAS"
	ProductTypeCredit  = "CREDIT"
)

// Order backs the hosted payment-widget flow. OrderCode is the widget's
// order id and must be unique per attempt; the server-side confirmation
// call verifies PaymentKey and Amount against this record before the order
// is treated as final.
type Order struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	OrderCode   string    `gorm:"uniqueIndex;not null;size:64" json:"order_code"`
	ProductType string    `gorm:"not null;size:20" json:"product_type"`
	OrderName   string    `gorm:"size:200" json:"order_name"`
	Amount      int       `gorm:"not null" json:"amount"`
	Credits     int       `gorm:"default:0" json:"credits"`
	Status      string    `gorm:"not null;default:'CREATED';size:20;index" json:"status"`
	PaymentKey  string    `gorm:"size:200" json:"payment_key,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (o *Order) BeforeCreate(*gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
