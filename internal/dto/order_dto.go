package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	ProductType string `json:"product_type"`
	OrderName   string `json:"order_name"`
	Amount      int    `json:"amount"`
	PackageID   string `json:"package_id,omitempty"`
}

// ConfirmOrderRequest relays the payment-widget return handshake
// (paymentKey / orderId / amount query parameters) for server-side
// confirmation.
type ConfirmOrderRequest struct {
	PaymentKey string `json:"payment_key"`
	OrderCode  string `json:"order_code"`
	Amount     int    `json:"amount"`
}

type OrderResponse struct {
	ID          uuid.UUID `json:"id"`
	OrderCode   string    `json:"order_code"`
	ProductType string    `json:"product_type"`
	OrderName   string    `json:"order_name"`
	Amount      int       `json:"amount"`
	Credits     int       `json:"credits,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
