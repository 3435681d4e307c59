package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePaymentRequestRequest struct {
	PackageID string `json:"package_id"`
}

type PaymentRequestResponse struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	UserName     string    `json:"user_name"`
	UserNickname string    `json:"user_nickname"`
	UserEmail    string    `json:"user_email"`
	Amount       int       `json:"amount"`
	Credits      int       `json:"credits"`
	PackageName  string    `json:"package_name"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type PaymentRequestListResponse struct {
	Requests []PaymentRequestResponse `json:"requests"`
	Total    int64                    `json:"total"`
}
