package services

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/thewiseshop/pawtrait-backend/internal/catalog"
	"github.com/thewiseshop/pawtrait-backend/internal/config"
	"github.com/thewiseshop/pawtrait-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	// ErrAmountMismatch means the returning handshake carried a different
	// amount than the order was created with; the payment is not confirmed.
	ErrAmountMismatch = errors.New("payment amount does not match order")
	ErrOrderDecided   = errors.New("order already confirmed or failed")
	ErrPaymentsOff    = errors.New("payment provider is not configured")
)

// OrderService backs the hosted payment-widget flow. The widget redirects
// back with paymentKey, orderId and amount; Confirm verifies them against
// the stored order and the provider before any credits are granted.
type OrderService struct {
	db      *gorm.DB
	cfg     *config.Config
	catalog *catalog.Registry
	client  *http.Client
}

func NewOrderService(db *gorm.DB, cfg *config.Config, reg *catalog.Registry) *OrderService {
	return &OrderService{
		db:      db,
		cfg:     cfg,
		catalog: reg,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Create registers an order with a fresh unique order code for the widget.
// Credit-package orders take amount and credits from the catalog so the
// client cannot set its own price.
func (s *OrderService) Create(ctx context.Context, userID uuid.UUID, productType, orderName string, amount int, packageID string) (*models.Order, error) {
	creditAmount := 0
	switch productType {
	case models.ProductTypeCredit:
		pkg := s.catalog.Package(packageID)
		if pkg == nil {
			return nil, ErrUnknownPackage
		}
		amount = pkg.Price
		creditAmount = pkg.Credits
		if orderName == "" {
			orderName = pkg.Name
		}
	case models.ProductTypeDigital, models.ProductTypeCanvas:
		if amount <= 0 {
			return nil, errors.New("amount must be positive")
		}
	default:
		return nil, errors.New("unknown product type")
	}

	order := models.Order{
		ID:          uuid.New(),
		UserID:      userID,
		OrderCode:   newOrderCode(),
		ProductType: productType,
		OrderName:   orderName,
		Amount:      amount,
		Credits:     creditAmount,
		Status:      models.OrderStatusCreated,
	}
	if err := s.db.WithContext(ctx).Create(&order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return &order, nil
}

// Confirm performs the server-side confirmation of a returned payment:
// verify the amount against the stored order, confirm with the provider,
// then flip CREATED to PAID exactly once and grant credits for credit
// orders. Re-running the same handshake is a conflict, not a second grant.
func (s *OrderService) Confirm(ctx context.Context, userID uuid.UUID, paymentKey, orderCode string, amount int) (*models.Order, error) {
	if s.cfg.TossSecretKey == "" {
		return nil, ErrPaymentsOff
	}

	var order models.Order
	if err := s.db.WithContext(ctx).
		Where("order_code = ? AND user_id = ?", orderCode, userID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if order.Amount != amount {
		return nil, ErrAmountMismatch
	}

	if err := s.confirmWithProvider(ctx, paymentKey, orderCode, amount); err != nil {
		s.db.WithContext(ctx).Model(&models.Order{}).
			Where("id = ? AND status = ?", order.ID, models.OrderStatusCreated).
			Update("status", models.OrderStatusFailed)
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Order{}).
			Where("id = ? AND status = ?", order.ID, models.OrderStatusCreated).
			Updates(map[string]interface{}{
				"status":      models.OrderStatusPaid,
				"payment_key": paymentKey,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrOrderDecided
		}

		if order.ProductType == models.ProductTypeCredit && order.Credits > 0 {
			grant := tx.Model(&models.Profile{}).
				Where("id = ?", order.UserID).
				Update("credits", gorm.Expr("credits + ?", order.Credits))
			if grant.Error != nil {
				return grant.Error
			}
		}

		return tx.Create(&models.Notification{
			UserID:  order.UserID,
			Title:   "결제 완료",
			Message: fmt.Sprintf("%s 결제가 완료되었습니다.", order.OrderName),
			Type:    models.NotificationTypePayment,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	order.Status = models.OrderStatusPaid
	order.PaymentKey = paymentKey
	return &order, nil
}

func (s *OrderService) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

type tossConfirmRequest struct {
	PaymentKey string `json:"paymentKey"`
	OrderID    string `json:"orderId"`
	Amount     int    `json:"amount"`
}

type tossErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *OrderService) confirmWithProvider(ctx context.Context, paymentKey, orderCode string, amount int) error {
	payload, err := json.Marshal(tossConfirmRequest{
		PaymentKey: paymentKey,
		OrderID:    orderCode,
		Amount:     amount,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.cfg.TossAPIURL+"/v1/payments/confirm", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	// Basic auth with the secret key as username and an empty password.
	auth := base64.StdEncoding.EncodeToString([]byte(s.cfg.TossSecretKey + ":"))
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("payment confirmation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		var tossErr tossErrorResponse
		if json.Unmarshal(body, &tossErr) == nil && tossErr.Message != "" {
			return fmt.Errorf("payment confirmation rejected: %s (%s)", tossErr.Message, tossErr.Code)
		}
		return fmt.Errorf("payment confirmation rejected: status %d", resp.StatusCode)
	}
	return nil
}

func newOrderCode() string {
	raw := make([]byte, 8)
	if _, err := rand.Read(raw); err != nil {
		return fmt.Sprintf("order_%d", time.Now().UnixNano())
	}
	return "order_" + hex.EncodeToString(raw)
}
