package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thewiseshop/pawtrait-backend/internal/catalog"
	"github.com/thewiseshop/pawtrait-backend/internal/config"
	"github.com/thewiseshop/pawtrait-backend/internal/models"
	"gorm.io/gorm"
)

func newOrderService(t *testing.T, providerURL string) (*OrderService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	cfg := &config.Config{
		TossSecretKey: "test_sk_abc",
		TossAPIURL:    providerURL,
	}
	return NewOrderService(db, cfg, catalog.NewRegistry()), db
}

func confirmServer(t *testing.T, status int, calls *int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		assert.Equal(t, "/v1/payments/confirm", r.URL.Path)
		assert.True(t, strings.HasPrefix(r.Header.Get("Authorization"), "Basic "))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotEmpty(t, body["paymentKey"])
		assert.NotEmpty(t, body["orderId"])

		w.WriteHeader(status)
		if status >= 400 {
			json.NewEncoder(w).Encode(map[string]string{
				"code": "NOT_FOUND_PAYMENT", "message": "존재하지 않는 결제입니다.",
			})
		} else {
			json.NewEncoder(w).Encode(map[string]string{"status": "DONE"})
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOrderCreate_CreditPackagePricesFromCatalog(t *testing.T) {
	svc, _ := newOrderService(t, "http://unused")
	profile := createProfile(t, svc.db, 0)

	// Client-supplied amount is ignored for credit packages.
	order, err := svc.Create(context.Background(), profile.ID, models.ProductTypeCredit, "", 1, "standard")
	require.NoError(t, err)
	assert.Equal(t, 9900, order.Amount)
	assert.Equal(t, 12, order.Credits)
	assert.Equal(t, "스탠다드 팩", order.OrderName)
	assert.Equal(t, models.OrderStatusCreated, order.Status)
	assert.True(t, strings.HasPrefix(order.OrderCode, "order_"))

	_, err = svc.Create(context.Background(), profile.ID, models.ProductTypeCredit, "", 0, "mega")
	assert.ErrorIs(t, err, ErrUnknownPackage)
}

func TestOrderConfirm_GrantsCreditsOnce(t *testing.T) {
	calls := 0
	srv := confirmServer(t, http.StatusOK, &calls)
	svc, db := newOrderService(t, srv.URL)
	profile := createProfile(t, db, 0)

	order, err := svc.Create(context.Background(), profile.ID, models.ProductTypeCredit, "", 0, "standard")
	require.NoError(t, err)

	confirmed, err := svc.Confirm(context.Background(), profile.ID, "pay_key_1", order.OrderCode, 9900)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaid, confirmed.Status)
	assert.Equal(t, "pay_key_1", confirmed.PaymentKey)
	assert.Equal(t, 1, calls)

	var stored models.Profile
	require.NoError(t, db.First(&stored, "id = ?", profile.ID).Error)
	assert.Equal(t, 12, stored.Credits)

	// Replaying the handshake conflicts and grants nothing more.
	_, err = svc.Confirm(context.Background(), profile.ID, "pay_key_1", order.OrderCode, 9900)
	assert.ErrorIs(t, err, ErrOrderDecided)
	require.NoError(t, db.First(&stored, "id = ?", profile.ID).Error)
	assert.Equal(t, 12, stored.Credits)
}

func TestOrderConfirm_AmountMismatch(t *testing.T) {
	calls := 0
	srv := confirmServer(t, http.StatusOK, &calls)
	svc, db := newOrderService(t, srv.URL)
	profile := createProfile(t, db, 0)

	order, err := svc.Create(context.Background(), profile.ID, models.ProductTypeCredit, "", 0, "starter")
	require.NoError(t, err)

	_, err = svc.Confirm(context.Background(), profile.ID, "pay_key", order.OrderCode, 100)
	assert.ErrorIs(t, err, ErrAmountMismatch)
	// The provider is never asked about a mismatched amount.
	assert.Zero(t, calls)
}

func TestOrderConfirm_ProviderRejectionFailsOrder(t *testing.T) {
	calls := 0
	srv := confirmServer(t, http.StatusNotFound, &calls)
	svc, db := newOrderService(t, srv.URL)
	profile := createProfile(t, db, 0)

	order, err := svc.Create(context.Background(), profile.ID, models.ProductTypeCredit, "", 0, "starter")
	require.NoError(t, err)

	_, err = svc.Confirm(context.Background(), profile.ID, "pay_key", order.OrderCode, 4500)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "존재하지 않는 결제입니다")

	var stored models.Order
	require.NoError(t, db.First(&stored, "id = ?", order.ID).Error)
	assert.Equal(t, models.OrderStatusFailed, stored.Status)

	var profileRow models.Profile
	require.NoError(t, db.First(&profileRow, "id = ?", profile.ID).Error)
	assert.Zero(t, profileRow.Credits)
}

func TestOrderConfirm_UnknownOrderOrWrongUser(t *testing.T) {
	svc, db := newOrderService(t, "http://unused")
	profile := createProfile(t, db, 0)
	other := createProfile(t, db, 0)

	order, err := svc.Create(context.Background(), profile.ID, models.ProductTypeCanvas, "캔버스 액자", 39000, "")
	require.NoError(t, err)

	_, err = svc.Confirm(context.Background(), other.ID, "pay_key", order.OrderCode, 39000)
	assert.ErrorIs(t, err, ErrOrderNotFound)
	_, err = svc.Confirm(context.Background(), profile.ID, "pay_key", "order_missing", 39000)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderConfirm_WithoutSecretKey(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db, &config.Config{}, catalog.NewRegistry())
	profile := createProfile(t, db, 0)

	_, err := svc.Confirm(context.Background(), profile.ID, "k", "order_x", 1000)
	assert.ErrorIs(t, err, ErrPaymentsOff)
}
