package server

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/merchkit/ordertags/internal/config"
	"github.com/merchkit/ordertags/internal/kafka"
	"github.com/merchkit/ordertags/internal/repository"
	mock_server "github.com/merchkit/ordertags/internal/server/mocks"
	"github.com/merchkit/ordertags/internal/storage"
)

func newTestServer(t *testing.T, cfg *config.Config) (*Server, *mock_server.MockStorage, *mock_server.MockTagSyncer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := mock_server.NewMockStorage(ctrl)
	mockSyncer := mock_server.NewMockTagSyncer(ctrl)
	mockUserRepo := mock_server.NewMockUserRepo(ctrl)
	if cfg == nil {
		cfg = &config.Config{}
	}
	return New(mockStorage, mockSyncer, mockUserRepo, cfg, kafka.NewConsoleProducer()), mockStorage, mockSyncer
}

func signWebhook(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func webhookRequest(topic string, body []byte) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Topic", topic)
	req.Header.Set("X-Shopify-Shop-Domain", "demo.myshopify.com")
	return req
}

func TestHandleOrderWebhook(t *testing.T) {
	t.Run("orders/create upserts and reconciles tags", func(t *testing.T) {
		server, mockStorage, _ := newTestServer(t, nil)

		body := []byte(`{"id": 555, "order_number": 9, "total_price": "12.50", "tags": "sale, new"}`)

		mockStorage.EXPECT().
			ApplyOrderEvent(gomock.Any(), gomock.Any(), gomock.Eq([]string{"sale", "new"})).
			DoAndReturn(func(_ context.Context, order *repository.Order, tags []string) (*storage.Order, error) {
				assert.Equal(t, "555", order.ShopifyOrderID)
				assert.True(t, order.TotalPrice.Valid)
				return &storage.Order{ID: 10, ShopifyOrderID: "555", Tags: tags}, nil
			})

		rr := httptest.NewRecorder()
		server.handleOrderWebhook(rr, webhookRequest("orders/create", body))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"success":true`)
	})

	t.Run("orders/edited keys on order_id", func(t *testing.T) {
		server, mockStorage, _ := newTestServer(t, nil)

		body := []byte(`{"order_id": 777, "id": 123456, "tags": ["vip"]}`)

		mockStorage.EXPECT().
			ApplyOrderEvent(gomock.Any(), gomock.Any(), gomock.Eq([]string{"vip"})).
			DoAndReturn(func(_ context.Context, order *repository.Order, tags []string) (*storage.Order, error) {
				assert.Equal(t, "777", order.ShopifyOrderID)
				return &storage.Order{ID: 11, ShopifyOrderID: "777", Tags: tags}, nil
			})

		rr := httptest.NewRecorder()
		server.handleOrderWebhook(rr, webhookRequest("orders/edited", body))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("unknown topic is acknowledged without processing", func(t *testing.T) {
		server, _, _ := newTestServer(t, nil)

		rr := httptest.NewRecorder()
		server.handleOrderWebhook(rr, webhookRequest("customers/create", []byte(`{"id": 1}`)))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"success":true}`, rr.Body.String())
	})

	t.Run("invalid payload", func(t *testing.T) {
		server, _, _ := newTestServer(t, nil)

		rr := httptest.NewRecorder()
		server.handleOrderWebhook(rr, webhookRequest("orders/create", []byte(`{not json`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"Invalid webhook payload"}`, rr.Body.String())
	})

	t.Run("payload without order id", func(t *testing.T) {
		server, mockStorage, _ := newTestServer(t, nil)

		mockStorage.EXPECT().
			ApplyOrderEvent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, storage.ErrEmptyShopifyID)

		rr := httptest.NewRecorder()
		server.handleOrderWebhook(rr, webhookRequest("orders/create", []byte(`{"tags": "sale"}`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"Webhook payload has no order id"}`, rr.Body.String())
	})

	t.Run("storage error", func(t *testing.T) {
		server, mockStorage, _ := newTestServer(t, nil)

		mockStorage.EXPECT().
			ApplyOrderEvent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, assert.AnError)

		rr := httptest.NewRecorder()
		server.handleOrderWebhook(rr, webhookRequest("orders/create", []byte(`{"id": 555}`)))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"Failed to process webhook"}`, rr.Body.String())
	})
}

func TestHandleOrderWebhook_Signature(t *testing.T) {
	cfg := &config.Config{WebhookSecret: "whsec_test"}

	t.Run("valid signature accepted", func(t *testing.T) {
		server, mockStorage, _ := newTestServer(t, cfg)

		body := []byte(`{"id": 555}`)
		mockStorage.EXPECT().
			ApplyOrderEvent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&storage.Order{ID: 10, ShopifyOrderID: "555", Tags: []string{}}, nil)

		req := webhookRequest("orders/create", body)
		req.Header.Set("X-Shopify-Hmac-Sha256", signWebhook(body, "whsec_test"))

		rr := httptest.NewRecorder()
		server.handleOrderWebhook(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("invalid signature rejected", func(t *testing.T) {
		server, _, _ := newTestServer(t, cfg)

		body := []byte(`{"id": 555}`)
		req := webhookRequest("orders/create", body)
		req.Header.Set("X-Shopify-Hmac-Sha256", signWebhook(body, "wrong-secret"))

		rr := httptest.NewRecorder()
		server.handleOrderWebhook(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"error":"Invalid webhook signature"}`, rr.Body.String())
	})

	t.Run("missing signature rejected", func(t *testing.T) {
		server, _, _ := newTestServer(t, cfg)

		rr := httptest.NewRecorder()
		server.handleOrderWebhook(rr, webhookRequest("orders/create", []byte(`{"id": 555}`)))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestVerifyWebhookSignature(t *testing.T) {
	body := []byte(`{"id": 555}`)
	secret := "whsec_test"

	assert.True(t, verifyWebhookSignature(body, signWebhook(body, secret), secret))
	assert.False(t, verifyWebhookSignature(body, signWebhook(body, "other"), secret))
	assert.False(t, verifyWebhookSignature(body, "", secret))
}
