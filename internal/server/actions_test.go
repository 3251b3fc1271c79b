package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/merchkit/ordertags/internal/config"
	"github.com/merchkit/ordertags/internal/repository"
	"github.com/merchkit/ordertags/internal/shopify"
	"github.com/merchkit/ordertags/internal/storage"
)

func actionRequest(form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/orders/action", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestHandleOrderAction_Validation(t *testing.T) {
	tests := []struct {
		name           string
		form           url.Values
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "missing actionType",
			form:           url.Values{"orderId": {"10"}},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing actionType",
		},
		{
			name:           "missing orderId",
			form:           url.Values{"actionType": {"addTag"}, "tag": {"vip"}},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing or invalid orderId",
		},
		{
			name:           "non-numeric orderId",
			form:           url.Values{"actionType": {"addTag"}, "orderId": {"abc"}, "tag": {"vip"}},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing or invalid orderId",
		},
		{
			name:           "unknown action type",
			form:           url.Values{"actionType": {"explode"}, "orderId": {"10"}},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid action type",
		},
		{
			name:           "tag action without tag",
			form:           url.Values{"actionType": {"addTag"}, "orderId": {"10"}},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Tag name is required",
		},
		{
			name:           "tag action with blank tag",
			form:           url.Values{"actionType": {"removeTag"}, "orderId": {"10"}, "tag": {"   "}},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Tag name is required",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server, _, _ := newTestServer(t, nil)

			rr := httptest.NewRecorder()
			server.handleOrderAction(rr, actionRequest(tc.form))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.expectedError)
		})
	}
}

func TestHandleOrderAction_AddTag(t *testing.T) {
	t.Run("success without outbound sync", func(t *testing.T) {
		server, mockStorage, _ := newTestServer(t, nil)

		mockStorage.EXPECT().
			AddTag(gomock.Any(), int64(10), "vip").
			Return(&storage.Order{ID: 10, ShopifyOrderID: "555", Tags: []string{"sale", "vip"}}, nil)

		rr := httptest.NewRecorder()
		server.handleOrderAction(rr, actionRequest(url.Values{
			"actionType": {"addTag"},
			"orderId":    {"10"},
			"tag":        {" vip "},
		}))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"success":true,"tag":"vip","tags":["sale","vip"]}`, rr.Body.String())
	})

	t.Run("pushes the full tag list to the platform", func(t *testing.T) {
		cfg := &config.Config{ShopDomain: "demo.myshopify.com", AccessToken: "shpat_test"}
		server, mockStorage, mockSyncer := newTestServer(t, cfg)

		mockStorage.EXPECT().
			AddTag(gomock.Any(), int64(10), "vip").
			Return(&storage.Order{ID: 10, ShopifyOrderID: "555", Tags: []string{"sale", "vip"}}, nil)
		mockSyncer.EXPECT().
			UpdateOrderTags(gomock.Any(),
				shopify.Session{Shop: "demo.myshopify.com", AccessToken: "shpat_test"},
				"555", []string{"sale", "vip"}).
			Return(&shopify.OrderTagsResult{ID: "gid://shopify/Order/555", Tags: []string{"sale", "vip"}}, nil)

		rr := httptest.NewRecorder()
		server.handleOrderAction(rr, actionRequest(url.Values{
			"actionType": {"addTag"},
			"orderId":    {"10"},
			"tag":        {"vip"},
		}))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("order shop overrides the configured domain", func(t *testing.T) {
		cfg := &config.Config{ShopDomain: "default.myshopify.com", AccessToken: "shpat_test"}
		server, mockStorage, mockSyncer := newTestServer(t, cfg)

		shop := "other.myshopify.com"
		mockStorage.EXPECT().
			AddTag(gomock.Any(), int64(10), "vip").
			Return(&storage.Order{ID: 10, ShopifyOrderID: "555", ShopID: &shop, Tags: []string{"vip"}}, nil)
		mockSyncer.EXPECT().
			UpdateOrderTags(gomock.Any(),
				shopify.Session{Shop: "other.myshopify.com", AccessToken: "shpat_test"},
				"555", []string{"vip"}).
			Return(&shopify.OrderTagsResult{}, nil)

		rr := httptest.NewRecorder()
		server.handleOrderAction(rr, actionRequest(url.Values{
			"actionType": {"addTag"},
			"orderId":    {"10"},
			"tag":        {"vip"},
		}))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("sync failure is reported", func(t *testing.T) {
		cfg := &config.Config{ShopDomain: "demo.myshopify.com", AccessToken: "shpat_test"}
		server, mockStorage, mockSyncer := newTestServer(t, cfg)

		mockStorage.EXPECT().
			AddTag(gomock.Any(), int64(10), "vip").
			Return(&storage.Order{ID: 10, ShopifyOrderID: "555", Tags: []string{"vip"}}, nil)
		mockSyncer.EXPECT().
			UpdateOrderTags(gomock.Any(), gomock.Any(), "555", []string{"vip"}).
			Return(nil, assert.AnError)

		rr := httptest.NewRecorder()
		server.handleOrderAction(rr, actionRequest(url.Values{
			"actionType": {"addTag"},
			"orderId":    {"10"},
			"tag":        {"vip"},
		}))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), `"success":false`)
	})

	t.Run("order not found", func(t *testing.T) {
		server, mockStorage, _ := newTestServer(t, nil)

		mockStorage.EXPECT().
			AddTag(gomock.Any(), int64(99), "vip").
			Return(nil, storage.ErrOrderNotFound)

		rr := httptest.NewRecorder()
		server.handleOrderAction(rr, actionRequest(url.Values{
			"actionType": {"addTag"},
			"orderId":    {"99"},
			"tag":        {"vip"},
		}))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestHandleOrderAction_RemoveTag(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server, mockStorage, _ := newTestServer(t, nil)

		mockStorage.EXPECT().
			RemoveTag(gomock.Any(), int64(10), "vip").
			Return(&storage.Order{ID: 10, ShopifyOrderID: "555", Tags: []string{"sale"}}, nil)

		rr := httptest.NewRecorder()
		server.handleOrderAction(rr, actionRequest(url.Values{
			"actionType": {"removeTag"},
			"orderId":    {"10"},
			"tag":        {"vip"},
		}))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"success":true,"tag":"vip","tags":["sale"]}`, rr.Body.String())
	})

	t.Run("tag not associated", func(t *testing.T) {
		server, mockStorage, _ := newTestServer(t, nil)

		mockStorage.EXPECT().
			RemoveTag(gomock.Any(), int64(10), "vip").
			Return(nil, storage.ErrTagNotAssociated)

		rr := httptest.NewRecorder()
		server.handleOrderAction(rr, actionRequest(url.Values{
			"actionType": {"removeTag"},
			"orderId":    {"10"},
			"tag":        {"vip"},
		}))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "tag not associated with order")
	})

	t.Run("tag does not exist", func(t *testing.T) {
		server, mockStorage, _ := newTestServer(t, nil)

		mockStorage.EXPECT().
			RemoveTag(gomock.Any(), int64(10), "ghost").
			Return(nil, storage.ErrTagNotFound)

		rr := httptest.NewRecorder()
		server.handleOrderAction(rr, actionRequest(url.Values{
			"actionType": {"removeTag"},
			"orderId":    {"10"},
			"tag":        {"ghost"},
		}))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestHandleOrderAction_UpdateOrder(t *testing.T) {
	t.Run("success with sparse patch", func(t *testing.T) {
		server, mockStorage, _ := newTestServer(t, nil)

		mockStorage.EXPECT().
			UpdateOrder(gomock.Any(), int64(10), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, patch repository.OrderPatch) (*storage.Order, error) {
				require.NotNil(t, patch.TotalPrice)
				assert.True(t, patch.TotalPrice.Equal(decimal.RequireFromString("99.90")))
				require.NotNil(t, patch.CustomerEmail)
				assert.Equal(t, "jane@example.com", *patch.CustomerEmail)
				assert.Nil(t, patch.OrderNumber)
				return &storage.Order{ID: 10, ShopifyOrderID: "555", Tags: []string{}}, nil
			})

		rr := httptest.NewRecorder()
		server.handleOrderAction(rr, actionRequest(url.Values{
			"actionType":    {"updateOrder"},
			"orderId":       {"10"},
			"totalPrice":    {"99.90"},
			"customerEmail": {"jane@example.com"},
		}))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"success":true`)
	})

	t.Run("invalid totalPrice", func(t *testing.T) {
		server, _, _ := newTestServer(t, nil)

		rr := httptest.NewRecorder()
		server.handleOrderAction(rr, actionRequest(url.Values{
			"actionType": {"updateOrder"},
			"orderId":    {"10"},
			"totalPrice": {"not-a-price"},
		}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid totalPrice")
	})

	t.Run("invalid orderNumber", func(t *testing.T) {
		server, _, _ := newTestServer(t, nil)

		rr := httptest.NewRecorder()
		server.handleOrderAction(rr, actionRequest(url.Values{
			"actionType":  {"updateOrder"},
			"orderId":     {"10"},
			"orderNumber": {"ninth"},
		}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid orderNumber")
	})

	t.Run("no fields to update", func(t *testing.T) {
		server, _, _ := newTestServer(t, nil)

		rr := httptest.NewRecorder()
		server.handleOrderAction(rr, actionRequest(url.Values{
			"actionType": {"updateOrder"},
			"orderId":    {"10"},
		}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "No order fields to update")
	})

	t.Run("order not found", func(t *testing.T) {
		server, mockStorage, _ := newTestServer(t, nil)

		mockStorage.EXPECT().
			UpdateOrder(gomock.Any(), int64(99), gomock.Any()).
			Return(nil, storage.ErrOrderNotFound)

		rr := httptest.NewRecorder()
		server.handleOrderAction(rr, actionRequest(url.Values{
			"actionType":    {"updateOrder"},
			"orderId":       {"99"},
			"customerEmail": {"jane@example.com"},
		}))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
