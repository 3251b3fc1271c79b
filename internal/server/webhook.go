package server

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/merchkit/ordertags/internal/metrics"
	"github.com/merchkit/ordertags/internal/shopify"
	"github.com/merchkit/ordertags/internal/storage"
)

const maxWebhookBody = 2 << 20

const (
	topicOrdersCreate  = "orders/create"
	topicOrdersUpdated = "orders/updated"
	topicOrdersEdited  = "orders/edited"
)

// handleOrderWebhook applies an inbound order event: normalize the
// payload, upsert the order, and reconcile its tag associations to
// exactly the payload's tag list. Retries are the platform's job; the
// upsert makes them safe.
func (s *Server) handleOrderWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read webhook body")
		return
	}

	if s.cfg.WebhookSecret != "" && !verifyWebhookSignature(body, r.Header.Get("X-Shopify-Hmac-Sha256"), s.cfg.WebhookSecret) {
		respondError(w, http.StatusUnauthorized, "Invalid webhook signature")
		return
	}

	topic := r.Header.Get("X-Shopify-Topic")
	shop := r.Header.Get("X-Shopify-Shop-Domain")
	zap.S().Infof("Received %s webhook for %s", topic, shop)

	var payload shopify.OrderPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid webhook payload")
		return
	}

	var proj shopify.OrderProjection
	switch topic {
	case topicOrdersCreate, topicOrdersUpdated:
		proj = shopify.NormalizeCreate(payload, shop)
	case topicOrdersEdited:
		proj = shopify.NormalizeEdit(payload, shop)
	default:
		// Unknown topics are acknowledged, not processed.
		respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
		return
	}

	order, err := s.storage.ApplyOrderEvent(r.Context(), proj.Record(), proj.Tags)
	if err != nil {
		if errors.Is(err, storage.ErrEmptyShopifyID) {
			respondError(w, http.StatusBadRequest, "Webhook payload has no order id")
			return
		}
		zap.S().Errorf("Webhook processing error: %v", err)
		metrics.OperationErrorsTotal.WithLabelValues("webhook").Inc()
		respondError(w, http.StatusInternalServerError, "Failed to process webhook")
		return
	}

	metrics.WebhooksProcessedTotal.WithLabelValues(topic).Inc()
	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": order})
}

func verifyWebhookSignature(body []byte, signature, secret string) bool {
	if signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
