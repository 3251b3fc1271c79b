package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/merchkit/ordertags/internal/metrics"
	"github.com/merchkit/ordertags/internal/repository"
	"github.com/merchkit/ordertags/internal/shopify"
	"github.com/merchkit/ordertags/internal/storage"
)

const (
	actionAddTag      = "addTag"
	actionRemoveTag   = "removeTag"
	actionUpdateOrder = "updateOrder"
)

// handleOrderAction dispatches the admin table's mutation requests on
// the actionType discriminator. Every branch requires the referenced
// order to exist; tag mutations push the recomputed full tag list back
// to the platform.
func (s *Server) handleOrderAction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondActionError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	actionType := r.PostFormValue("actionType")
	if actionType == "" {
		respondActionError(w, http.StatusBadRequest, "Missing actionType")
		return
	}

	orderID, err := strconv.ParseInt(r.PostFormValue("orderId"), 10, 64)
	if err != nil {
		respondActionError(w, http.StatusBadRequest, "Missing or invalid orderId")
		return
	}

	switch actionType {
	case actionAddTag, actionRemoveTag:
		s.handleTagAction(w, r, actionType, orderID)
	case actionUpdateOrder:
		s.handleUpdateOrder(w, r, orderID)
	default:
		respondActionError(w, http.StatusBadRequest, "Invalid action type")
	}
}

func (s *Server) handleTagAction(w http.ResponseWriter, r *http.Request, actionType string, orderID int64) {
	tagName := strings.TrimSpace(r.PostFormValue("tag"))
	if tagName == "" {
		respondActionError(w, http.StatusBadRequest, "Tag name is required")
		return
	}

	var (
		order *storage.Order
		err   error
	)
	if actionType == actionAddTag {
		order, err = s.storage.AddTag(r.Context(), orderID, tagName)
	} else {
		order, err = s.storage.RemoveTag(r.Context(), orderID, tagName)
	}
	if err != nil {
		s.respondStorageError(w, "tag action", err)
		return
	}

	metrics.TagMutationsTotal.WithLabelValues(actionType).Inc()

	// Push the full recomputed list, not a delta: the platform API
	// expects the complete desired state.
	if err := s.syncOrderTags(r, order); err != nil {
		metrics.TagSyncFailuresTotal.Inc()
		zap.S().Errorf("Outbound tag sync failed for order %s: %v", order.ShopifyOrderID, err)
		respondActionError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"tag":     tagName,
		"tags":    order.Tags,
	})
}

func (s *Server) syncOrderTags(r *http.Request, order *storage.Order) error {
	if s.syncer == nil || s.cfg.AccessToken == "" {
		zap.S().Debugf("Outbound tag sync disabled, skipping push for order %s", order.ShopifyOrderID)
		return nil
	}

	session := shopify.Session{Shop: s.cfg.ShopDomain, AccessToken: s.cfg.AccessToken}
	if order.ShopID != nil && *order.ShopID != "" {
		session.Shop = *order.ShopID
	}

	_, err := s.syncer.UpdateOrderTags(r.Context(), session, order.ShopifyOrderID, order.Tags)
	return err
}

func (s *Server) handleUpdateOrder(w http.ResponseWriter, r *http.Request, orderID int64) {
	patch, err := orderPatchFromForm(r)
	if err != nil {
		respondActionError(w, http.StatusBadRequest, err.Error())
		return
	}
	if patch.IsEmpty() {
		respondActionError(w, http.StatusBadRequest, "No order fields to update")
		return
	}

	order, err := s.storage.UpdateOrder(r.Context(), orderID, patch)
	if err != nil {
		s.respondStorageError(w, "update order", err)
		return
	}

	metrics.TagMutationsTotal.WithLabelValues(actionUpdateOrder).Inc()
	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": order})
}

// orderPatchFromForm builds a sparse patch: only fields present in the
// form are set.
func orderPatchFromForm(r *http.Request) (repository.OrderPatch, error) {
	var patch repository.OrderPatch

	if values, ok := r.PostForm["orderNumber"]; ok {
		n, err := strconv.ParseInt(values[0], 10, 64)
		if err != nil {
			return patch, errors.New("Invalid orderNumber")
		}
		patch.OrderNumber = &n
	}
	if values, ok := r.PostForm["totalPrice"]; ok {
		price, err := decimal.NewFromString(strings.TrimSpace(values[0]))
		if err != nil {
			return patch, errors.New("Invalid totalPrice")
		}
		patch.TotalPrice = &price
	}
	if values, ok := r.PostForm["paymentGateway"]; ok {
		patch.PaymentGateway = &values[0]
	}
	if values, ok := r.PostForm["customerEmail"]; ok {
		patch.CustomerEmail = &values[0]
	}
	if values, ok := r.PostForm["customerFullName"]; ok {
		patch.CustomerFullName = &values[0]
	}
	if values, ok := r.PostForm["customerAddress"]; ok {
		patch.CustomerAddress = &values[0]
	}

	return patch, nil
}

func (s *Server) respondStorageError(w http.ResponseWriter, operation string, err error) {
	switch {
	case errors.Is(err, storage.ErrOrderNotFound),
		errors.Is(err, storage.ErrTagNotFound),
		errors.Is(err, storage.ErrTagNotAssociated):
		respondActionError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrEmptyTagName):
		respondActionError(w, http.StatusBadRequest, "Tag name is required")
	default:
		zap.S().Errorf("Error handling %s: %v", operation, err)
		metrics.OperationErrorsTotal.WithLabelValues(operation).Inc()
		respondActionError(w, http.StatusInternalServerError, "Failed to process action")
	}
}
