package server

import (
	"time"

	"github.com/google/uuid"
)

type AuditLogEntry struct {
	ID         uuid.UUID `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code"`
	Actor      string    `json:"actor,omitempty"`
	Topic      string    `json:"topic,omitempty"`
	ShopDomain string    `json:"shop_domain,omitempty"`
	OrderID    string    `json:"order_id,omitempty"`
	ActionType string    `json:"action_type,omitempty"`
	Tag        string    `json:"tag,omitempty"`
	Request    string    `json:"request,omitempty"`
	Response   string    `json:"response,omitempty"`
}
