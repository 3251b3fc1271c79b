package shopify

import (
	"encoding/json"
	"strings"
)

// OrderPayload is the order webhook body. Shopify is loose about field
// shapes across topics and API versions, so every field is optional and
// the custom types below absorb the known variants instead of failing
// the decode.
type OrderPayload struct {
	ID                  FlexString `json:"id"`
	OrderID             FlexString `json:"order_id"`
	OrderNumber         *int64     `json:"order_number"`
	TotalPrice          FlexString `json:"total_price"`
	PaymentGatewayNames []string   `json:"payment_gateway_names"`
	Customer            *Customer  `json:"customer"`
	ShippingAddress     *Address   `json:"shipping_address"`
	Tags                TagField   `json:"tags"`
}

type Customer struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type Address struct {
	Address1 string `json:"address1"`
}

// FlexString accepts a JSON string or number. Anything else decodes to
// the empty string rather than erroring.
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*s = FlexString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err == nil {
		*s = FlexString(num.String())
		return nil
	}
	*s = ""
	return nil
}

// TagField accepts the two wire shapes of the tags field: a
// comma-separated string or an array of strings.
type TagField []string

func (t *TagField) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*t = TagField(strings.Split(str, ","))
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*t = TagField(list)
		return nil
	}
	*t = nil
	return nil
}

// Names returns the trimmed, de-duplicated tag list in payload order,
// with empty entries dropped.
func (t TagField) Names() []string {
	names := make([]string, 0, len(t))
	seen := make(map[string]struct{}, len(t))
	for _, raw := range t {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
