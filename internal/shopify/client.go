package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxResponseSize caps the admin API response body (1MB).
const maxResponseSize = 1 << 20

const orderUpdateMutation = `
    mutation UpdateOrderTags($input: OrderInput!) {
      orderUpdate(input: $input) {
        order {
          id
          tags
        }
        userErrors {
          field
          message
        }
      }
    }
  `

// Session identifies the shop the outbound call is made on behalf of.
type Session struct {
	Shop        string
	AccessToken string
}

// OrderTagsResult is the order state reported back by the mutation.
type OrderTagsResult struct {
	ID   string   `json:"id"`
	Tags []string `json:"tags"`
}

type graphqlRequest struct {
	Query     string      `json:"query"`
	Variables interface{} `json:"variables"`
}

type orderUpdateResponse struct {
	Data *struct {
		OrderUpdate struct {
			Order      *OrderTagsResult `json:"order"`
			UserErrors []struct {
				Field   []string `json:"field"`
				Message string   `json:"message"`
			} `json:"userErrors"`
		} `json:"orderUpdate"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Client issues admin API mutations against a shop's own GraphQL
// endpoint. One attempt per call: retrying is the caller's business.
type Client struct {
	httpClient *http.Client
	apiVersion string

	// baseURL replaces the per-shop endpoint when set; tests use it.
	baseURL string
}

func NewClient(apiVersion string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiVersion: apiVersion,
	}
}

// UpdateOrderTags sets the order's tags on Shopify to exactly the given
// list. The full desired list must be passed, not a delta. Transport
// errors and the first reported user error both fail the call.
func (c *Client) UpdateOrderTags(ctx context.Context, session Session, shopifyOrderID string, tags []string) (*OrderTagsResult, error) {
	if tags == nil {
		tags = []string{}
	}

	variables := map[string]interface{}{
		"input": map[string]interface{}{
			"id":   fmt.Sprintf("gid://shopify/Order/%s", shopifyOrderID),
			"tags": tags,
		},
	}

	body, err := json.Marshal(graphqlRequest{Query: orderUpdateMutation, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("failed to encode order tags mutation: %w", err)
	}

	endpoint := c.baseURL
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s/admin/api/%s/graphql.json", session.Shop, c.apiVersion)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build order tags request: %w", err)
	}
	req.Header.Set("X-Shopify-Access-Token", session.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to update order tags: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read order tags response: %w", err)
	}

	var result orderUpdateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to decode order tags response (status %d): %w", resp.StatusCode, err)
	}

	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("failed to update order tags: %s", result.Errors[0].Message)
	}
	if result.Data == nil {
		return nil, fmt.Errorf("failed to update order tags: empty response (status %d)", resp.StatusCode)
	}
	if userErrors := result.Data.OrderUpdate.UserErrors; len(userErrors) > 0 {
		return nil, fmt.Errorf("failed to update order tags: %s", userErrors[0].Message)
	}

	return result.Data.OrderUpdate.Order, nil
}
