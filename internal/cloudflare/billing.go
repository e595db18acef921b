package cloudflare

import (
	"context"
	"encoding/json"
	"net/http"
)

// GetCost returns the monthly price of the account's first subscription, or
// nil if the result list is empty, missing, or its first element has no
// numeric price.
func (c *Client) GetCost(ctx context.Context) (*SubscriptionCost, error) {
	raw, err := c.dispatch(ctx, http.MethodGet, "user/subscriptions", nil)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Result []json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, nil
	}
	if len(resp.Result) == 0 {
		return nil, nil
	}

	var first struct {
		Price *float64 `json:"price"`
	}
	if err := json.Unmarshal(resp.Result[0], &first); err != nil {
		return nil, nil
	}
	if first.Price == nil {
		return nil, nil
	}

	return &SubscriptionCost{Price: *first.Price}, nil
}
