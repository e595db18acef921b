package cloudflare

import (
	"context"
	"encoding/json"
	"net/http"
)

// ListZones returns all zones visible to the account.
//
// Extraction is per-element lenient: elements missing a string name or id are
// skipped rather than failing the whole list. The result is empty, never
// absent, on total failure or an absent result array.
func (c *Client) ListZones(ctx context.Context) ([]Zone, error) {
	raw, err := c.dispatch(ctx, http.MethodGet, "zones", nil)
	if err != nil {
		return []Zone{}, err
	}

	var resp struct {
		Result []json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return []Zone{}, nil
	}

	zones := make([]Zone, 0, len(resp.Result))
	for _, element := range resp.Result {
		var z struct {
			Name *string `json:"name"`
			ID   *string `json:"id"`
		}
		if err := json.Unmarshal(element, &z); err != nil {
			continue
		}
		if z.Name == nil || z.ID == nil {
			continue
		}
		zones = append(zones, Zone{Name: *z.Name, ID: *z.ID})
	}

	return zones, nil
}
