package cloudflare

import (
	"context"
	"encoding/json"
	"net/http"
)

// analyticsResponse describes the subtree of the dashboard response the
// summary is built from. Pointer fields fail closed: a missing or mistyped
// leaf voids the whole decode.
type analyticsResponse struct {
	Result *struct {
		Totals *struct {
			Requests *struct {
				Cached   *int           `json:"cached"`
				Uncached *int           `json:"uncached"`
				Country  map[string]int `json:"country"`
			} `json:"requests"`
			Threats *struct {
				All *int `json:"all"`
			} `json:"threats"`
			Pageviews *struct {
				All *int `json:"all"`
			} `json:"pageviews"`
		} `json:"totals"`
	} `json:"result"`
}

// GetAnalytics returns the dashboard totals for a zone, or nil if the
// response does not carry every required field. Extraction is all-or-nothing:
// partial summaries are never returned.
func (c *Client) GetAnalytics(ctx context.Context, zoneID string) (*AnalyticsSummary, error) {
	raw, err := c.dispatch(ctx, http.MethodGet, "zones/"+zoneID+"/analytics/dashboard", nil)
	if err != nil {
		return nil, err
	}

	var resp analyticsResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, nil
	}

	if resp.Result == nil || resp.Result.Totals == nil {
		return nil, nil
	}
	totals := resp.Result.Totals
	if totals.Requests == nil || totals.Threats == nil || totals.Pageviews == nil {
		return nil, nil
	}
	requests := totals.Requests
	if requests.Cached == nil || requests.Uncached == nil || requests.Country == nil {
		return nil, nil
	}
	if totals.Threats.All == nil || totals.Pageviews.All == nil {
		return nil, nil
	}

	return &AnalyticsSummary{
		RequestsCached:   *requests.Cached,
		RequestsUncached: *requests.Uncached,
		TopCountries:     requests.Country,
		ThreatsTotal:     *totals.Threats.All,
		PageviewsTotal:   *totals.Pageviews.All,
	}, nil
}
