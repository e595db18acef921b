package cloudflare

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestEventWindowStart(t *testing.T) {
	now := time.Date(2020, 8, 27, 6, 27, 40, 123000000, time.UTC)

	got := eventWindowStart(now)
	want := "2020-08-26T06:34:20.123Z"
	if got != want {
		t.Errorf("Expected since '%s', got '%s'", want, got)
	}
}

func TestEventWindowStartIsOneDayMinus400Seconds(t *testing.T) {
	now := time.Now().UTC()

	since, err := time.Parse("2006-01-02T15:04:05.000Z", eventWindowStart(now))
	if err != nil {
		t.Fatalf("Failed to parse since timestamp: %v", err)
	}

	if !since.Before(now) {
		t.Errorf("Expected since %v to be in the past relative to %v", since, now)
	}

	want := now.AddDate(0, 0, -1).Add(400 * time.Second).Truncate(time.Millisecond)
	if !since.Equal(want) {
		t.Errorf("Expected since %v, got %v", want, since)
	}
}

func TestFirewallEventsRequestShape(t *testing.T) {
	body := firewallEventsRequest("zone-1", time.Date(2020, 8, 27, 6, 27, 40, 0, time.UTC))

	query, ok := body["query"].(string)
	if !ok {
		t.Fatal("Expected a query string in the envelope")
	}
	if !strings.Contains(query, "limit: 10") {
		t.Error("Expected the query to request at most 10 events")
	}
	if !strings.Contains(query, "orderBy: [datetime_DESC]") {
		t.Error("Expected the query to order by datetime descending")
	}

	variables, ok := body["variables"].(map[string]interface{})
	if !ok {
		t.Fatal("Expected a variables object in the envelope")
	}
	if variables["zoneTag"] != "zone-1" {
		t.Errorf("Expected zoneTag 'zone-1', got %v", variables["zoneTag"])
	}
	filter, ok := variables["filter"].(map[string]interface{})
	if !ok {
		t.Fatal("Expected a filter object in the variables")
	}
	if filter["datetime_geq"] != "2020-08-26T06:34:20.000Z" {
		t.Errorf("Expected datetime_geq '2020-08-26T06:34:20.000Z', got %v", filter["datetime_geq"])
	}
}

func TestListRecentFirewallEvents(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody []byte
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{
			"data": {
				"viewer": {
					"zones": [
						{
							"firewallEventsAdaptive": [
								{"action":"block","clientCountryName":"AU","clientIP":"220.253.122.100","datetime":"2020-08-26T06:34:20Z","source":"waf"},
								{"action":"log","clientCountryName":"GB","clientIP":"203.0.113.69","datetime":"2020-04-24T10:11:03Z","source":"waf"}
							]
						}
					]
				}
			},
			"errors": null
		}`))
	})

	events, err := c.ListRecentFirewallEvents(context.Background(), "zone-1")
	if err != nil {
		t.Fatalf("ListRecentFirewallEvents() failed: %v", err)
	}

	if gotPath != "/graphql" || gotMethod != http.MethodPost {
		t.Errorf("Expected POST /graphql, got %s %s", gotMethod, gotPath)
	}

	var envelope struct {
		Query     string `json:"query"`
		Variables struct {
			ZoneTag string `json:"zoneTag"`
			Filter  struct {
				DatetimeGeq string `json:"datetime_geq"`
			} `json:"filter"`
		} `json:"variables"`
	}
	if err := json.Unmarshal(gotBody, &envelope); err != nil {
		t.Fatalf("Failed to decode request body: %v", err)
	}
	if envelope.Variables.ZoneTag != "zone-1" {
		t.Errorf("Expected zoneTag 'zone-1', got '%s'", envelope.Variables.ZoneTag)
	}
	if envelope.Variables.Filter.DatetimeGeq == "" {
		t.Error("Expected a datetime_geq filter")
	}

	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}
	first := events[0]
	if first.Action != "block" || first.OriginIP != "220.253.122.100" || first.CountryCode != "AU" || first.Timestamp != "2020-08-26T06:34:20Z" {
		t.Errorf("Unexpected first event: %+v", first)
	}
}

func TestListRecentFirewallEventsNoneCases(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "zero zones", body: `{"data":{"viewer":{"zones":[]}}}`},
		{name: "missing events array", body: `{"data":{"viewer":{"zones":[{}]}}}`},
		{name: "missing viewer", body: `{"data":{}}`},
		{name: "missing data", body: `{"errors":[{"message":"bad query"}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			})

			events, err := c.ListRecentFirewallEvents(context.Background(), "zone-1")
			if err != nil {
				t.Fatalf("ListRecentFirewallEvents() failed: %v", err)
			}
			if events != nil {
				t.Errorf("Expected no events, got %v", events)
			}
		})
	}
}
