package cloudflare

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// dnsRecordWire mirrors the provider's dns_records element shape.
type dnsRecordWire struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	Content  string `json:"content"`
	Proxied  bool   `json:"proxied"`
	TTL      int    `json:"ttl"`
	ZoneID   string `json:"zone_id"`
	ZoneName string `json:"zone_name"`
}

// apiEnvelope is the provider's standard success/errors wrapper around
// mutation responses.
type apiEnvelope struct {
	Success bool `json:"success"`
	Errors  []struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

// ListDNSRecords returns the DNS records of a zone, or nil if the result is
// not an array of record objects.
func (c *Client) ListDNSRecords(ctx context.Context, zoneID string) ([]DNSRecord, error) {
	raw, err := c.dispatch(ctx, http.MethodGet, "zones/"+zoneID+"/dns_records", nil)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Result []dnsRecordWire `json:"result"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, nil
	}
	if resp.Result == nil {
		return nil, nil
	}

	records := make([]DNSRecord, 0, len(resp.Result))
	for _, r := range resp.Result {
		records = append(records, DNSRecord{
			ID:       r.ID,
			Type:     r.Type,
			Name:     r.Name,
			Content:  r.Content,
			Proxied:  r.Proxied,
			TTL:      r.TTL,
			ZoneID:   r.ZoneID,
			ZoneName: r.ZoneName,
		})
	}

	return records, nil
}

// CreateDNSRecord creates a new DNS record in the zone.
func (c *Client) CreateDNSRecord(ctx context.Context, zoneID string, input DNSRecordInput) error {
	return c.writeDNSRecord(ctx, http.MethodPost, "zones/"+zoneID+"/dns_records", input)
}

// UpdateDNSRecord replaces an existing DNS record.
func (c *Client) UpdateDNSRecord(ctx context.Context, zoneID, recordID string, input DNSRecordInput) error {
	return c.writeDNSRecord(ctx, http.MethodPut, "zones/"+zoneID+"/dns_records/"+recordID, input)
}

func (c *Client) writeDNSRecord(ctx context.Context, method, endpoint string, input DNSRecordInput) error {
	payload := map[string]interface{}{
		"type":    input.Type,
		"name":    input.Name,
		"content": input.Content,
		"ttl":     input.TTL,
		"proxied": input.Proxied,
	}

	raw, err := c.dispatch(ctx, method, endpoint, payload)
	if err != nil {
		return err
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return ErrUnknown
	}
	if !envelope.Success {
		if len(envelope.Errors) > 0 {
			return fmt.Errorf("cloudflare API error: [%d] %s", envelope.Errors[0].Code, envelope.Errors[0].Message)
		}
		return fmt.Errorf("cloudflare API error: unknown error")
	}

	return nil
}
