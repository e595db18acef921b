package cloudflare

// Zone is a DNS-managed domain under the account. The ID is the provider's
// opaque identifier and must be passed verbatim to zone-scoped endpoints.
type Zone struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// AnalyticsSummary holds the dashboard totals extracted for one zone.
type AnalyticsSummary struct {
	RequestsCached   int            `json:"requestsCached"`
	RequestsUncached int            `json:"requestsUncached"`
	TopCountries     map[string]int `json:"topCountries"`
	ThreatsTotal     int            `json:"threatsTotal"`
	PageviewsTotal   int            `json:"pageviewsTotal"`
}

// SubscriptionCost is the monthly price of the account's subscription.
type SubscriptionCost struct {
	Price float64 `json:"price"`
}

// DNSRecord is a DNS record within a zone.
type DNSRecord struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	Content  string `json:"content"`
	Proxied  bool   `json:"proxied"`
	TTL      int    `json:"ttl"`
	ZoneID   string `json:"zoneId"`
	ZoneName string `json:"zoneName"`
}

// DNSRecordInput carries the writable fields of a DNS record.
type DNSRecordInput struct {
	Type    string `json:"type"`
	Name    string `json:"name"`
	Content string `json:"content"`
	TTL     int    `json:"ttl"`
	Proxied bool   `json:"proxied"`
}

// FirewallEvent is one logged request that matched a security rule. Action is
// provider-controlled free text; Timestamp is the provider's datetime string.
type FirewallEvent struct {
	Action      string `json:"action"`
	OriginIP    string `json:"originIP"`
	CountryCode string `json:"countryCode"`
	Timestamp   string `json:"timestamp"`
}
