package models

// QuoteRequest is the payload for price quoting. Either ServiceID (catalog
// lookup) or an inline Service must be supplied.
type QuoteRequest struct {
	ServiceID     string               `json:"serviceId,omitempty"`
	Service       *Service             `json:"service,omitempty"`
	Configuration ServiceConfiguration `json:"configuration"`
}

// QuoteResponse carries the computed total and its breakdown.
type QuoteResponse struct {
	QuoteID    string         `json:"quoteId"`
	ServiceID  string         `json:"serviceId,omitempty"`
	Currency   string         `json:"currency,omitempty"`
	TotalPrice float64        `json:"totalPrice"`
	Breakdown  PriceBreakdown `json:"breakdown"`
}
