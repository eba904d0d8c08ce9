package models

// PriceAdjustment is one line of a breakdown. Amount-bearing lines carry the
// contribution of a room, item, delivery or area; multiplier lines carry a
// zero amount and the factor applied to the running subtotal.
type PriceAdjustment struct {
	Label      string  `json:"label"`
	Amount     float64 `json:"amount"`
	Multiplier float64 `json:"multiplier,omitempty"`
}

// PriceBreakdown is the itemized decomposition shown alongside a quote total.
type PriceBreakdown struct {
	BasePrice   float64           `json:"basePrice"`
	Adjustments []PriceAdjustment `json:"adjustments"`
	TotalPrice  float64           `json:"totalPrice"`
}
