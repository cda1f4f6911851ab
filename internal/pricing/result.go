package pricing

// Report is the pricing result contract the upstream model is instructed to
// produce. The pipeline passes the model's object through verbatim and only
// verifies the three price fields, so this type documents the shape and
// serves tests and offline fixtures rather than gating the response.
//
// Desired but not machine-enforced: PriceLow <= PriceMid <= PriceHigh,
// 3-5 positive factors, 2-4 development areas, exactly 3 tips.
type Report struct {
	PriceLow         int               `json:"priceLow"`
	PriceMid         int               `json:"priceMid"`
	PriceHigh        int               `json:"priceHigh"`
	MarketContext    string            `json:"marketContext"`
	PositiveFactors  []Factor          `json:"positiveFactors"`
	DevelopmentAreas []DevelopmentArea `json:"developmentAreas"`
	Tips             []string          `json:"tips"`
	Confidence       string            `json:"confidence"` // "low" | "medium" | "high"
}

type Factor struct {
	Factor string `json:"factor"`
	Detail string `json:"detail"`
}

type DevelopmentArea struct {
	Area       string `json:"area"`
	Suggestion string `json:"suggestion"`
}
