package response_models

type PricingBreakdown struct {
	Flights        float64 `json:"flights"`
	Hotels         float64 `json:"hotels"`
	Activities     float64 `json:"activities"`
	Transportation float64 `json:"transportation"`
	Total          float64 `json:"total"`
	PerPerson      float64 `json:"per_person"`
	PerDay         float64 `json:"per_day"`
	Currency       string  `json:"currency"`
}
