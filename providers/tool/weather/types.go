package weather

// Input holds the arguments for [Lookup]. Field tags define the argument
// names accepted from the model's Action line.
type Input struct {
	City string `json:"city"`
}

// === Internal API Response Types ===

// wttrAPIResponse models the subset of the wttr.in JSON payload (?format=j1)
// the tool reads. The API reports numeric values as strings.
type wttrAPIResponse struct {
	CurrentCondition []wttrCurrentCondition `json:"current_condition"`
}

type wttrCurrentCondition struct {
	TempC       string          `json:"temp_C"`
	FeelsLikeC  string          `json:"FeelsLikeC"`
	Humidity    string          `json:"humidity"`
	WeatherDesc []wttrValueItem `json:"weatherDesc"`
}

type wttrValueItem struct {
	Value string `json:"value"`
}
