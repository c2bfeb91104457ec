package models

// PortfolioMetrics is the aggregated view of an owner's holdings. TotalGain
// and PercentageGain carry the optimistic-max of actual arithmetic and the AI
// forecast; TotalValue and TotalCost are always actual.
type PortfolioMetrics struct {
	TotalValue     float64 `json:"total_value"`
	TotalCost      float64 `json:"total_cost"`
	TotalGain      float64 `json:"total_gain"`
	PercentageGain float64 `json:"percentage_gain"`
}

// Forecast holds the speculative gain figures parsed from a generative
// response. Zero values stand in for anything the provider failed to supply.
type Forecast struct {
	PredictedGain       float64 `json:"predicted_gain"`
	PredictedPercentage float64 `json:"predicted_percentage"`
}
