package models

// Sentiment recommendations. Anything the classifier cannot place in this
// set is coerced to HOLD.
const (
	RecommendationBuy  = "BUY"
	RecommendationSell = "SELL"
	RecommendationHold = "HOLD"
)

// Recommendation is the result of sentiment classification. Note is set when
// the provider output was unusable and the safe default was substituted.
type Recommendation struct {
	Recommendation string `json:"recommendation"`
	Note           string `json:"note,omitempty"`
}

// NewsArticle is a single business headline presented on the dashboard.
type NewsArticle struct {
	ID       int    `json:"id"`
	Company  string `json:"company"`
	Headline string `json:"headline"`
	Content  string `json:"content"`
}

// ChatMessage is one turn of the assistant conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}
