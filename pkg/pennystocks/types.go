// Package pennystocks is a Go SDK for the penny stock ranking service. It
// fetches the ranked list and best pick the service computes; it never scores
// or re-ranks anything itself.
package pennystocks

import "github.com/shopspring/decimal"

// Sentiment is the categorical label the ranking service attaches to a quote.
// The set is open: values other than the constants below are legal and must
// be carried through untouched.
type Sentiment string

const (
	SentimentBullish  Sentiment = "Bullish"
	SentimentBearish  Sentiment = "Bearish"
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
)

// StockQuote is one ranked entry as served by the ranking service.
type StockQuote struct {
	Symbol         string          `json:"symbol"`
	Name           string          `json:"name,omitempty"`
	Price          decimal.Decimal `json:"price"` // USD
	Volume         int64           `json:"volume"`
	Score          float64         `json:"score"`
	Sentiment      Sentiment       `json:"sentiment"`
	Recommendation string          `json:"recommendation"`
}

// RankedResult is the payload for one session. TopStocks keeps the service's
// order. BestPick is nil when the service sent none; it is not required to be
// an element of TopStocks.
type RankedResult struct {
	TopStocks []StockQuote `json:"top_stocks"`
	BestPick  *StockQuote  `json:"best_pick"`
}

// rankedPayload is the wire shape. TopStocks is a pointer so a missing or null
// list can be told apart from an empty one.
type rankedPayload struct {
	TopStocks *[]StockQuote `json:"top_stocks"`
	BestPick  *StockQuote   `json:"best_pick"`
}
