package dashboard

import "pennystocks/pkg/pennystocks"

// celebrateAbove is the score above which a card gets the celebration mark.
const celebrateAbove = 2

// Card is one quote flattened to the strings the UI prints.
type Card struct {
	Symbol         string
	Name           string
	Price          string
	Volume         string
	Score          string
	Sentiment      string
	Glyph          string
	Recommendation string
	Celebrate      bool
}

// NewCard formats q for display.
func NewCard(q pennystocks.StockQuote, t Tables, f *Formatter) Card {
	return Card{
		Symbol:         q.Symbol,
		Name:           q.Name,
		Price:          f.Price(q.Price),
		Volume:         f.Volume(q.Volume),
		Score:          f.Score(q.Score),
		Sentiment:      string(q.Sentiment),
		Glyph:          t.Glyph(q.Sentiment),
		Recommendation: q.Recommendation,
		Celebrate:      q.Score > celebrateAbove,
	}
}

// NewCards formats quotes in order. It returns an empty, non-nil slice for no
// quotes.
func NewCards(quotes []pennystocks.StockQuote, t Tables, f *Formatter) []Card {
	cards := make([]Card, 0, len(quotes))
	for _, q := range quotes {
		cards = append(cards, NewCard(q, t, f))
	}
	return cards
}
