// Package dashboard holds the display-side tables and formatting for ranked
// penny stocks: the daily rotation of best-pick artwork, the sentiment glyphs,
// and the per-card strings the UI prints.
package dashboard

import (
	"time"

	"pennystocks/pkg/pennystocks"
)

// Glyphs.
const (
	GlyphRocket    = "🚀"
	GlyphBear      = "🐻"
	GlyphUptick    = "💹"
	GlyphNeutral   = "😐"
	GlyphWarning   = "⚠️"
	GlyphQuestion  = "❓"
	GlyphCelebrate = "🎉"
	GlyphMoney     = "💵"
	GlyphExplode   = "💥"
)

var defaultRotation = []string{
	"https://i.imgur.com/doMt0IZ.jpeg",
	"https://i.imgur.com/jIkKjYh.jpg",
	"https://i.imgur.com/P4rDs7k.jpg",
	"https://i.imgur.com/WG2XX0n.jpg",
	"https://i.imgur.com/hqqAmS7.jpg",
	"https://i.imgur.com/3FMbUXp.jpg",
}

// Tables is the fixed configuration the view derives display values from.
// Callers get their own copy and nothing mutates it after construction.
type Tables struct {
	rotation []string
	glyphs   map[pennystocks.Sentiment]string
	fallback string
}

// DefaultTables returns the reference rotation (six assets) and glyph map.
func DefaultTables() Tables {
	return NewTables(nil)
}

// NewTables returns the default glyph map with the given rotation assets. An
// empty rotation selects the default one.
func NewTables(rotation []string) Tables {
	if len(rotation) == 0 {
		rotation = defaultRotation
	}
	r := make([]string, len(rotation))
	copy(r, rotation)
	return Tables{
		rotation: r,
		glyphs: map[pennystocks.Sentiment]string{
			pennystocks.SentimentBullish:  GlyphRocket,
			pennystocks.SentimentBearish:  GlyphBear,
			pennystocks.SentimentPositive: GlyphUptick,
			pennystocks.SentimentNeutral:  GlyphNeutral,
			pennystocks.SentimentNegative: GlyphWarning,
		},
		fallback: GlyphQuestion,
	}
}

// RotationSize is the number of assets in the daily rotation.
func (t Tables) RotationSize() int {
	return len(t.rotation)
}

// Glyph maps a sentiment to its indicator. Values outside the known set,
// including differently-cased ones, get the question-mark glyph.
func (t Tables) Glyph(s pennystocks.Sentiment) string {
	if g, ok := t.glyphs[s]; ok {
		return g
	}
	return t.fallback
}

// DailyIndex returns the rotation slot for the calendar day of now, in now's
// location: day-of-year (January 1 = 1) modulo the rotation size.
func (t Tables) DailyIndex(now time.Time) int {
	return DailyIndex(now, len(t.rotation))
}

// DailyAsset returns the rotation asset for the calendar day of now.
func (t Tables) DailyAsset(now time.Time) string {
	if len(t.rotation) == 0 {
		return ""
	}
	return t.rotation[t.DailyIndex(now)]
}

// DailyIndex is day-of-year modulo size. It returns 0 for a non-positive size.
func DailyIndex(now time.Time, size int) int {
	if size <= 0 {
		return 0
	}
	return now.YearDay() % size
}
