package dashboard

import (
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// TimestampLayout renders en-US capture times the way a browser's
// toLocaleString does.
const TimestampLayout = "1/2/2006, 3:04:05 PM"

// Timestamp layouts for locales other than en-US, keyed by base language.
// English outside the US uses day-first order.
var timestampLayouts = map[string]string{
	"de": "2.1.2006, 15:04:05",
	"en": "02/01/2006, 15:04:05",
	"es": "2/1/2006, 15:04:05",
	"fr": "02/01/2006 15:04:05",
	"it": "2/1/2006, 15:04:05",
	"nl": "2-1-2006, 15:04:05",
}

// isoTimestampLayout is used for locales without an entry above.
const isoTimestampLayout = "2006-01-02 15:04:05"

// Formatter renders quote values for display. Grouping separators and the
// timestamp layout follow the configured locale; the currency is always USD.
type Formatter struct {
	printer *message.Printer
	layout  string
}

// NewFormatter creates a formatter for the given locale.
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{
		printer: message.NewPrinter(tag),
		layout:  timestampLayout(tag),
	}
}

func timestampLayout(tag language.Tag) string {
	base, _ := tag.Base()
	region, _ := tag.Region()
	if base.String() == "en" && region.String() == "US" {
		return TimestampLayout
	}
	if l, ok := timestampLayouts[base.String()]; ok {
		return l
	}
	return isoTimestampLayout
}

// ParseLocale resolves a BCP 47 tag such as "en-US", falling back to
// American English for empty or malformed input.
func ParseLocale(s string) language.Tag {
	if s == "" {
		return language.AmericanEnglish
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

// Price formats a USD price as $X.XX, always with two fraction digits.
func (f *Formatter) Price(p decimal.Decimal) string {
	if p.IsNegative() {
		return "-$" + p.Neg().StringFixed(2)
	}
	return "$" + p.StringFixed(2)
}

// Volume formats a share volume with the locale's grouping separators.
func (f *Formatter) Volume(v int64) string {
	return f.printer.Sprintf("%d", v)
}

// Score formats a score in its shortest exact form (3, 2.75).
func (f *Formatter) Score(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64)
}

// Timestamp formats t in its own location using the locale's layout.
func (f *Formatter) Timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(f.layout)
}

// Age describes t relative to now, e.g. "3 minutes ago".
func (f *Formatter) Age(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.RelTime(t, now, "ago", "from now")
}
