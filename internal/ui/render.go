package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	figure "github.com/common-nighthawk/go-figure"

	"pennystocks/internal/dashboard"
	"pennystocks/internal/session"
)

const (
	title          = "Top Penny Stocks (Predicted to Skyrocket)"
	bestPickTitle  = "Best Pick of the Day"
	emptyMessage   = "(no penny stocks to show)"
	cardWidth      = 34
	bestCardWidth  = 46
	cardGap        = 1
	defaultWidth   = 100
	minWidth       = 24
	loadingMessage = "Loading penny stocks..."
)

const explanation = "How This Works: stock data is fetched from the ranking service, which " +
	"keeps stocks priced under $5 (penny stocks), scores them on volume, price and other " +
	"factors, and returns the top picks. The highest-scoring pick gets its own card " +
	"above the list."

const disclaimer = "Disclaimer: this application provides information for educational and " +
	"entertainment purposes only. It is not financial advice. Penny stocks can be highly " +
	"volatile and risky; invest at your own discretion. Always do your own research or " +
	"consult a professional advisor before making any investment decisions."

// RenderContent renders a view model at the given width. It is used for the
// TUI viewport and for plain output alike.
func RenderContent(vm session.ViewModel, width int) string {
	switch {
	case width <= 0:
		width = defaultWidth
	case width < minWidth:
		width = minWidth
	}
	var b strings.Builder

	b.WriteString(renderBanner(width))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Render(explanation))
	b.WriteString("\n")
	if vm.LastUpdated != "" {
		stamp := "Last updated at: " + vm.LastUpdated
		if vm.Age != "" {
			stamp += " (" + vm.Age + ")"
		}
		b.WriteString(timestampStyle.Render(stamp))
		b.WriteString("\n")
	}

	if vm.BestCard != nil {
		b.WriteString("\n")
		b.WriteString(bestHeaderStyle.Render(" " + bestPickTitle + " "))
		b.WriteString("\n")
		b.WriteString(bestCardStyle.Width(min(bestCardWidth, width-2)).Render(cardBody(*vm.BestCard, vm.DailyAsset)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if len(vm.Cards) == 0 {
		b.WriteString(dimStyle.Render(emptyMessage))
		b.WriteString("\n")
	} else {
		b.WriteString(renderGrid(vm.Cards, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(disclaimerStyle.Width(width).Render(disclaimer))
	b.WriteString("\n")
	return b.String()
}

// renderBanner renders the figlet banner, or nothing when it would not fit.
func renderBanner(width int) string {
	fig := figure.NewFigure("Penny Stocks", "", false)
	text := strings.TrimRight(fig.String(), "\n")
	if lipgloss.Width(text) > width {
		return ""
	}
	return bannerStyle.Render(text) + "\n"
}

// renderGrid lays the cards out left to right, wrapping to as many rows as the
// width needs. Payload order is kept.
func renderGrid(cards []dashboard.Card, width int) string {
	w := min(cardWidth, width-2)
	perRow := width / (w + 2 + cardGap)
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := min(start+perRow, len(cards))
		cells := make([]string, 0, end-start)
		for i, c := range cards[start:end] {
			cell := cardStyle.Width(w).Render(cardBody(c, ""))
			if i > 0 {
				cell = lipgloss.NewStyle().MarginLeft(cardGap).Render(cell)
			}
			cells = append(cells, cell)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// cardBody is the text of one card. asset, when set, is the daily artwork
// shown on the best pick.
func cardBody(c dashboard.Card, asset string) string {
	var lines []string
	if asset != "" {
		lines = append(lines, dimStyle.Render("Today's art: "+asset), "")
	}

	head := symbolStyle.Render(c.Symbol)
	if c.Name != "" && c.Name != c.Symbol {
		head += " " + nameStyle.Render(c.Name)
	}
	lines = append(lines, head)

	lines = append(lines,
		fmt.Sprintf("Price: %s %s", priceStyle.Render(c.Price), dashboard.GlyphMoney),
		fmt.Sprintf("Volume: %s %s", volumeStyle.Render(c.Volume), dashboard.GlyphExplode),
	)

	score := "Score: " + scoreStyle.Render(c.Score)
	if c.Celebrate {
		score += " " + dashboard.GlyphCelebrate
	}
	lines = append(lines,
		score,
		fmt.Sprintf("Sentiment: %s %s", sentimentStyle(c.Sentiment).Render(c.Sentiment), c.Glyph),
		"Recommendation: "+recStyle.Render(c.Recommendation),
	)
	return strings.Join(lines, "\n")
}
