package ui

import "github.com/charmbracelet/lipgloss"

// Styles.
var (
	bannerStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	dimStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	timestampStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
	symbolStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	nameStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	priceStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	volumeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	scoreStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	recStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	bestHeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3")) // black on yellow
	disclaimerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	spinnerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	headerBarStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4"))
	footerBarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8"))
	cardStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	bestCardStyle    = cardStyle.BorderForeground(lipgloss.Color("3"))
	sentimentColours = map[string]lipgloss.Color{
		"Bullish":  lipgloss.Color("10"),
		"Positive": lipgloss.Color("10"),
		"Neutral":  lipgloss.Color("245"),
		"Bearish":  lipgloss.Color("9"),
		"Negative": lipgloss.Color("9"),
	}
)

// sentimentStyle colours known sentiments; unknown ones stay unstyled.
func sentimentStyle(s string) lipgloss.Style {
	if c, ok := sentimentColours[s]; ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return lipgloss.NewStyle()
}
