package ui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"pennystocks/internal/dashboard"
	"pennystocks/internal/session"
	"pennystocks/pkg/pennystocks"
)

type stubFetcher struct {
	result pennystocks.RankedResult
	err    error
}

func (s stubFetcher) FetchRankedStocks(ctx context.Context) (pennystocks.RankedResult, error) {
	return s.result, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newController(f session.Fetcher) *session.Controller {
	return session.NewController(f, dashboard.DefaultTables(), dashboard.NewFormatter(language.AmericanEnglish), discardLogger())
}

func abcQuote() pennystocks.StockQuote {
	return pennystocks.StockQuote{
		Symbol:         "ABC",
		Price:          decimal.RequireFromString("1.5"),
		Volume:         10000,
		Score:          3,
		Sentiment:      pennystocks.SentimentBullish,
		Recommendation: "Buy",
	}
}

// runInit executes the commands Init returns and collects the messages that
// are not spinner ticks.
func runInit(t *testing.T, m Model) []tea.Msg {
	t.Helper()
	cmd := m.Init()
	if cmd == nil {
		return nil
	}
	var cmds []tea.Cmd
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		cmds = msg
	default:
		return []tea.Msg{msg}
	}
	var msgs []tea.Msg
	for _, c := range cmds {
		if c == nil {
			continue
		}
		msgs = append(msgs, c())
	}
	return msgs
}

func findLoaded(msgs []tea.Msg) (loadedMsg, bool) {
	for _, msg := range msgs {
		if lm, ok := msg.(loadedMsg); ok {
			return lm, true
		}
	}
	return loadedMsg{}, false
}

func TestRenderContentBestPick(t *testing.T) {
	q := abcQuote()
	ctrl := newController(stubFetcher{result: pennystocks.RankedResult{
		TopStocks: []pennystocks.StockQuote{q},
		BestPick:  &q,
	}})
	ctrl.Load(context.Background())

	out := RenderContent(ctrl.ViewModel(), 120)
	for _, want := range []string{"ABC", "$1.50", "10,000", dashboard.GlyphRocket, dashboard.GlyphCelebrate, bestPickTitle, "Last updated at:", "Today's art:"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered content missing %q", want)
		}
	}
	if !strings.Contains(out, bestHeaderStyle.Render(" "+bestPickTitle+" ")) {
		t.Error("best pick header not rendered")
	}
	// One grid card plus the best pick card.
	if n := strings.Count(out, "Recommendation:"); n != 2 {
		t.Errorf("Recommendation lines = %d, want 2", n)
	}
}

func TestRenderContentEmptyMatchesFailure(t *testing.T) {
	empty := newController(stubFetcher{result: pennystocks.RankedResult{TopStocks: []pennystocks.StockQuote{}}})
	if empty.Load(context.Background()) != session.Ready {
		t.Fatal("empty payload should reach ready")
	}
	failed := newController(stubFetcher{err: pennystocks.ErrTransport})
	if failed.Load(context.Background()) != session.Failed {
		t.Fatal("transport error should reach failed")
	}

	emptyVM := empty.ViewModel()
	out := RenderContent(emptyVM, 100)
	for _, marker := range []string{bestPickTitle, bestHeaderStyle.Render(" " + bestPickTitle + " "), "Today's art:"} {
		if strings.Contains(out, marker) {
			t.Errorf("empty result rendered best pick marker %q", marker)
		}
	}
	if !strings.Contains(out, emptyMessage) {
		t.Errorf("empty result missing %q", emptyMessage)
	}

	// Apart from the capture time, a failure renders like an empty result.
	emptyVM.LastUpdated, emptyVM.Age = "", ""
	if got, want := RenderContent(failed.ViewModel(), 100), RenderContent(emptyVM, 100); got != want {
		t.Errorf("failed rendering differs from empty rendering:\n%s\n---\n%s", got, want)
	}
}

func TestRenderContentKeepsOrder(t *testing.T) {
	syms := []string{"ZZZ", "AAA", "MMM", "BBB", "YYY"}
	var quotes []pennystocks.StockQuote
	for _, s := range syms {
		q := abcQuote()
		q.Symbol = s
		quotes = append(quotes, q)
	}
	ctrl := newController(stubFetcher{result: pennystocks.RankedResult{TopStocks: quotes}})
	ctrl.Load(context.Background())

	// Narrow width: one card per row, so vertical order is payload order.
	out := RenderContent(ctrl.ViewModel(), 40)
	last := -1
	for _, s := range syms {
		idx := strings.Index(out, s)
		if idx < 0 {
			t.Fatalf("symbol %s missing", s)
		}
		if idx < last {
			t.Errorf("symbol %s rendered out of order", s)
		}
		last = idx
	}
}

func TestRenderContentSmallWidth(t *testing.T) {
	ctrl := newController(stubFetcher{result: pennystocks.RankedResult{TopStocks: []pennystocks.StockQuote{abcQuote()}}})
	ctrl.Load(context.Background())
	if out := RenderContent(ctrl.ViewModel(), 5); !strings.Contains(out, "ABC") {
		t.Error("narrow rendering lost the card")
	}
}

func TestModelLoadsOnInit(t *testing.T) {
	q := abcQuote()
	ctrl := newController(stubFetcher{result: pennystocks.RankedResult{TopStocks: []pennystocks.StockQuote{q}, BestPick: &q}})
	m := NewModel(context.Background(), ctrl, 0, discardLogger())

	msgs := runInit(t, m)
	if ctrl.State() != session.Loading {
		t.Fatalf("state after Init = %v, want loading", ctrl.State())
	}
	if !strings.Contains(m.View(), loadingMessage) {
		t.Errorf("View() while loading = %q", m.View())
	}

	var tm tea.Model = m
	tm, _ = tm.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	lm, ok := findLoaded(msgs)
	if !ok {
		t.Fatal("Init did not issue the fetch")
	}
	tm, _ = tm.Update(lm)

	if ctrl.State() != session.Ready {
		t.Fatalf("state = %v, want ready", ctrl.State())
	}
	view := tm.View()
	for _, want := range []string{"stocks: 1", "best: ABC", "$1.50"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	// A second Init on the same session does not fetch again.
	if _, again := findLoaded(runInit(t, tm.(Model))); again {
		t.Error("second Init issued another fetch")
	}
}

func TestModelQuitTearsDown(t *testing.T) {
	ctrl := newController(stubFetcher{result: pennystocks.RankedResult{TopStocks: []pennystocks.StockQuote{abcQuote()}}})
	m := NewModel(context.Background(), ctrl, 80, discardLogger())
	msgs := runInit(t, m)

	var tm tea.Model = m
	tm, cmd := tm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key did not return tea.Quit")
	}

	// The response arriving after teardown is dropped.
	lm, ok := findLoaded(msgs)
	if !ok {
		t.Fatal("Init did not issue the fetch")
	}
	tm.Update(lm)
	if ctrl.State() != session.Loading {
		t.Errorf("state = %v, want loading after teardown", ctrl.State())
	}
	if n := len(ctrl.ViewModel().Stocks); n != 0 {
		t.Errorf("stocks after teardown = %d, want 0", n)
	}
}

func TestModelFailureView(t *testing.T) {
	ctrl := newController(stubFetcher{err: errors.New("boom")})
	m := NewModel(context.Background(), ctrl, 0, discardLogger())
	msgs := runInit(t, m)

	var tm tea.Model = m
	tm, _ = tm.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	lm, _ := findLoaded(msgs)
	tm, _ = tm.Update(lm)

	if ctrl.State() != session.Failed {
		t.Fatalf("state = %v, want failed", ctrl.State())
	}
	view := tm.View()
	if !strings.Contains(view, "stocks: 0") {
		t.Errorf("View() missing stock count: %q", view)
	}
	if strings.Contains(view, "best:") {
		t.Error("failed view shows a best pick")
	}
}

func TestPadOrTrunc(t *testing.T) {
	if got := padOrTrunc("abc", 5); got != "abc  " {
		t.Errorf("padOrTrunc pad = %q", got)
	}
	if got := padOrTrunc("abcdef", 3); got != "abc" {
		t.Errorf("padOrTrunc trunc = %q", got)
	}
}
