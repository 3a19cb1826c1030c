// Package ui is the terminal front end: a bubbletea program that mounts a
// session, shows a spinner while the ranked list loads, then renders the best
// pick and the stock cards in a scrollable viewport.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"pennystocks/internal/session"
)

// Messages.
type loadedMsg struct {
	outcome session.Outcome
}

// Model is the bubbletea model. It owns no data of its own; everything it
// draws comes from the controller's view model.
type Model struct {
	ctx      context.Context
	ctrl     *session.Controller
	logger   *slog.Logger
	spinner  spinner.Model
	viewport viewport.Model
	ready    bool
	width    int
	height   int
	maxWidth int
}

// NewModel creates the UI for one session. maxWidth caps the content width;
// 0 uses the full terminal.
func NewModel(ctx context.Context, ctrl *session.Controller, maxWidth int, logger *slog.Logger) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle
	return Model{
		ctx:      ctx,
		ctrl:     ctrl,
		logger:   logger,
		spinner:  s,
		maxWidth: maxWidth,
	}
}

// Init mounts the session: the controller enters Loading here and the fetch
// is handed to bubbletea to run off the update loop.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if fetch, ok := m.ctrl.Start(m.ctx); ok {
		cmds = append(cmds, func() tea.Msg {
			return loadedMsg{outcome: fetch()}
		})
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.logger.Info("quit", "state", m.ctrl.State().String())
			m.ctrl.Teardown()
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerH := 1
		footerH := 1
		vpHeight := m.height - headerH - footerH
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.MouseWheelEnabled = true
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}
		m.viewport.SetContent(m.renderContent())
		return m, nil

	case loadedMsg:
		if m.ctrl.Complete(msg.outcome) && m.ready {
			m.viewport.SetContent(m.renderContent())
			m.viewport.GotoTop()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.ctrl.ViewModel().IsLoading {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	vm := m.ctrl.ViewModel()
	if vm.IsLoading {
		return m.spinner.View() + " " + loadingMessage
	}
	if !m.ready {
		return "Loading..."
	}

	headerText := fmt.Sprintf(" Top Penny Stocks    stocks: %d", len(vm.Cards))
	if vm.BestCard != nil {
		headerText += "    best: " + vm.BestCard.Symbol
	}
	if vm.LastUpdated != "" {
		headerText += "    updated: " + vm.LastUpdated
	}
	headerBar := headerBarStyle.Render(padOrTrunc(headerText+" ", m.width))

	pct := m.viewport.ScrollPercent() * 100
	footerLeft := " q quit  up/dn pgup/dn scroll"
	footerRight := fmt.Sprintf("%.0f%% ", pct)
	gap := m.width - len(footerLeft) - len(footerRight)
	if gap < 0 {
		gap = 0
	}
	footerBar := footerBarStyle.Render(padOrTrunc(footerLeft+strings.Repeat(" ", gap)+footerRight, m.width))

	return headerBar + "\n" + m.viewport.View() + "\n" + footerBar
}

func (m Model) renderContent() string {
	w := m.width
	if m.maxWidth > 0 && w > m.maxWidth {
		w = m.maxWidth
	}
	return RenderContent(m.ctrl.ViewModel(), w)
}

// padOrTrunc pads s with spaces to width, or truncates if longer.
func padOrTrunc(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
