// Package session drives one load of the ranked penny stock list: it runs
// the fetch once per mount, sequences the loading state, and exposes the read
// model the UI renders from.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pennystocks/internal/dashboard"
	"pennystocks/pkg/pennystocks"
)

// State is the load lifecycle of a session.
type State int

const (
	Idle State = iota
	Loading
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Fetcher loads the ranked list. *pennystocks.Client implements it.
type Fetcher interface {
	FetchRankedStocks(ctx context.Context) (pennystocks.RankedResult, error)
}

// Outcome is what a fetch produced.
type Outcome struct {
	Result pennystocks.RankedResult
	Err    error
}

// ViewModel is the read-only snapshot the UI renders.
type ViewModel struct {
	State           State
	IsLoading       bool
	Stocks          []pennystocks.StockQuote
	BestPick        *pennystocks.StockQuote
	LastUpdated     string // empty until a successful load
	Age             string // LastUpdated relative to now
	DailyAssetIndex int
	DailyAsset      string
	Cards           []dashboard.Card
	BestCard        *dashboard.Card
}

// Controller owns the LoadState of one session. Transitions happen at most
// once: Idle to Loading on Start, then Loading to Ready or Failed on Complete.
type Controller struct {
	fetcher Fetcher
	tables  dashboard.Tables
	format  *dashboard.Formatter
	log     *slog.Logger
	now     func() time.Time

	mu       sync.Mutex
	state    State
	result   pennystocks.RankedResult
	updated  time.Time
	ctx      context.Context
	cancel   context.CancelFunc
	tornDown bool
}

// NewController creates a controller in the Idle state.
func NewController(fetcher Fetcher, tables dashboard.Tables, format *dashboard.Formatter, log *slog.Logger) *Controller {
	return &Controller{
		fetcher: fetcher,
		tables:  tables,
		format:  format,
		log:     log,
		now:     time.Now,
	}
}

// Start moves Idle to Loading and returns the fetch to run off the render
// loop. The fetch runs under a child of ctx that Teardown cancels. Only the
// first call on a live controller returns ok.
func (c *Controller) Start(ctx context.Context) (fetch func() Outcome, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Idle || c.tornDown {
		return nil, false
	}
	c.state = Loading
	c.ctx, c.cancel = context.WithCancel(ctx)
	c.log.Info("loading ranked stocks")

	fctx := c.ctx
	fetcher := c.fetcher
	return func() Outcome {
		res, err := fetcher.FetchRankedStocks(fctx)
		return Outcome{Result: res, Err: err}
	}, true
}

// Complete commits the outcome of the fetch returned by Start. It reports
// false, leaving state untouched, when the session was torn down, the fetch
// context is done, or no load is in flight.
func (c *Controller) Complete(o Outcome) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tornDown || c.state != Loading {
		c.log.Debug("discarding ranked stocks result", "state", c.state.String(), "torn_down", c.tornDown)
		return false
	}
	if err := c.ctx.Err(); err != nil {
		c.log.Debug("discarding ranked stocks result", "error", err)
		return false
	}
	defer c.cancel()

	if o.Err != nil {
		c.state = Failed
		c.log.Warn("ranked stocks unavailable", "cause", pennystocks.FailureKind(o.Err), "error", o.Err)
		return true
	}

	stocks := o.Result.TopStocks
	if stocks == nil {
		stocks = []pennystocks.StockQuote{}
	}
	c.result = pennystocks.RankedResult{TopStocks: stocks, BestPick: o.Result.BestPick}
	c.updated = c.now()
	c.state = Ready
	c.log.Info("ranked stocks loaded", "stocks", len(stocks), "best_pick", o.Result.BestPick != nil)
	return true
}

// Load runs Start, the fetch and Complete in sequence and returns the
// resulting state.
func (c *Controller) Load(ctx context.Context) State {
	if fetch, ok := c.Start(ctx); ok {
		c.Complete(fetch())
	}
	return c.State()
}

// Teardown ends the session. An in-flight fetch is cancelled and its result
// will be discarded. Safe to call more than once and from any goroutine.
func (c *Controller) Teardown() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tornDown {
		return
	}
	c.tornDown = true
	if c.cancel != nil {
		c.cancel()
	}
	if c.state == Loading {
		c.log.Info("session torn down while loading")
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// ViewModel builds the current read model. The daily asset is derived from
// the clock on every call.
func (c *Controller) ViewModel() ViewModel {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	vm := ViewModel{
		State:           c.state,
		IsLoading:       c.state == Idle || c.state == Loading,
		Stocks:          []pennystocks.StockQuote{},
		DailyAssetIndex: c.tables.DailyIndex(now),
		DailyAsset:      c.tables.DailyAsset(now),
	}

	if c.state == Ready {
		vm.Stocks = make([]pennystocks.StockQuote, len(c.result.TopStocks))
		copy(vm.Stocks, c.result.TopStocks)
		if bp := c.result.BestPick; bp != nil {
			pick := *bp
			vm.BestPick = &pick
			card := dashboard.NewCard(pick, c.tables, c.format)
			vm.BestCard = &card
		}
		vm.LastUpdated = c.format.Timestamp(c.updated)
		vm.Age = c.format.Age(c.updated, now)
	}
	vm.Cards = dashboard.NewCards(vm.Stocks, c.tables, c.format)
	return vm
}
