package pennystocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// DefaultPath is the resource the ranking service serves the ranked list on.
const DefaultPath = "/penny-stocks"

// Failure kinds. Every error returned by FetchRankedStocks wraps exactly one
// of them.
var (
	ErrTransport   = errors.New("transport failure")
	ErrParse       = errors.New("parse failure")
	ErrEmptyResult = errors.New("empty result")
)

// FailureKind returns a short label for the failure kind wrapped by err, for
// logging.
func FailureKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrParse):
		return "parse"
	case errors.Is(err, ErrEmptyResult):
		return "empty_result"
	default:
		return "unknown"
	}
}

// Client reads the ranked list from the ranking service.
type Client struct {
	baseURL    string
	path       string
	httpClient *http.Client
}

// NewClient creates a client for the service at baseURL. An empty path selects
// DefaultPath and a nil httpClient selects a client without a timeout.
func NewClient(baseURL, path string, httpClient *http.Client) *Client {
	if path == "" {
		path = DefaultPath
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    baseURL,
		path:       path,
		httpClient: httpClient,
	}
}

// URL returns the full address FetchRankedStocks requests.
func (c *Client) URL() (string, error) {
	return url.JoinPath(c.baseURL, c.path)
}

// FetchRankedStocks issues a single GET for the ranked list. It makes one
// attempt and does not cache. A network error or non-2xx status wraps
// ErrTransport, an undecodable body wraps ErrParse, and a body without a
// top_stocks list wraps ErrEmptyResult.
func (c *Client) FetchRankedStocks(ctx context.Context) (RankedResult, error) {
	u, err := c.URL()
	if err != nil {
		return RankedResult{}, fmt.Errorf("%w: building url: %w", ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return RankedResult{}, fmt.Errorf("%w: creating request: %w", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return RankedResult{}, fmt.Errorf("%w: GET %s: %w", ErrTransport, u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return RankedResult{}, fmt.Errorf("%w: GET %s: status %d", ErrTransport, u, resp.StatusCode)
	}

	var p rankedPayload
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return RankedResult{}, fmt.Errorf("%w: decoding body: %w", ErrParse, err)
	}
	if p.TopStocks == nil {
		return RankedResult{}, fmt.Errorf("%w: no top_stocks in response", ErrEmptyResult)
	}

	return RankedResult{TopStocks: *p.TopStocks, BestPick: p.BestPick}, nil
}
