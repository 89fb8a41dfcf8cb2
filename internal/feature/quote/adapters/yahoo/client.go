package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"finos_backend/internal/feature/quote/adapters/yahoo/dto"
	"finos_backend/internal/feature/quote/domain/entity"
	"finos_backend/internal/feature/quote/usecase"
	resolverusecase "finos_backend/internal/feature/resolver/usecase"
)

// ErrNoPrice indicates the provider answered but carried no last-traded
// price for the symbol.
var ErrNoPrice = errors.New("no price data")

// Client implements the quote provider against the Yahoo Finance v8 chart
// endpoint. It serves both the quote feature's MarketRepository and the
// resolver's PriceProber.
type Client struct {
	cfg    Config
	client *http.Client
}

var (
	_ usecase.MarketRepository    = (*Client)(nil)
	_ resolverusecase.PriceProber = (*Client)(nil)
)

// NewClient creates a Yahoo Finance client with the given configuration and
// HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// GetQuote fetches the chart meta for a symbol and maps it to a Quote.
func (y *Client) GetQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	meta, err := y.fetchMeta(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if meta.RegularMarketPrice == nil {
		return nil, fmt.Errorf("%w for %s", ErrNoPrice, symbol)
	}

	prevClose := meta.PreviousClose
	if prevClose == 0 {
		prevClose = meta.ChartPreviousClose
	}

	return &entity.Quote{
		Symbol:        meta.Symbol,
		Price:         *meta.RegularMarketPrice,
		PreviousClose: prevClose,
		DayHigh:       meta.RegularMarketDayHigh,
		DayLow:        meta.RegularMarketDayLow,
		Volume:        meta.RegularMarketVolume,
		Currency:      meta.Currency,
	}, nil
}

// HasPrice reports whether the symbol currently has a last-traded price.
// It consumes nothing but price presence; the resolver folds any error
// into a negative answer.
func (y *Client) HasPrice(ctx context.Context, symbol string) (bool, error) {
	meta, err := y.fetchMeta(ctx, symbol)
	if err != nil {
		return false, err
	}
	return meta.RegularMarketPrice != nil && *meta.RegularMarketPrice != 0, nil
}

// fetchMeta requests the one-day chart for symbol and returns its meta block.
func (y *Client) fetchMeta(ctx context.Context, symbol string) (*dto.ChartMeta, error) {
	q := url.Values{}
	q.Set("range", "1d")
	q.Set("interval", "1d")
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", y.cfg.BaseURL, url.PathEscape(symbol), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", y.cfg.UserAgent)

	res, err := y.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 500 {
		return nil, fmt.Errorf("yahoo http %d", res.StatusCode)
	}

	// 4xx bodies still carry the chart error envelope; decode either way.
	var body dto.ChartResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode chart response: %w", err)
	}
	if body.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo: %s", body.Chart.Error.Description)
	}
	if len(body.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo: empty chart result for %s", symbol)
	}

	meta := body.Chart.Result[0].Meta
	return &meta, nil
}
