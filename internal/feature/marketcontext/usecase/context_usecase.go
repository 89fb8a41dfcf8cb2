// Package usecase builds the aggregate market context string used to
// ground the chat model: a timestamp plus the headline Indian indices and
// the USD/INR rate.
package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	quoteentity "finos_backend/internal/feature/quote/domain/entity"
	"finos_backend/internal/shared/ratelimiter"
)

// QuoteSource fetches live quotes for the context tickers. Following Go
// convention: interfaces are defined by the consumer (usecase), not the
// provider (adapters).
type QuoteSource interface {
	GetQuote(ctx context.Context, symbol string) (*quoteentity.Quote, error)
}

// contextTicker pairs a provider symbol with its display name.
type contextTicker struct {
	symbol string
	name   string
}

// contextTickers are fetched in order; a failing ticker is skipped, not fatal.
var contextTickers = []contextTicker{
	{symbol: "^NSEI", name: "Nifty 50"},
	{symbol: "^NSEBANK", name: "Bank Nifty"},
	{symbol: "INR=X", name: "USD/INR"},
}

// ContextBuilder assembles the market context string from live quotes.
type ContextBuilder struct {
	quotes  QuoteSource
	limiter ratelimiter.RateLimiterInterface
	loc     *time.Location
	now     func() time.Time
}

// NewContextBuilder creates a ContextBuilder. The limiter paces provider
// calls and may be nil.
func NewContextBuilder(quotes QuoteSource, limiter ratelimiter.RateLimiterInterface) *ContextBuilder {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		loc = time.FixedZone("IST", 5*3600+30*60)
	}
	return &ContextBuilder{quotes: quotes, limiter: limiter, loc: loc, now: time.Now}
}

// printer renders prices with thousands separators ("24,010").
var printer = message.NewPrinter(language.English)

// BuildContext fetches each context ticker and renders the aggregate
// string, e.g.:
//
//	Date: 26-Aug 14:05 | Nifty 50: 24,010 (+0.42%) | Bank Nifty: 51,200 (-0.10%) | USD/INR: 88 (+0.03%)
//
// Tickers the provider cannot serve are silently dropped; the timestamp
// segment is always present.
func (b *ContextBuilder) BuildContext(ctx context.Context) (string, error) {
	parts := []string{"Date: " + b.now().In(b.loc).Format("02-Jan 15:04")}

	for _, tk := range contextTickers {
		if b.limiter != nil {
			b.limiter.WaitIfNeeded()
		}
		quote, err := b.quotes.GetQuote(ctx, tk.symbol)
		if err != nil {
			slog.Warn("context ticker unavailable", "symbol", tk.symbol, "error", err)
			continue
		}
		if quote.PreviousClose != 0 {
			parts = append(parts, printer.Sprintf("%s: %.0f (%+.2f%%)", tk.name, quote.Price, quote.ChangePercent()))
		} else {
			parts = append(parts, printer.Sprintf("%s: %.0f", tk.name, quote.Price))
		}
	}

	return strings.Join(parts, " | "), nil
}
