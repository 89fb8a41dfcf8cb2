// Package usecase implements the business logic for quote retrieval.
package usecase

import (
	"context"

	"finos_backend/internal/feature/quote/domain/entity"
)

// MarketRepository fetches live quotes from the external quote provider.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type MarketRepository interface {
	GetQuote(ctx context.Context, symbol string) (*entity.Quote, error)
}

// SymbolResolver maps free-text instrument queries to trading symbols.
type SymbolResolver interface {
	Resolve(ctx context.Context, query string) string
}

// quoteUsecase resolves a user query and fetches its live quote.
type quoteUsecase struct {
	market   MarketRepository
	resolver SymbolResolver
}

// NewQuoteUsecase creates a new quoteUsecase instance.
func NewQuoteUsecase(market MarketRepository, resolver SymbolResolver) *quoteUsecase {
	return &quoteUsecase{market: market, resolver: resolver}
}

// GetQuote resolves the raw query to a symbol and returns its live quote.
// Resolution itself never fails; an unknown instrument surfaces as the
// provider's "no price" error, which the handler reports to the caller.
func (u *quoteUsecase) GetQuote(ctx context.Context, rawQuery string) (*entity.Quote, error) {
	symbol := u.resolver.Resolve(ctx, rawQuery)
	return u.market.GetQuote(ctx, symbol)
}
