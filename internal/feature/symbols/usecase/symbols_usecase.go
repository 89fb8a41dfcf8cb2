// Package usecase implements the business logic for the symbol listing.
package usecase

import (
	"context"
	"fmt"

	"finos_backend/internal/feature/resolver/domain/entity"
)

// InstrumentLister abstracts the persistence layer for listed instruments.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type InstrumentLister interface {
	ListAll(ctx context.Context) ([]entity.Instrument, error)
}

// SymbolsUsecase provides the tradable instrument listing.
type SymbolsUsecase struct {
	repo InstrumentLister
}

// NewSymbolsUsecase creates a new SymbolsUsecase with the given repository.
func NewSymbolsUsecase(r InstrumentLister) *SymbolsUsecase {
	return &SymbolsUsecase{repo: r}
}

// ListSymbols returns every persisted instrument, ordered by symbol.
func (u *SymbolsUsecase) ListSymbols(ctx context.Context) ([]entity.Instrument, error) {
	instruments, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list instruments: %w", err)
	}
	return instruments, nil
}
