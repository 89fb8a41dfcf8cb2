package adapters

import (
	"context"
	"log/slog"
	"strings"

	"finos_backend/internal/feature/resolver/domain/entity"
	"finos_backend/internal/feature/resolver/usecase"
)

// ListingFetcher downloads the live exchange listing. Following Go
// convention: interfaces are defined by the consumer (this package), not
// the provider (the nse client).
type ListingFetcher interface {
	FetchListing(ctx context.Context) ([]entity.Instrument, error)
}

// InstrumentRepository abstracts the persistence layer for listing rows.
type InstrumentRepository interface {
	ReplaceAll(ctx context.Context, instruments []entity.Instrument) error
	ListAll(ctx context.Context) ([]entity.Instrument, error)
}

// listingSource feeds the directory store from the live archive, falling
// back to the last listing persisted in the database when the archive is
// unreachable. Successful downloads are persisted best-effort so the
// fallback corpus stays current.
type listingSource struct {
	fetcher ListingFetcher
	repo    InstrumentRepository // optional; nil disables persistence and fallback
}

var _ usecase.ListingSource = (*listingSource)(nil)

// NewListingSource composes a fetcher and an optional repository into the
// ListingSource consumed by the directory store.
func NewListingSource(fetcher ListingFetcher, repo InstrumentRepository) *listingSource {
	return &listingSource{fetcher: fetcher, repo: repo}
}

// FetchEntries implements usecase.ListingSource.
func (s *listingSource) FetchEntries(ctx context.Context) ([]entity.Entry, error) {
	instruments, err := s.fetcher.FetchListing(ctx)
	if err != nil {
		if s.repo == nil {
			return nil, err
		}
		slog.Warn("listing download failed, falling back to persisted listing", "error", err)
		persisted, dbErr := s.repo.ListAll(ctx)
		if dbErr != nil || len(persisted) == 0 {
			return nil, err // report the download failure, not the empty fallback
		}
		return EntriesFromInstruments(persisted), nil
	}

	if s.repo != nil {
		if err := s.repo.ReplaceAll(ctx, instruments); err != nil {
			// Persistence is an optimization for the fallback path only.
			slog.Warn("failed to persist listing", "error", err)
		}
	}
	return EntriesFromInstruments(instruments), nil
}

// EntriesFromInstruments derives directory entries from listing rows: the
// bare exchange symbol, the full company name, and the leading word of the
// name when it is long enough to be distinctive. The leading word never
// overwrites an alias the static seed map or another row (or an earlier
// word) already claimed; otherwise a row like HDFC ASSET MANAGEMENT would
// steal the seeded HDFC shorthand from HDFCBANK.NS.
func EntriesFromInstruments(instruments []entity.Instrument) []entity.Entry {
	entries := make([]entity.Entry, 0, len(instruments)*3)
	claimed := make(map[string]struct{}, len(instruments))
	for _, e := range usecase.SeedEntries() {
		claimed[e.Alias] = struct{}{}
	}

	for _, in := range instruments {
		bare := strings.ToUpper(strings.TrimSuffix(in.Symbol, ".NS"))
		name := strings.ToUpper(strings.TrimSpace(in.Name))
		if bare == "" {
			continue
		}

		entries = append(entries, entity.Entry{Alias: bare, Symbol: in.Symbol})
		claimed[bare] = struct{}{}
		if name != "" {
			entries = append(entries, entity.Entry{Alias: name, Symbol: in.Symbol})
			claimed[name] = struct{}{}
		}

		if first, _, _ := strings.Cut(name, " "); len(first) > 2 {
			if _, taken := claimed[first]; !taken {
				entries = append(entries, entity.Entry{Alias: first, Symbol: in.Symbol})
				claimed[first] = struct{}{}
			}
		}
	}
	return entries
}
