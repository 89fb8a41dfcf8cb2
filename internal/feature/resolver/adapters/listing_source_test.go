package adapters

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finos_backend/internal/feature/resolver/domain/entity"
	"finos_backend/internal/feature/resolver/usecase"
)

// mockListingFetcher is a mock implementation of the ListingFetcher interface.
type mockListingFetcher struct {
	fetchFn func(ctx context.Context) ([]entity.Instrument, error)
}

func (m *mockListingFetcher) FetchListing(ctx context.Context) ([]entity.Instrument, error) {
	return m.fetchFn(ctx)
}

func TestListingSource_FetchEntries_PersistsDownload(t *testing.T) {
	t.Parallel()

	repo := NewInstrumentRepository(setupTestDB(t))
	fetcher := &mockListingFetcher{
		fetchFn: func(ctx context.Context) ([]entity.Instrument, error) {
			return []entity.Instrument{
				{Symbol: "RELIANCE.NS", Name: "RELIANCE INDUSTRIES LIMITED"},
			}, nil
		},
	}
	source := NewListingSource(fetcher, repo)

	entries, err := source.FetchEntries(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, entries)

	// The downloaded listing was persisted for the fallback path.
	persisted, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, "RELIANCE.NS", persisted[0].Symbol)
}

func TestListingSource_FetchEntries_FallsBackToPersisted(t *testing.T) {
	t.Parallel()

	repo := NewInstrumentRepository(setupTestDB(t))
	require.NoError(t, repo.ReplaceAll(context.Background(), []entity.Instrument{
		{Symbol: "TCS.NS", Name: "TATA CONSULTANCY SERVICES LIMITED"},
	}))

	fetcher := &mockListingFetcher{
		fetchFn: func(ctx context.Context) ([]entity.Instrument, error) {
			return nil, errors.New("archive unreachable")
		},
	}
	source := NewListingSource(fetcher, repo)

	entries, err := source.FetchEntries(context.Background())
	require.NoError(t, err)

	dir := entity.NewDirectory(entries)
	sym, ok := dir.Lookup("TCS")
	assert.True(t, ok)
	assert.Equal(t, "TCS.NS", sym)
}

func TestListingSource_FetchEntries_ErrorWithoutFallback(t *testing.T) {
	t.Parallel()

	fetcher := &mockListingFetcher{
		fetchFn: func(ctx context.Context) ([]entity.Instrument, error) {
			return nil, errors.New("archive unreachable")
		},
	}
	source := NewListingSource(fetcher, nil)

	_, err := source.FetchEntries(context.Background())
	assert.ErrorContains(t, err, "archive unreachable")
}

// TestEntriesFromInstruments verifies the three alias derivations and that
// a leading word never steals an alias an earlier row claimed.
func TestEntriesFromInstruments(t *testing.T) {
	t.Parallel()

	entries := EntriesFromInstruments([]entity.Instrument{
		{Symbol: "TATAMOTORS.NS", Name: "TATA MOTORS LIMITED"},
		{Symbol: "TATASTEEL.NS", Name: "TATA STEEL LIMITED"},
		{Symbol: "ITC.NS", Name: "ITC LIMITED"},
	})

	dir := entity.NewDirectory(entries)

	sym, ok := dir.Lookup("TATAMOTORS")
	assert.True(t, ok)
	assert.Equal(t, "TATAMOTORS.NS", sym)

	sym, ok = dir.Lookup("TATA MOTORS LIMITED")
	assert.True(t, ok)
	assert.Equal(t, "TATAMOTORS.NS", sym)

	// "TATA" belongs to the first row that produced it.
	sym, ok = dir.Lookup("TATA")
	assert.True(t, ok)
	assert.Equal(t, "TATAMOTORS.NS", sym)

	// The leading word of "ITC LIMITED" collides with the bare symbol
	// alias and must not displace it.
	sym, ok = dir.Lookup("ITC")
	assert.True(t, ok)
	assert.Equal(t, "ITC.NS", sym)
}

// TestEntriesFromInstruments_SeedAliasesKeepPriority builds the directory
// the way the store does (seed first, listing after) and verifies listing
// rows whose leading word matches a seeded shorthand do not remap it.
// On the real listing HDFC ASSET MANAGEMENT and SBI LIFE INSURANCE sort
// ahead of the banks their shorthands point at.
func TestEntriesFromInstruments_SeedAliasesKeepPriority(t *testing.T) {
	t.Parallel()

	entries := EntriesFromInstruments([]entity.Instrument{
		{Symbol: "HDFCAMC.NS", Name: "HDFC ASSET MANAGEMENT COMPANY LIMITED"},
		{Symbol: "SBILIFE.NS", Name: "SBI LIFE INSURANCE COMPANY LIMITED"},
	})

	dir := entity.NewDirectory(append(usecase.SeedEntries(), entries...))

	sym, ok := dir.Lookup("HDFC")
	assert.True(t, ok)
	assert.Equal(t, "HDFCBANK.NS", sym)

	sym, ok = dir.Lookup("SBI")
	assert.True(t, ok)
	assert.Equal(t, "SBIN.NS", sym)

	// The rows still contribute their own symbol and full-name aliases.
	sym, ok = dir.Lookup("HDFCAMC")
	assert.True(t, ok)
	assert.Equal(t, "HDFCAMC.NS", sym)

	sym, ok = dir.Lookup("SBI LIFE INSURANCE COMPANY LIMITED")
	assert.True(t, ok)
	assert.Equal(t, "SBILIFE.NS", sym)
}
