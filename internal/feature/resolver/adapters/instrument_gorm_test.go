package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"finos_backend/internal/feature/resolver/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for tests.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Instrument{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestNewInstrumentRepository(t *testing.T) {
	t.Parallel()

	repo := NewInstrumentRepository(setupTestDB(t))

	assert.NotNil(t, repo, "repository should not be nil")
}

// TestInstrumentGorm_ReplaceAll_ThenListAll verifies the full replace and
// ordered read-back of a listing.
func TestInstrumentGorm_ReplaceAll_ThenListAll(t *testing.T) {
	t.Parallel()

	repo := NewInstrumentRepository(setupTestDB(t))
	ctx := context.Background()

	first := []entity.Instrument{
		{Symbol: "TCS.NS", Name: "TATA CONSULTANCY SERVICES LIMITED"},
		{Symbol: "RELIANCE.NS", Name: "RELIANCE INDUSTRIES LIMITED"},
	}
	require.NoError(t, repo.ReplaceAll(ctx, first))

	got, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "RELIANCE.NS", got[0].Symbol) // ordered by symbol
	assert.Equal(t, "TCS.NS", got[1].Symbol)

	// A second ReplaceAll fully supersedes the first listing.
	second := []entity.Instrument{
		{Symbol: "INFY.NS", Name: "INFOSYS LIMITED"},
	}
	require.NoError(t, repo.ReplaceAll(ctx, second))

	got, err = repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "INFY.NS", got[0].Symbol)
}

// TestInstrumentGorm_ReplaceAll_Empty verifies replacing with an empty
// listing clears the table without error.
func TestInstrumentGorm_ReplaceAll_Empty(t *testing.T) {
	t.Parallel()

	repo := NewInstrumentRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []entity.Instrument{
		{Symbol: "TCS.NS", Name: "TATA CONSULTANCY SERVICES LIMITED"},
	}))
	require.NoError(t, repo.ReplaceAll(ctx, nil))

	got, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
