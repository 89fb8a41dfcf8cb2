package db

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBuildDSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "postgres",
			cfg: Config{
				Driver:   DriverPostgres,
				User:     "testuser",
				Password: "testpass",
				Name:     "testdb",
				Host:     "localhost",
				Port:     "5432",
				SSLMode:  "disable",
			},
			want: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable",
		},
		{
			name: "sqlite uses the file path",
			cfg:  Config{Driver: DriverSQLite, Path: "finos.db"},
			want: "finos.db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, BuildDSN(tt.cfg))
		})
	}
}

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("DB_SSLMODE", "")

	cfg := LoadConfigFromEnv()

	assert.Equal(t, DriverSQLite, cfg.Driver)
	assert.Equal(t, "finos.db", cfg.Path)
	assert.Equal(t, "disable", cfg.SSLMode)
}

func TestLoadConfigFromEnv_Postgres(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_USER", "envuser")
	t.Setenv("DB_PASSWORD", "envpass")
	t.Setenv("DB_NAME", "envdb")
	t.Setenv("DB_HOST", "envhost")
	t.Setenv("DB_PORT", "5433")

	cfg := LoadConfigFromEnv()

	assert.Equal(t, DriverPostgres, cfg.Driver)
	assert.Equal(t, "envuser", cfg.User)
	assert.Equal(t, "envhost", cfg.Host)
	assert.Equal(t, "5433", cfg.Port)
}

func TestConnectWithRetry_SuccessOnFirstTry(t *testing.T) {
	t.Parallel()

	mockDB := &gorm.DB{}
	db, err := ConnectWithRetry("test-dsn", 5*time.Second, func(string) (*gorm.DB, error) {
		return mockDB, nil
	})

	require.NoError(t, err)
	assert.Same(t, mockDB, db)
}

func TestConnectWithRetry_RetriesOnFailure(t *testing.T) {
	// Not parallel because retry sleeps make this test slow already.

	mockDB := &gorm.DB{}
	attempts := 0
	db, err := ConnectWithRetry("test-dsn", 10*time.Second, func(string) (*gorm.DB, error) {
		attempts++
		if attempts < 3 {
			return nil, errors.New("connection refused")
		}
		return mockDB, nil
	})

	require.NoError(t, err)
	assert.Same(t, mockDB, db)
	assert.Equal(t, 3, attempts)
}

func TestConnectWithRetry_TimeoutAfterRetries(t *testing.T) {
	t.Parallel()

	attempts := 0
	_, err := ConnectWithRetry("test-dsn", 100*time.Millisecond, func(string) (*gorm.DB, error) {
		attempts++
		return nil, errors.New("connection refused")
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB connect failed")
	assert.NotZero(t, attempts)
}
