package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"devconnector/config"

	"github.com/DATA-DOG/go-sqlmock"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB opens gorm over sqlmock with the same session settings as New.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestConnConfig(t *testing.T) {
	t.Run("missing section", func(t *testing.T) {
		_, err := connConfig(&config.Config{})
		require.Error(t, err)
	})

	t.Run("application name defaults to the service name", func(t *testing.T) {
		cfg := &config.Config{Postgres: &pgLib.DBConn{Database: "devconnector"}}
		cfg.Env.ServiceName = "devconnector-api"

		conn, err := connConfig(cfg)
		require.NoError(t, err)
		assert.Equal(t, "devconnector-api", conn.ApplicationName)
		assert.Equal(t, "devconnector", conn.Database)
		assert.Empty(t, cfg.Postgres.ApplicationName, "shared config must stay untouched")
	})

	t.Run("configured application name wins", func(t *testing.T) {
		cfg := &config.Config{Postgres: &pgLib.DBConn{ApplicationName: "reporting"}}
		cfg.Env.ServiceName = "devconnector-api"

		conn, err := connConfig(cfg)
		require.NoError(t, err)
		assert.Equal(t, "reporting", conn.ApplicationName)
	})
}

func TestMonitorDBPool_StopsWithContext(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		monitorDBPool(ctx, slog.New(slog.NewTextHandler(io.Discard, nil)), sqlDB, time.Millisecond, 50*time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop after cancel")
	}
}

func TestMonitorDBPool_ZeroIntervalReturns(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	// Returns immediately instead of panicking in time.NewTicker.
	monitorDBPool(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)), sqlDB, 0, 0)
}
