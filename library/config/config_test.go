package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/library-engine/pkg/database"
)

func TestOptions(t *testing.T) {
	var cfg Config
	for _, op := range []Option{
		WithLogLevel(zapcore.DebugLevel),
		WithWriteTimeout(time.Minute),
		WithDatabase(database.DriverSQLite, "data/library.db"),
	} {
		op(&cfg)
	}

	require.Equal(t, zapcore.DebugLevel, cfg.Log.LogLevel)
	require.Equal(t, time.Minute, cfg.Server.WriteTimeout)
	require.Equal(t, database.DriverSQLite, cfg.Database.Driver)
	require.Equal(t, "data/library.db", cfg.Database.Path)
	require.Equal(t, "sqlite3", cfg.Database.Dialect())
}

func TestNewConfig(t *testing.T) {
	t.Setenv("LIBRARY_HTTP_PORT", "9090")
	t.Setenv("LOAN_STRICT_ISSUE", "false")
	t.Setenv("DB_DRIVER", database.DriverPostgres)

	cfg := NewConfig(WithDatabase(database.DriverSQLite, "library.db"))

	require.Equal(t, "9090", cfg.Server.Port)
	require.False(t, cfg.Loan.StrictIssue)
	require.True(t, cfg.SeedDemoAccounts)
	require.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	require.Equal(t, database.DriverSQLite, cfg.Database.Driver)
}
