package database

import (
	"context"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

type DB struct {
	Driver   string `yaml:"driver" envconfig:"DB_DRIVER" default:"pgx"`
	Host     string `yaml:"host" envconfig:"DB_HOST"`
	Port     string `yaml:"port" envconfig:"DB_PORT"`
	User     string `yaml:"user" envconfig:"DB_USER"`
	Password string `yaml:"password" envconfig:"DB_PASSWORD" json:"-"`
	NameDB   string `yaml:"dbname" envconfig:"DB_NAME"`
	// Path is the sqlite file, used when Driver is sqlite3.
	Path string `yaml:"path" envconfig:"DB_PATH" default:"library.db"`

	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
}

// DSN returns the connection string understood by the configured driver.
func (c *DB) DSN() string {
	if c.Driver == DriverSQLite {
		return fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=1", c.Path)
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     c.NameDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Dialect is the goose dialect name for the driver.
func (c *DB) Dialect() string {
	if c.Driver == DriverSQLite {
		return "sqlite3"
	}
	return "postgres"
}

// NewDB opens the database, checks the connection and applies the embedded
// migrations found under the directory named after the dialect.
func NewDB(ctx context.Context, cfg *DB, migrations fs.FS) (*sqlx.DB, error) {
	if cfg.Driver == DriverSQLite {
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, errors.Wrap(err, "create db dir")
			}
		}
	}

	db, err := sqlx.Open(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", cfg.Driver)
	}
	if cfg.Driver == DriverSQLite {
		// sqlite allows a single writer.
		db.SetMaxOpenConns(1)
	} else if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "ping")
	}

	if migrations != nil {
		if err := Migrate(db, cfg.Dialect(), migrations); err != nil {
			db.Close()
			return nil, err
		}
	}
	return db, nil
}

// Migrate runs every pending goose migration for dialect.
func Migrate(db *sqlx.DB, dialect string, migrations fs.FS) error {
	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return errors.Wrap(err, "goose dialect")
	}
	if err := goose.Up(db.DB, dialect); err != nil {
		return errors.Wrap(err, "goose up")
	}
	return nil
}
