// internal/infra/database/connection.go
package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DB struct {
	Client *sql.DB
	Driver string
}

// Options selects the driver and where to connect.
// For postgres, DSN wins over the discrete fields. For sqlite, Path is the file (":memory:" works).
type Options struct {
	Driver   string
	DSN      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	Path     string
}

// PostgresDSN builds a key=value connection string.
func (o Options) PostgresDSN() string {
	if strings.TrimSpace(o.DSN) != "" {
		return o.DSN
	}
	ssl := o.SSLMode
	if ssl == "" {
		ssl = "disable"
	}
	port := o.Port
	if port == "" {
		port = "5432"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		o.Host, port, o.User, quoteDSN(o.Password), o.Name, ssl)
}

func quoteDSN(v string) string {
	if v == "" || strings.ContainsAny(v, " '\\") {
		return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(v) + "'"
	}
	return v
}

// SQLiteDSN enables foreign keys and a busy timeout on the file.
func (o Options) SQLiteDSN() string {
	p := o.Path
	if p == "" {
		p = ":memory:"
	}
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "busy_timeout(5000)")
	return "file:" + p + "?" + q.Encode()
}

// NewConnection opens and pings the database.
func NewConnection(ctx context.Context, o Options, log *zap.Logger) (*DB, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var (
		driver = strings.ToLower(strings.TrimSpace(o.Driver))
		dsn    string
	)
	switch driver {
	case DriverPostgres:
		dsn = o.PostgresDSN()
	case DriverSQLite:
		dsn = o.SQLiteDSN()
	default:
		return nil, fmt.Errorf("database: unsupported driver %q", o.Driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("database: open: %w", err)
	}

	if driver == DriverSQLite {
		// single writer
		db.SetMaxOpenConns(1)
	} else {
		db.SetConnMaxLifetime(30 * time.Minute)
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	log.Info("database connected", zap.String("driver", driver))
	return &DB{Client: db, Driver: driver}, nil
}

func (d *DB) Close() error {
	if d == nil || d.Client == nil {
		return nil
	}
	return d.Client.Close()
}
