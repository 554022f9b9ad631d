package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-order-keeper/internal/config"
	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/migrations"
)

// DB wraps a connection pool with the dialect specific pieces every
// repository needs.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens a pool for the configured driver and pings it.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

func newDB(conn *sql.DB, dialect migrations.Dialect, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case migrations.DialectPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// Migrate applies the embedded migrations of the connection dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

// isUniqueViolation reports whether err comes from a unique constraint.
func (db *DB) isUniqueViolation(err error) bool {
	return db.errorClassificator.Classify(err) == UniqueViolation
}

// queryRow runs a built SELECT/INSERT ... RETURNING and scans one row.
// sql.ErrNoRows is translated into notFound.
func (db *DB) queryRow(ctx context.Context, b sq.Sqlizer, notFound error, dest ...any) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = db.QueryRowContext(ctx, query, args...).Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) && notFound != nil {
			return notFound
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// scanTime accepts the representations drivers use for timestamps:
// time.Time from pgx, and time.Time or text from go-sqlite3 depending on
// whether the column type is known (RETURNING clauses lose it).
type scanTime struct {
	dest *time.Time
}

func (s scanTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*s.dest = v
		return nil
	case string:
		return s.parse(v)
	case []byte:
		return s.parse(string(v))
	case nil:
		*s.dest = time.Time{}
		return nil
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (s scanTime) parse(v string) error {
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.ParseInLocation(layout, v, time.UTC); err == nil {
			*s.dest = t
			return nil
		}
	}
	return fmt.Errorf("unparseable timestamp %q", v)
}
