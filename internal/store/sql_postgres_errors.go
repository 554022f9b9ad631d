package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the driver independent category of a failed
// database operation.
type ErrorClassification int

const (
	// Other covers every error without a dedicated mapping.
	Other ErrorClassification = iota

	// UniqueViolation means an insert or update hit a unique constraint.
	UniqueViolation

	// Transient means the operation may succeed if attempted again
	// (connection loss, serialization failure, busy database).
	Transient
)

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return UniqueViolation

	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		// Class 40: transaction rollback
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		// Class 57: operator intervention
		pgerrcode.CannotConnectNow:
		return Transient
	}

	return Other
}

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return Other
	}

	switch {
	case sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique,
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	case sqliteErr.Code == sqlite3.ErrBusy, sqliteErr.Code == sqlite3.ErrLocked:
		return Transient
	}

	return Other
}
