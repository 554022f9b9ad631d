package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an insert hits the unique
	// index on users.username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a lookup by username matches nothing.
	ErrNoUserWasFound = errors.New("no user was found")

	ErrProductNotFound = errors.New("product was not found")
	ErrOrderNotFound   = errors.New("order was not found")

	// ErrNothingToUpdate is returned for a partial update without fields.
	ErrNothingToUpdate = errors.New("nothing to update")

	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
