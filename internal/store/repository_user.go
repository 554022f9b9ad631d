package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/models"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns it with the
// server-assigned UserID and CreatedAt.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := r.db.queryRow(ctx, buildCreateUserQuery(r.db.builder, user), nil, userDest(&created)...)
	if err != nil {
		if r.db.isUniqueViolation(err) {
			log.Warn().Str("func", "*userRepository.CreateUser").Msg("username already exists")
			return models.User{}, ErrUsernameAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		return models.User{}, err
	}

	return created, nil
}

// FindUserByUsername returns the account with the given username.
// The match is case-sensitive.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	err := r.db.queryRow(ctx, buildFindUserByUsernameQuery(r.db.builder, username), ErrNoUserWasFound, userDest(&found)...)
	if err != nil {
		if !errors.Is(err, ErrNoUserWasFound) {
			log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error finding user")
		}
		return models.User{}, err
	}

	return found, nil
}

// ExistsByUsername reports whether an account with the username exists.
func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	log := logger.FromContext(ctx)

	var count int64
	if err := r.db.queryRow(ctx, buildExistsByUsernameQuery(r.db.builder, username), nil, &count); err != nil {
		log.Err(err).Str("func", "*userRepository.ExistsByUsername").Msg("error checking username")
		return false, fmt.Errorf("error checking username: %w", err)
	}

	return count > 0, nil
}

// userDest lists scan targets in [userColumns] order.
func userDest(u *models.User) []any {
	return []any{&u.UserID, &u.Username, &u.PasswordHash, (*string)(&u.Role), scanTime{&u.CreatedAt}}
}
