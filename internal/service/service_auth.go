package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/store"
	"github.com/MKhiriev/go-order-keeper/internal/utils"
	"github.com/MKhiriev/go-order-keeper/internal/validators"
	"github.com/MKhiriev/go-order-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification and token
// issuance using a UserRepository for persistence, a bcrypt PasswordHasher
// and an HS256 TokenCodec.
type authService struct {
	// userRepository is the identity store used to create and look up accounts.
	userRepository store.UserRepository

	// tokens signs and verifies bearer tokens.
	tokens *utils.TokenCodec

	// hasher produces and verifies password digests.
	hasher *utils.PasswordHasher

	validator validators.Validator

	// now is the issuance clock.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// AuthServiceOption customizes an authService.
type AuthServiceOption func(*authService)

// WithAuthClock replaces the clock used for token issuance.
func WithAuthClock(now func() time.Time) AuthServiceOption {
	return func(a *authService) {
		a.now = now
	}
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository, token codec and password hasher.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, tokens *utils.TokenCodec, hasher *utils.PasswordHasher, logger *logger.Logger, opts ...AuthServiceOption) AuthService {
	a := &authService{
		userRepository: userRepository,
		tokens:         tokens,
		hasher:         hasher,
		validator:      validators.NewDomainValidator(),
		now:            time.Now,
		logger:         logger,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Register creates a new USER account and issues a token for it.
//
// Returns:
//   - ErrInvalidDataProvided if the credentials fail validation.
//   - ErrUsernameTaken if the username exists, including the case where a
//     concurrent registration wins the race and the unique index rejects
//     the insert.
//   - ErrUpstreamUnavailable if the identity store fails.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Debug().Str("username", credentials.Username).Err(err).Msg("registration rejected by validation")
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	exists, err := a.userRepository.ExistsByUsername(ctx, credentials.Username)
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("username existence check failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	if exists {
		return models.Session{}, ErrUsernameTaken
	}

	user, err := a.createUser(ctx, credentials, models.RoleUser)
	if err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			return models.Session{}, ErrUsernameTaken
		}
		log.Err(err).Str("func", "authService.Register").Msg("user creation ended with error")
		return models.Session{}, err
	}

	log.Info().Str("username", user.Username).Msg("user registered")

	return a.issueSession(user)
}

// Login verifies the credentials and issues a token.
//
// An unknown username and a wrong password both yield ErrInvalidCredentials.
// For an unknown username a dummy bcrypt comparison still runs so both
// paths cost the same.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(credentials.Username) == "" || credentials.Password == "" {
		return models.Session{}, fmt.Errorf("%w: username and password are required", ErrInvalidDataProvided)
	}

	user, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			a.hasher.MatchesNone(credentials.Password)
			log.Debug().Msg("login failed")
			return models.Session{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "authService.Login").Msg("user search by username failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	if !a.hasher.Matches(credentials.Password, user.PasswordHash) {
		log.Debug().Msg("login failed")
		return models.Session{}, ErrInvalidCredentials
	}

	return a.issueSession(user)
}

// Authenticate validates token and resolves its subject against the
// identity store. The account is looked up on every call so a deleted
// account stops authenticating immediately.
func (a *authService) Authenticate(ctx context.Context, token string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.Principal{}, ErrUnauthorized
	}

	username, err := a.tokens.Validate(token)
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return models.Principal{}, ErrUnauthorized
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("username", username).Msg("token subject no longer exists")
			return models.Principal{}, ErrUnauthorized
		}
		log.Err(err).Str("func", "authService.Authenticate").Msg("identity lookup failed")
		return models.Principal{}, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	return models.Principal{Username: user.Username, Role: user.Role}, nil
}

// SeedAdmin creates an ADMIN account with the given credentials unless the
// username is already registered. An existing account is left untouched.
func (a *authService) SeedAdmin(ctx context.Context, credentials models.Credentials) error {
	if err := a.validator.Validate(ctx, credentials); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	exists, err := a.userRepository.ExistsByUsername(ctx, credentials.Username)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	if exists {
		a.logger.Debug().Str("username", credentials.Username).Msg("admin account already exists")
		return nil
	}

	if _, err = a.createUser(ctx, credentials, models.RoleAdmin); err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			return nil
		}
		return err
	}

	a.logger.Info().Str("username", credentials.Username).Msg("admin account created")
	return nil
}

func (a *authService) createUser(ctx context.Context, credentials models.Credentials, role models.Role) (models.User, error) {
	digest, err := a.hasher.Hash(credentials.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     credentials.Username,
		PasswordHash: digest,
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			return models.User{}, err
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	return user, nil
}

func (a *authService) issueSession(user models.User) (models.Session, error) {
	token, err := a.tokens.Issue(user.Username, a.now())
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.Session{
		Token:     token,
		Principal: models.Principal{Username: user.Username, Role: user.Role},
	}, nil
}
