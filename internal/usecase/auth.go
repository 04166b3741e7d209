package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jquinonez7/DogTracker/internal/auth"
	"github.com/jquinonez7/DogTracker/internal/domain"
	"github.com/jquinonez7/DogTracker/internal/email"
	"github.com/jquinonez7/DogTracker/internal/repository"
)

// AuthUsecase composes the hasher, token issuer/verifier, and user store.
// It is the only caller of those three.
type AuthUsecase struct {
	users    repository.UserRepository
	hasher   *auth.Hasher
	issuer   *auth.Issuer
	verifier *auth.Verifier
	email    email.Sender
	logger   *slog.Logger
}

func NewAuthUsecase(
	users repository.UserRepository,
	hasher *auth.Hasher,
	issuer *auth.Issuer,
	verifier *auth.Verifier,
	emailSender email.Sender,
	logger *slog.Logger,
) *AuthUsecase {
	return &AuthUsecase{
		users:    users,
		hasher:   hasher,
		issuer:   issuer,
		verifier: verifier,
		email:    emailSender,
		logger:   logger.With("component", "auth_usecase"),
	}
}

// Register hashes the password and inserts the account in one atomic
// statement; a concurrent registration of the same email loses on the unique
// constraint and surfaces as domain.ErrDuplicateEmail.
func (u *AuthUsecase) Register(ctx context.Context, emailAddr, password string) (*domain.User, error) {
	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := u.users.Insert(ctx, emailAddr, hash)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	// Welcome email is best-effort; registration already succeeded.
	subject := "Welcome to Dog Tracker"
	body := fmt.Sprintf(`<p>Hi %s, your Dog Tracker account is ready.</p>`, user.Email)
	if err := u.email.Send(ctx, user.Email, subject, body); err != nil {
		u.logger.WarnContext(ctx, "welcome email", "error", err)
	}

	return user, nil
}

// LoginResult carries the issued token alongside the identity fields the
// login response echoes back.
type LoginResult struct {
	AccessToken string
	User        *domain.User
}

// Login verifies the credential and issues a bearer token. Unknown email and
// wrong password both return domain.ErrInvalidCredentials so the response
// can't be used to probe which emails are registered. Store faults propagate
// as-is and must not be collapsed into the credential error.
func (u *AuthUsecase) Login(ctx context.Context, emailAddr, password string) (*LoginResult, error) {
	user, err := u.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !u.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := u.issuer.Issue(user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &LoginResult{AccessToken: token, User: user}, nil
}

// Authenticate resolves a bearer token to the account it asserts. Runs on
// every protected request before the route's own logic.
func (u *AuthUsecase) Authenticate(ctx context.Context, rawToken string) (*domain.User, error) {
	subject, err := u.verifier.Verify(rawToken)
	if err != nil {
		return nil, err
	}

	user, err := u.users.FindByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
