package usecase

import (
	"context"
	"errors"
	"fmt"

	"petverse_backend/internal/feature/auth/domain/entity"
	"petverse_backend/internal/platform/password"
	"petverse_backend/internal/platform/token"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailAlreadyExists when the
	// email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the user with the given email, or
	// ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves the user with the given ID, or ErrUserNotFound.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// GetOrCreate returns the user with the given email, creating it with
	// the supplied name and role when absent. An existing row is returned
	// unchanged; the supplied name and role are ignored for it.
	GetOrCreate(ctx context.Context, email, name, role string) (*entity.User, error)
}

// PasswordHasher abstracts the one-way password transform.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(digest, plaintext string) error
}

// TokenIssuer creates signed access tokens for an authenticated subject.
type TokenIssuer interface {
	Issue(subject, role string) (string, error)
}

// GoogleVerifier validates an externally issued Google ID token and returns
// the holder's email and display name. The verification itself is an
// external collaborator; only the boundary is modeled here.
type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (email, name string, err error)
}

// authUsecase implements registration, login and Google sign-in.
type authUsecase struct {
	users  UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
	google GoogleVerifier
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository, hasher PasswordHasher, tokens TokenIssuer, google GoogleVerifier) *authUsecase {
	return &authUsecase{users: users, hasher: hasher, tokens: tokens, google: google}
}

// Register creates a password-backed account and returns it with a fresh
// access token. The store is left unchanged when the email is taken.
func (u *authUsecase) Register(ctx context.Context, name, email, plaintext string) (*entity.User, string, error) {
	hashed, err := u.hasher.Hash(plaintext)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		FullName:     name,
		Email:        email,
		PasswordHash: hashed,
		Role:         entity.RoleTutor,
		UserType:     entity.RoleTutor,
	}
	// The unique constraint on email is the authoritative guard; the
	// adapter maps a duplicate insert to ErrEmailAlreadyExists.
	if err := u.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	signed, err := u.tokens.Issue(user.Email, user.EffectiveRole())
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, signed, nil
}

// Login authenticates email/password credentials and returns the user with a
// fresh access token. All failure modes collapse to ErrInvalidCredentials.
// bcrypt comparison runs even for unknown or password-less accounts so the
// response time does not leak account existence.
func (u *authUsecase) Login(ctx context.Context, email, plaintext string) (*entity.User, string, error) {
	user, err := u.users.FindByEmail(ctx, email)

	digest := password.DummyDigest
	if err == nil && user.HasPassword() {
		digest = user.PasswordHash
	}
	compareErr := u.hasher.Compare(digest, plaintext)

	if err != nil || !user.HasPassword() || compareErr != nil {
		return nil, "", ErrInvalidCredentials
	}

	signed, err := u.tokens.Issue(user.Email, user.EffectiveRole())
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, signed, nil
}

// LoginWithGoogle verifies a Google ID token, provisioning the account with
// the default role on first login, and returns the user with a fresh access
// token.
func (u *authUsecase) LoginWithGoogle(ctx context.Context, idToken string) (*entity.User, string, error) {
	email, name, err := u.google.Verify(ctx, idToken)
	if err != nil {
		return nil, "", ErrInvalidGoogleToken
	}

	user, err := u.users.GetOrCreate(ctx, email, name, entity.RoleTutor)
	if err != nil {
		return nil, "", fmt.Errorf("failed to provision user: %w", err)
	}

	signed, err := u.tokens.Issue(user.Email, user.EffectiveRole())
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, signed, nil
}

// ResolveIdentity looks up a token subject and returns the identity the
// authorization middleware attaches to the request context.
func (u *authUsecase) ResolveIdentity(ctx context.Context, email string) (*token.Identity, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve identity: %w", err)
	}
	return &token.Identity{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.FullName,
		Role:  user.EffectiveRole(),
	}, nil
}
