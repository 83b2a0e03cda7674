package service

import (
	"context"

	"github.com/microblog/platform/internal/core/domain"
	"github.com/microblog/platform/internal/core/ports"
	"github.com/microblog/platform/internal/security"
)

// AuthService implements signup, login, and token verification for the
// auth façade. Passwords and tokens are delegated to internal/security;
// this layer owns the account lifecycle and the error taxonomy.
type AuthService struct {
	repo   ports.AuthRepository
	hasher *security.Hasher
	tokens *security.TokenAuthority
}

func NewAuthService(repo ports.AuthRepository, hasher *security.Hasher, tokens *security.TokenAuthority) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens}
}

func (s *AuthService) Signup(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &domain.User{Email: email, PasswordHash: hash})
}

// Login verifies the password and mints an access token. An unknown email
// and a wrong password both surface as ErrInvalidCredentials so the
// response does not reveal whether the account exists.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Mint(user.ID, user.Email)
}

// VerifyToken backs the POST /auth/verify endpoint used by services that
// run in delegated-verification mode.
func (s *AuthService) VerifyToken(_ context.Context, token string) (*domain.Identity, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	return &domain.Identity{UserID: claims.Subject, Email: claims.Email}, nil
}
