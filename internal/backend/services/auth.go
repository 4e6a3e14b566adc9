package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/Mystogan321/useradmin/internal/backend/auth"
	"github.com/Mystogan321/useradmin/internal/backend/repository"
	"github.com/Mystogan321/useradmin/internal/common"
	"github.com/Mystogan321/useradmin/internal/logging"
	"github.com/Mystogan321/useradmin/internal/users"
)

// AuthService verifies credentials and mints session tokens. Credential
// comparison is exact and constant-time; a wrong email and a wrong password
// are indistinguishable to the caller.
type AuthService struct {
	repo          repository.Repository
	jwtSecret     []byte
	tokenValidity time.Duration
	log           logging.Logger
}

func NewAuthService(repo repository.Repository, secret []byte, tokenValidity time.Duration, log logging.Logger) *AuthService {
	return &AuthService{
		repo:          repo,
		jwtSecret:     secret,
		tokenValidity: tokenValidity,
		log:           log.With("service", "auth"),
	}
}

func (s *AuthService) checkCredential(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

// Login returns the matching public record and a signed session token, or
// common.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (users.PublicUser, string, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return users.PublicUser{}, "", common.ErrInvalidCredentials
		}
		return users.PublicUser{}, "", common.ErrInternal
	}

	if !s.checkCredential(u.Password, password) {
		return users.PublicUser{}, "", common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(u.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return users.PublicUser{}, "", common.ErrInternal
	}

	s.log.Info(ctx, "login succeeded", "id", u.ID)
	return u.Public(), token, nil
}

// Logout invalidates the session on the backend side. The mock backend has
// no session registry, so there is nothing to do; the signature mirrors the
// collaborator contract.
func (s *AuthService) Logout(ctx context.Context) error {
	return nil
}
