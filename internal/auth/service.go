package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/frahmantamala/crms/internal"
	"github.com/frahmantamala/crms/internal/audit"
	"golang.org/x/crypto/bcrypt"
)

// Service is the main auth service with dependencies
type Service struct {
	repo        RepositoryAPI
	tokens      TokenGenerator
	revocations RevocationStore
	auditor     Auditor
	permissions *PermissionTable
	logger      *slog.Logger
	now         func() time.Time
}

// NewService creates a new auth service. A nil revocation store disables logout revocation.
func NewService(repo RepositoryAPI, tokens TokenGenerator, revocations RevocationStore, auditor Auditor, permissions *PermissionTable, logger *slog.Logger) *Service {
	if revocations == nil {
		revocations = NoopRevocationStore{}
	}
	return &Service{
		repo:        repo,
		tokens:      tokens,
		revocations: revocations,
		auditor:     auditor,
		permissions: permissions,
		logger:      logger,
		now:         time.Now,
	}
}

// Login checks credentials against the bcrypt hash and issues a session token.
// Unknown users, wrong passwords and deactivated staff are indistinguishable.
func (s *Service) Login(ctx context.Context, dto LoginDTO) (*LoginResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	creds, err := s.repo.FindActiveByUsername(ctx, dto.Username)
	if err != nil {
		return nil, internal.NewInternalError("Login failed", err)
	}
	if creds == nil {
		s.logger.WarnContext(ctx, "login rejected: unknown or inactive user", "username", dto.Username)
		return nil, internal.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(dto.Password)); err != nil {
		s.logger.WarnContext(ctx, "login rejected: bad password", "user_id", creds.UserID)
		return nil, internal.ErrInvalidCredentials
	}

	if err := s.repo.TouchLastLogin(ctx, creds.UserID, s.now().UTC()); err != nil {
		return nil, internal.NewInternalError("Login failed", err)
	}

	token, _, err := s.tokens.Generate(creds.UserID, creds.Username, creds.RoleID)
	if err != nil {
		return nil, internal.NewInternalError("Login failed", err)
	}

	s.auditor.Record(ctx, creds.UserID, audit.ActionLogin, audit.TableUsers, creds.UserID)
	s.logger.InfoContext(ctx, "user logged in", "user_id", creds.UserID, "role", creds.RoleName)

	return &LoginResponse{Token: token, User: creds.Profile}, nil
}

// Authenticate verifies a bearer token. Every failure maps to the same 403.
func (s *Service) Authenticate(ctx context.Context, token string) (*internal.Principal, error) {
	if token == "" {
		return nil, internal.ErrMissingToken
	}
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, internal.ErrInvalidToken.WithCause(err)
	}

	revoked, err := s.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		// lookup failures fail open
		s.logger.WarnContext(ctx, "revocation lookup failed", "error", err)
	} else if revoked {
		return nil, internal.ErrInvalidToken.WithCause(ErrTokenRevoked)
	}

	p := &internal.Principal{
		UserID:   claims.UserID,
		Username: claims.Username,
		RoleID:   claims.RoleID,
		TokenID:  claims.ID,
	}
	if claims.ExpiresAt != nil {
		p.Expires = claims.ExpiresAt.Time
	}
	return p, nil
}

// Logout revokes the presented token for the rest of its lifetime.
func (s *Service) Logout(ctx context.Context, p *internal.Principal) error {
	ttl := p.Expires.Sub(s.now())
	if err := s.revocations.Revoke(ctx, p.TokenID, ttl); err != nil {
		return internal.NewInternalError("Logout failed", err)
	}
	s.auditor.Record(ctx, p.UserID, audit.ActionLogout, audit.TableUsers, p.UserID)
	return nil
}

// Me returns the caller's profile and effective permissions.
func (s *Service) Me(ctx context.Context, userID int64) (*MeResponse, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, internal.NewInternalError("Failed to fetch profile", err)
	}
	if profile == nil {
		return nil, internal.ErrUserNotFound
	}
	return &MeResponse{
		Profile:     *profile,
		Permissions: s.permissions.Permissions(profile.RoleName),
	}, nil
}

// RoleName re-reads the caller's role from the store so role changes apply
// to tokens that were issued before them.
func (s *Service) RoleName(ctx context.Context, userID int64) (string, error) {
	name, ok, err := s.repo.RoleNameForUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", internal.ErrPrincipalNotFound
	}
	return name, nil
}

func (s *Service) Permissions() *PermissionTable {
	return s.permissions
}

// IsPrincipalNotFound reports whether err came from RoleName for a missing user.
func IsPrincipalNotFound(err error) bool {
	return errors.Is(err, internal.ErrPrincipalNotFound)
}
