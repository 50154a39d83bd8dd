package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Profile is the caller summary returned by login and /auth/me.
type Profile struct {
	UserID      int64  `json:"user_id"`
	Username    string `json:"username"`
	RoleName    string `json:"role_name"`
	RoleID      int64  `json:"role_id"`
	StaffID     int64  `json:"staff_id"`
	StaffName   string `json:"staff_name"`
	BadgeNumber string `json:"badge_number"`
	Department  string `json:"department"`
	PolRank     string `json:"pol_rank"`
}

// Credentials is a Profile plus the stored hash, only used during login.
type Credentials struct {
	Profile
	PasswordHash string
}

type LoginResponse struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}

type MeResponse struct {
	Profile
	Permissions []string `json:"permissions"`
}

// Claims carried by the session token. The JSON names match the tokens
// issued by earlier deployments.
type Claims struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	RoleID   int64  `json:"roleId"`
	jwt.RegisteredClaims
}

// TokenGenerator issues and verifies session tokens.
type TokenGenerator interface {
	Generate(userID int64, username string, roleID int64) (string, *Claims, error)
	Validate(tokenString string) (*Claims, error)
}

// RevocationStore remembers logged-out token ids until they would have expired anyway.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Auditor is satisfied by audit.Recorder.
type Auditor interface {
	Record(ctx context.Context, userID int64, action, table string, recordID int64)
}

type RepositoryAPI interface {
	// FindActiveByUsername returns nil when the user is unknown or its staff record is inactive.
	FindActiveByUsername(ctx context.Context, username string) (*Credentials, error)
	// GetProfile returns nil when the user does not exist.
	GetProfile(ctx context.Context, userID int64) (*Profile, error)
	// RoleNameForUser returns ok=false when the user does not exist.
	RoleNameForUser(ctx context.Context, userID int64) (name string, ok bool, err error)
	TouchLastLogin(ctx context.Context, userID int64, at time.Time) error
}

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenRevoked = errors.New("token revoked")
)
