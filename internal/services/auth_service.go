package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"lgasportal/internal/apperrors"
	"lgasportal/internal/models"
	"lgasportal/internal/utils"
)

// ProfileStore is the slice of the profile repository the auth flow
// needs.
type ProfileStore interface {
	Create(ctx context.Context, profile *models.Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	FindByEmail(ctx context.Context, email string) (*models.Profile, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
}

// SessionStore persists login sessions keyed by JWT jti.
type SessionStore interface {
	StoreSession(ctx context.Context, jti string, session models.Session) error
	GetSession(ctx context.Context, jti string) (*models.Session, error)
	DeleteSession(ctx context.Context, jti string) error
}

type AuthService struct {
	profiles      ProfileStore
	sessions      SessionStore
	accessSecret  []byte
	refreshSecret []byte
}

func NewAuthService(profiles ProfileStore, sessions SessionStore, accessSecret, refreshSecret []byte) *AuthService {
	return &AuthService{
		profiles:      profiles,
		sessions:      sessions,
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
	}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
}

// Register creates a profile and logs it straight in. New accounts
// always start as private_user with no client_link: scope is assigned
// by an admin afterwards, never claimed at signup.
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (string, string, error) {
	email := normalizeEmail(req.Email)

	existing, err := s.profiles.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return "", "", err
	}
	if existing != nil {
		return "", "", fmt.Errorf("profile for %s: %w", email, apperrors.ErrConflict)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return "", "", err
	}

	profile := &models.Profile{
		Email:        email,
		PasswordHash: hash,
		Role:         models.RolePrivateUser,
		FullName:     req.FullName,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return "", "", err
	}

	return s.startSession(ctx, profile)
}

// Login verifies credentials and opens a session. Unknown email and
// wrong password are indistinguishable from the outside.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, string, error) {
	profile, err := s.profiles.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", "", apperrors.ErrInvalidCredentials
		}
		return "", "", err
	}

	if err := utils.VerifyPassword(profile.PasswordHash, password); err != nil {
		return "", "", apperrors.ErrInvalidCredentials
	}

	if err := s.profiles.TouchLastLogin(ctx, profile.ID); err != nil {
		return "", "", err
	}

	return s.startSession(ctx, profile)
}

// Refresh rotates the token pair. The session moves to the new jti so
// the old refresh token cannot be replayed.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := utils.VerifyJWT(refreshToken, s.refreshSecret)
	if err != nil {
		return "", "", fmt.Errorf("refresh token: %w", apperrors.ErrInvalidCredentials)
	}

	session, err := s.sessions.GetSession(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", "", fmt.Errorf("session expired: %w", apperrors.ErrInvalidCredentials)
		}
		return "", "", err
	}

	profile, err := s.profiles.FindByID(ctx, session.ProfileID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", "", apperrors.ErrInvalidCredentials
		}
		return "", "", err
	}

	if err := s.sessions.DeleteSession(ctx, claims.ID); err != nil {
		return "", "", err
	}

	return s.startSession(ctx, profile)
}

func (s *AuthService) Logout(ctx context.Context, jti string) error {
	return s.sessions.DeleteSession(ctx, jti)
}

// SessionFromToken resolves a Bearer access token to its session.
// A valid signature without a live session means the user logged out.
func (s *AuthService) SessionFromToken(ctx context.Context, accessToken string) (*models.Session, string, error) {
	claims, err := utils.VerifyJWT(accessToken, s.accessSecret)
	if err != nil {
		return nil, "", fmt.Errorf("access token: %w", apperrors.ErrInvalidCredentials)
	}

	session, err := s.sessions.GetSession(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", fmt.Errorf("session expired: %w", apperrors.ErrInvalidCredentials)
		}
		return nil, "", err
	}
	return session, claims.ID, nil
}

func (s *AuthService) Profile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	return s.profiles.FindByID(ctx, id)
}

func (s *AuthService) startSession(ctx context.Context, profile *models.Profile) (string, string, error) {
	accessToken, refreshToken, jti, err := utils.GenerateTokens(profile.ID, s.accessSecret, s.refreshSecret)
	if err != nil {
		return "", "", err
	}

	session := models.Session{
		ProfileID:  profile.ID,
		Role:       profile.Role,
		ClientLink: profile.ClientLink,
		FullName:   profile.FullName,
	}
	if err := s.sessions.StoreSession(ctx, jti, session); err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// normalizeEmail folds an email to the form profiles are stored under,
// so lookups match regardless of how the caller typed it.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
