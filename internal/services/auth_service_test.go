package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lgasportal/internal/apperrors"
	"lgasportal/internal/models"
)

var (
	testAccessSecret  = []byte("test-access-secret")
	testRefreshSecret = []byte("test-refresh-secret")
)

func newTestAuthService(profiles *fakeProfileStore, sessions *fakeSessionStore) *AuthService {
	return NewAuthService(profiles, sessions, testAccessSecret, testRefreshSecret)
}

func registerTestUser(t *testing.T, svc *AuthService) (string, string) {
	t.Helper()
	access, refresh, err := svc.Register(context.Background(), &RegisterRequest{
		Email:    "ops@acmegas.example",
		Password: "hunter22",
		FullName: "Ops Desk",
	})
	require.NoError(t, err)
	return access, refresh
}

func TestRegisterCreatesPrivateUserAndSession(t *testing.T) {
	profiles := newFakeProfileStore()
	sessions := newFakeSessionStore()
	svc := newTestAuthService(profiles, sessions)

	access, _ := registerTestUser(t, svc)

	profile, err := profiles.FindByEmail(context.Background(), "ops@acmegas.example")
	require.NoError(t, err)
	assert.Equal(t, models.RolePrivateUser, profile.Role)
	assert.NotEqual(t, "hunter22", profile.PasswordHash)

	session, jti, err := svc.SessionFromToken(context.Background(), access)
	require.NoError(t, err)
	assert.NotEmpty(t, jti)
	assert.Empty(t, session.ClientLink)
	assert.Equal(t, "Ops Desk", session.FullName)
}

func TestRegisterStartsUnscoped(t *testing.T) {
	profiles := newFakeProfileStore()
	svc := newTestAuthService(profiles, newFakeSessionStore())

	registerTestUser(t, svc)

	// A fresh signup has no client_link, so it sees no customer's
	// fleet until an admin assigns one.
	profile, err := profiles.FindByEmail(context.Background(), "ops@acmegas.example")
	require.NoError(t, err)
	assert.Empty(t, profile.ClientLink)
}

func TestRegisterWithMixedCaseEmailCanLogIn(t *testing.T) {
	svc := newTestAuthService(newFakeProfileStore(), newFakeSessionStore())

	_, _, err := svc.Register(context.Background(), &RegisterRequest{
		Email:    "Ops@AcmeGas.example",
		Password: "hunter22",
		FullName: "Ops Desk",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "ops@acmegas.example", "hunter22")
	require.NoError(t, err)
}

func TestLoginNormalizesEmail(t *testing.T) {
	svc := newTestAuthService(newFakeProfileStore(), newFakeSessionStore())
	registerTestUser(t, svc)

	access, _, err := svc.Login(context.Background(), "  Ops@AcmeGas.example ", "hunter22")
	require.NoError(t, err)

	session, _, err := svc.SessionFromToken(context.Background(), access)
	require.NoError(t, err)
	assert.Equal(t, "Ops Desk", session.FullName)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc := newTestAuthService(newFakeProfileStore(), newFakeSessionStore())
	registerTestUser(t, svc)

	_, _, err := svc.Register(context.Background(), &RegisterRequest{
		Email:    "ops@acmegas.example",
		Password: "different",
		FullName: "Someone",
	})
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestLoginWithWrongPassword(t *testing.T) {
	svc := newTestAuthService(newFakeProfileStore(), newFakeSessionStore())
	registerTestUser(t, svc)

	_, _, err := svc.Login(context.Background(), "ops@acmegas.example", "wrong")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
}

func TestLoginWithUnknownEmail(t *testing.T) {
	svc := newTestAuthService(newFakeProfileStore(), newFakeSessionStore())

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
}

func TestLoginOpensSessionAndTouchesLastLogin(t *testing.T) {
	profiles := newFakeProfileStore()
	svc := newTestAuthService(profiles, newFakeSessionStore())
	registerTestUser(t, svc)

	access, _, err := svc.Login(context.Background(), "ops@acmegas.example", "hunter22")
	require.NoError(t, err)

	session, _, err := svc.SessionFromToken(context.Background(), access)
	require.NoError(t, err)
	assert.Equal(t, models.RolePrivateUser, session.Role)
	assert.Len(t, profiles.touched, 1)
}

func TestLogoutEndsSession(t *testing.T) {
	svc := newTestAuthService(newFakeProfileStore(), newFakeSessionStore())
	access, _ := registerTestUser(t, svc)

	_, jti, err := svc.SessionFromToken(context.Background(), access)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), jti))

	_, _, err = svc.SessionFromToken(context.Background(), access)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
}

func TestRefreshRotatesSession(t *testing.T) {
	svc := newTestAuthService(newFakeProfileStore(), newFakeSessionStore())
	oldAccess, oldRefresh := registerTestUser(t, svc)

	newAccess, _, err := svc.Refresh(context.Background(), oldRefresh)
	require.NoError(t, err)

	// The new token works, the old session is gone.
	_, _, err = svc.SessionFromToken(context.Background(), newAccess)
	require.NoError(t, err)
	_, _, err = svc.SessionFromToken(context.Background(), oldAccess)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))

	// And the old refresh token cannot be replayed.
	_, _, err = svc.Refresh(context.Background(), oldRefresh)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
}

func TestSessionFromTokenRejectsGarbage(t *testing.T) {
	svc := newTestAuthService(newFakeProfileStore(), newFakeSessionStore())

	_, _, err := svc.SessionFromToken(context.Background(), "not-a-token")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
}
