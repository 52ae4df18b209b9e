package services_test

import (
	"context"
	"testing"
	"time"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/internal/testutil"
	"jobportal_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (services.AuthService, *gorm.DB) {
	t.Helper()

	db := testutil.NewTestDB(t)
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	blacklist, err := auth.NewBlacklist(issuer.TTL())
	require.NoError(t, err)
	return services.NewAuthService(repositories.NewUserRepository(db), issuer, blacklist), db
}

func TestAuthService_Login(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()

	user := testutil.CreateUser(t, db, "Alice", "alice@example.com", models.UserRoleApplicant)

	res, err := svc.Login(ctx, &dto.LoginRequest{Email: user.Email, Password: testutil.TestPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, models.UserRoleApplicant, res.Role)
	assert.Equal(t, "bearer", res.TokenType)

	claims, err := svc.Verify(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "applicant", claims.Role)
}

func TestAuthService_LoginRejections(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()

	user := testutil.CreateUser(t, db, "Alice", "alice@example.com", models.UserRoleApplicant)

	// Wrong password and unknown email produce the same error.
	_, err := svc.Login(ctx, &dto.LoginRequest{Email: user.Email, Password: "wrong-password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: testutil.TestPassword})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_LogoutRevokesToken(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()

	user := testutil.CreateUser(t, db, "Alice", "alice@example.com", models.UserRoleApplicant)

	res, err := svc.Login(ctx, &dto.LoginRequest{Email: user.Email, Password: testutil.TestPassword})
	require.NoError(t, err)

	_, err = svc.Verify(res.AccessToken)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(res.AccessToken))

	_, err = svc.Verify(res.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)

	// Logging out twice is fine.
	require.NoError(t, svc.Logout(res.AccessToken))
}

func TestAuthService_VerifyGarbage(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Verify("garbage")
	assert.ErrorIs(t, err, apperrors.ErrTokenMalformed)
}
