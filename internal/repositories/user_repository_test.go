package repositories_test

import (
	"context"
	"testing"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewUserRepository(db)
	ctx := context.Background()

	first := &models.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "x", Role: models.UserRoleApplicant}
	require.NoError(t, repo.Create(ctx, first))

	second := &models.User{Name: "Other Alice", Email: "alice@example.com", PasswordHash: "y", Role: models.UserRoleEmployer}
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, repositories.ErrUserAlreadyExists)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewUserRepository(db)
	ctx := context.Background()

	seeded := testutil.CreateUser(t, db, "Alice", "alice@example.com", models.UserRoleApplicant)

	found, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, found.ID)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}

func TestUserRepository_UpdateResumeRef(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewUserRepository(db)
	ctx := context.Background()

	user := testutil.CreateUser(t, db, "Alice", "alice@example.com", models.UserRoleApplicant)

	require.NoError(t, repo.UpdateResumeRef(ctx, user.ID, "resumes/alice_cv.pdf"))

	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "resumes/alice_cv.pdf", stored.ResumeRef)

	err = repo.UpdateResumeRef(ctx, uuid.NewString(), "resumes/nope.pdf")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}
