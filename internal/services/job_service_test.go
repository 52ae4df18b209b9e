package services_test

import (
	"context"
	"testing"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/internal/testutil"
	"jobportal_backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newJobService(t *testing.T) (services.JobService, *gorm.DB) {
	t.Helper()

	db := testutil.NewTestDB(t)
	return services.NewJobService(repositories.NewJobRepository(db), repositories.NewUserRepository(db)), db
}

func TestJobService_CreateJob(t *testing.T) {
	svc, db := newJobService(t)
	ctx := context.Background()

	employer := testutil.CreateUser(t, db, "Bob", "bob@example.com", models.UserRoleEmployer)

	job, err := svc.CreateJob(ctx, &dto.CreateJobRequest{
		Title:       "Go Developer",
		Description: "Build backends",
		Company:     "Acme",
		Location:    "Berlin",
		EmployerID:  employer.ID,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, employer.ID, job.EmployerID)
	assert.False(t, job.IsClosed)
}

func TestJobService_CreateJobRequiresEmployer(t *testing.T) {
	svc, db := newJobService(t)
	ctx := context.Background()

	applicant := testutil.CreateUser(t, db, "Alice", "alice@example.com", models.UserRoleApplicant)

	_, err := svc.CreateJob(ctx, &dto.CreateJobRequest{
		Title:       "Go Developer",
		Description: "Build backends",
		Company:     "Acme",
		Location:    "Berlin",
		EmployerID:  applicant.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientRole)

	_, err = svc.CreateJob(ctx, &dto.CreateJobRequest{
		Title:       "Go Developer",
		Description: "Build backends",
		Company:     "Acme",
		Location:    "Berlin",
		EmployerID:  uuid.NewString(),
	})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.HTTPCode)
}

func TestJobService_GetJobHidesClosed(t *testing.T) {
	svc, db := newJobService(t)
	ctx := context.Background()

	employer := testutil.CreateUser(t, db, "Bob", "bob@example.com", models.UserRoleEmployer)
	job := testutil.CreateJob(t, db, employer.ID, "Go Developer", "Acme", "Berlin")

	found, err := svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, found.ID)

	require.NoError(t, svc.CloseJob(ctx, employer.ID, job.ID))

	_, err = svc.GetJob(ctx, job.ID)
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)

	// The closed job still shows up in the full listing.
	jobs, err := svc.ListJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.True(t, jobs[0].IsClosed)
}

func TestJobService_CloseJobOwnership(t *testing.T) {
	svc, db := newJobService(t)
	ctx := context.Background()

	employer := testutil.CreateUser(t, db, "Bob", "bob@example.com", models.UserRoleEmployer)
	other := testutil.CreateUser(t, db, "Eve", "eve@example.com", models.UserRoleEmployer)
	job := testutil.CreateJob(t, db, employer.ID, "Go Developer", "Acme", "Berlin")

	err := svc.CloseJob(ctx, other.ID, job.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotJobOwner)

	err = svc.CloseJob(ctx, employer.ID, uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)

	require.NoError(t, svc.CloseJob(ctx, employer.ID, job.ID))
	// Closing twice succeeds.
	require.NoError(t, svc.CloseJob(ctx, employer.ID, job.ID))
}

func TestJobService_DeleteJob(t *testing.T) {
	svc, db := newJobService(t)
	ctx := context.Background()

	employer := testutil.CreateUser(t, db, "Bob", "bob@example.com", models.UserRoleEmployer)
	other := testutil.CreateUser(t, db, "Eve", "eve@example.com", models.UserRoleEmployer)
	job := testutil.CreateJob(t, db, employer.ID, "Go Developer", "Acme", "Berlin")

	err := svc.DeleteJob(ctx, other.ID, job.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotJobOwner)

	require.NoError(t, svc.DeleteJob(ctx, employer.ID, job.ID))

	var count int64
	require.NoError(t, db.Model(&models.Job{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestJobService_SearchJobs(t *testing.T) {
	svc, db := newJobService(t)
	ctx := context.Background()

	employer := testutil.CreateUser(t, db, "Bob", "bob@example.com", models.UserRoleEmployer)
	testutil.CreateJob(t, db, employer.ID, "Senior Go Developer", "Acme", "Berlin")
	testutil.CreateJob(t, db, employer.ID, "Java Developer", "Globex", "Munich")

	jobs, err := svc.SearchJobs(ctx, dto.SearchJobsRequest{Title: "go"})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Senior Go Developer", jobs[0].Title)
}
