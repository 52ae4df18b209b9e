package services_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/internal/storage"
	"jobportal_backend/internal/testutil"
	"jobportal_backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type applicationFixture struct {
	db      *gorm.DB
	files   storage.Storage
	service services.ApplicationService

	employer  *models.User
	applicant *models.User
	job       *models.Job
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	t.Helper()

	db := testutil.NewTestDB(t)
	files := testutil.NewTestStorage(t)

	userRepo := repositories.NewUserRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	appRepo := repositories.NewApplicationRepository(db)

	employer := testutil.CreateUser(t, db, "Bob", "bob@example.com", models.UserRoleEmployer)
	applicant := testutil.CreateUser(t, db, "Alice", "alice@example.com", models.UserRoleApplicant)
	job := testutil.CreateJob(t, db, employer.ID, "Go Developer", "Acme", "Berlin")

	return &applicationFixture{
		db:        db,
		files:     files,
		service:   services.NewApplicationService(appRepo, jobRepo, userRepo, files),
		employer:  employer,
		applicant: applicant,
		job:       job,
	}
}

func TestApplicationService_Apply(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	res, err := f.service.Apply(ctx, f.applicant.ID, f.job.ID)
	require.NoError(t, err)
	assert.False(t, res.AlreadyApplied)
	assert.NotEmpty(t, res.ApplicationID)

	// A second apply is a no-op, not a second row.
	again, err := f.service.Apply(ctx, f.applicant.ID, f.job.ID)
	require.NoError(t, err)
	assert.True(t, again.AlreadyApplied)
	assert.Equal(t, res.ApplicationID, again.ApplicationID)

	var count int64
	require.NoError(t, f.db.Model(&models.Application{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestApplicationService_ApplyMissingJob(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	_, err := f.service.Apply(ctx, f.applicant.ID, uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
}

func TestApplicationService_ApplyClosedJob(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	require.NoError(t, f.db.Model(f.job).Update("is_closed", true).Error)

	_, err := f.service.Apply(ctx, f.applicant.ID, f.job.ID)
	assert.ErrorIs(t, err, apperrors.ErrJobClosed)
}

func TestApplicationService_ListApplicants(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	carol := testutil.CreateUser(t, f.db, "Carol", "carol@example.com", models.UserRoleApplicant)
	now := time.Now()
	testutil.CreateApplication(t, f.db, f.job.ID, f.applicant.ID, now.Add(-time.Hour))
	testutil.CreateApplication(t, f.db, f.job.ID, carol.ID, now)

	res, err := f.service.ListApplicants(ctx, f.employer.ID, f.job.ID, dto.ListApplicantsRequest{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, res.Total)
	assert.Equal(t, 10, res.Limit)
	require.Len(t, res.Applicants, 2)
	assert.Equal(t, "Carol", res.Applicants[0].Name)
	assert.Equal(t, "Alice", res.Applicants[1].Name)
}

func TestApplicationService_ListApplicantsClampsLimit(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	res, err := f.service.ListApplicants(ctx, f.employer.ID, f.job.ID, dto.ListApplicantsRequest{Limit: 1000, Offset: -5})
	require.NoError(t, err)
	assert.Equal(t, 100, res.Limit)
	assert.Equal(t, 0, res.Offset)
	assert.NotNil(t, res.Applicants)
}

func TestApplicationService_ListApplicantsOwnership(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	other := testutil.CreateUser(t, f.db, "Eve", "eve@example.com", models.UserRoleEmployer)

	// A foreign job and a missing job are indistinguishable to the caller.
	_, err := f.service.ListApplicants(ctx, other.ID, f.job.ID, dto.ListApplicantsRequest{})
	assert.ErrorIs(t, err, apperrors.ErrNotJobOwner)

	_, err = f.service.ListApplicants(ctx, other.ID, uuid.NewString(), dto.ListApplicantsRequest{})
	assert.ErrorIs(t, err, apperrors.ErrNotJobOwner)
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	app := testutil.CreateApplication(t, f.db, f.job.ID, f.applicant.ID, time.Now())

	require.NoError(t, f.service.UpdateStatus(ctx, f.employer.ID, app.ID, "shortlisted"))

	var stored models.Application
	require.NoError(t, f.db.First(&stored, "id = ?", app.ID).Error)
	assert.Equal(t, models.ApplicationStatusShortlisted, stored.Status)

	// Re-setting the same status succeeds.
	require.NoError(t, f.service.UpdateStatus(ctx, f.employer.ID, app.ID, "shortlisted"))
}

func TestApplicationService_UpdateStatusValidation(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	app := testutil.CreateApplication(t, f.db, f.job.ID, f.applicant.ID, time.Now())

	err := f.service.UpdateStatus(ctx, f.employer.ID, app.ID, "hired")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)

	// "submitted" is the initial state only, not settable.
	err = f.service.UpdateStatus(ctx, f.employer.ID, app.ID, "submitted")
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)

	err = f.service.UpdateStatus(ctx, f.employer.ID, uuid.NewString(), "reviewed")
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)

	other := testutil.CreateUser(t, f.db, "Eve", "eve@example.com", models.UserRoleEmployer)
	err = f.service.UpdateStatus(ctx, other.ID, app.ID, "reviewed")
	assert.ErrorIs(t, err, apperrors.ErrNotJobOwner)
}

func TestApplicationService_GetResume(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	ref := "resumes/" + f.applicant.ID + "_cv.pdf"
	require.NoError(t, f.files.Save(ctx, ref, strings.NewReader("resume body"), "application/pdf"))
	require.NoError(t, f.db.Model(f.applicant).Update("resume_ref", ref).Error)

	testutil.CreateApplication(t, f.db, f.job.ID, f.applicant.ID, time.Now())

	t.Run("applicant downloads own resume", func(t *testing.T) {
		reader, filename, err := f.service.GetResume(ctx, f.applicant.ID, models.UserRoleApplicant, f.applicant.ID)
		require.NoError(t, err)
		defer reader.Close()

		body, err := io.ReadAll(reader)
		require.NoError(t, err)
		assert.Equal(t, "resume body", string(body))
		assert.Equal(t, f.applicant.ID+"_cv.pdf", filename)
	})

	t.Run("employer with an application may download", func(t *testing.T) {
		reader, _, err := f.service.GetResume(ctx, f.employer.ID, models.UserRoleEmployer, f.applicant.ID)
		require.NoError(t, err)
		reader.Close()
	})

	t.Run("employer without an application is refused", func(t *testing.T) {
		other := testutil.CreateUser(t, f.db, "Eve", "eve@example.com", models.UserRoleEmployer)
		_, _, err := f.service.GetResume(ctx, other.ID, models.UserRoleEmployer, f.applicant.ID)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, 403, appErr.HTTPCode)
	})

	t.Run("another applicant is refused", func(t *testing.T) {
		carol := testutil.CreateUser(t, f.db, "Carol", "carol@example.com", models.UserRoleApplicant)
		_, _, err := f.service.GetResume(ctx, carol.ID, models.UserRoleApplicant, f.applicant.ID)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, 403, appErr.HTTPCode)
	})

	t.Run("missing resume is a 404", func(t *testing.T) {
		dana := testutil.CreateUser(t, f.db, "Dana", "dana@example.com", models.UserRoleApplicant)
		_, _, err := f.service.GetResume(ctx, dana.ID, models.UserRoleApplicant, dana.ID)
		assert.ErrorIs(t, err, apperrors.ErrResumeNotFound)
	})
}
