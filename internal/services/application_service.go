package services

import (
	"context"
	"io"
	"path"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/internal/storage"
	"jobportal_backend/pkg/apperrors"
)

const (
	defaultApplicantPageSize = 10
	maxApplicantPageSize     = 100
)

type ApplicationService interface {
	Apply(ctx context.Context, applicantID, jobID string) (*dto.ApplyResponse, error)
	ListForApplicant(ctx context.Context, applicantID string) ([]repositories.ApplicationWithJob, error)
	ListApplicants(ctx context.Context, employerID, jobID string, req dto.ListApplicantsRequest) (*dto.ApplicantListResponse, error)
	UpdateStatus(ctx context.Context, employerID, applicationID, status string) error
	GetResume(ctx context.Context, callerID string, callerRole models.UserRole, applicantID string) (io.ReadCloser, string, error)
}

type ApplicationServiceImpl struct {
	appRepo  repositories.ApplicationRepository
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
	files    storage.Storage
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	files storage.Storage,
) ApplicationService {
	return &ApplicationServiceImpl{
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		userRepo: userRepo,
		files:    files,
	}
}

// Apply submits an application to an open job. A repeat apply for the same
// (applicant, job) pair is an idempotent no-op reported as already applied,
// never a second row. The unique index backs this up when two identical
// requests race past the existence check.
func (s *ApplicationServiceImpl) Apply(ctx context.Context, applicantID, jobID string) (*dto.ApplyResponse, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if job.IsClosed {
		return nil, apperrors.ErrJobClosed
	}

	existing, err := s.appRepo.FindByJobAndApplicant(ctx, jobID, applicantID)
	if err == nil {
		return &dto.ApplyResponse{
			Message:        "Already applied",
			AlreadyApplied: true,
			ApplicationID:  existing.ID,
		}, nil
	}
	if !apperrors.Is(err, repositories.ErrApplicationNotFound) {
		return nil, apperrors.InternalError(err)
	}

	app := &models.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      models.ApplicationStatusSubmitted,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationExists) {
			return &dto.ApplyResponse{
				Message:        "Already applied",
				AlreadyApplied: true,
			}, nil
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.ApplyResponse{
		Message:       "Applied successfully",
		ApplicationID: app.ID,
	}, nil
}

// ListForApplicant returns the caller's applications joined with job
// details, newest first.
func (s *ApplicationServiceImpl) ListForApplicant(ctx context.Context, applicantID string) ([]repositories.ApplicationWithJob, error) {
	rows, err := s.appRepo.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return rows, nil
}

// ListApplicants returns one page of a job's applicants for its owning
// employer. A missing job fails the ownership check the same way a foreign
// job does, so non-owners cannot probe for job existence.
func (s *ApplicationServiceImpl) ListApplicants(ctx context.Context, employerID, jobID string, req dto.ListApplicantsRequest) (*dto.ApplicantListResponse, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotJobOwner
		}
		return nil, apperrors.InternalError(err)
	}
	if job.EmployerID != employerID {
		return nil, apperrors.ErrNotJobOwner
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultApplicantPageSize
	}
	if limit > maxApplicantPageSize {
		limit = maxApplicantPageSize
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	rows, total, err := s.appRepo.ListApplicantsForJob(ctx, jobID, repositories.ApplicantFilter{
		Name:   req.Name,
		Skills: req.Skills,
		Status: req.Status,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if rows == nil {
		rows = []repositories.ApplicantRow{}
	}

	return &dto.ApplicantListResponse{
		Total:      total,
		Limit:      limit,
		Offset:     offset,
		Applicants: rows,
	}, nil
}

// UpdateStatus overwrites an application's status. The status must be one of
// the employer-settable values and the caller must own the parent job; no
// transition table is enforced beyond that, so re-setting the same status
// succeeds.
func (s *ApplicationServiceImpl) UpdateStatus(ctx context.Context, employerID, applicationID, status string) error {
	newStatus := models.ApplicationStatus(status)
	if !models.ValidStatusUpdate(newStatus) {
		return apperrors.ErrInvalidApplicationStatus(status)
	}

	app, err := s.appRepo.FindByID(ctx, applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return apperrors.InternalError(err)
	}

	job, err := s.jobRepo.FindByID(ctx, app.JobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotJobOwner
		}
		return apperrors.InternalError(err)
	}
	if job.EmployerID != employerID {
		return apperrors.ErrNotJobOwner
	}

	if err := s.appRepo.UpdateStatus(ctx, applicationID, newStatus); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// GetResume streams an applicant's resume. The caller must be the applicant
// themself, or an employer with at least one job the applicant applied to.
func (s *ApplicationServiceImpl) GetResume(ctx context.Context, callerID string, callerRole models.UserRole, applicantID string) (io.ReadCloser, string, error) {
	if callerID != applicantID {
		if callerRole != models.UserRoleEmployer {
			return nil, "", apperrors.NewForbiddenError("Not authorized")
		}
		allowed, err := s.appRepo.HasApplicationToEmployer(ctx, applicantID, callerID)
		if err != nil {
			return nil, "", apperrors.InternalError(err)
		}
		if !allowed {
			return nil, "", apperrors.NewForbiddenError("Not authorized")
		}
	}

	applicant, err := s.userRepo.FindByID(ctx, applicantID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, "", apperrors.ErrResumeNotFound
		}
		return nil, "", apperrors.InternalError(err)
	}
	if applicant.ResumeRef == "" {
		return nil, "", apperrors.ErrResumeNotFound
	}

	exists, err := s.files.Exists(ctx, applicant.ResumeRef)
	if err != nil {
		return nil, "", apperrors.StorageError(err)
	}
	if !exists {
		return nil, "", apperrors.ErrResumeNotFound
	}

	reader, err := s.files.Get(ctx, applicant.ResumeRef)
	if err != nil {
		return nil, "", apperrors.StorageError(err)
	}

	return reader, path.Base(applicant.ResumeRef), nil
}
