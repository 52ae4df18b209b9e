package services

import (
	"context"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

type JobService interface {
	ListJobs(ctx context.Context) ([]models.Job, error)
	SearchJobs(ctx context.Context, req dto.SearchJobsRequest) ([]models.Job, error)
	GetJob(ctx context.Context, jobID string) (*models.Job, error)
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	CloseJob(ctx context.Context, employerID, jobID string) error
	DeleteJob(ctx context.Context, employerID, jobID string) error
}

type JobServiceImpl struct {
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
}

func NewJobService(jobRepo repositories.JobRepository, userRepo repositories.UserRepository) JobService {
	return &JobServiceImpl{
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

// ListJobs returns every job, open or closed, newest first.
func (s *JobServiceImpl) ListJobs(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.jobRepo.ListAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

// SearchJobs filters open jobs by case-insensitive contains on any supplied
// field; absent filters are no-ops.
func (s *JobServiceImpl) SearchJobs(ctx context.Context, req dto.SearchJobsRequest) ([]models.Job, error) {
	jobs, err := s.jobRepo.Search(ctx, repositories.JobSearchFilter{
		Title:    req.Title,
		Location: req.Location,
		Company:  req.Company,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

// GetJob returns the job only while it is open.
func (s *JobServiceImpl) GetJob(ctx context.Context, jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindOpenByID(ctx, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	employer, err := s.userRepo.FindByID(ctx, req.EmployerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("Unknown user")
		}
		return nil, apperrors.InternalError(err)
	}
	if employer.Role != models.UserRoleEmployer {
		return nil, apperrors.ErrInsufficientRole
	}

	job := &models.Job{
		EmployerID:  employer.ID,
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		Location:    req.Location,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// CloseJob marks the job closed. Only the owning employer may close it;
// closing an already-closed job succeeds.
func (s *JobServiceImpl) CloseJob(ctx context.Context, employerID, jobID string) error {
	if err := s.authorizeOwner(ctx, employerID, jobID); err != nil {
		return err
	}
	if err := s.jobRepo.SetClosed(ctx, jobID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// DeleteJob hard-deletes the job. Same ownership rule as CloseJob.
func (s *JobServiceImpl) DeleteJob(ctx context.Context, employerID, jobID string) error {
	if err := s.authorizeOwner(ctx, employerID, jobID); err != nil {
		return err
	}
	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *JobServiceImpl) authorizeOwner(ctx context.Context, employerID, jobID string) error {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}
	if job.EmployerID != employerID {
		return apperrors.ErrNotJobOwner
	}
	return nil
}
