package repositories

import (
	"context"
	"errors"
	"time"

	"jobportal_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrApplicationExists   = errors.New("application already exists")
)

// ApplicantFilter narrows a job's applicant listing. Name and Skills are
// substring matches, Status is exact. Filters are ANDed.
type ApplicantFilter struct {
	Name   string
	Skills string
	Status string
	Limit  int
	Offset int
}

// ApplicationWithJob is an applicant's application joined with its job.
type ApplicationWithJob struct {
	ID        string                   `json:"id"`
	JobID     string                   `json:"job_id"`
	Title     string                   `json:"title"`
	Company   string                   `json:"company"`
	Location  string                   `json:"location"`
	Status    models.ApplicationStatus `json:"status"`
	AppliedAt time.Time                `json:"applied_at"`
}

// ApplicantRow is one row of an employer's applicant listing.
type ApplicantRow struct {
	ID          string                   `json:"id"`
	ApplicantID string                   `json:"applicant_id"`
	Name        string                   `json:"name"`
	Email       string                   `json:"email"`
	Skills      string                   `json:"skills"`
	Bio         string                   `json:"bio"`
	ResumeRef   string                   `json:"resume_url"`
	Status      models.ApplicationStatus `json:"status"`
	AppliedAt   time.Time                `json:"applied_at"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
	FindByID(ctx context.Context, id string) (*models.Application, error)
	FindByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*models.Application, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]ApplicationWithJob, error)
	ListApplicantsForJob(ctx context.Context, jobID string, filter ApplicantFilter) ([]ApplicantRow, int64, error)
	UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error
	HasApplicationToEmployer(ctx context.Context, applicantID, employerID string) (bool, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

// Create inserts a new application. A violation of the (job_id,
// applicant_id) unique index maps to ErrApplicationExists, which closes the
// check-then-insert race under concurrent identical requests.
func (r *ApplicationRepositoryImpl) Create(ctx context.Context, app *models.Application) error {
	err := r.db.WithContext(ctx).Create(app).Error
	if err != nil && isDuplicateKeyError(err) {
		return ErrApplicationExists
	}
	return err
}

func (r *ApplicationRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) ListByApplicant(ctx context.Context, applicantID string) ([]ApplicationWithJob, error) {
	var rows []ApplicationWithJob
	err := r.db.WithContext(ctx).
		Table("applications").
		Select("applications.id, applications.job_id, jobs.title, jobs.company, jobs.location, applications.status, applications.created_at AS applied_at").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("applications.applicant_id = ?", applicantID).
		Order("applications.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// ListApplicantsForJob returns one page of a job's applicants joined with
// their user profile, plus the total count over the same filters.
func (r *ApplicationRepositoryImpl) ListApplicantsForJob(ctx context.Context, jobID string, filter ApplicantFilter) ([]ApplicantRow, int64, error) {
	base := r.db.WithContext(ctx).
		Table("applications").
		Joins("JOIN users ON users.id = applications.applicant_id").
		Where("applications.job_id = ?", jobID)

	if filter.Name != "" {
		base = base.Where("LOWER(users.name) LIKE ?", containsPattern(filter.Name))
	}
	if filter.Skills != "" {
		base = base.Where("LOWER(users.skills) LIKE ?", containsPattern(filter.Skills))
	}
	if filter.Status != "" {
		base = base.Where("applications.status = ?", filter.Status)
	}

	// Total reflects the filtered count, independent of limit/offset.
	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []ApplicantRow
	err := base.Session(&gorm.Session{}).
		Select("applications.id, users.id AS applicant_id, users.name, users.email, users.skills, users.bio, users.resume_ref, applications.status, applications.created_at AS applied_at").
		Order("applications.created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

func (r *ApplicationRepositoryImpl) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

// HasApplicationToEmployer reports whether the applicant has applied to at
// least one job owned by the employer.
func (r *ApplicationRepositoryImpl) HasApplicationToEmployer(ctx context.Context, applicantID, employerID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("applications").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("applications.applicant_id = ? AND jobs.employer_id = ?", applicantID, employerID).
		Count(&count).Error
	return count > 0, err
}
