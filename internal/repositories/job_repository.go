package repositories

import (
	"context"
	"errors"
	"strings"

	"jobportal_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobSearchFilter holds optional substring filters for job search. Empty
// fields are no-ops, not empty-string matches.
type JobSearchFilter struct {
	Title    string
	Location string
	Company  string
}

type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	FindByID(ctx context.Context, id string) (*models.Job, error)
	FindOpenByID(ctx context.Context, id string) (*models.Job, error)
	ListAll(ctx context.Context) ([]models.Job, error)
	Search(ctx context.Context, filter JobSearchFilter) ([]models.Job, error)
	SetClosed(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindOpenByID(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_closed = ?", id, false).
		First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) ListAll(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

// Search returns open jobs matching all supplied filters, newest first.
// Matching is case-insensitive contains.
func (r *JobRepositoryImpl) Search(ctx context.Context, filter JobSearchFilter) ([]models.Job, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("is_closed = ?", false)

	if filter.Title != "" {
		query = query.Where("LOWER(title) LIKE ?", containsPattern(filter.Title))
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", containsPattern(filter.Location))
	}
	if filter.Company != "" {
		query = query.Where("LOWER(company) LIKE ?", containsPattern(filter.Company))
	}

	var jobs []models.Job
	err := query.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

// SetClosed marks the job closed. Idempotent regardless of current state.
func (r *JobRepositoryImpl) SetClosed(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&models.Job{}).
		Where("id = ?", id).
		Update("is_closed", true).Error
}

func (r *JobRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Job{}, "id = ?", id).Error
}

func containsPattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
