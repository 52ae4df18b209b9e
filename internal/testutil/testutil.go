// Package testutil provides shared fixtures for package-level tests. The
// database is a throwaway sqlite file per test, migrated with the same
// models the server uses.
package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"jobportal_backend/database"
	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/storage"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// TestPassword is the plaintext password every seeded user gets.
const TestPassword = "password123"

func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func NewTestStorage(t *testing.T) storage.Storage {
	t.Helper()

	files, err := storage.NewLocalStorage(storage.Config{
		BasePath: t.TempDir(),
		BaseURL:  "/api/v1/files",
	})
	require.NoError(t, err)
	return files
}

func CreateUser(t *testing.T, db *gorm.DB, name, email string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(TestPassword)
	require.NoError(t, err)

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func CreateJob(t *testing.T, db *gorm.DB, employerID, title, company, location string) *models.Job {
	t.Helper()

	job := &models.Job{
		EmployerID:  employerID,
		Title:       title,
		Description: "description for " + title,
		Company:     company,
		Location:    location,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

// CreateApplication seeds an application with an explicit created_at so
// ordering assertions do not depend on insert timing.
func CreateApplication(t *testing.T, db *gorm.DB, jobID, applicantID string, createdAt time.Time) *models.Application {
	t.Helper()

	app := &models.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      models.ApplicationStatusSubmitted,
	}
	app.CreatedAt = createdAt
	require.NoError(t, db.Create(app).Error)
	return app
}
