package services

import (
	"context"
	"fmt"
	"io"
	"path"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/internal/storage"
	"jobportal_backend/pkg/apperrors"
)

// ResumeFile is an uploaded resume passed down from the HTTP layer.
type ResumeFile struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// UploadLimits come from the upload section of the config.
type UploadLimits struct {
	MaxSize      int64
	AllowedTypes []string
}

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest, resume *ResumeFile) (*models.User, error)
	GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	UploadResume(ctx context.Context, userID string, file *ResumeFile) (string, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	files    storage.Storage
	limits   UploadLimits
}

func NewUserService(userRepo repositories.UserRepository, files storage.Storage, limits UploadLimits) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		files:    files,
		limits:   limits,
	}
}

// Register creates a user. The resume, when present, is stored only for the
// applicant role; employers register without one.
func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest, resume *ResumeFile) (*models.User, error) {
	role := models.UserRole(req.Role)
	if !models.ValidUserRole(role) {
		return nil, apperrors.ErrInvalidUserRole
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         role,
		Bio:          req.Bio,
		Skills:       req.Skills,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	if resume != nil && role == models.UserRoleApplicant {
		if _, err := s.storeResume(ctx, user.ID, resume); err != nil {
			// The account exists; a failed resume write should not undo it.
			logger.CtxWithError(ctx, "failed to store resume at registration", err, "user_id", user.ID)
		}
	}

	return user, nil
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profileResponse(user), nil
}

// UpdateProfile applies a partial update: nil fields keep their stored
// values.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Skills != nil {
		user.Skills = *req.Skills
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return profileResponse(user), nil
}

// UploadResume stores the blob and records the reference on the user row.
// Only applicants carry resumes.
func (s *UserServiceImpl) UploadResume(ctx context.Context, userID string, file *ResumeFile) (string, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return "", apperrors.ErrUserNotFound
		}
		return "", apperrors.InternalError(err)
	}

	if user.Role != models.UserRoleApplicant {
		return "", apperrors.NewForbiddenError("Only applicants can upload resumes")
	}

	return s.storeResume(ctx, userID, file)
}

func (s *UserServiceImpl) storeResume(ctx context.Context, userID string, file *ResumeFile) (string, error) {
	if s.limits.MaxSize > 0 && file.Size > s.limits.MaxSize {
		return "", apperrors.NewBadRequestError("Resume exceeds the maximum allowed size")
	}
	if file.ContentType != "" && len(s.limits.AllowedTypes) > 0 && !contains(s.limits.AllowedTypes, file.ContentType) {
		return "", apperrors.NewBadRequestError("Resume file type is not allowed")
	}

	// Keyed by user id plus original filename, mirroring the upload layout.
	ref := fmt.Sprintf("resumes/%s_%s", userID, path.Base(file.Filename))

	if err := s.files.Save(ctx, ref, file.Reader, file.ContentType); err != nil {
		return "", apperrors.StorageError(err)
	}

	if err := s.userRepo.UpdateResumeRef(ctx, userID, ref); err != nil {
		// Compensate: do not leave an orphaned blob behind a failed row update.
		if delErr := s.files.Delete(ctx, ref); delErr != nil {
			logger.CtxWithError(ctx, "failed to clean up orphaned resume blob", delErr, "ref", ref)
		}
		return "", apperrors.InternalError(err)
	}

	return ref, nil
}

func profileResponse(user *models.User) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Bio:       user.Bio,
		Skills:    user.Skills,
		ResumeURL: user.ResumeRef,
	}
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
