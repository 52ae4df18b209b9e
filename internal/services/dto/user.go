package dto

import "jobportal_backend/internal/models"

type ProfileResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	Bio       string          `json:"bio"`
	Skills    string          `json:"skills"`
	ResumeURL string          `json:"resume_url"`
}

// UpdateProfileRequest is a partial update: nil fields leave the stored
// values untouched, an explicit empty string clears them.
type UpdateProfileRequest struct {
	Bio    *string `json:"bio" form:"bio"`
	Skills *string `json:"skills" form:"skills"`
}

type UploadResumeResponse struct {
	Message   string `json:"message"`
	ResumeURL string `json:"resume_url"`
}
