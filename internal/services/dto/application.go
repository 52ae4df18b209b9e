package dto

import "jobportal_backend/internal/repositories"

type ApplyRequest struct {
	JobID string `json:"job_id" validate:"required"`
}

type ApplyResponse struct {
	Message        string `json:"message"`
	AlreadyApplied bool   `json:"already_applied"`
	ApplicationID  string `json:"application_id,omitempty"`
}

type ListApplicantsRequest struct {
	Name   string `form:"name"`
	Skills string `form:"skills"`
	Status string `form:"status" validate:"omitempty,oneof=submitted reviewed shortlisted rejected"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

type ApplicantListResponse struct {
	Total      int64                       `json:"total"`
	Limit      int                         `json:"limit"`
	Offset     int                         `json:"offset"`
	Applicants []repositories.ApplicantRow `json:"applicants"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,is-application-status"`
}
