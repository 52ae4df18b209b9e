package models

type UserRole string
type ApplicationStatus string

const (
	UserRoleApplicant UserRole = "applicant"
	UserRoleEmployer  UserRole = "employer"

	ApplicationStatusSubmitted   ApplicationStatus = "submitted"
	ApplicationStatusReviewed    ApplicationStatus = "reviewed"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

// ValidUserRole reports whether role is one of the registrable roles.
func ValidUserRole(role UserRole) bool {
	switch role {
	case UserRoleApplicant, UserRoleEmployer:
		return true
	}
	return false
}

// ValidStatusUpdate reports whether status is an employer-settable
// application status. "submitted" is the initial state only and is not
// reachable through a status update.
func ValidStatusUpdate(status ApplicationStatus) bool {
	switch status {
	case ApplicationStatusReviewed, ApplicationStatusShortlisted, ApplicationStatusRejected:
		return true
	}
	return false
}
