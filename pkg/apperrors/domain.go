package apperrors

import (
	"net/http"
)

// Predefined errors and factories for the job-portal domain.

// --- Auth ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

var ErrTokenMalformed = New(
	CodeTokenMalformed,
	"auth",
	"Invalid token",
	http.StatusUnauthorized,
)

var ErrTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"Token expired",
	http.StatusUnauthorized,
)

var ErrTokenRevoked = New(
	CodeTokenRevoked,
	"auth",
	"Token has been revoked",
	http.StatusUnauthorized,
)

var ErrInsufficientRole = New(
	CodeForbidden,
	"auth",
	"Access denied: insufficient role",
	http.StatusForbidden,
)

// --- Users ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"users",
	"Email already registered",
	http.StatusConflict,
)

var ErrInvalidUserRole = New(
	CodeInvalidRole,
	"users",
	"Invalid role",
	http.StatusBadRequest,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"users",
	"User not found",
	http.StatusNotFound,
)

var ErrResumeNotFound = New(
	CodeNotFound,
	"users",
	"Resume not found",
	http.StatusNotFound,
)

// --- Jobs ---

var ErrJobNotFound = New(
	CodeNotFound,
	"jobs",
	"Job not found",
	http.StatusNotFound,
)

var ErrNotJobOwner = New(
	CodeForbidden,
	"jobs",
	"Not authorized",
	http.StatusForbidden,
)

var ErrJobClosed = New(
	CodeInvalidStatus,
	"jobs",
	"Job is closed",
	http.StatusConflict,
)

// --- Applications ---

var ErrApplicationNotFound = New(
	CodeNotFound,
	"applications",
	"Application not found",
	http.StatusNotFound,
)

// ErrInvalidApplicationStatus is a factory so the offending value lands in
// the message.
func ErrInvalidApplicationStatus(status string) *AppError {
	return New(
		CodeInvalidStatus,
		"applications",
		"Invalid status: "+status,
		http.StatusBadRequest,
	)
}
