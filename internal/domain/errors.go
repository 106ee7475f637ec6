// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")

	// Credential errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooWeak    = errors.New("password too weak")

	// Token and access errors
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrTokenExpired    = errors.New("token expired")
	ErrTokenInvalid    = errors.New("token invalid")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")

	// Profile errors
	ErrVolunteerNotFound       = errors.New("volunteer not found")
	ErrCommanderNotFound       = errors.New("commander not found")
	ErrNationalIDAlreadyExists = errors.New("national id already exists")
	ErrInvalidPhone            = errors.New("invalid phone number")

	// Job errors
	ErrJobNotFound    = errors.New("job not found")
	ErrJobClosed      = errors.New("job is not open for applications")
	ErrInvalidStatus  = errors.New("invalid job status")
	ErrNoVacancy      = errors.New("no vacant positions available")
	ErrUnknownField   = errors.New("unknown field")
	ErrNoApplications = errors.New("no applications found")

	// Application errors
	ErrApplicationNotFound    = errors.New("application not found")
	ErrDuplicateApplication   = errors.New("already applied for this job")
	ErrNoApplication          = errors.New("no application found for this volunteer and job")
	ErrNotAccepted            = errors.New("application must be preferred by the commander first")
	ErrInvalidTransition      = errors.New("invalid application status transition")
	ErrStaleApplication       = errors.New("application was modified concurrently")
	ErrInvalidDate            = errors.New("invalid date")
	ErrInterviewNotFound      = errors.New("interview not found")
	ErrInterviewAlreadyExists = errors.New("interview already scheduled")

	// Resume errors
	ErrResumeMissing     = errors.New("no resume file uploaded")
	ErrResumeTooLarge    = errors.New("resume file too large")
	ErrResumeUnsupported = errors.New("unsupported resume file type")
)
