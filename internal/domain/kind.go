package domain

import "errors"

// Kind classifies an error into the categories surfaced to API clients.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthenticated
	KindUnauthorized
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrTokenExpired, KindUnauthenticated},
	{ErrTokenInvalid, KindUnauthenticated},
	{ErrUnauthenticated, KindUnauthenticated},
	{ErrInvalidCredentials, KindUnauthenticated},

	{ErrUnauthorized, KindUnauthorized},
	{ErrForbidden, KindUnauthorized},

	{ErrNotFound, KindNotFound},
	{ErrUserNotFound, KindNotFound},
	{ErrVolunteerNotFound, KindNotFound},
	{ErrCommanderNotFound, KindNotFound},
	{ErrJobNotFound, KindNotFound},
	{ErrApplicationNotFound, KindNotFound},
	{ErrNoApplication, KindNotFound},
	{ErrInterviewNotFound, KindNotFound},
	{ErrNoApplications, KindNotFound},

	{ErrEmailAlreadyExists, KindConflict},
	{ErrNationalIDAlreadyExists, KindConflict},
	{ErrDuplicateApplication, KindConflict},
	{ErrInterviewAlreadyExists, KindConflict},
	{ErrStaleApplication, KindConflict},

	{ErrInvalidInput, KindValidation},
	{ErrInvalidRole, KindValidation},
	{ErrPasswordTooWeak, KindValidation},
	{ErrInvalidPhone, KindValidation},
	{ErrJobClosed, KindValidation},
	{ErrInvalidStatus, KindValidation},
	{ErrNoVacancy, KindValidation},
	{ErrUnknownField, KindValidation},
	{ErrNotAccepted, KindValidation},
	{ErrInvalidTransition, KindValidation},
	{ErrInvalidDate, KindValidation},
	{ErrResumeMissing, KindValidation},
	{ErrResumeTooLarge, KindValidation},
	{ErrResumeUnsupported, KindValidation},
}

// duplicates are conflicts on client-supplied unique values. The API
// reports them as bad requests.
var duplicates = []error{
	ErrEmailAlreadyExists,
	ErrNationalIDAlreadyExists,
	ErrDuplicateApplication,
}

// IsDuplicate reports whether err wraps a uniqueness conflict on data the
// client sent.
func IsDuplicate(err error) bool {
	for _, d := range duplicates {
		if errors.Is(err, d) {
			return true
		}
	}
	return false
}

// KindOf returns the category of err. Anything not wrapping a known
// sentinel is internal.
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}
