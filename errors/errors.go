package errors

import (
	"errors"
	"net/http"
	"strings"
)

// Kind classifies an Error for errors.Is and for presentation.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindAuth
	KindSelfMessage
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation error"
	case KindConflict:
		return "conflict"
	case KindAuth:
		return "unauthorized"
	case KindSelfMessage:
		return "self message"
	case KindNotFound:
		return "not found"
	default:
		return "internal server error"
	}
}

// Error is a request-scoped failure carrying a user-visible message and an HTTP status.
type Error struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Kind    Kind   `json:"-"`
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Message
}

// Is matches on Kind when target carries no message, otherwise on Kind and Message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Message == "" || t.Message == e.Message
}

// New creates an Error whose kind is derived from status.
func New(message string, status int) *Error {
	return &Error{Message: message, Status: status, Kind: kindFor(status)}
}

func kindFor(status int) Kind {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return KindValidation
	case http.StatusConflict:
		return KindConflict
	case http.StatusUnauthorized:
		return KindAuth
	case http.StatusForbidden:
		return KindSelfMessage
	case http.StatusNotFound:
		return KindNotFound
	default:
		return KindInternal
	}
}

func Validation(message string) *Error { return New(message, http.StatusBadRequest) }
func Conflict(message string) *Error   { return New(message, http.StatusConflict) }
func Auth(message string) *Error       { return New(message, http.StatusUnauthorized) }
func NotFound(message string) *Error   { return New(message, http.StatusNotFound) }

func SelfMessage(message string) *Error {
	return &Error{Message: message, Status: http.StatusForbidden, Kind: KindSelfMessage}
}

// Kind sentinels.
var (
	ErrValidation = &Error{Kind: KindValidation, Status: http.StatusBadRequest}
	ErrConflict   = &Error{Kind: KindConflict, Status: http.StatusConflict}
	ErrAuth       = &Error{Kind: KindAuth, Status: http.StatusUnauthorized}
	ErrNotFound   = &Error{Kind: KindNotFound, Status: http.StatusNotFound}
	ErrInternal   = &Error{Kind: KindInternal, Status: http.StatusInternalServerError}
)

var (
	ErrInternalServerError = New("Something went wrong. Please try again.", http.StatusInternalServerError)
	ErrBadRequest          = Validation("bad request")
	ErrFieldsRequired      = Validation("All fields are required.")
	ErrPasswordMismatch    = Validation("Passwords do not match.")
	ErrInvalidEmail        = Validation("Please enter a valid email address.")
	ErrTitleAuthorRequired = Validation("Title and author are required.")
	ErrEmptyMessage        = Validation("Message content cannot be empty.")
	ErrUsernameTaken       = Conflict("Username already taken.")
	ErrEmailTaken          = Conflict("Email already registered.")
	ErrInvalidCredentials  = Auth("Invalid username or password.")
	ErrLoginRequired       = Auth("Please log in to access this page.")
	ErrListingNotFound     = NotFound("Listing not found.")
	ErrUserNotFound        = NotFound("User not found.")
	ErrSelfMessage         = SelfMessage("You cannot message yourself about your own listing.")
)

// IsUniqueViolation reports whether err comes from a unique index on sqlite or postgres.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "SQLSTATE 23505")
}

// GetUniqueContraintError maps a unique index violation on users to the matching conflict.
func GetUniqueContraintError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	if !IsUniqueViolation(err) {
		return ErrInternalServerError
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "username"):
		return ErrUsernameTaken
	case strings.Contains(msg, "email"):
		return ErrEmailTaken
	default:
		return Conflict("Record already exists.")
	}
}

// StatusOf returns the HTTP status carried by err, or 500.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Status != 0 {
		return e.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the user-visible message for err, hiding internal details.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Error()
	}
	return ErrInternalServerError.Message
}
