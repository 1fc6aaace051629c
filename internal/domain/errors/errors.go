package errors

import (
	"net/http"

	"devconnector/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message
	Details() string   // Detailed error information (optional)
}

// FieldError is one entry of a validation failure list
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

// Lister is implemented by errors that render as a list of field errors
type Lister interface {
	FieldErrors() []FieldError
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	listed    bool
}

// NewBaseError creates an error rendered as a single message
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// NewListedError creates an error rendered inside an errors list, like a validation failure
func NewListedError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		listed:    true,
	}
}

func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// FieldErrors returns the error as a one-entry list when it was created listed
func (e *BaseError) FieldErrors() []FieldError {
	if !e.listed {
		return nil
	}

	return []FieldError{{Msg: e.message}}
}

// WithDetails returns a copy carrying detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// Predefined error types
var (
	// Identity
	ErrUserAlreadyExists = NewListedError(
		http.StatusBadRequest,
		"USER_ALREADY_EXISTS",
		"User already exists",
	)

	ErrInvalidCredentials = NewListedError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"Invalid Credentials",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Server Error",
		"",
	)

	ErrTokenIssueFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_ISSUE_FAILED",
		"Server Error",
		"",
	)

	// Auth gate
	ErrNoToken = NewBaseError(
		http.StatusUnauthorized,
		"NO_TOKEN",
		"No token, authorization denied",
		"",
	)

	ErrTokenNotValid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_NOT_VALID",
		"Token is not valid",
		"",
	)

	// Ownership
	ErrNotAuthorized = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHORIZED",
		"User not authorized",
		"",
	)

	// Profile
	ErrNoProfileForUser = NewBaseError(
		http.StatusBadRequest,
		"NO_PROFILE",
		"There is no profile for this user",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		http.StatusBadRequest,
		"PROFILE_NOT_FOUND",
		"Profile not found",
		"",
	)

	ErrExperienceNotFound = NewBaseError(
		http.StatusNotFound,
		"EXPERIENCE_NOT_FOUND",
		"Experience not found",
		"",
	)

	ErrEducationNotFound = NewBaseError(
		http.StatusNotFound,
		"EDUCATION_NOT_FOUND",
		"Education not found",
		"",
	)

	ErrGitHubProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"GITHUB_PROFILE_NOT_FOUND",
		"No Github profile found",
		"",
	)

	// Posts
	ErrPostNotFound = NewBaseError(
		http.StatusNotFound,
		"POST_NOT_FOUND",
		"Post not found",
		"",
	)

	ErrPostAlreadyLiked = NewBaseError(
		http.StatusBadRequest,
		"POST_ALREADY_LIKED",
		"Post already liked",
		"",
	)

	ErrPostNotLiked = NewBaseError(
		http.StatusBadRequest,
		"POST_NOT_LIKED",
		"Post has not yet been liked",
		"",
	)

	ErrCommentNotFound = NewBaseError(
		http.StatusNotFound,
		"COMMENT_NOT_FOUND",
		"Comment does not exist",
		"",
	)

	// General
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Server Error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap exposes the driver error for errors.Is checks
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "Server Error"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
