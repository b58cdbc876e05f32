package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes
const (
	// Account
	ErrCodeMissingFields      = "MISSING_FIELDS"
	ErrCodeWeakPassword       = "WEAK_PASSWORD"
	ErrCodeDuplicateUser      = "DUPLICATE_USER"
	ErrCodeMissingCredentials = "MISSING_CREDENTIALS"
	ErrCodeInvalidLogin       = "INVALID_LOGIN"
	ErrCodeMissingID          = "MISSING_ID"
	ErrCodeUserNotFound       = "USER_NOT_FOUND"
	ErrCodeMissingQuery       = "MISSING_QUERY"
	ErrCodeMissingUID         = "MISSING_UID"
	ErrCodePasswordTooShort   = "PASSWORD_TOO_SHORT"
	ErrCodeInvalidOldPassword = "INVALID_OLD_PASSWORD"
	ErrCodeUnauthorized       = "UNAUTHORIZED"

	// Friends
	ErrCodeSelfAdd        = "SELF_ADD"
	ErrCodeFriendNotFound = "FRIEND_NOT_FOUND"
	ErrCodeAlreadyFriends = "ALREADY_FRIENDS"

	// Projects and files
	ErrCodeMissingProjectName = "MISSING_PROJECT_NAME"
	ErrCodeMissingProjectID   = "MISSING_PROJECT_ID"
	ErrCodeProjectNotFound    = "PROJECT_NOT_FOUND"
	ErrCodeInvalidProjectIDs  = "INVALID_PROJECT_IDS"

	// Catch-all
	ErrCodeServerError = "SERVER_ERROR"
)

// APIError is the error envelope every failing response carries.
type APIError struct {
	Code    string `json:"error"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError
func NewAPIError(code, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
	}
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.JSON(statusCode, err)
}

// BadRequest sends a 400 response with the given code
func BadRequest(c *gin.Context, code, message string) {
	RespondWithError(c, http.StatusBadRequest, NewAPIError(code, message))
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, code, message string) {
	if message == "" {
		message = "Authentication required"
	}
	RespondWithError(c, http.StatusUnauthorized, NewAPIError(code, message))
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, code, message string) {
	if message == "" {
		message = "Resource not found"
	}
	RespondWithError(c, http.StatusNotFound, NewAPIError(code, message))
}

// Conflict sends a 409 response
func Conflict(c *gin.Context, code, message string) {
	if message == "" {
		message = "Resource conflict"
	}
	RespondWithError(c, http.StatusConflict, NewAPIError(code, message))
}

// InternalError sends a 500 response with the generic SERVER_ERROR code
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	RespondWithError(c, http.StatusInternalServerError, NewAPIError(ErrCodeServerError, message))
}
