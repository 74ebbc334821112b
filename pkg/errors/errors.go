// Package errors provides structured error handling for the application
// with a stable mapping from error codes to HTTP status codes.
package errors

import (
	"fmt"
	"net/http"
	"unicode"
	"unicode/utf8"
)

// ErrorCode represents an error code
type ErrorCode string

// Common error codes following RESTful API conventions
const (
	// Client errors (4xx)
	CodeBadRequest       ErrorCode = "BAD_REQUEST"
	CodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	CodeForbidden        ErrorCode = "FORBIDDEN"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Server errors (5xx)
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"

	// Business logic errors
	CodeRecipeNotFound        ErrorCode = "RECIPE_NOT_FOUND"
	CodeIngredientNotFound    ErrorCode = "INGREDIENT_NOT_FOUND"
	CodeOrderNotFound         ErrorCode = "ORDER_NOT_FOUND"
	CodeInvalidCredentials    ErrorCode = "INVALID_CREDENTIALS"
	CodeSessionInvalid        ErrorCode = "SESSION_INVALID"
	CodeUsernameAlreadyExists ErrorCode = "USERNAME_ALREADY_EXISTS"
	CodeEmailAlreadyExists    ErrorCode = "EMAIL_ALREADY_EXISTS"
)

// AppError represents an application error with structured information
type AppError struct {
	Code     ErrorCode              `json:"code"`
	Message  string                 `json:"message"`
	Details  string                 `json:"details,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	Cause    error                  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// StatusCode returns the appropriate HTTP status code
func (e *AppError) StatusCode() int {
	switch e.Code {
	case CodeBadRequest, CodeValidationFailed:
		return http.StatusBadRequest
	case CodeUnauthorized, CodeInvalidCredentials, CodeSessionInvalid:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound, CodeRecipeNotFound, CodeIngredientNotFound, CodeOrderNotFound:
		return http.StatusNotFound
	case CodeConflict, CodeUsernameAlreadyExists, CodeEmailAlreadyExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WithMetadata adds metadata to the error
func (e *AppError) WithMetadata(key string, value interface{}) *AppError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// WithCause adds a cause error
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message, details string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Predefined error constructors for common scenarios

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *AppError {
	return NewAppError(CodeBadRequest, message, "")
}

// NewValidationError creates a validation error
func NewValidationError(details string) *AppError {
	return NewAppError(CodeValidationFailed, "Validation failed", details)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError(message string) *AppError {
	if message == "" {
		message = "Authentication required"
	}
	return NewAppError(CodeUnauthorized, message, "")
}

// NewForbiddenError creates a forbidden error
func NewForbiddenError(message string) *AppError {
	if message == "" {
		message = "Access forbidden"
	}
	return NewAppError(CodeForbidden, message, "")
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	message := "Resource not found"
	if resource != "" {
		message = fmt.Sprintf("%s not found", titleFirst(resource))
	}
	return NewAppError(CodeNotFound, message, "")
}

// titleFirst upper-cases the first rune only.
func titleFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// NewConflictError creates a conflict error
func NewConflictError(message string) *AppError {
	return NewAppError(CodeConflict, message, "")
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *AppError {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return NewAppError(CodeInternal, message, "")
}

// NewDatabaseError creates a database error
func NewDatabaseError(operation string, cause error) *AppError {
	return NewAppError(
		CodeDatabaseError,
		"Database operation failed",
		fmt.Sprintf("Failed to %s", operation),
	).WithCause(cause)
}

// Business domain specific errors

// NewRecipeNotFoundError creates a recipe not found error
func NewRecipeNotFoundError(recipeID uint) *AppError {
	return NewAppError(
		CodeRecipeNotFound,
		"Recipe not found",
		fmt.Sprintf("Recipe with ID %d does not exist", recipeID),
	).WithMetadata("recipe_id", recipeID)
}

// NewIngredientNotFoundError creates an ingredient not found error.
// The message names the offending id so an order can report which line failed.
func NewIngredientNotFoundError(ingredientID uint) *AppError {
	return NewAppError(
		CodeIngredientNotFound,
		fmt.Sprintf("Ingredient %d not found", ingredientID),
		"",
	).WithMetadata("ingredient_id", ingredientID)
}

// NewOrderNotFoundError creates an order not found error
func NewOrderNotFoundError(orderID uint) *AppError {
	return NewAppError(
		CodeOrderNotFound,
		"Order not found",
		fmt.Sprintf("Order with ID %d does not exist", orderID),
	).WithMetadata("order_id", orderID)
}

// NewInvalidCredentialsError creates an invalid credentials error
func NewInvalidCredentialsError() *AppError {
	return NewAppError(
		CodeInvalidCredentials,
		"Invalid credentials",
		"The provided username or password is incorrect",
	)
}

// NewSessionInvalidError creates a session invalid error
func NewSessionInvalidError() *AppError {
	return NewAppError(
		CodeSessionInvalid,
		"Session invalid",
		"The session is missing, expired, or unknown",
	)
}

// NewUsernameAlreadyExistsError creates a username already exists error
func NewUsernameAlreadyExistsError(username string) *AppError {
	return NewAppError(
		CodeUsernameAlreadyExists,
		"Username already exists",
		"This username is already taken",
	).WithMetadata("username", username)
}

// NewEmailAlreadyExistsError creates an email already exists error
func NewEmailAlreadyExistsError(email string) *AppError {
	return NewAppError(
		CodeEmailAlreadyExists,
		"Email already exists",
		"An account with this email address already exists",
	).WithMetadata("email", email)
}

// Utility functions

// Wrap wraps an error as an internal error if it's not already an AppError
func Wrap(err error, message string) *AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := err.(*AppError); ok {
		return appErr
	}

	return NewInternalError(message).WithCause(err)
}

// GetAppError converts any error to an AppError, wrapping non-AppErrors
// as opaque internal errors.
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return NewInternalError("Internal server error").WithCause(err)
}

// Is checks if an error is of a specific error code
func Is(err error, code ErrorCode) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return CodeInternal
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToErrorResponse converts an AppError to the wire error shape.
// Only the public message is exposed; causes stay server-side.
func ToErrorResponse(err *AppError) ErrorResponse {
	return ErrorResponse{Error: err.Message}
}
