package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Configuration (CFG) ----
// Missing or undecodable credentials are fatal to the operation, never retried.

func ErrClientNotInitialized() *AppError {
	return New("CFG_001", "Ledger client is not initialized", http.StatusInternalServerError)
}

func ErrMissingOperator() *AppError {
	return New("CFG_002", "MY_ACCOUNT_ID and MY_MNEMONIC must be present", http.StatusInternalServerError)
}

func ErrMissingSeedPhrase() *AppError {
	return New("CFG_003", "Seed phrase is not set in environment variables", http.StatusInternalServerError)
}

func ErrMissingTokenOperator() *AppError {
	return New("CFG_004", "ACCOUNT_ID and ACCOUNT_PRIVATE_KEY must be set in the environment", http.StatusInternalServerError)
}

func ErrInvalidCredentials(err error) *AppError {
	return Wrap("CFG_005", "Configured ledger credentials are invalid", http.StatusInternalServerError, err)
}

// ---- Ledger submission (LEDGER) ----

func ErrSubmission(message string, err error) *AppError {
	return Wrap("LEDGER_001", message, http.StatusBadGateway, err)
}

func ErrReceipt(err error) *AppError {
	return Wrap("LEDGER_002", "Failed to retrieve transaction receipt", http.StatusBadGateway, err)
}

func ErrMissingEntityID(entity string) *AppError {
	return New("LEDGER_003", fmt.Sprintf("Failed to retrieve the new %s ID", entity), http.StatusBadGateway)
}

// ---- Persistence (STORE) ----

func ErrNoAccountFound() *AppError {
	return New("STORE_001", "No account found in the database", http.StatusNotFound)
}

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a 400 validation error.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}
