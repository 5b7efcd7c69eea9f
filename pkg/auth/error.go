package auth

import "fmt"

// AuthError represents authentication-related errors
type AuthError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

type ErrorCode int

const (
	ErrStartup ErrorCode = iota
	ErrCallback
	ErrTransport
	ErrProtocol
	ErrTokenStorage
	ErrInvalidToken
	ErrTokenExpired
)

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("auth error [%d]: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("auth error [%d]: %s", e.Code, e.Message)
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

func NewAuthError(code ErrorCode, message string) *AuthError {
	return &AuthError{Code: code, Message: message}
}

func NewAuthErrorWithCause(code ErrorCode, message string, cause error) *AuthError {
	return &AuthError{Code: code, Message: message, Cause: cause}
}

// HTTPError is a token-endpoint rejection. It carries the provider's
// status and body so the failure can be diagnosed without re-running the
// flow.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("token endpoint returned %d: %s", e.StatusCode, e.Body)
}
