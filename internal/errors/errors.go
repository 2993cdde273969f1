package errors

import (
	"errors"
	"fmt"
)

const (
	ErrorFailedToConnectToTheDatabase = "Failed to connect to the database"
	ErrorFailedToRunTheServer         = "Failed to run the server"
	ErrorFailedToShutdownTheServer    = "Failed to shutdown the server"
	ErrFailedDecodeRequestBody        = "Failed to decode request body"
	ErrInvalidRequestBody             = "Invalid request body"
	ErrFailedExpireStaleRequests      = "Failed to expire stale receive requests"
)

type ValidationError struct {
	Message string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

type NotFoundError struct {
	Message string
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func (e *NotFoundError) Error() string {
	return e.Message
}

type ForbiddenError struct {
	Message string
}

func NewForbiddenError(message string) *ForbiddenError {
	return &ForbiddenError{Message: message}
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// ConflictError rejects a status transition the transaction is not in the
// right state for. It is the idempotency guard for retried confirms.
type ConflictError struct {
	Message string
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func (e *ConflictError) Error() string {
	return e.Message
}

type InsufficientFundsError struct{}

func NewInsufficientFundsError() *InsufficientFundsError {
	return &InsufficientFundsError{}
}

func (e *InsufficientFundsError) Error() string {
	return "insufficient funds"
}

type LimitExceededError struct {
	LimitType string
	Remaining string
}

func NewLimitExceededError(limitType, remaining string) *LimitExceededError {
	return &LimitExceededError{LimitType: limitType, Remaining: remaining}
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("You will exceed the %s limit. You only have %s EGP to spend", e.LimitType, e.Remaining)
}

type InvalidPINError struct{}

func NewInvalidPINError() *InvalidPINError {
	return &InvalidPINError{}
}

func (e *InvalidPINError) Error() string {
	return "invalid PIN"
}

type TooManyAttemptsError struct{}

func NewTooManyAttemptsError() *TooManyAttemptsError {
	return &TooManyAttemptsError{}
}

func (e *TooManyAttemptsError) Error() string {
	return "You entered the wrong PIN too many times, To continue trying, Check your email that linked with this account"
}

// ExternalServiceError wraps any transport or remote failure from the
// account, user, notification or mail services. Raw transport errors
// never reach the state machine.
type ExternalServiceError struct {
	Service string
	Message string
}

func NewExternalServiceError(service, message string) *ExternalServiceError {
	return &ExternalServiceError{Service: service, Message: message}
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s service: %s", e.Service, e.Message)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
