// Package errors provides centralized error definitions and error handling
// utilities for the Mentorlane codebase. It defines domain-specific errors,
// semantic error types, error constructors with context wrapping, and error
// classification helpers.
//
// # Error Types
//
// The package provides two categories of errors:
//
// Domain-specific errors represent errors from specific subsystems:
//   - APIError: errors returned by (or while reaching) the marketplace backend
//   - BookingError: errors in the slot-selection and booking submission flow
//   - PaymentError: errors in the payment-provider hand-off and verification
//
// Semantic errors represent common error conditions:
//   - NotFoundError: resource not found
//   - ValidationError: invalid input or state
//
// # Usage
//
// Creating errors:
//
//	// Domain-specific error
//	err := errors.NewBookingError("failed to create booking", errors.ErrSlotConflict)
//
//	// With context wrapping
//	err := errors.NewAPIError("request failed", baseErr).WithEndpoint("/booking/create")
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrPricingUnavailable) { ... }
//
//	var apiErr *errors.APIError
//	if errors.As(err, &apiErr) { ... }
//
//	if errors.IsRetryable(err) { ... }
//	if errors.IsUserFacing(err) { ... }
//
// # Error Classification
//
// Errors can be classified by severity and behavior:
//   - Retryable: transient errors that may succeed on retry (network fetches)
//   - UserFacing: errors safe to display to users (vs internal errors)
//   - Severity: Debug, Info, Warning, Error, Critical
//
// The one Critical case in this client is ErrVerificationFailed: money may
// have moved without a confirmed booking, so it must be surfaced to a human
// support channel and never silently retried.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that require immediate attention.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Booking-related sentinel errors
var (
	// ErrSlotUnavailable indicates an attempt to select a slot that is already booked.
	ErrSlotUnavailable = New("slot is not available")
	// ErrSlotMalformed indicates a slot whose end time precedes its start time.
	ErrSlotMalformed = New("slot end time precedes start time")
	// ErrSlotConflict indicates the backend rejected a reservation because a
	// slot was taken between fetch and submit.
	ErrSlotConflict = New("slot already taken")
	// ErrNoSelection indicates submission was attempted without a complete selection.
	ErrNoSelection = New("no date or slots selected")
	// ErrPricingUnavailable indicates the mentor has no price for the chosen session type.
	ErrPricingUnavailable = New("pricing not available for session type")
	// ErrFlowBusy indicates a submission was attempted while another is in progress.
	ErrFlowBusy = New("booking submission already in progress")
)

// Payment-related sentinel errors
var (
	// ErrCheckoutNotReady indicates the payment provider is not ready to open checkout.
	ErrCheckoutNotReady = New("payment provider not ready")
	// ErrCheckoutDismissed indicates the caller closed the provider checkout
	// without paying.
	ErrCheckoutDismissed = New("checkout dismissed")
	// ErrVerificationFailed indicates the backend rejected a payment that the
	// provider reported as successful. Money may have moved.
	ErrVerificationFailed = New("payment verification failed")
)

// Session-related sentinel errors
var (
	// ErrNotLoggedIn indicates an operation that requires an authenticated session.
	ErrNotLoggedIn = New("not logged in")
	// ErrSessionCorrupted indicates persisted session data could not be decoded.
	ErrSessionCorrupted = New("session data corrupted")
)

// Meeting-related sentinel errors
var (
	// ErrMeetingNotJoinable indicates the meeting status forbids joining.
	ErrMeetingNotJoinable = New("meeting is not joinable")
	// ErrOutsideJoinWindow indicates the current time is outside the join window.
	ErrOutsideJoinWindow = New("outside join window")
	// ErrReasonRequired indicates a mentor-side cancellation without a reason.
	ErrReasonRequired = New("cancellation reason is required")
)

// General sentinel errors
var (
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
	// ErrBackendUnavailable indicates the backend could not be reached.
	ErrBackendUnavailable = New("backend unavailable")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// MentorlaneError is the base interface for all Mentorlane errors.
// It extends the standard error interface with additional methods for
// error handling and classification.
type MentorlaneError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Is reports whether this error matches the target error.
	Is(target error) bool

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsRetryable returns true if the error is transient and the operation
	// may succeed on retry.
	IsRetryable() bool

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
	IsUserFacing() bool
}

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	retryable  bool
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsRetryable returns whether the error is retryable.
func (e *baseError) IsRetryable() bool {
	return e.retryable
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// APIError represents an error returned by, or while reaching, the
// marketplace backend.
//
// Example:
//
//	err := errors.NewAPIError("request failed", cause).
//		WithEndpoint("/booking/create").WithStatusCode(409)
type APIError struct {
	baseError
	Endpoint   string
	StatusCode int
	// Message is the backend-reported message, surfaced verbatim to callers.
	Message string
}

// NewAPIError creates a new APIError. Backend fetch failures are recoverable
// by caller-initiated reload, so they default to retryable.
func NewAPIError(message string, cause error) *APIError {
	return &APIError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			retryable:  true,
			userFacing: true,
		},
	}
}

// WithEndpoint adds the request endpoint to the error context.
func (e *APIError) WithEndpoint(endpoint string) *APIError {
	e.Endpoint = endpoint
	return e
}

// WithStatusCode adds the HTTP status code to the error context.
func (e *APIError) WithStatusCode(code int) *APIError {
	e.StatusCode = code
	return e
}

// WithMessage adds the backend-reported message to the error context.
func (e *APIError) WithMessage(msg string) *APIError {
	e.Message = msg
	return e
}

// WithRetryable sets whether the error is retryable.
func (e *APIError) WithRetryable(r bool) *APIError {
	e.retryable = r
	return e
}

// Error returns the formatted error message.
func (e *APIError) Error() string {
	var parts []string
	if e.Endpoint != "" {
		parts = append(parts, fmt.Sprintf("endpoint=%s", e.Endpoint))
	}
	if e.StatusCode != 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.StatusCode))
	}

	prefix := "api error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("api error [%s]", strings.Join(parts, ", "))
	}

	msg := e.message
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, msg)
}

// Is checks if this error matches the target.
func (e *APIError) Is(target error) bool {
	if _, ok := target.(*APIError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// BookingError represents errors in the slot-selection and booking
// submission flow.
//
// Example:
//
//	err := errors.NewBookingError("creation rejected", errors.ErrSlotConflict).
//		WithMentorID("m-42").WithOrderID("ord_123")
type BookingError struct {
	baseError
	MentorID string
	OrderID  string
}

// NewBookingError creates a new BookingError.
func NewBookingError(message string, cause error) *BookingError {
	return &BookingError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithMentorID adds a mentor ID to the error context.
func (e *BookingError) WithMentorID(id string) *BookingError {
	e.MentorID = id
	return e
}

// WithOrderID adds an order ID to the error context.
func (e *BookingError) WithOrderID(id string) *BookingError {
	e.OrderID = id
	return e
}

// WithSeverity sets the error severity.
func (e *BookingError) WithSeverity(s Severity) *BookingError {
	e.severity = s
	return e
}

// Error returns the formatted error message.
func (e *BookingError) Error() string {
	var parts []string
	if e.MentorID != "" {
		parts = append(parts, fmt.Sprintf("mentor=%s", e.MentorID))
	}
	if e.OrderID != "" {
		parts = append(parts, fmt.Sprintf("order=%s", e.OrderID))
	}

	prefix := "booking error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("booking error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *BookingError) Is(target error) bool {
	if _, ok := target.(*BookingError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// PaymentError represents errors in the payment-provider hand-off and
// post-payment verification.
//
// A PaymentError wrapping ErrVerificationFailed is Critical: the provider
// captured the payment but the backend could not confirm the booking.
type PaymentError struct {
	baseError
	OrderID   string
	PaymentID string
}

// NewPaymentError creates a new PaymentError.
func NewPaymentError(message string, cause error) *PaymentError {
	severity := SeverityError
	if cause != nil && errors.Is(cause, ErrVerificationFailed) {
		severity = SeverityCritical
	}
	return &PaymentError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   severity,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithOrderID adds an order ID to the error context.
func (e *PaymentError) WithOrderID(id string) *PaymentError {
	e.OrderID = id
	return e
}

// WithPaymentID adds a provider payment ID to the error context.
func (e *PaymentError) WithPaymentID(id string) *PaymentError {
	e.PaymentID = id
	return e
}

// Error returns the formatted error message.
func (e *PaymentError) Error() string {
	var parts []string
	if e.OrderID != "" {
		parts = append(parts, fmt.Sprintf("order=%s", e.OrderID))
	}
	if e.PaymentID != "" {
		parts = append(parts, fmt.Sprintf("payment=%s", e.PaymentID))
	}

	prefix := "payment error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("payment error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *PaymentError) Is(target error) bool {
	if _, ok := target.(*PaymentError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// NotFoundError represents a resource that could not be found.
//
// Example:
//
//	err := errors.NewNotFoundError("mentor", "m-42")
//	fmt.Println(err) // "mentor 'm-42' not found"
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:    fmt.Sprintf("%s '%s' not found", resourceType, resourceID),
			severity:   SeverityWarning,
			retryable:  false,
			userFacing: true,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// WithCause adds a cause to the error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s '%s' not found: %v", e.ResourceType, e.ResourceID, e.cause)
	}
	return fmt.Sprintf("%s '%s' not found", e.ResourceType, e.ResourceID)
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// ValidationError represents invalid input or state. Validation failures
// block submission locally and never reach the network.
//
// Example:
//
//	err := errors.NewValidationError("meeting topic cannot be empty").WithField("topic")
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if target == ErrInvalidInput {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsRetryable returns true if the error represents a transient condition
// that may succeed on retry. Verification failures are never retryable,
// regardless of the wrapping error's default.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	if Is(err, ErrVerificationFailed) {
		return false
	}

	var mlErr MentorlaneError
	if As(err, &mlErr) {
		return mlErr.IsRetryable()
	}

	if Is(err, ErrBackendUnavailable) {
		return true
	}

	return false
}

// IsUserFacing returns true if the error message is safe to display to end users.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var mlErr MentorlaneError
	if As(err, &mlErr) {
		return mlErr.IsUserFacing()
	}

	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement MentorlaneError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var mlErr MentorlaneError
	if As(err, &mlErr) {
		return mlErr.Severity()
	}

	if Is(err, ErrVerificationFailed) {
		return SeverityCritical
	}

	return SeverityError
}

// NeedsSupport returns true if the error must be escalated to a human
// support channel rather than retried or dismissed. This is the
// payment-succeeded-but-verification-failed case.
func NeedsSupport(err error) bool {
	return Is(err, ErrVerificationFailed)
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
