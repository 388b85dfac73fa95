package helpers

import (
	"errors"
	"fmt"
	"mission-stats/src/logger"
)

// -----------------------------------------------------------------------------
// Custom Error Types
// -----------------------------------------------------------------------------

type MissionStatsError struct {
	Message string
	Cause   error
}

func (e *MissionStatsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *MissionStatsError) Unwrap() error {
	return e.Cause
}

// Distinct error types for errors.As checks
type ConfigurationError struct{ MissionStatsError }
type NetworkError struct{ MissionStatsError }
type DataSourceError struct{ MissionStatsError }
type InvalidArgumentError struct{ MissionStatsError }
type InvalidInputError struct{ MissionStatsError }

// -----------------------------------------------------------------------------
// Constructors
// -----------------------------------------------------------------------------

func NewInvalidArgument(format string, args ...interface{}) error {
	return &InvalidArgumentError{MissionStatsError{Message: fmt.Sprintf(format, args...)}}
}

// -----------------------------------------------------------------------------

func NewInvalidInput(cause error, format string, args ...interface{}) error {
	return &InvalidInputError{MissionStatsError{Message: fmt.Sprintf(format, args...), Cause: cause}}
}

// -----------------------------------------------------------------------------

func NewNetworkError(cause error, format string, args ...interface{}) error {
	return &NetworkError{MissionStatsError{Message: fmt.Sprintf(format, args...), Cause: cause}}
}

// -----------------------------------------------------------------------------

func NewDataSourceError(cause error, format string, args ...interface{}) error {
	return &DataSourceError{MissionStatsError{Message: fmt.Sprintf(format, args...), Cause: cause}}
}

// -----------------------------------------------------------------------------

func NewConfigurationError(format string, args ...interface{}) error {
	return &ConfigurationError{MissionStatsError{Message: fmt.Sprintf(format, args...)}}
}

// -----------------------------------------------------------------------------

// IsClientError reports whether err was caused by bad caller input.
func IsClientError(err error) bool {
	var argErr *InvalidArgumentError
	var inputErr *InvalidInputError
	return errors.As(err, &argErr) || errors.As(err, &inputErr)
}

// -----------------------------------------------------------------------------
// Error Handler
// -----------------------------------------------------------------------------

type ErrorHandler struct {
	Logger     *logger.Logger
	ErrorCount int
}

func NewErrorHandler(log *logger.Logger) *ErrorHandler {
	if log == nil {
		log = logger.NewLogger(nil, "ErrorHandler")
	}
	return &ErrorHandler{Logger: log}
}

// -----------------------------------------------------------------------------

func (e *ErrorHandler) ResetErrorCount() {
	e.ErrorCount = 0
}

// -----------------------------------------------------------------------------

// Handle logs err with its context and hands it back so callers can rethrow.
func (e *ErrorHandler) Handle(err error, context string) error {
	if err != nil {
		e.ErrorCount++
		e.Logger.Error("Error in %s: %v", context, err)
	}
	return err
}
