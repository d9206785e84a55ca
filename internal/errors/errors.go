package errors

import (
	"fmt"
	"strings"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetCode returns the error code if it's an AppError, otherwise "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes. All of these surface as user-displayable messages
// at the request boundary; none are fatal to the process.
const (
	CodeMissingColumns    = "MISSING_COLUMNS"
	CodeMissingKeyColumn  = "MISSING_KEY_COLUMN"
	CodeFormatError       = "FORMAT_ERROR"
	CodeInvalidTimeFormat = "INVALID_TIME_FORMAT"
	CodeInvalidRange      = "INVALID_RANGE"
	CodeCapacityExceeded  = "CAPACITY_EXCEEDED"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeConfigInvalid     = "CONFIG_INVALID"
	CodeInternalError     = "INTERNAL_ERROR"
)

// MissingColumns reports every required column that failed to resolve, never
// just the first one.
func MissingColumns(context string, columns []string) *AppError {
	return New(CodeMissingColumns,
		fmt.Sprintf("%s: %s", context, strings.Join(columns, ", ")))
}

// MissingKeyColumn reports that the join key is absent from one of the files
func MissingKeyColumn(file, column string) *AppError {
	return New(CodeMissingKeyColumn,
		fmt.Sprintf("El archivo %s no contiene la columna de operación: %s", file, column))
}

// FormatError reports a cell value that cannot be coerced to its expected shape
func FormatError(column, value string) *AppError {
	return New(CodeFormatError,
		fmt.Sprintf("Valor no numérico en la columna %s: %q", column, value))
}

func InvalidTimeFormat() *AppError {
	return New(CodeInvalidTimeFormat, "Formato de hora inválido (usa HH:MM o HH:MM:SS).")
}

func InvalidRange() *AppError {
	return New(CodeInvalidRange, "La hora fin debe ser mayor a la hora inicio.")
}

// CapacityExceeded names the concrete capacity of the requested window
func CapacityExceeded(start, end string, n, intervalSeconds, capacity int) *AppError {
	return New(CodeCapacityExceeded, fmt.Sprintf(
		"El rango %s–%s no alcanza para %d registros con intervalo de %ds (capacidad: %d). Ajusta el intervalo o amplía el rango.",
		start, end, n, intervalSeconds, capacity))
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}
