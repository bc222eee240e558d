// Package dberror classifies failures coming out of the engine connectors into a
// small taxonomy that the HTTP layer can map to status codes.
package dberror

import (
	"errors"
	"fmt"

	"dbgatewayapi/models"
)

// Kind is the normalized error category.
type Kind string

// Error kinds.
const (
	ProfileNotFound        Kind = "ProfileNotFound"
	UnsupportedEngine      Kind = "UnsupportedEngine"
	EngineMismatch         Kind = "EngineMismatch"
	ConnectionFailure      Kind = "ConnectionFailure"
	SyntaxOrExecutionError Kind = "SyntaxOrExecutionError"
	MissingRelation        Kind = "MissingRelation"
	MissingColumn          Kind = "MissingColumn"
	UnknownDriverError     Kind = "UnknownDriverError"
)

// ExecutionError is the normalized error returned by every gateway operation.
// Message is safe to show to callers, Details carries the raw driver text.
type ExecutionError struct {
	Kind    Kind
	Engine  models.EngineKind
	Message string
	Details string
	Err     error
}

func (e *ExecutionError) Error() string {
	if e.Details != "" && e.Details != e.Message {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// New builds an ExecutionError without an underlying cause.
func New(kind Kind, message string) *ExecutionError {
	return &ExecutionError{Kind: kind, Message: message, Details: message}
}

// Newf builds an ExecutionError with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *ExecutionError {
	return New(kind, fmt.Sprintf(format, args...))
}

// Wrap classifies err with an explicit kind, keeping the driver text as details.
func Wrap(kind Kind, engine models.EngineKind, message string, err error) *ExecutionError {
	details := message
	if err != nil {
		details = err.Error()
	}
	return &ExecutionError{Kind: kind, Engine: engine, Message: message, Details: details, Err: err}
}

// ConnectionFailed marks err as a failure to open or reach a database.
func ConnectionFailed(engine models.EngineKind, err error) *ExecutionError {
	return Wrap(ConnectionFailure, engine, fmt.Sprintf("could not connect to %s: %v", engine, err), err)
}

// KindOf returns the kind of err, or UnknownDriverError when err was never
// classified.
func KindOf(err error) Kind {
	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		return execErr.Kind
	}
	return UnknownDriverError
}

// Is reports whether err was classified as kind.
func Is(err error, kind Kind) bool {
	var execErr *ExecutionError
	return errors.As(err, &execErr) && execErr.Kind == kind
}

// TableNotFound reports a table that introspection could not find in the catalog.
func TableNotFound(engine models.EngineKind, schema, table string) *ExecutionError {
	return &ExecutionError{
		Kind:    MissingRelation,
		Engine:  engine,
		Message: MsgMissingTable,
		Details: fmt.Sprintf("table %s.%s does not exist", schema, table),
	}
}
