package entities

import (
	"errors"
	"fmt"
	"strings"
)

// Gateway error taxonomy. Every error returned by the action services matches
// exactly one of these sentinels through errors.Is.
var (
	ErrConfiguration  = errors.New("gateway configuration error")
	ErrValidation     = errors.New("gateway request validation error")
	ErrTransport      = errors.New("gateway transport error")
	ErrAuthentication = errors.New("gateway authentication failed")
	ErrProtocolFault  = errors.New("gateway protocol fault")
	ErrParse          = errors.New("gateway reply parse error")
)

// ConfigurationError reports incomplete process-wide configuration.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: missing %s", ErrConfiguration, strings.Join(e.Missing, ", "))
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// ValidationError names the request fields that are missing or contradictory.
type ValidationError struct {
	Fields []string
	Reason string
}

func NewValidationError(reason string, fields ...string) *ValidationError {
	return &ValidationError{Fields: fields, Reason: reason}
}

// MissingField is the common "required field absent" validation failure.
func MissingField(field string) *ValidationError {
	return NewValidationError("required field missing", field)
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrValidation, e.Reason, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// TransportFailure classifies a transport-level problem.
type TransportFailure string

const (
	TransportConnection TransportFailure = "connection"
	TransportTimeout    TransportFailure = "timeout"
	TransportStatus     TransportFailure = "status"
)

// TransportError is returned when no reply body could be interpreted.
type TransportError struct {
	Kind       TransportFailure
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.Kind == TransportStatus:
		return fmt.Sprintf("%s: unexpected status %d", ErrTransport, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", ErrTransport, e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: %s", ErrTransport, e.Kind)
	}
}

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

func (e *TransportError) Unwrap() error { return e.Err }

// FaultError carries the gateway's fault code and message verbatim.
type FaultError struct {
	Code    string
	Message string
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("%s: code=%s message=%s", ErrProtocolFault, e.Code, e.Message)
}

func (e *FaultError) Unwrap() error { return ErrProtocolFault }

// ParseError reports a reply that does not match the wire schema.
type ParseError struct {
	Action string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Action == "" {
		return fmt.Sprintf("%s: %v", ErrParse, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrParse, e.Action, e.Err)
}

func (e *ParseError) Is(target error) bool { return target == ErrParse }

func (e *ParseError) Unwrap() error { return e.Err }
