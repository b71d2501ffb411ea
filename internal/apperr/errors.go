// Package apperr provides the tagged error kinds returned across the
// generation boundary, so the presentation layer can decide how to render
// each failure instead of inspecting exception text.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the presentation layer.
type Kind string

const (
	// KindConfigMissing marks a missing credential or other required
	// runtime configuration. Never retried, never defaulted.
	KindConfigMissing Kind = "CONFIG_MISSING"

	// KindResourceMissing marks an absent or malformed local resource
	// (persona file, prompt template). Always carries the path.
	KindResourceMissing Kind = "RESOURCE_MISSING"

	// KindUpstream marks any failure during the remote model request:
	// network, auth, rate limit, malformed response. Not distinguished
	// further and not retried.
	KindUpstream Kind = "UPSTREAM_FAILED"
)

// Error is a tagged application error.
type Error struct {
	Kind    Kind
	Message string
	Detail  string
	Err     error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// ConfigMissing builds a configuration error with remediation text.
func ConfigMissing(message, remediation string) *Error {
	return &Error{Kind: KindConfigMissing, Message: message, Detail: remediation}
}

// ResourceMissing builds a local-resource error carrying the file path.
func ResourceMissing(path string, err error) *Error {
	return &Error{
		Kind:    KindResourceMissing,
		Message: "required file is missing or unreadable",
		Detail:  path,
		Err:     err,
	}
}

// ResourceInvalid builds a local-resource error for a file that exists but
// fails validation.
func ResourceInvalid(path, reason string) *Error {
	return &Error{
		Kind:    KindResourceMissing,
		Message: reason,
		Detail:  path,
	}
}

// Upstream wraps a remote-request failure.
func Upstream(err error) *Error {
	return &Error{
		Kind:    KindUpstream,
		Message: "scenario generation could not be completed",
		Err:     err,
	}
}

// KindOf returns the Kind of err, or "" when err carries no tag.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
