// Package errors provides error handling for fluxar-ls.
//
// This package re-exports github.com/cockroachdb/errors, providing stack
// traces, wrapping and user-facing hints.
//
// Usage:
//
//	if err := v.ReadInConfig(); err != nil {
//	    return errors.Wrapf(err, "failed to read config file %s", path)
//	}
//
//	return errors.WithHint(err, "valid transports are stdio, websocket and both")
//
// Completion providers never return errors; these are used by configuration,
// manifest loading and the transports.
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is           = crdb.Is
	IsAny        = crdb.IsAny
	As           = crdb.As
	Unwrap       = crdb.Unwrap
	UnwrapAll    = crdb.UnwrapAll
	GetAllHints  = crdb.GetAllHints
	FlattenHints = crdb.FlattenHints
	Join         = crdb.Join
)

// Sentinel errors. Wrap these to add context while keeping errors.Is working.
var (
	// ErrInvalidConfig indicates a configuration value failed validation
	ErrInvalidConfig = New("invalid configuration")

	// ErrUnsupportedTransport indicates an unknown server transport was requested
	ErrUnsupportedTransport = New("unsupported transport")

	// ErrInvalidManifest indicates the extension manifest is malformed
	ErrInvalidManifest = New("invalid manifest")
)

// NewInvalidConfigError creates an invalid-config error with a formatted message
func NewInvalidConfigError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidConfig, Newf(format, args...).Error())
}

// IsInvalidConfigError checks if an error is or wraps ErrInvalidConfig
func IsInvalidConfigError(err error) bool {
	return err != nil && Is(err, ErrInvalidConfig)
}
