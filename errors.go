// errors.go: structured error handling for xanthos map operations
//
// This file provides structured error types using the go-errors library,
// enabling rich error context, categorization, and standardized error codes
// for configuration and precondition failures.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package xanthos

import (
	goerrors "errors"
	"strconv"

	"github.com/agilira/go-errors"
)

// Error codes for Xanthos map operations
const (
	// Configuration errors (1xxx)
	ErrCodeInvalidConfig     errors.ErrorCode = "XANTHOS_INVALID_CONFIG"
	ErrCodeInvalidCapacity   errors.ErrorCode = "XANTHOS_INVALID_CAPACITY"
	ErrCodeInvalidLoadFactor errors.ErrorCode = "XANTHOS_INVALID_LOAD_FACTOR"
	ErrCodeInvalidQuota      errors.ErrorCode = "XANTHOS_INVALID_QUOTA"

	// Precondition errors (2xxx)
	ErrCodeNilNode            errors.ErrorCode = "XANTHOS_NIL_NODE"
	ErrCodeNilCallback        errors.ErrorCode = "XANTHOS_NIL_CALLBACK"
	ErrCodeMutationDuringScan errors.ErrorCode = "XANTHOS_MUTATION_DURING_SCAN"

	// Hot reload errors (3xxx)
	ErrCodeConfigWatchFailed errors.ErrorCode = "XANTHOS_CONFIG_WATCH_FAILED"
)

// Common error messages
const (
	msgInvalidCapacity    = "invalid capacity: must be a power of two greater than zero"
	msgInvalidLoadFactor  = "invalid max load factor: must be greater than 0"
	msgInvalidQuota       = "invalid migration quota: must be greater than 0"
	msgNilNode            = "node cannot be nil"
	msgNilCallback        = "callback cannot be nil"
	msgMutationDuringScan = "map mutated while a traversal is in progress"
	msgConfigWatchFailed  = "failed to watch configuration file"
)

// =============================================================================
// CONFIGURATION ERRORS
// =============================================================================

// NewErrInvalidCapacity creates an error for a capacity that is not a power of two
func NewErrInvalidCapacity(capacity int) error {
	return errors.NewWithContext(ErrCodeInvalidCapacity, msgInvalidCapacity, map[string]interface{}{
		"provided_capacity": capacity,
		"requirement":       "power of two, > 0",
	})
}

// NewErrInvalidLoadFactor creates an error for an invalid max load factor
func NewErrInvalidLoadFactor(factor int) error {
	return errors.NewWithField(ErrCodeInvalidLoadFactor, msgInvalidLoadFactor, "provided_factor", strconv.Itoa(factor))
}

// NewErrInvalidQuota creates an error for an invalid migration quota
func NewErrInvalidQuota(quota int) error {
	return errors.NewWithField(ErrCodeInvalidQuota, msgInvalidQuota, "provided_quota", strconv.Itoa(quota))
}

// =============================================================================
// PRECONDITION ERRORS
// =============================================================================
//
// These are programmer errors: the map panics with them instead of returning
// them. A recovered value can still be inspected with the helpers below.

// NewErrNilNode creates an error for a nil node argument
func NewErrNilNode(operation string) error {
	return errors.NewWithField(ErrCodeNilNode, msgNilNode, "operation", operation)
}

// NewErrNilCallback creates an error for a nil equality or visitor callback
func NewErrNilCallback(operation string, callback string) error {
	return errors.NewWithContext(ErrCodeNilCallback, msgNilCallback, map[string]interface{}{
		"operation": operation,
		"callback":  callback,
	})
}

// NewErrMutationDuringScan creates an error for structural mutation from
// inside a traversal, which would invalidate in-flight chain references
func NewErrMutationDuringScan(operation string) error {
	return errors.NewWithField(ErrCodeMutationDuringScan, msgMutationDuringScan, "operation", operation).
		WithSeverity("critical")
}

// =============================================================================
// HOT RELOAD ERRORS
// =============================================================================

// NewErrConfigWatchFailed creates an error when the configuration watcher
// cannot be created or started
func NewErrConfigWatchFailed(configPath string, cause error) error {
	return errors.Wrap(cause, ErrCodeConfigWatchFailed, msgConfigWatchFailed).
		WithContext("config_path", configPath).
		AsRetryable()
}

// =============================================================================
// ERROR CHECKING HELPERS
// =============================================================================

// IsInvalidCapacity checks if error is an invalid capacity error
func IsInvalidCapacity(err error) bool {
	return errors.HasCode(err, ErrCodeInvalidCapacity)
}

// IsMutationDuringScan checks if error is a mutation-during-scan error
func IsMutationDuringScan(err error) bool {
	return errors.HasCode(err, ErrCodeMutationDuringScan)
}

// IsConfigError checks if error is a configuration error
func IsConfigError(err error) bool {
	if err == nil {
		return false
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		code := coder.ErrorCode()
		return code == ErrCodeInvalidConfig || code == ErrCodeInvalidCapacity ||
			code == ErrCodeInvalidLoadFactor || code == ErrCodeInvalidQuota
	}
	return false
}

// IsPreconditionError checks if error is a precondition (programmer) error
func IsPreconditionError(err error) bool {
	if err == nil {
		return false
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		code := coder.ErrorCode()
		return code == ErrCodeNilNode || code == ErrCodeNilCallback ||
			code == ErrCodeMutationDuringScan
	}
	return false
}

// IsRetryable checks if the error can be retried
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var retryable errors.Retryable
	if goerrors.As(err, &retryable) {
		return retryable.IsRetryable()
	}
	return false
}

// GetErrorCode extracts the error code from an error
func GetErrorCode(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}

// GetErrorContext extracts context from an error
func GetErrorContext(err error) map[string]interface{} {
	if err == nil {
		return nil
	}
	var xanthosErr *errors.Error
	if goerrors.As(err, &xanthosErr) {
		return xanthosErr.Context
	}
	return nil
}
