// Package errors provides structured error handling for SeedCash.
// It defines sentinel errors, exit codes, and helpers for adding
// context, details, and suggestions to errors.
//
//nolint:revive // Package name intentionally shadows stdlib for domain-specific error handling
package errors

import (
	"errors"
	"fmt"
	"sort"
)

// Exit codes.
const (
	ExitSuccess  = 0 // Successful execution
	ExitGeneral  = 1 // General/unknown error
	ExitInput    = 2 // Invalid input
	ExitCrypto   = 3 // Cryptographic failure
	ExitNotFound = 4 // Resource not found
)

// SeedCashError is the structured error type for SeedCash.
type SeedCashError struct {
	Code       string            // Machine-readable error code
	Message    string            // Human-readable message
	Details    map[string]string // Additional context
	Suggestion string            // Actionable suggestion for user
	Cause      error             // Underlying error
	ExitCode   int               // Exit code for CLI
}

func (e *SeedCashError) Error() string {
	msg := e.Message

	// Include details in error message (sorted for deterministic output)
	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg = fmt.Sprintf("%s (%s: %s)", msg, k, e.Details[k])
		}
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *SeedCashError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for SeedCashError.
func (e *SeedCashError) Is(target error) bool {
	var t *SeedCashError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinel errors.
var (
	ErrGeneral = &SeedCashError{
		Code:     "GENERAL_ERROR",
		Message:  "an error occurred",
		ExitCode: ExitGeneral,
	}

	ErrInvalidInput = &SeedCashError{
		Code:     "INVALID_INPUT",
		Message:  "invalid input",
		ExitCode: ExitInput,
	}

	// Mnemonic errors.
	ErrInvalidMnemonicWord = &SeedCashError{
		Code:     "INVALID_MNEMONIC_WORD",
		Message:  "word is not in the BIP39 word list",
		ExitCode: ExitInput,
	}

	ErrInvalidMnemonicLength = &SeedCashError{
		Code:     "INVALID_MNEMONIC_LENGTH",
		Message:  "mnemonic must have 12, 15, 18, 21 or 24 words",
		ExitCode: ExitInput,
	}

	ErrChecksumMismatch = &SeedCashError{
		Code:     "CHECKSUM_MISMATCH",
		Message:  "mnemonic checksum does not match",
		ExitCode: ExitInput,
	}

	ErrInvalidFinalBits = &SeedCashError{
		Code:     "INVALID_FINAL_BITS",
		Message:  "final word entropy bits are invalid",
		ExitCode: ExitInput,
	}

	// Derivation errors.
	ErrScalarOutOfRange = &SeedCashError{
		Code:     "SCALAR_OUT_OF_RANGE",
		Message:  "derived key is outside the valid curve range",
		ExitCode: ExitCrypto,
	}

	ErrEntropyFailure = &SeedCashError{
		Code:     "ENTROPY_FAILURE",
		Message:  "secure random source failed",
		ExitCode: ExitCrypto,
	}

	ErrMalformedExtendedKey = &SeedCashError{
		Code:     "MALFORMED_EXTENDED_KEY",
		Message:  "extended key is malformed",
		ExitCode: ExitInput,
	}

	ErrHardenedPublicDerivation = &SeedCashError{
		Code:     "HARDENED_PUBLIC_DERIVATION",
		Message:  "hardened derivation requires the private key",
		ExitCode: ExitInput,
	}

	// Address errors.
	ErrInvalidAddress = &SeedCashError{
		Code:     "INVALID_ADDRESS",
		Message:  "invalid address",
		ExitCode: ExitInput,
	}

	ErrInvalidFormat = &SeedCashError{
		Code:     "INVALID_FORMAT",
		Message:  "invalid format",
		ExitCode: ExitInput,
	}

	// Config-specific errors.
	ErrConfigNotFound = &SeedCashError{
		Code:     "CONFIG_NOT_FOUND",
		Message:  "configuration file not found",
		ExitCode: ExitNotFound,
	}

	ErrConfigInvalid = &SeedCashError{
		Code:     "CONFIG_INVALID",
		Message:  "configuration file is invalid",
		ExitCode: ExitInput,
	}

	ErrUnknownConfigKey = &SeedCashError{
		Code:     "UNKNOWN_CONFIG_KEY",
		Message:  "unknown config key",
		ExitCode: ExitInput,
	}
)

// New creates a new SeedCashError with the given code and message.
func New(code, message string) *SeedCashError {
	return &SeedCashError{
		Code:     code,
		Message:  message,
		ExitCode: ExitGeneral,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, args...)

	var se *SeedCashError
	if errors.As(err, &se) {
		return &SeedCashError{
			Code:       se.Code,
			Message:    fmt.Sprintf("%s: %s", msg, se.Message),
			Details:    se.Details,
			Suggestion: se.Suggestion,
			Cause:      err,
			ExitCode:   se.ExitCode,
		}
	}

	return &SeedCashError{
		Code:     "GENERAL_ERROR",
		Message:  msg,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithDetails adds details to an error.
func WithDetails(err error, details map[string]string) error {
	if err == nil {
		return nil
	}

	var se *SeedCashError
	if errors.As(err, &se) {
		return &SeedCashError{
			Code:       se.Code,
			Message:    se.Message,
			Details:    details,
			Suggestion: se.Suggestion,
			Cause:      se.Cause,
			ExitCode:   se.ExitCode,
		}
	}

	return &SeedCashError{
		Code:     "GENERAL_ERROR",
		Message:  err.Error(),
		Details:  details,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithSuggestion adds a suggestion to an error.
func WithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}

	var se *SeedCashError
	if errors.As(err, &se) {
		return &SeedCashError{
			Code:       se.Code,
			Message:    se.Message,
			Details:    se.Details,
			Suggestion: suggestion,
			Cause:      se.Cause,
			ExitCode:   se.ExitCode,
		}
	}

	return &SeedCashError{
		Code:       "GENERAL_ERROR",
		Message:    err.Error(),
		Suggestion: suggestion,
		Cause:      err,
		ExitCode:   ExitGeneral,
	}
}

// ExitCode returns the appropriate exit code for an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var se *SeedCashError
	if errors.As(err, &se) {
		return se.ExitCode
	}

	return ExitGeneral
}

// Code returns the error code for an error.
func Code(err error) string {
	var se *SeedCashError
	if errors.As(err, &se) {
		return se.Code
	}
	return "GENERAL_ERROR"
}

// Is wraps errors.Is for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience.
func As(err error, target any) bool {
	return errors.As(err, target)
}
