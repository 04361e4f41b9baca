package domain

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies different types of errors
type ErrorCategory int

const (
	ErrorToken ErrorCategory = iota
	ErrorStream
	ErrorVerification
	ErrorManifest
	ErrorArchive
)

// String returns the string representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorToken:
		return "token"
	case ErrorStream:
		return "stream"
	case ErrorVerification:
		return "verification"
	case ErrorManifest:
		return "manifest"
	case ErrorArchive:
		return "archive"
	default:
		return "unknown"
	}
}

// UnsupportedAlgorithmError reports an algorithm name or token id outside
// the closed algorithm table. It is always raised synchronously at
// construction or parse time, never mid-stream.
type UnsupportedAlgorithmError struct {
	// Value is the offending algorithm name or token id.
	Value string
}

// NewUnsupportedAlgorithmError creates a new UnsupportedAlgorithmError instance.
func NewUnsupportedAlgorithmError(value string) *UnsupportedAlgorithmError {
	return &UnsupportedAlgorithmError{Value: value}
}

func (e *UnsupportedAlgorithmError) Error() string {
	return fmt.Sprintf("unsupported checksum algorithm: %q", e.Value)
}

// IsUnsupportedAlgorithmError checks if a given error is of type UnsupportedAlgorithmError.
func IsUnsupportedAlgorithmError(err error) bool {
	var ue *UnsupportedAlgorithmError
	return errors.As(err, &ue)
}

// ChecksumMismatchError reports that a verifier's freshly computed token
// differs from the expected one. It is raised only after the entire source
// has been consumed, and carries both tokens for diagnostics.
type ChecksumMismatchError struct {
	// Computed is the token derived from the bytes actually observed.
	Computed Token

	// Expected is the token the caller supplied for verification.
	Expected Token
}

// NewChecksumMismatchError creates a new ChecksumMismatchError instance.
func NewChecksumMismatchError(computed, expected Token) *ChecksumMismatchError {
	return &ChecksumMismatchError{Computed: computed, Expected: expected}
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: computed %s, expected %s", e.Computed, e.Expected)
}

// IsChecksumMismatchError checks if a given error is of type ChecksumMismatchError.
func IsChecksumMismatchError(err error) bool {
	var me *ChecksumMismatchError
	return errors.As(err, &me)
}

// AsChecksumMismatchError attempts to extract a ChecksumMismatchError from a given error.
func AsChecksumMismatchError(err error) *ChecksumMismatchError {
	var me *ChecksumMismatchError
	if errors.As(err, &me) {
		return me
	}
	return nil
}
