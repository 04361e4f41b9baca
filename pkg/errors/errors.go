package errors

import (
	"fmt"
	"time"

	"github.com/iamNilotpal/sumstream/internal/core/domain"
)

// ChecksumError wraps a failure from one of the checksum services with the
// operation that failed and its category. This helps in proper error
// handling, monitoring, and debugging of the system.
type ChecksumError struct {
	Err       error
	Operation string
	Timestamp time.Time
	Category  domain.ErrorCategory
}

// NewChecksumError wraps err with operation and category context.
func NewChecksumError(category domain.ErrorCategory, operation string, err error) *ChecksumError {
	return &ChecksumError{
		Err:       err,
		Category:  category,
		Operation: operation,
		Timestamp: time.Now(),
	}
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("[%v] %s: %v : %s", e.Category, e.Operation, e.Err, e.Timestamp.String())
}

func (e *ChecksumError) Unwrap() error {
	return e.Err
}

// IsRetryAble returns whether errors of this category can be retried.
// The checksum streams themselves never retry; this is advisory for
// callers deciding whether to re-wrap a freshly re-opened source.
func (e *ChecksumError) IsRetryAble() bool {
	switch e.Category {
	case domain.ErrorStream, domain.ErrorManifest:
		// I/O against the source or manifest store might be temporary.
		return true
	case domain.ErrorToken, domain.ErrorVerification, domain.ErrorArchive:
		// Malformed tokens and failed comparisons will not heal on retry.
		return false
	default:
		return false
	}
}
