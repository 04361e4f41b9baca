package compression

import (
	"fmt"
	"runtime"

	"github.com/iamNilotpal/sumstream/internal/core/domain"
)

// Returns CompressionOptions struct initialized with recommended default
// values that provide a good balance between compression ratio and
// performance for packed archives.
func DefaultOptions() *domain.CompressionOptions {
	return &domain.CompressionOptions{
		Enable:             true,
		Level:              DefaultLevel,
		EncoderConcurrency: uint8(runtime.NumCPU()),
		DecoderConcurrency: uint8(runtime.NumCPU()),
	}
}

// Checks if the compression options are valid and returns an error if any
// option is outside acceptable bounds.
func Validate(input *domain.CompressionOptions) error {
	if input.Level < FastestLevel || input.Level > BestLevel {
		return fmt.Errorf("compression level must be between %d and %d, got %d", FastestLevel, BestLevel, input.Level)
	}

	if input.EncoderConcurrency > uint8(runtime.NumCPU()) {
		return fmt.Errorf(
			"encoder concurrency must be between 0 and %d, got %d", runtime.NumCPU(), input.EncoderConcurrency,
		)
	}

	if input.DecoderConcurrency > uint8(runtime.NumCPU()) {
		return fmt.Errorf(
			"decoder concurrency must be between 0 and %d, got %d", runtime.NumCPU(), input.DecoderConcurrency,
		)
	}

	return nil
}
