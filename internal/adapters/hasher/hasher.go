package hasher

import (
	"github.com/iamNilotpal/sumstream/internal/core/domain"
	"github.com/iamNilotpal/sumstream/internal/core/ports"
)

// Returns recommended checksum settings.
func DefaultOptions() *domain.ChecksumOptions {
	return &domain.ChecksumOptions{
		Algorithm:  domain.MD5,
		BufferSize: 32 * 1024,
	}
}

// Validate checks that the requested algorithm is in the supported table.
func Validate(input *domain.ChecksumOptions) error {
	switch input.Algorithm {
	case domain.MD5, domain.SHA256, domain.SHA512:
		return nil
	default:
		return domain.NewUnsupportedAlgorithmError(string(input.Algorithm))
	}
}

// New constructs the hasher adapter for the given algorithm.
// Fails with an UnsupportedAlgorithmError for anything outside the table.
func New(algorithm domain.Algorithm) (ports.Hasher, error) {
	switch algorithm {
	case domain.MD5:
		return NewMD5(), nil
	case domain.SHA256:
		return NewSHA256(), nil
	case domain.SHA512:
		return NewSHA512(), nil
	default:
		return nil, domain.NewUnsupportedAlgorithmError(string(algorithm))
	}
}
