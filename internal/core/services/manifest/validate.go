package manifest

import (
	"github.com/iamNilotpal/sumstream/internal/adapters/hasher"
	"github.com/iamNilotpal/sumstream/pkg/errors"
)

func Validate(opts *Options) error {
	if opts.Checksum != nil && opts.Checksum.Algorithm != "" {
		if err := hasher.Validate(opts.Checksum); err != nil {
			return errors.NewValidationError("checksum.algorithm", opts.Checksum.Algorithm, err)
		}
	}

	return nil
}
