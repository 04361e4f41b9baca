package archive

import (
	"github.com/iamNilotpal/sumstream/internal/adapters/compression"
	"github.com/iamNilotpal/sumstream/internal/adapters/hasher"
	"github.com/iamNilotpal/sumstream/pkg/errors"
)

func Validate(opts *Options) error {
	if opts.Checksum != nil && opts.Checksum.Algorithm != "" {
		if err := hasher.Validate(opts.Checksum); err != nil {
			return errors.NewValidationError("checksum.algorithm", opts.Checksum.Algorithm, err)
		}
	}

	if opts.Compression != nil && opts.Compression.Level != 0 {
		if err := compression.Validate(opts.Compression); err != nil {
			return errors.NewValidationError("compression", opts.Compression.Level, err)
		}
	}

	return nil
}
