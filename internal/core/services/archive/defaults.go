package archive

import (
	"github.com/iamNilotpal/sumstream/internal/adapters/compression"
	"github.com/iamNilotpal/sumstream/internal/adapters/hasher"
	"github.com/iamNilotpal/sumstream/pkg/fs"
)

func prepareDefaults(opts *Options) *Options {
	if opts.Checksum == nil {
		opts.Checksum = hasher.DefaultOptions()
	}
	if opts.Checksum.Algorithm == "" {
		opts.Checksum.Algorithm = hasher.DefaultOptions().Algorithm
	}
	if opts.Checksum.BufferSize <= 0 {
		opts.Checksum.BufferSize = hasher.DefaultOptions().BufferSize
	}

	if opts.Compression == nil {
		opts.Compression = compression.DefaultOptions()
	}
	if opts.Compression.Level == 0 {
		opts.Compression.Level = compression.DefaultLevel
	}
	if opts.Compression.EncoderConcurrency == 0 {
		opts.Compression.EncoderConcurrency = compression.DefaultOptions().EncoderConcurrency
	}
	if opts.Compression.DecoderConcurrency == 0 {
		opts.Compression.DecoderConcurrency = compression.DefaultOptions().DecoderConcurrency
	}

	if opts.FileSystem == nil {
		opts.FileSystem = fs.NewLocalFileSystem()
	}

	return opts
}
