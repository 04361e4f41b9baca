package manifest

import (
	"github.com/iamNilotpal/sumstream/internal/adapters/hasher"
	"github.com/iamNilotpal/sumstream/pkg/fs"
)

const DefaultPath = "sumstream.manifest.json"

func prepareDefaults(opts *Options) *Options {
	if opts.Path == "" {
		opts.Path = DefaultPath
	}

	if opts.Checksum == nil {
		opts.Checksum = hasher.DefaultOptions()
	}
	if opts.Checksum.Algorithm == "" {
		opts.Checksum.Algorithm = hasher.DefaultOptions().Algorithm
	}
	if opts.Checksum.BufferSize <= 0 {
		opts.Checksum.BufferSize = hasher.DefaultOptions().BufferSize
	}

	if opts.FileSystem == nil {
		opts.FileSystem = fs.NewLocalFileSystem()
	}

	return opts
}
