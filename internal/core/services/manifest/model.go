package manifest

import (
	"github.com/iamNilotpal/sumstream/internal/core/domain"
	"github.com/iamNilotpal/sumstream/internal/core/ports"
)

// Current manifest file format version.
const formatVersion = 1

// Options configures the manifest service.
type Options struct {
	// Path is the manifest file location.
	// Defaults to "sumstream.manifest.json" in the working directory.
	Path string

	// Checksum controls the algorithm and chunk size used when recording.
	// Verification always uses the algorithm stored in each entry's token.
	Checksum *domain.ChecksumOptions

	// FileSystem allows substituting the backing store.
	// Defaults to the local filesystem.
	FileSystem ports.FileSystem
}

// manifestFile is the on-disk layout. Checksum is the crc32 of the
// serialized Entries object and is re-checked on load, so a truncated or
// hand-edited manifest is rejected before any verification runs.
type manifestFile struct {
	Version  int               `json:"version"`
	Checksum uint32            `json:"checksum"`
	Entries  map[string]string `json:"entries"`
}
