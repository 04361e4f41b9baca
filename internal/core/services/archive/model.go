package archive

import (
	"github.com/iamNilotpal/sumstream/internal/core/domain"
	"github.com/iamNilotpal/sumstream/internal/core/ports"
)

// Archive file layout:
//
//	magic (4 bytes) | version (1) | flags (1) | header length (4, BE) |
//	header JSON | header crc32 (4, BE) | payload
//
// The payload is zstd-compressed when flagCompressed is set; the token in
// the header always covers the original, uncompressed bytes.
const (
	formatVersion  = 1
	flagCompressed = 1 << 0

	// Fixed-size prefix before the variable-length header.
	prefixSize = 4 + 1 + 1 + 4
)

var magic = [4]byte{'S', 'S', 'A', 'R'}

// Options configures the archive service.
type Options struct {
	// Checksum controls the token algorithm and streaming chunk size.
	Checksum *domain.ChecksumOptions

	// Compression configures the zstd encoder and decoder.
	Compression *domain.CompressionOptions

	// FileSystem allows substituting the backing store.
	// Defaults to the local filesystem.
	FileSystem ports.FileSystem
}

// header is the JSON metadata stored between prefix and payload.
type header struct {
	Token        string `json:"token"`
	OriginalSize uint64 `json:"original_size"`
}
