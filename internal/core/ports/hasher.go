package ports

import (
	"hash"
	"io"

	"github.com/iamNilotpal/sumstream/internal/core/domain"
)

// Defines an interface for incremental digest computation.
type Hasher interface {
	// Algorithm returns the canonical name of the digest algorithm.
	Algorithm() domain.Algorithm

	// New returns a fresh incremental accumulator for this algorithm.
	// Each stream owns exactly one accumulator; accumulators are never
	// shared across streams.
	New() hash.Hash

	// Sum consumes the reader to completion and returns the lowercase
	// hexadecimal digest of everything it read.
	Sum(r io.Reader) (string, error)

	// Size returns the digest length in bytes.
	Size() uint8
}
