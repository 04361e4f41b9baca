// Package stream implements pass-through checksum streams. A stream wraps
// a source reader, forwards every chunk unchanged, and feeds the same bytes
// through an incremental digest accumulator. Producers expose the final
// token as a deferred result; verifiers compare it against an expected
// token and fail the stream itself on mismatch.
package stream

import (
	"encoding/hex"
	"hash"
	"io"

	"github.com/iamNilotpal/sumstream/internal/adapters/hasher"
	"github.com/iamNilotpal/sumstream/internal/core/domain"
)

// Producer is a pass-through reader that computes a checksum token over
// everything read through it. The accumulator is mutated sequentially from
// Read, so a Producer must not be read concurrently; the TokenFuture is the
// only safe cross-goroutine handoff.
type Producer struct {
	src       io.Reader
	digest    hash.Hash
	algorithm domain.Algorithm
	future    *TokenFuture
	finalized bool
}

// NewProducer wraps src with in-flight digest computation. The returned
// TokenFuture resolves with the composed token once src reaches EOF.
// An empty algorithm defaults to MD5.
//
// Fails with an UnsupportedAlgorithmError before any stream processing
// begins if the algorithm is not in the supported table.
func NewProducer(src io.Reader, algorithm domain.Algorithm) (*Producer, *TokenFuture, error) {
	if algorithm == "" {
		algorithm = hasher.DefaultOptions().Algorithm
	}

	h, err := hasher.New(algorithm)
	if err != nil {
		return nil, nil, err
	}

	future := newTokenFuture()
	producer := Producer{
		src:       src,
		future:    future,
		digest:    h.New(),
		algorithm: algorithm,
	}

	return &producer, future, nil
}

// Read forwards a chunk from the source, updating the accumulator before
// the chunk is surfaced. At EOF the digest is finalized exactly once and
// the future resolves. Any other source error is propagated verbatim and
// leaves the future pending.
func (p *Producer) Read(b []byte) (int, error) {
	n, err := p.src.Read(b)
	if n > 0 {
		// hash.Hash.Write never returns an error.
		p.digest.Write(b[:n])
	}
	if err == io.EOF {
		p.finalize()
	}
	return n, err
}

// Algorithm returns the algorithm this producer accumulates with.
func (p *Producer) Algorithm() domain.Algorithm {
	return p.algorithm
}

func (p *Producer) finalize() {
	if p.finalized {
		return
	}
	p.finalized = true

	p.future.resolve(domain.Token{
		Algorithm: p.algorithm,
		Digest:    hex.EncodeToString(p.digest.Sum(nil)),
	})
}
