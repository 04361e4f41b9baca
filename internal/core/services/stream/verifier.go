package stream

import (
	"encoding/hex"
	"hash"
	"io"

	"github.com/iamNilotpal/sumstream/internal/adapters/hasher"
	"github.com/iamNilotpal/sumstream/internal/core/domain"
)

// verifierState tracks the terminal result so reads past the end stay sticky.
type verifierState struct {
	done   bool
	result error
}

// NewVerifier wraps src and arranges for a ChecksumMismatchError on the
// stream once src ends, should the computed token differ from
// expectedToken. The algorithm is taken from the token's id field.
//
// Fails with an UnsupportedAlgorithmError before any stream processing
// begins if the token's algorithm id is not in the supported table.
func NewVerifier(src io.Reader, expectedToken string) (*VerifierStream, *VerifyFuture, error) {
	token, err := domain.ParseToken(expectedToken)
	if err != nil {
		return nil, nil, err
	}

	h, err := hasher.New(token.Algorithm)
	if err != nil {
		return nil, nil, err
	}

	future := newVerifyFuture()
	verifier := VerifierStream{
		src:         src,
		future:      future,
		digest:      h.New(),
		expected:    token,
		expectedRaw: expectedToken,
	}

	return &verifier, future, nil
}

// VerifierStream is a pass-through reader that checks everything read
// through it against an expected token. Verification is necessarily
// retrospective: a streaming digest cannot be validated before the whole
// input has been consumed, so every chunk is forwarded before the
// comparison runs.
type VerifierStream struct {
	src      io.Reader
	digest   hash.Hash
	expected domain.Token

	// expectedRaw keeps the caller's exact token text; the comparison is
	// full string equality against the freshly composed token.
	expectedRaw string

	future *VerifyFuture
	state  verifierState
}

// Read forwards a chunk from the source, updating the accumulator before
// the chunk is surfaced. When the source reaches EOF the computed token is
// compared against the expected one: a match ends the stream with io.EOF,
// a mismatch ends it with a ChecksumMismatchError carrying both tokens.
// Any other source error is propagated verbatim and no comparison runs.
// The terminal result is sticky across subsequent calls.
func (v *VerifierStream) Read(b []byte) (int, error) {
	if v.state.done {
		return 0, v.state.result
	}

	n, err := v.src.Read(b)
	if n > 0 {
		v.digest.Write(b[:n])
	}
	if err == nil {
		return n, nil
	}

	v.state.done = true
	if err != io.EOF {
		// Source failure: abandon verification, forward the error as-is.
		v.state.result = err
		v.future.resolve(err)
		return n, err
	}

	if mismatch := v.compare(); mismatch != nil {
		v.state.result = mismatch
		v.future.resolve(mismatch)
		return n, mismatch
	}

	v.state.result = io.EOF
	v.future.resolve(nil)
	return n, io.EOF
}

// Expected returns the token this stream verifies against.
func (v *VerifierStream) Expected() domain.Token {
	return v.expected
}

func (v *VerifierStream) compare() error {
	computed := domain.Token{
		Algorithm: v.expected.Algorithm,
		Digest:    hex.EncodeToString(v.digest.Sum(nil)),
	}

	if computed.String() == v.expectedRaw {
		return nil
	}
	return domain.NewChecksumMismatchError(computed, v.expected)
}
