package domain

import (
	"fmt"
	"strings"
)

// Algorithm identifies a supported digest algorithm by its canonical name.
type Algorithm string

const (
	// MD5 provides MD5 digests (128-bit). Kept for compatibility with
	// existing tokens; not collision resistant.
	MD5 Algorithm = "md5"

	// SHA256 provides SHA-256 digests (256-bit).
	SHA256 Algorithm = "sha256"

	// SHA512 provides SHA-512 digests (512-bit).
	SHA512 Algorithm = "sha512"
)

// algorithmIDs is the single source of truth for the algorithm/id mapping.
// Both lookup directions derive from it. The set is closed: extending it
// means adding one entry here, which extends both directions at once.
var algorithmIDs = []struct {
	algorithm Algorithm
	id        string
}{
	{MD5, "1"},
	{SHA256, "5"},
	{SHA512, "6"},
}

// AlgorithmID maps an algorithm name to its single-character token id.
// Returns an UnsupportedAlgorithmError if the algorithm is not in the table.
func AlgorithmID(algorithm Algorithm) (string, error) {
	for _, entry := range algorithmIDs {
		if entry.algorithm == algorithm {
			return entry.id, nil
		}
	}
	return "", NewUnsupportedAlgorithmError(string(algorithm))
}

// AlgorithmFromID maps a token id back to its algorithm name.
// Returns an UnsupportedAlgorithmError if the id is not in the table.
func AlgorithmFromID(id string) (Algorithm, error) {
	for _, entry := range algorithmIDs {
		if entry.id == id {
			return entry.algorithm, nil
		}
	}
	return "", NewUnsupportedAlgorithmError(id)
}

// Algorithms returns the closed set of supported algorithms.
func Algorithms() []Algorithm {
	algorithms := make([]Algorithm, 0, len(algorithmIDs))
	for _, entry := range algorithmIDs {
		algorithms = append(algorithms, entry.algorithm)
	}
	return algorithms
}

// Token is the textual encoding of a digest together with the algorithm
// that produced it. Its wire format is "$<id>$$<hex>": the middle field
// between the two consecutive "$" is reserved and always empty.
type Token struct {
	// Algorithm that produced the digest.
	Algorithm Algorithm

	// Digest is the lowercase hexadecimal encoding of the raw digest bytes.
	Digest string
}

// NewToken composes a token from an algorithm and a hex digest.
// Fails with an UnsupportedAlgorithmError for algorithms outside the table.
func NewToken(algorithm Algorithm, digest string) (Token, error) {
	if _, err := AlgorithmID(algorithm); err != nil {
		return Token{}, err
	}
	return Token{Algorithm: algorithm, Digest: strings.ToLower(digest)}, nil
}

// ParseToken decodes the "$<id>$$<hex>" wire format. The algorithm id must
// resolve through the table; an unknown id yields an UnsupportedAlgorithmError,
// a layout violation yields a plain format error.
func ParseToken(value string) (Token, error) {
	if !strings.HasPrefix(value, "$") {
		return Token{}, fmt.Errorf("malformed token %q: missing leading '$'", value)
	}

	parts := strings.Split(value[1:], "$")
	if len(parts) != 3 || parts[1] != "" {
		return Token{}, fmt.Errorf("malformed token %q: want $<id>$$<hex>", value)
	}

	algorithm, err := AlgorithmFromID(parts[0])
	if err != nil {
		return Token{}, err
	}

	return Token{Algorithm: algorithm, Digest: parts[2]}, nil
}

// String renders the token in its wire format. Tokens are only constructed
// through NewToken or ParseToken, so the algorithm is always in the table.
func (t Token) String() string {
	id, err := AlgorithmID(t.Algorithm)
	if err != nil {
		// Zero-value or hand-built token outside the table.
		id = "?"
	}
	return "$" + id + "$$" + t.Digest
}

// Equal reports whether two tokens match exactly, both algorithm and digest.
func (t Token) Equal(other Token) bool {
	return t.Algorithm == other.Algorithm && t.Digest == other.Digest
}
