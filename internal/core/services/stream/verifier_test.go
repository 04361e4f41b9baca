package stream_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/sumstream/internal/core/domain"
	"github.com/iamNilotpal/sumstream/internal/core/services/stream"
)

func produceToken(t *testing.T, data []byte, algorithm domain.Algorithm) string {
	t.Helper()
	producer, future, err := stream.NewProducer(bytes.NewReader(data), algorithm)
	require.NoError(t, err)
	_, err = io.Copy(io.Discard, producer)
	require.NoError(t, err)
	token, ok := future.Token()
	require.True(t, ok)
	return token.String()
}

func TestVerifierMatch(t *testing.T) {
	input := []byte("bytes worth checking twice")

	for _, algorithm := range domain.Algorithms() {
		t.Run(string(algorithm), func(t *testing.T) {
			expected := produceToken(t, input, algorithm)

			verifier, future, err := stream.NewVerifier(bytes.NewReader(input), expected)
			require.NoError(t, err)

			var out bytes.Buffer
			_, err = io.Copy(&out, verifier)
			require.NoError(t, err)

			// Byte-for-byte transparency.
			assert.Equal(t, input, out.Bytes())
			require.NoError(t, future.Wait(context.Background()))
		})
	}
}

func TestVerifierKnownVector(t *testing.T) {
	verifier, _, err := stream.NewVerifier(
		bytes.NewReader([]byte("hello")), "$1$$5d41402abc4b2a76b9719d911017c592",
	)
	require.NoError(t, err)

	_, err = io.Copy(io.Discard, verifier)
	require.NoError(t, err)
}

func TestVerifierMismatchSurfacesOnStream(t *testing.T) {
	verifier, future, err := stream.NewVerifier(
		bytes.NewReader([]byte("hello")), "$1$$00000000000000000000000000000000",
	)
	require.NoError(t, err)

	var out bytes.Buffer
	_, copyErr := io.Copy(&out, verifier)

	// The mismatch rides the stream's error channel, not only the future.
	require.Error(t, copyErr)
	mismatch := domain.AsChecksumMismatchError(copyErr)
	require.NotNil(t, mismatch)
	assert.Equal(t, "$1$$5d41402abc4b2a76b9719d911017c592", mismatch.Computed.String())
	assert.Equal(t, "$1$$00000000000000000000000000000000", mismatch.Expected.String())

	// All chunks were forwarded before the comparison ran.
	assert.Equal(t, []byte("hello"), out.Bytes())

	// The future reports the same terminal error.
	futureErr, resolved := future.Err()
	require.True(t, resolved)
	assert.True(t, domain.IsChecksumMismatchError(futureErr))
}

func TestVerifierMismatchStaysSticky(t *testing.T) {
	verifier, _, err := stream.NewVerifier(
		bytes.NewReader([]byte("hello")), "$1$$00000000000000000000000000000000",
	)
	require.NoError(t, err)

	_, copyErr := io.Copy(io.Discard, verifier)
	require.Error(t, copyErr)

	_, again := verifier.Read(make([]byte, 4))
	assert.True(t, domain.IsChecksumMismatchError(again))
}

func TestVerifierWrongAlgorithmTokenMismatches(t *testing.T) {
	input := []byte("same bytes, different table entry")
	expected := produceToken(t, input, domain.SHA256)

	// Valid sha256 token but the stream carries different bytes.
	verifier, _, err := stream.NewVerifier(bytes.NewReader([]byte("other bytes")), expected)
	require.NoError(t, err)

	_, copyErr := io.Copy(io.Discard, verifier)
	assert.True(t, domain.IsChecksumMismatchError(copyErr))
}

func TestVerifierMalformedTokenFailsFast(t *testing.T) {
	tests := []struct {
		name        string
		token       string
		unsupported bool
	}{
		{name: "unknown algorithm id", token: "$9$$abcdef", unsupported: true},
		{name: "bad layout", token: "garbage"},
		{name: "empty token", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reads := &countingReader{r: bytes.NewReader([]byte("data"))}
			verifier, future, err := stream.NewVerifier(reads, tt.token)
			require.Error(t, err)
			assert.Equal(t, tt.unsupported, domain.IsUnsupportedAlgorithmError(err))
			assert.False(t, domain.IsChecksumMismatchError(err))
			assert.Nil(t, verifier)
			assert.Nil(t, future)
			// Fail fast: no chunk was processed.
			assert.Zero(t, reads.calls)
		})
	}
}

func TestVerifierSourceErrorPropagatesWithoutComparison(t *testing.T) {
	sourceErr := errors.New("connection reset")
	verifier, future, err := stream.NewVerifier(
		&brokenReader{data: []byte("part"), err: sourceErr},
		"$1$$5d41402abc4b2a76b9719d911017c592",
	)
	require.NoError(t, err)

	_, copyErr := io.Copy(io.Discard, verifier)
	assert.Equal(t, sourceErr, copyErr)
	assert.False(t, domain.IsChecksumMismatchError(copyErr))

	// Terminal state reached: the future carries the source error.
	futureErr, resolved := future.Err()
	require.True(t, resolved)
	assert.Equal(t, sourceErr, futureErr)
}

func TestVerifyFutureWait(t *testing.T) {
	verifier, future, err := stream.NewVerifier(
		bytes.NewReader([]byte("hello")), "$1$$5d41402abc4b2a76b9719d911017c592",
	)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	// Nothing consumed the stream yet.
	assert.ErrorIs(t, future.Wait(ctx), context.DeadlineExceeded)

	_, err = io.Copy(io.Discard, verifier)
	require.NoError(t, err)
	assert.NoError(t, future.Wait(context.Background()))
}

// countingReader tracks how many Read calls the wrapped reader served.
type countingReader struct {
	r     io.Reader
	calls int
}

func (c *countingReader) Read(p []byte) (int, error) {
	c.calls++
	return c.r.Read(p)
}
