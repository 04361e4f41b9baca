package stream_test

import (
	"bytes"
	"context"
	"crypto/md5"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/sumstream/internal/core/domain"
	"github.com/iamNilotpal/sumstream/internal/core/services/stream"
)

// brokenReader yields its data and then fails with err instead of io.EOF.
type brokenReader struct {
	data []byte
	err  error
}

func (r *brokenReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func digest(algorithm domain.Algorithm, data []byte) string {
	switch algorithm {
	case domain.MD5:
		sum := md5.Sum(data)
		return hex.EncodeToString(sum[:])
	case domain.SHA256:
		sum := sha256.Sum256(data)
		return hex.EncodeToString(sum[:])
	case domain.SHA512:
		sum := sha512.Sum512(data)
		return hex.EncodeToString(sum[:])
	}
	return ""
}

func TestProducerTokenMatchesDirectDigest(t *testing.T) {
	input := []byte("the bytes flowing through the stream")

	for _, algorithm := range domain.Algorithms() {
		t.Run(string(algorithm), func(t *testing.T) {
			producer, future, err := stream.NewProducer(bytes.NewReader(input), algorithm)
			require.NoError(t, err)

			var out bytes.Buffer
			_, err = io.Copy(&out, producer)
			require.NoError(t, err)

			// Byte-for-byte transparency.
			assert.Equal(t, input, out.Bytes())

			token, ok := future.Token()
			require.True(t, ok, "future must resolve at EOF")
			assert.Equal(t, algorithm, token.Algorithm)
			assert.Equal(t, digest(algorithm, input), token.Digest)
		})
	}
}

func TestProducerKnownVector(t *testing.T) {
	producer, future, err := stream.NewProducer(bytes.NewReader([]byte("hello")), domain.MD5)
	require.NoError(t, err)

	_, err = io.Copy(io.Discard, producer)
	require.NoError(t, err)

	token, ok := future.Token()
	require.True(t, ok)
	assert.Equal(t, "$1$$5d41402abc4b2a76b9719d911017c592", token.String())
}

func TestProducerDefaultsToMD5(t *testing.T) {
	producer, future, err := stream.NewProducer(bytes.NewReader(nil), "")
	require.NoError(t, err)
	assert.Equal(t, domain.MD5, producer.Algorithm())

	_, err = io.Copy(io.Discard, producer)
	require.NoError(t, err)

	token, ok := future.Token()
	require.True(t, ok)
	// md5 of the empty input.
	assert.Equal(t, "$1$$d41d8cd98f00b204e9800998ecf8427e", token.String())
}

func TestProducerUnsupportedAlgorithmFailsFast(t *testing.T) {
	producer, future, err := stream.NewProducer(bytes.NewReader([]byte("x")), "sha1")
	require.Error(t, err)
	assert.True(t, domain.IsUnsupportedAlgorithmError(err))
	assert.Nil(t, producer)
	assert.Nil(t, future)
}

func TestProducerEmptyInput(t *testing.T) {
	producer, future, err := stream.NewProducer(bytes.NewReader(nil), domain.SHA256)
	require.NoError(t, err)

	n, readErr := producer.Read(make([]byte, 8))
	assert.Zero(t, n)
	assert.Equal(t, io.EOF, readErr)

	token, ok := future.Token()
	require.True(t, ok)
	assert.Equal(t, digest(domain.SHA256, nil), token.Digest)
}

func TestProducerSmallChunks(t *testing.T) {
	input := []byte("chunked input, one byte at a time")
	producer, future, err := stream.NewProducer(bytes.NewReader(input), domain.SHA512)
	require.NoError(t, err)

	var out bytes.Buffer
	buf := make([]byte, 1)
	for {
		n, readErr := producer.Read(buf)
		out.Write(buf[:n])
		if readErr == io.EOF {
			break
		}
		require.NoError(t, readErr)
	}

	assert.Equal(t, input, out.Bytes())

	token, ok := future.Token()
	require.True(t, ok)
	assert.Equal(t, digest(domain.SHA512, input), token.Digest)
}

func TestProducerSourceErrorLeavesFuturePending(t *testing.T) {
	sourceErr := errors.New("disk on fire")
	producer, future, err := stream.NewProducer(
		&brokenReader{data: []byte("partial"), err: sourceErr}, domain.MD5,
	)
	require.NoError(t, err)

	_, copyErr := io.Copy(io.Discard, producer)
	// The source error rides the stream, verbatim.
	assert.Equal(t, sourceErr, copyErr)

	_, ok := future.Token()
	assert.False(t, ok, "future must stay pending after a source error")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, waitErr := future.Wait(ctx)
	assert.ErrorIs(t, waitErr, context.DeadlineExceeded)
}

func TestTokenFutureWait(t *testing.T) {
	producer, future, err := stream.NewProducer(bytes.NewReader([]byte("hello")), domain.MD5)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		token, waitErr := future.Wait(context.Background())
		assert.NoError(t, waitErr)
		assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", token.Digest)
	}()

	_, err = io.Copy(io.Discard, producer)
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after the stream ended")
	}
}

func TestTokenFutureResolvesOnce(t *testing.T) {
	producer, future, err := stream.NewProducer(bytes.NewReader(nil), domain.MD5)
	require.NoError(t, err)

	// A reader at EOF keeps returning io.EOF; finalization must not repeat.
	for i := 0; i < 3; i++ {
		_, readErr := producer.Read(make([]byte, 4))
		assert.Equal(t, io.EOF, readErr)
	}

	token, ok := future.Token()
	require.True(t, ok)
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", token.Digest)
}
