// Package compression provides data compression for packed archives using
// the zstd algorithm. It offers a thread-safe implementation with
// configurable compression levels.
package compression

import (
	"fmt"
	"sync"

	"github.com/iamNilotpal/sumstream/internal/core/domain"
	"github.com/klauspost/compress/zstd"
)

type Options struct {
	Level              uint8
	EncoderConcurrency uint8
	DecoderConcurrency uint8
}

// ZstdCompression implements CompressionPort using the zstd compression
// algorithm. Compression and decompression are safe for concurrent use.
// Small inputs and inputs that do not shrink are stored verbatim.
type ZstdCompression struct {
	level   uint8
	mu      sync.RWMutex
	decoder *zstd.Decoder
	encoder *zstd.Encoder
}

// Compression level constants define the trade-off between compression
// ratio and speed. Higher levels compress better at higher CPU cost.
const (
	FastestLevel uint8 = 1 // Optimized for speed with minimal compression
	DefaultLevel uint8 = 3 // Balanced between speed and compression ratio
	BestLevel    uint8 = 4 // Maximum compression ratio, higher CPU usage
)

// NewZstdCompression creates a new zstd compression instance with the
// specified level, initializing both encoder and decoder.
//
// Returns an error if:
// - The compression level is invalid
// - The encoder or decoder initialization fails
func NewZstdCompression(opts Options) (*ZstdCompression, error) {
	if err := Validate(
		&domain.CompressionOptions{
			Level:              opts.Level,
			EncoderConcurrency: opts.EncoderConcurrency,
			DecoderConcurrency: opts.DecoderConcurrency,
		},
	); err != nil {
		return nil, err
	}

	encoder, err := zstd.NewWriter(
		nil,
		zstd.WithEncoderLevel(zstd.EncoderLevel(opts.Level)),
		zstd.WithEncoderConcurrency(int(opts.EncoderConcurrency)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(int(opts.DecoderConcurrency)))
	if err != nil {
		encoder.Close()
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	return &ZstdCompression{encoder: encoder, decoder: decoder, level: opts.Level}, nil
}

// Compress compresses the input data using zstd compression.
// Blocks smaller than 64 bytes, and blocks that compression does not
// shrink, are returned unchanged.
func (z *ZstdCompression) Compress(data []byte) ([]byte, error) {
	z.mu.RLock()
	defer z.mu.RUnlock()

	if len(data) < 64 {
		return data, nil
	}

	compressed := z.encoder.EncodeAll(data, nil)
	if len(compressed) < len(data) {
		return compressed, nil
	}

	return data, nil
}

// Decompress restores the original data from its compressed form.
//
// Returns an error if:
// - The input data is not valid zstd compressed data
// - Decompression fails for any other reason
func (z *ZstdCompression) Decompress(data []byte) ([]byte, error) {
	z.mu.RLock()
	defer z.mu.RUnlock()

	decompressed, err := z.decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("decompression failed: %w", err)
	}

	return decompressed, nil
}

// Level returns the current compression level.
func (z *ZstdCompression) Level() uint8 {
	z.mu.RLock()
	defer z.mu.RUnlock()
	return z.level
}

// Close releases all resources used by the compression instance.
// After closing, the instance cannot be used for compression or
// decompression.
func (z *ZstdCompression) Close() error {
	z.mu.Lock()
	defer z.mu.Unlock()

	if err := z.encoder.Close(); err != nil {
		return fmt.Errorf("error closing encoder : %w", err)
	}

	z.decoder.Close()
	return nil
}
