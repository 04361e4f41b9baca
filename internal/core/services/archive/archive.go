// Package archive packs files into a compressed container stamped with the
// checksum token of the original bytes, and unpacks them with verification.
// Packing runs the bytes through a producer stream; unpacking runs them
// through a verifier stream, so corruption surfaces as a
// ChecksumMismatchError from the stream itself.
package archive

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/iamNilotpal/sumstream/internal/adapters/compression"
	"github.com/iamNilotpal/sumstream/internal/core/domain"
	"github.com/iamNilotpal/sumstream/internal/core/ports"
	"github.com/iamNilotpal/sumstream/internal/core/services/stream"
	"github.com/iamNilotpal/sumstream/internal/serialize"
	"github.com/iamNilotpal/sumstream/pkg/checksum"
	"github.com/iamNilotpal/sumstream/pkg/errors"
	"github.com/iamNilotpal/sumstream/pkg/pool"
	"github.com/iamNilotpal/sumstream/pkg/system"
)

// Service packs and unpacks token-stamped archives. It owns a zstd
// instance and must be closed when no longer needed.
type Service struct {
	options    *Options
	fs         ports.FileSystem
	pool       *pool.BufferPool
	compressor ports.CompressionPort
}

// New initializes the archive service.
func New(opts *Options) (*Service, error) {
	if opts == nil {
		opts = &Options{}
	}
	if err := Validate(opts); err != nil {
		return nil, err
	}
	opts = prepareDefaults(opts)

	compressor, err := compression.NewZstdCompression(compression.Options{
		Level:              opts.Compression.Level,
		EncoderConcurrency: opts.Compression.EncoderConcurrency,
		DecoderConcurrency: opts.Compression.DecoderConcurrency,
	})
	if err != nil {
		return nil, err
	}

	return &Service{
		options:    opts,
		fs:         opts.FileSystem,
		compressor: compressor,
		pool:       pool.NewBufferPool(opts.Checksum.BufferSize),
	}, nil
}

// Pack reads the file at srcPath through a producer stream, compresses the
// bytes when beneficial, and writes the archive to dstPath. Returns the
// token of the original bytes.
func (s *Service) Pack(srcPath, dstPath string) (domain.Token, error) {
	file, err := s.fs.OpenFile(srcPath)
	if err != nil {
		return domain.Token{}, errors.NewChecksumError(domain.ErrorArchive, "pack", err)
	}
	defer file.Close()

	producer, future, err := stream.NewProducer(file, s.options.Checksum.Algorithm)
	if err != nil {
		return domain.Token{}, err
	}

	buffer := s.pool.Get()
	defer s.pool.Put(buffer)

	if _, err := io.Copy(buffer, producer); err != nil {
		return domain.Token{}, errors.NewChecksumError(domain.ErrorArchive, "pack", err)
	}

	// Resolved synchronously: the copy only returns nil after EOF.
	token, _ := future.Token()

	payload := buffer.Bytes()
	var flags byte
	if s.options.Compression.Enable {
		compressed, err := s.compressor.Compress(payload)
		if err != nil {
			return domain.Token{}, errors.NewChecksumError(domain.ErrorArchive, "pack", err)
		}
		// Compress hands back the input when shrinking is not worth it;
		// the flag must track what actually got stored.
		if len(compressed) < len(payload) {
			flags |= flagCompressed
			payload = compressed
		}
	}

	contents, err := s.encode(token, uint64(buffer.Len()), flags, payload)
	if err != nil {
		return domain.Token{}, errors.NewChecksumError(domain.ErrorArchive, "pack", err)
	}

	if err := s.fs.WriteFile(dstPath, 0o644, contents); err != nil {
		return domain.Token{}, errors.NewChecksumError(domain.ErrorArchive, "pack", err)
	}
	return token, nil
}

// Unpack reads the archive at srcPath, decompresses if needed, verifies the
// bytes against the stored token and writes them to dstPath. A corrupted
// payload surfaces as a ChecksumMismatchError; nothing is written then.
func (s *Service) Unpack(srcPath, dstPath string) (domain.Token, error) {
	contents, err := s.fs.ReadFile(srcPath)
	if err != nil {
		return domain.Token{}, errors.NewChecksumError(domain.ErrorArchive, "unpack", err)
	}

	head, flags, payload, err := s.decode(contents)
	if err != nil {
		return domain.Token{}, err
	}

	if flags&flagCompressed != 0 {
		payload, err = s.compressor.Decompress(payload)
		if err != nil {
			return domain.Token{}, errors.NewChecksumError(domain.ErrorArchive, "unpack", err)
		}
	}

	verifier, _, err := stream.NewVerifier(bytes.NewReader(payload), head.Token)
	if err != nil {
		return domain.Token{}, err
	}

	buffer := s.pool.Get()
	defer s.pool.Put(buffer)

	if _, err := io.Copy(buffer, verifier); err != nil {
		if domain.IsChecksumMismatchError(err) {
			return domain.Token{}, err
		}
		return domain.Token{}, errors.NewChecksumError(domain.ErrorArchive, "unpack", err)
	}

	if err := s.fs.WriteFile(dstPath, 0o644, buffer.Bytes()); err != nil {
		return domain.Token{}, errors.NewChecksumError(domain.ErrorArchive, "unpack", err)
	}
	return domain.ParseToken(head.Token)
}

// Close releases the compressor, waiting up to the context's deadline.
func (s *Service) Close(ctx context.Context) error {
	return system.RunWithContext(ctx, func(context.Context) error {
		return s.compressor.Close()
	})
}

func (s *Service) encode(token domain.Token, originalSize uint64, flags byte, payload []byte) ([]byte, error) {
	head, err := serialize.MarshalJSON(header{Token: token.String(), OriginalSize: originalSize})
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	out.Grow(prefixSize + len(head) + 4 + len(payload))

	out.Write(magic[:])
	out.WriteByte(formatVersion)
	out.WriteByte(flags)

	var headLen [4]byte
	binary.BigEndian.PutUint32(headLen[:], uint32(len(head)))
	out.Write(headLen[:])
	out.Write(head)

	var headCRC [4]byte
	binary.BigEndian.PutUint32(headCRC[:], checksum.Checksum(head))
	out.Write(headCRC[:])

	out.Write(payload)
	return out.Bytes(), nil
}

func (s *Service) decode(contents []byte) (header, byte, []byte, error) {
	if len(contents) < prefixSize || !bytes.Equal(contents[:4], magic[:]) {
		return header{}, 0, nil, ErrBadMagic
	}
	if contents[4] != formatVersion {
		return header{}, 0, nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, contents[4])
	}
	flags := contents[5]

	headLen := binary.BigEndian.Uint32(contents[6:prefixSize])
	if uint64(len(contents)) < uint64(prefixSize)+uint64(headLen)+4 {
		return header{}, 0, nil, ErrArchiveCorrupted
	}

	head := contents[prefixSize : prefixSize+headLen]
	headCRC := binary.BigEndian.Uint32(contents[prefixSize+headLen : prefixSize+headLen+4])
	if !checksum.VerifyChecksum(head, headCRC) {
		return header{}, 0, nil, ErrArchiveCorrupted
	}

	var decoded header
	if err := serialize.UnMarshalJSON(head, &decoded); err != nil {
		return header{}, 0, nil, fmt.Errorf("%w: %v", ErrArchiveCorrupted, err)
	}

	return decoded, flags, contents[prefixSize+headLen+4:], nil
}
