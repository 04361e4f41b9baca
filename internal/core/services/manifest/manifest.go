// Package manifest records checksum tokens for files and re-verifies the
// files against the recorded tokens later. Tokens live in a single JSON
// manifest file protected by a crc32 self-check.
package manifest

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/iamNilotpal/sumstream/internal/core/domain"
	"github.com/iamNilotpal/sumstream/internal/core/ports"
	"github.com/iamNilotpal/sumstream/internal/core/services/stream"
	"github.com/iamNilotpal/sumstream/internal/serialize"
	"github.com/iamNilotpal/sumstream/pkg/checksum"
	"github.com/iamNilotpal/sumstream/pkg/errors"
	"github.com/iamNilotpal/sumstream/pkg/pool"
)

// Service provides functionality to record and verify file tokens.
// It should be instantiated using the New function. A Service is not safe
// for concurrent use; callers coordinate access themselves.
type Service struct {
	options *Options
	fs      ports.FileSystem
	pool    *pool.BufferPool
	entries map[string]string
}

// New initializes the manifest service, loading the manifest file if one
// exists at the configured path.
func New(opts *Options) (*Service, error) {
	if opts == nil {
		opts = &Options{}
	}
	if err := Validate(opts); err != nil {
		return nil, err
	}
	opts = prepareDefaults(opts)

	service := Service{
		options: opts,
		fs:      opts.FileSystem,
		pool:    pool.NewBufferPool(opts.Checksum.BufferSize),
		entries: map[string]string{},
	}

	if err := service.load(); err != nil {
		return nil, err
	}
	return &service, nil
}

// Record streams the file at path through a producer and stores the
// resulting token. An existing entry for the same path is only replaced
// when force is set.
func (s *Service) Record(path string, force bool) (domain.Token, error) {
	if _, ok := s.entries[path]; ok && !force {
		return domain.Token{}, fmt.Errorf("%w: %s", ErrEntryExists, path)
	}

	token, err := s.sum(path)
	if err != nil {
		return domain.Token{}, errors.NewChecksumError(domain.ErrorManifest, "record", err)
	}

	s.entries[path] = token.String()
	if err := s.save(); err != nil {
		return domain.Token{}, errors.NewChecksumError(domain.ErrorManifest, "record", err)
	}
	return token, nil
}

// Verify streams the file at path through a verifier against its recorded
// token. A mismatch surfaces as a ChecksumMismatchError from the stream.
func (s *Service) Verify(path string) error {
	expected, ok := s.entries[path]
	if !ok {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, path)
	}

	file, err := s.fs.OpenFile(path)
	if err != nil {
		return errors.NewChecksumError(domain.ErrorStream, "verify", err)
	}
	defer file.Close()

	verifier, _, err := stream.NewVerifier(file, expected)
	if err != nil {
		return err
	}

	if err := s.drain(verifier); err != nil {
		if domain.IsChecksumMismatchError(err) {
			return err
		}
		return errors.NewChecksumError(domain.ErrorStream, "verify", err)
	}
	return nil
}

// VerifyAll verifies every recorded entry in path order, honoring ctx
// between files. The first failure stops the walk.
func (s *Service) VerifyAll(ctx context.Context) error {
	paths := make([]string, 0, len(s.entries))
	for path := range s.entries {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Verify(path); err != nil {
			return fmt.Errorf("verify %s: %w", path, err)
		}
	}
	return nil
}

// Token returns the recorded token for path.
func (s *Service) Token(path string) (domain.Token, error) {
	raw, ok := s.entries[path]
	if !ok {
		return domain.Token{}, fmt.Errorf("%w: %s", ErrEntryNotFound, path)
	}
	return domain.ParseToken(raw)
}

// Remove drops the entry for path and persists the manifest.
func (s *Service) Remove(path string) error {
	if _, ok := s.entries[path]; !ok {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, path)
	}
	delete(s.entries, path)
	return s.save()
}

// Len returns the number of recorded entries.
func (s *Service) Len() int {
	return len(s.entries)
}

// Path returns the manifest file location.
func (s *Service) Path() string {
	return s.options.Path
}

func (s *Service) sum(path string) (domain.Token, error) {
	file, err := s.fs.OpenFile(path)
	if err != nil {
		return domain.Token{}, err
	}
	defer file.Close()

	producer, future, err := stream.NewProducer(file, s.options.Checksum.Algorithm)
	if err != nil {
		return domain.Token{}, err
	}

	if err := s.drain(producer); err != nil {
		return domain.Token{}, err
	}

	// Resolved synchronously: drain only returns nil after EOF.
	token, _ := future.Token()
	return token, nil
}

// drain pumps a stream to completion using a pooled scratch buffer.
// io.Copy is avoided on purpose: its ReaderFrom fast path would bypass the
// pooled buffer.
func (s *Service) drain(r io.Reader) error {
	buffer := s.pool.Get()
	defer s.pool.Put(buffer)

	scratch := buffer.Bytes()[:buffer.Cap()]
	for {
		_, err := r.Read(scratch)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Service) load() error {
	exists, err := s.fs.Exists(s.options.Path)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	contents, err := s.fs.ReadFile(s.options.Path)
	if err != nil {
		return err
	}

	var file manifestFile
	if err := serialize.UnMarshalJSON(contents, &file); err != nil {
		return fmt.Errorf("%w: %v", ErrManifestCorrupted, err)
	}
	if file.Version != formatVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, file.Version)
	}

	encoded, err := serialize.MarshalJSON(file.Entries)
	if err != nil {
		return err
	}
	if !checksum.VerifyChecksum(encoded, file.Checksum) {
		return ErrManifestCorrupted
	}

	if file.Entries == nil {
		file.Entries = map[string]string{}
	}
	s.entries = file.Entries
	return nil
}

func (s *Service) save() error {
	encoded, err := serialize.MarshalJSON(s.entries)
	if err != nil {
		return err
	}

	contents, err := serialize.MarshalJSONIndent(manifestFile{
		Version:  formatVersion,
		Checksum: checksum.Checksum(encoded),
		Entries:  s.entries,
	})
	if err != nil {
		return err
	}

	return s.fs.WriteFile(s.options.Path, 0o644, contents)
}
