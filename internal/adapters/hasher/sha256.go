package hasher

import (
	sha256_lib "crypto/sha256"
	"encoding/hex"
	"hash"
	"io"

	"github.com/iamNilotpal/sumstream/internal/core/domain"
)

type sha256Hasher struct {
	algorithm domain.Algorithm
}

func NewSHA256() *sha256Hasher {
	return &sha256Hasher{algorithm: domain.SHA256}
}

func (s *sha256Hasher) Algorithm() domain.Algorithm {
	return s.algorithm
}

func (s *sha256Hasher) New() hash.Hash {
	return sha256_lib.New()
}

func (s *sha256Hasher) Sum(r io.Reader) (string, error) {
	h := sha256_lib.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func (s *sha256Hasher) Size() uint8 {
	return sha256_lib.Size
}
