package hasher

import (
	sha512_lib "crypto/sha512"
	"encoding/hex"
	"hash"
	"io"

	"github.com/iamNilotpal/sumstream/internal/core/domain"
)

type sha512Hasher struct {
	algorithm domain.Algorithm
}

func NewSHA512() *sha512Hasher {
	return &sha512Hasher{algorithm: domain.SHA512}
}

func (s *sha512Hasher) Algorithm() domain.Algorithm {
	return s.algorithm
}

func (s *sha512Hasher) New() hash.Hash {
	return sha512_lib.New()
}

func (s *sha512Hasher) Sum(r io.Reader) (string, error) {
	h := sha512_lib.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func (s *sha512Hasher) Size() uint8 {
	return sha512_lib.Size
}
