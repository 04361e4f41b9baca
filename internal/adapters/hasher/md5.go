package hasher

import (
	md5_lib "crypto/md5"
	"encoding/hex"
	"hash"
	"io"

	"github.com/iamNilotpal/sumstream/internal/core/domain"
)

type md5Hasher struct {
	algorithm domain.Algorithm
}

func NewMD5() *md5Hasher {
	return &md5Hasher{algorithm: domain.MD5}
}

func (m *md5Hasher) Algorithm() domain.Algorithm {
	return m.algorithm
}

func (m *md5Hasher) New() hash.Hash {
	return md5_lib.New()
}

func (m *md5Hasher) Sum(r io.Reader) (string, error) {
	h := md5_lib.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func (m *md5Hasher) Size() uint8 {
	return md5_lib.Size
}
