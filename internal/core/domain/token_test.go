package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/sumstream/internal/core/domain"
)

func TestAlgorithmTableBidirectional(t *testing.T) {
	tests := []struct {
		algorithm domain.Algorithm
		id        string
	}{
		{domain.MD5, "1"},
		{domain.SHA256, "5"},
		{domain.SHA512, "6"},
	}

	for _, tt := range tests {
		t.Run(string(tt.algorithm), func(t *testing.T) {
			id, err := domain.AlgorithmID(tt.algorithm)
			require.NoError(t, err)
			assert.Equal(t, tt.id, id)

			algorithm, err := domain.AlgorithmFromID(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.algorithm, algorithm)
		})
	}
}

func TestAlgorithmLookupUnsupported(t *testing.T) {
	_, err := domain.AlgorithmID("sha1")
	require.Error(t, err)
	assert.True(t, domain.IsUnsupportedAlgorithmError(err))

	_, err = domain.AlgorithmFromID("9")
	require.Error(t, err)
	assert.True(t, domain.IsUnsupportedAlgorithmError(err))
}

func TestTokenString(t *testing.T) {
	token, err := domain.NewToken(domain.MD5, "5d41402abc4b2a76b9719d911017c592")
	require.NoError(t, err)
	assert.Equal(t, "$1$$5d41402abc4b2a76b9719d911017c592", token.String())
}

func TestNewTokenUnsupported(t *testing.T) {
	_, err := domain.NewToken("blake3", "00")
	require.Error(t, err)
	assert.True(t, domain.IsUnsupportedAlgorithmError(err))
}

func TestParseToken(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.Token
		wantErr bool
		// unsupported distinguishes the algorithm-table error from a
		// plain layout error.
		unsupported bool
	}{
		{
			name:  "md5 token",
			input: "$1$$5d41402abc4b2a76b9719d911017c592",
			want:  domain.Token{Algorithm: domain.MD5, Digest: "5d41402abc4b2a76b9719d911017c592"},
		},
		{
			name:  "sha256 token",
			input: "$5$$aa",
			want:  domain.Token{Algorithm: domain.SHA256, Digest: "aa"},
		},
		{
			name:        "unknown algorithm id",
			input:       "$2$$aa",
			wantErr:     true,
			unsupported: true,
		},
		{
			name:    "missing leading dollar",
			input:   "1$$aa",
			wantErr: true,
		},
		{
			name:    "single separator",
			input:   "$1$aa",
			wantErr: true,
		},
		{
			name:    "non-empty reserved field",
			input:   "$1$x$aa",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := domain.ParseToken(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.unsupported, domain.IsUnsupportedAlgorithmError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
			assert.Equal(t, tt.input, token.String())
		})
	}
}

func TestTokenEqual(t *testing.T) {
	a := domain.Token{Algorithm: domain.MD5, Digest: "aa"}
	b := domain.Token{Algorithm: domain.MD5, Digest: "aa"}
	c := domain.Token{Algorithm: domain.SHA256, Digest: "aa"}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(domain.Token{Algorithm: domain.MD5, Digest: "bb"}))
}
