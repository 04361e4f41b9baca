package stream

import (
	"context"
	"sync"

	"github.com/iamNilotpal/sumstream/internal/core/domain"
)

// TokenFuture is the deferred result of a producer stream. It resolves at
// most once, strictly after the last chunk has been surfaced to the reader.
// If the source stream errors before completion the future stays pending
// forever; callers needing a bound must pass a context to Wait.
type TokenFuture struct {
	once  sync.Once
	done  chan struct{}
	token domain.Token
}

func newTokenFuture() *TokenFuture {
	return &TokenFuture{done: make(chan struct{})}
}

func (f *TokenFuture) resolve(token domain.Token) {
	f.once.Do(func() {
		f.token = token
		close(f.done)
	})
}

// Done returns a channel that is closed once the token is available.
func (f *TokenFuture) Done() <-chan struct{} {
	return f.done
}

// Token returns the resolved token. The second return value reports
// whether resolution has happened; the token is only valid when true.
func (f *TokenFuture) Token() (domain.Token, bool) {
	select {
	case <-f.done:
		return f.token, true
	default:
		return domain.Token{}, false
	}
}

// Wait blocks until the token resolves or the context is done.
func (f *TokenFuture) Wait(ctx context.Context) (domain.Token, error) {
	select {
	case <-f.done:
		return f.token, nil
	case <-ctx.Done():
		return domain.Token{}, ctx.Err()
	}
}

// VerifyFuture is the deferred terminal state of a verifier stream. It
// resolves exactly once when the stream terminates: nil on a clean match,
// the mismatch error on a failed comparison, or the source error verbatim.
type VerifyFuture struct {
	once sync.Once
	done chan struct{}
	err  error
}

func newVerifyFuture() *VerifyFuture {
	return &VerifyFuture{done: make(chan struct{})}
}

func (f *VerifyFuture) resolve(err error) {
	f.once.Do(func() {
		f.err = err
		close(f.done)
	})
}

// Done returns a channel that is closed once the stream terminates.
func (f *VerifyFuture) Done() <-chan struct{} {
	return f.done
}

// Err returns the terminal error. The second return value reports whether
// the stream has terminated yet.
func (f *VerifyFuture) Err() (error, bool) {
	select {
	case <-f.done:
		return f.err, true
	default:
		return nil, false
	}
}

// Wait blocks until the stream terminates or the context is done.
// A nil return means the verification succeeded.
func (f *VerifyFuture) Wait(ctx context.Context) error {
	select {
	case <-f.done:
		return f.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
