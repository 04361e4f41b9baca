package system

import (
	"context"
)

// Executes an operation with context awareness, ensuring proper completion
// or graceful interruption.
//
// The function handles three key scenarios:
//   - Normal completion: The operation finishes successfully
//   - Error during the operation: The error is propagated to the caller
//   - Context cancellation: The operation is signaled to stop but allowed to finish gracefully
func RunWithContext(ctx context.Context, operation func(context.Context) error) error {
	// Fast feedback if the caller's context is already cancelled.
	if err := ctx.Err(); err != nil {
		return err
	}

	// The operation gets its own context so interruption can be signaled
	// without leaving resources in an inconsistent state.
	opCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Buffered so the goroutine can exit even if nobody reads immediately.
	done := make(chan error, 1)

	go func() {
		done <- operation(opCtx)
		close(done)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		// Signal the operation to stop, then wait for it to finish any
		// critical work before returning.
		cancel()
		return <-done
	}
}
