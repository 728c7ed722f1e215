package program

import (
	"context"
	"sync"
)

// runLocalErrorLogger retains the first error returned by any of the
// routines and cancels the others.
type runLocalErrorLogger struct {
	once       sync.Once
	firstError error
	cancel     context.CancelFunc
}

func (el *runLocalErrorLogger) Log(err error) {
	el.once.Do(func() {
		el.firstError = err
		el.cancel()
	})
}

// RunLocal runs a routine and all of the routines it spawns until
// completion, returning the first error that occurred. Unlike RunMain(),
// errors don't cause the process to terminate. This makes it possible
// to exercise servers from within tests and one-shot tools.
func RunLocal(ctx context.Context, routine Routine) error {
	innerCtx, cancel := context.WithCancel(ctx)
	errorLogger := &runLocalErrorLogger{
		cancel: cancel,
	}
	run(innerCtx, errorLogger, routine)
	errorLogger.once.Do(cancel)
	return errorLogger.firstError
}
