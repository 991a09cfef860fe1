package process_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/SreenikethanI/mp4-recovery-experience/pkg/log"
	"github.com/SreenikethanI/mp4-recovery-experience/pkg/process"
)

func overloadInfoLog(overload func(string, ...interface{})) func() {
	logInfoRef := log.Info
	log.Info = overload
	return func() { log.Info = logInfoRef }
}

func TestProcessReturnsErrorFromWait(t *testing.T) {
	is := is.New(t)
	failure := errors.New("run failed")

	proc := process.New(process.Settings{
		Process: func(context.Context) error { return failure },
	}).Setup()
	proc.Start()

	is.Equal(proc.Wait(), failure)
}

func TestProcessStopCancelsContext(t *testing.T) {
	is := is.New(t)

	infoLogs := []string{}
	defer overloadInfoLog(func(format string, a ...interface{}) {
		infoLogs = append(infoLogs, fmt.Sprintf(format, a...))
	})()

	started := make(chan struct{})
	proc := process.New(process.Settings{
		WaitForShutdownMsg: "Stopping extraction...",
		Process: func(ctx context.Context) error {
			close(started)
			<-ctx.Done()
			return ctx.Err()
		},
	})
	proc.Start()
	<-started

	proc.Stop()
	proc.Stop()

	done := make(chan error)
	go func() { done <- proc.Wait() }()

	select {
	case err := <-done:
		is.True(errors.Is(err, context.Canceled))
	case <-time.After(3 * time.Second):
		t.Fatal("Timeout exceeded. Process did not stop...")
	}
	is.Equal(infoLogs, []string{"Stopping extraction..."})
}

func TestProcessStartOnlyRunsOnce(t *testing.T) {
	is := is.New(t)

	runs := 0
	proc := process.New(process.Settings{
		Process: func(context.Context) error {
			runs++
			return nil
		},
	})
	proc.Start()
	proc.Start()

	is.NoErr(proc.Wait())
	is.Equal(runs, 1)
}

func TestWaitWithoutStartReturnsImmediately(t *testing.T) {
	is := is.New(t)
	proc := process.New(process.Settings{
		Process: func(context.Context) error { return errors.New("never run") },
	})
	is.NoErr(proc.Wait())
}

func TestStopBeforeStartRunsWithCancelledContext(t *testing.T) {
	is := is.New(t)
	defer overloadInfoLog(func(string, ...interface{}) {})()

	proc := process.New(process.Settings{
		Process: func(ctx context.Context) error { return ctx.Err() },
	})
	proc.Stop()
	proc.Start()
	is.Equal(proc.Wait(), context.Canceled)
}
