package videobackend

import (
	"errors"
	"fmt"
)

var (
	ErrStreamEnded       = errors.New("stream ended")
	ErrSourceUnavailable = errors.New("video source unavailable")
)

// EndOfStream is returned by Read once the source closes, carrying how
// many bytes of the unfinished frame arrived.
type EndOfStream struct {
	Expected int
	Received int
	// Cause is set when the stream ended on a read error rather than EOF.
	Cause error
}

func (e *EndOfStream) Error() string {
	msg := fmt.Sprintf("end of stream, expected %d bytes, got %d", e.Expected, e.Received)
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *EndOfStream) Is(target error) bool {
	return target == ErrStreamEnded
}

func (e *EndOfStream) Unwrap() error {
	return e.Cause
}
