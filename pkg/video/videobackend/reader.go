package videobackend

import (
	"errors"
	"io"

	"github.com/SreenikethanI/mp4-recovery-experience/pkg/video/videoframe"
)

func readFrame(r io.Reader, dims videoframe.Dimensions) (videoframe.Frame, error) {
	buf := make([]byte, dims.Size())
	n, err := io.ReadFull(r, buf)
	if err != nil {
		var cause error
		if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			cause = err
		}
		return videoframe.Frame{}, &EndOfStream{Expected: len(buf), Received: n, Cause: cause}
	}
	return videoframe.New(dims, buf)
}
