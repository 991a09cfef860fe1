package videobackend_test

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/matryer/is"

	"github.com/SreenikethanI/mp4-recovery-experience/pkg/video/videobackend"
	"github.com/SreenikethanI/mp4-recovery-experience/pkg/video/videoframe"
)

var twoByTwo = videoframe.Dimensions{W: 2, H: 2}

func TestReadFrameReadsExactlyOneFrame(t *testing.T) {
	is := is.New(t)

	r := bytes.NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	f, err := videobackend.ReadFrame(r, twoByTwo)
	is.NoErr(err)
	is.Equal(f.Bytes(), []byte{1, 2, 3, 4})

	f, err = videobackend.ReadFrame(r, twoByTwo)
	is.NoErr(err)
	is.Equal(f.Bytes(), []byte{5, 6, 7, 8})
}

func TestReadFrameAssemblesFrameFromSmallReads(t *testing.T) {
	is := is.New(t)

	r := iotest.OneByteReader(bytes.NewReader([]byte{9, 8, 7, 6}))
	f, err := videobackend.ReadFrame(r, twoByTwo)
	is.NoErr(err)
	is.Equal(f.Bytes(), []byte{9, 8, 7, 6})
}

func TestReadFrameReportsShortRead(t *testing.T) {
	is := is.New(t)

	_, err := videobackend.ReadFrame(bytes.NewReader([]byte{1, 2, 3}), twoByTwo)
	is.True(errors.Is(err, videobackend.ErrStreamEnded))

	var eos *videobackend.EndOfStream
	is.True(errors.As(err, &eos))
	is.Equal(eos.Expected, 4)
	is.Equal(eos.Received, 3)
	is.NoErr(eos.Cause)
	is.Equal(err.Error(), "end of stream, expected 4 bytes, got 3")
}

func TestReadFrameReportsEmptyStream(t *testing.T) {
	is := is.New(t)

	_, err := videobackend.ReadFrame(bytes.NewReader(nil), twoByTwo)
	var eos *videobackend.EndOfStream
	is.True(errors.As(err, &eos))
	is.Equal(eos.Received, 0)
}

func TestReadFrameKeepsReadErrorAsCause(t *testing.T) {
	is := is.New(t)

	broken := errors.New("pipe exploded")
	r := io.MultiReader(bytes.NewReader([]byte{1}), iotest.ErrReader(broken))
	_, err := videobackend.ReadFrame(r, twoByTwo)
	is.True(errors.Is(err, videobackend.ErrStreamEnded))
	is.True(errors.Is(err, broken))

	var eos *videobackend.EndOfStream
	is.True(errors.As(err, &eos))
	is.Equal(eos.Received, 1)
}

func TestLineCollectorSplitsOnLineBreaksAndCarriageReturns(t *testing.T) {
	is := is.New(t)

	c := videobackend.LineCollector{}
	_, err := c.Write([]byte("Input #0, mov\nframe=  1\rframe="))
	is.NoErr(err)
	_, err = c.Write([]byte("  2\r\n\ntrailing"))
	is.NoErr(err)

	is.Equal(c.Lines(), []string{"Input #0, mov", "frame=  1", "frame=  2", "trailing"})
	is.NoErr(c.Close())
	is.Equal(c.Lines(), []string{"Input #0, mov", "frame=  1", "frame=  2", "trailing"})
}
