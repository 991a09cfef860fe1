package videobackend_test

import (
	"testing"

	"github.com/matryer/is"

	"github.com/SreenikethanI/mp4-recovery-experience/pkg/video/videobackend"
)

func TestVideoBackendDefaultBackend(t *testing.T) {
	is := is.New(t)
	is.True(videobackend.Default() != nil)
}

func TestVideoBackendResolve(t *testing.T) {
	is := is.New(t)
	is.Equal(videobackend.Resolve("mock"), videobackend.Mock())
	is.Equal(videobackend.Resolve("ffmpeg"), videobackend.FFmpeg())
	is.Equal(videobackend.Resolve(""), videobackend.Default())
}
