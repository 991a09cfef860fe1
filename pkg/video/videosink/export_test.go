package videosink

import (
	"github.com/spf13/afero"
	"gocv.io/x/gocv"
)

func OverrideFS(replacement afero.Fs) func() {
	ref := fs
	fs = replacement
	return func() { fs = ref }
}

func OverrideWriteImage(replacement func(string, gocv.Mat, int) bool) func() {
	ref := writeImage
	writeImage = replacement
	return func() { writeImage = ref }
}
