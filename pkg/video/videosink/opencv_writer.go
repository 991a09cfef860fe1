package videosink

import (
	"path/filepath"

	"github.com/tauraamui/xerror"
	"gocv.io/x/gocv"

	"github.com/SreenikethanI/mp4-recovery-experience/pkg/video/videoframe"
)

type openCVWriter struct {
	quality int
}

var newMatFromBytes = func(rows, cols int, data []byte) (gocv.Mat, error) {
	return gocv.NewMatFromBytes(rows, cols, gocv.MatTypeCV8U, data)
}

var writeImage = func(path string, mat gocv.Mat, quality int) bool {
	return gocv.IMWriteWithParams(path, mat, []int{int(gocv.IMWriteJpegQuality), quality})
}

func (w *openCVWriter) Write(path string, frame videoframe.Frame) error {
	if err := EnsureDirectoryPathExists(filepath.Dir(path)); err != nil {
		return xerror.Errorf("unable to create directory for %s: %w", path, err)
	}

	dims := frame.Dimensions()
	mat, err := newMatFromBytes(dims.H, dims.W, frame.Bytes())
	if err != nil {
		return xerror.Errorf("unable to convert frame into OpenCV mat: %w", err)
	}
	defer mat.Close()

	if !writeImage(path, mat, w.quality) {
		return xerror.Errorf("OpenCV was unable to write image to %s", path)
	}
	return nil
}
