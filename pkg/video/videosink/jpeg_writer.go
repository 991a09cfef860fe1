package videosink

import (
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/tauraamui/xerror"

	"github.com/SreenikethanI/mp4-recovery-experience/pkg/video/videoframe"
)

type jpegWriter struct {
	quality int
}

func (w *jpegWriter) Write(path string, frame videoframe.Frame) error {
	if err := EnsureDirectoryPathExists(filepath.Dir(path)); err != nil {
		return xerror.Errorf("unable to create directory for %s: %w", path, err)
	}

	file, err := fs.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return xerror.Errorf("unable to create/open file: %w", err)
	}

	if err := imaging.Encode(file, toGray(frame), imaging.JPEG, imaging.JPEGQuality(w.quality)); err != nil {
		file.Close()
		return xerror.Errorf("unable to encode frame to %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return xerror.Errorf("unable to finish writing %s: %w", path, err)
	}
	return nil
}

func toGray(frame videoframe.Frame) *image.Gray {
	dims := frame.Dimensions()
	return &image.Gray{
		Pix:    frame.Bytes(),
		Stride: dims.W,
		Rect:   image.Rect(0, 0, dims.W, dims.H),
	}
}
