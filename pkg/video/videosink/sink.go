package videosink

import (
	"os"

	"github.com/spf13/afero"

	"github.com/SreenikethanI/mp4-recovery-experience/pkg/configdef"
	"github.com/SreenikethanI/mp4-recovery-experience/pkg/video/videoframe"
)

var fs = afero.NewOsFs()

// Writer persists a single frame as a grayscale still image.
type Writer interface {
	Write(path string, frame videoframe.Frame) error
}

func Default(quality int) Writer {
	return JPEG(quality)
}

func JPEG(quality int) Writer {
	return &jpegWriter{quality: quality}
}

func OpenCV(quality int) Writer {
	return &openCVWriter{quality: quality}
}

func Resolve(t string, quality int) Writer {
	switch t {
	case configdef.WriterOpenCV:
		return OpenCV(quality)
	default:
		return Default(quality)
	}
}

// EnsureDirectoryPathExists creates path and any missing parents.
func EnsureDirectoryPathExists(path string) error {
	err := fs.MkdirAll(path, os.ModePerm|os.ModeDir)
	if err == nil || os.IsExist(err) {
		return nil
	}
	return err
}
