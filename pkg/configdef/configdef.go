package configdef

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gopkg.in/dealancer/validate.v2"
)

const (
	BackendFFmpeg = "ffmpeg"
	BackendMock   = "mock"

	WriterJPEG   = "jpeg"
	WriterOpenCV = "opencv"
)

type Values struct {
	Debug           bool    `json:"debug"`
	InputPath       string  `json:"input_path"`
	OutputDir       string  `json:"output_dir" validate:"empty=false"`
	Cropbox         Cropbox `json:"cropbox"`
	SampleRate      float64 `json:"sample_rate" validate:"gt=0"`
	Threshold       float64 `json:"threshold" validate:"gte=0 & lte=1"`
	FFmpegPath      string  `json:"ffmpeg_path"`
	VideoBackend    string  `json:"video_backend"`
	ImageWriter     string  `json:"image_writer"`
	JPEGQuality     int     `json:"jpeg_quality" validate:"gte=1 & lte=100"`
	MockFrames      int     `json:"mock_frames" validate:"gte=0"`
	MetricsTextfile string  `json:"metrics_textfile"`
}

// Normalize strips the quotes and padding that pasting a path from a
// file manager tends to leave behind.
func (v *Values) Normalize() {
	v.InputPath = cleanPath(v.InputPath)
	v.OutputDir = cleanPath(v.OutputDir)
	v.FFmpegPath = strings.TrimSpace(v.FFmpegPath)
	v.VideoBackend = strings.ToLower(strings.TrimSpace(v.VideoBackend))
	v.ImageWriter = strings.ToLower(strings.TrimSpace(v.ImageWriter))
}

func cleanPath(p string) string {
	return strings.TrimSpace(strings.ReplaceAll(p, `"`, ""))
}

func (v Values) RunValidate() error {
	const validationErrorHeader = "validation failed: %w"
	// range tags compare with < and >, which NaN always slips past
	if !isFinite(v.SampleRate) {
		return fmt.Errorf(validationErrorHeader, fmt.Errorf("sample rate must be a finite number, got %v", v.SampleRate))
	}
	if !isFinite(v.Threshold) {
		return fmt.Errorf(validationErrorHeader, fmt.Errorf("threshold must be a finite number, got %v", v.Threshold))
	}
	if err := validate.Validate(&v); err != nil {
		return err
	}
	if err := v.Cropbox.validate(); err != nil {
		return fmt.Errorf(validationErrorHeader, err)
	}
	if v.VideoBackend != BackendFFmpeg && v.VideoBackend != BackendMock {
		return fmt.Errorf(validationErrorHeader, fmt.Errorf("unknown video backend %q", v.VideoBackend))
	}
	if v.ImageWriter != WriterJPEG && v.ImageWriter != WriterOpenCV {
		return fmt.Errorf(validationErrorHeader, fmt.Errorf("unknown image writer %q", v.ImageWriter))
	}
	if v.VideoBackend != BackendMock && len(v.InputPath) == 0 {
		return fmt.Errorf(validationErrorHeader, errors.New("input path is required"))
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
