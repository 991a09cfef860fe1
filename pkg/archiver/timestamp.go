package archiver

import (
	"fmt"
	"math"
	"path/filepath"
)

// Seconds is the stream time of the frame at index when sampling at rate
// frames per second.
func Seconds(index int, rate float64) float64 {
	return float64(index) / rate
}

// FileStamp formats seconds for file names, zero padded to six characters
// with one fractional digit, e.g. 0125.0.
func FileStamp(seconds float64) string {
	return fmt.Sprintf("%06.1f", seconds)
}

// Clock formats seconds as hh:mm:ss, truncating each part.
func Clock(seconds float64) string {
	hours := int(math.Floor(seconds / 3600))
	minutes := int(math.Floor(math.Mod(seconds, 3600) / 60))
	secs := int(math.Mod(seconds, 60))
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

func FileName(dir string, seconds float64) string {
	return filepath.Join(dir, fmt.Sprintf("timestamp %s.jpg", FileStamp(seconds)))
}
