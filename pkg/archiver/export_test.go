package archiver

import "github.com/SreenikethanI/mp4-recovery-experience/pkg/video/videoframe"

func OverrideEqualFrames(replacement func(videoframe.Frame, videoframe.Frame, float64) (bool, error)) func() {
	ref := equalFrames
	equalFrames = replacement
	return func() { equalFrames = ref }
}
