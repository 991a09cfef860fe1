package main

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/SreenikethanI/mp4-recovery-experience/pkg/configdef"
)

// newFlagSet binds a flag to every field of values, so whatever the config
// file already set stays in place unless the flag is given.
func newFlagSet(values *configdef.Values) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	flags.StringVarP(&values.InputPath, "input-path", "i", values.InputPath, "recording to extract timestamps from")
	flags.StringVarP(&values.OutputDir, "output-dir", "o", values.OutputDir, "directory changed frames are saved into")
	flags.Var(&values.Cropbox, "cropbox", "region of each frame holding the clock, as width:height:x:y")
	flags.Float64Var(&values.SampleRate, "sample-rate", values.SampleRate, "frames sampled per second of video")
	flags.Float64Var(&values.Threshold, "threshold", values.Threshold, "smallest pixel difference, from 0 to 1, counted as a change")
	flags.StringVar(&values.FFmpegPath, "ffmpeg-path", values.FFmpegPath, "ffmpeg binary used to decode the recording")
	flags.StringVar(&values.VideoBackend, "video-backend", values.VideoBackend, "frame source, ffmpeg or mock")
	flags.StringVar(&values.ImageWriter, "image-writer", values.ImageWriter, "image encoder, jpeg or opencv")
	flags.IntVar(&values.JPEGQuality, "jpeg-quality", values.JPEGQuality, "quality of saved frames, from 1 to 100")
	flags.IntVar(&values.MockFrames, "mock-frames", values.MockFrames, "frames the mock video backend emits")
	flags.StringVar(&values.MetricsTextfile, "metrics-textfile", values.MetricsTextfile, "write run metrics to this file when finished")
	flags.BoolVar(&values.Debug, "debug", values.Debug, "log at debug level")

	return flags
}

// parseFlags applies args over values. A single positional argument is
// taken as the input path.
func parseFlags(values *configdef.Values, args []string) error {
	flags := newFlagSet(values)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() > 0 {
		values.InputPath = flags.Arg(0)
	}
	return nil
}
