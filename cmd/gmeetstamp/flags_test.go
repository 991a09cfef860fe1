package main

import (
	"testing"

	"github.com/matryer/is"

	"github.com/SreenikethanI/mp4-recovery-experience/pkg/configdef"
)

func TestFlagsOverrideOnlyWhatIsGiven(t *testing.T) {
	is := is.New(t)

	values := configdef.Defaults()
	values.InputPath = "from-config.mp4"
	values.Threshold = 0.4

	is.NoErr(parseFlags(&values, []string{"--sample-rate", "2", "--cropbox", "120:48:60:1300"}))

	is.Equal(values.InputPath, "from-config.mp4")
	is.Equal(values.Threshold, 0.4)
	is.Equal(values.SampleRate, 2.0)
	is.Equal(values.Cropbox, configdef.Cropbox{W: 120, H: 48, X: 60, Y: 1300})
	is.Equal(values.OutputDir, "output/")
}

func TestFlagsAcceptConfigKeyNames(t *testing.T) {
	is := is.New(t)

	values := configdef.Defaults()
	is.NoErr(parseFlags(&values, []string{"--output_dir=frames", "--jpeg_quality=90", "--video_backend", "mock"}))

	is.Equal(values.OutputDir, "frames")
	is.Equal(values.JPEGQuality, 90)
	is.Equal(values.VideoBackend, configdef.BackendMock)
}

func TestPositionalArgumentIsInputPath(t *testing.T) {
	is := is.New(t)

	values := configdef.Defaults()
	is.NoErr(parseFlags(&values, []string{"--threshold", "0.1", "recordings/standup.mp4"}))

	is.Equal(values.InputPath, "recordings/standup.mp4")
	is.Equal(values.Threshold, 0.1)
}

func TestMalformedCropboxFlagIsRejected(t *testing.T) {
	is := is.New(t)

	values := configdef.Defaults()
	err := parseFlags(&values, []string{"--cropbox", "100x40"})
	is.True(err != nil)
	is.Equal(values.Cropbox, configdef.Defaults().Cropbox)
}

func TestNonFiniteFlagsFailValidation(t *testing.T) {
	is := is.New(t)

	for _, args := range [][]string{
		{"--threshold", "NaN"},
		{"--sample-rate", "NaN"},
		{"--sample-rate", "+Inf"},
	} {
		values := configdef.Defaults()
		values.InputPath = "meeting.mp4"
		is.NoErr(parseFlags(&values, args))
		is.True(values.RunValidate() != nil)
	}
}
