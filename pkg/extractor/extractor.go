package extractor

import (
	"context"
	"strings"

	"github.com/tauraamui/xerror"

	"github.com/SreenikethanI/mp4-recovery-experience/pkg/archiver"
	"github.com/SreenikethanI/mp4-recovery-experience/pkg/configdef"
	"github.com/SreenikethanI/mp4-recovery-experience/pkg/log"
	"github.com/SreenikethanI/mp4-recovery-experience/pkg/metrics"
	"github.com/SreenikethanI/mp4-recovery-experience/pkg/video/videobackend"
	"github.com/SreenikethanI/mp4-recovery-experience/pkg/video/videosink"
)

var (
	ensureOutputDir = videosink.EnsureDirectoryPathExists
	writeMetrics    = metrics.WriteTextfile
)

const bannerWidth = 32

// Run extracts every changed frame of the stream described by values into
// the output directory. The source is always closed before Run returns,
// whatever ended the run.
func Run(ctx context.Context, values configdef.Values, backend videobackend.Backend, writer videosink.Writer) (result archiver.Result, err error) {
	if err := ensureOutputDir(values.OutputDir); err != nil {
		return result, xerror.Errorf("unable to create output directory %s: %w", values.OutputDir, err)
	}

	conn, err := backend.Connect(ctx, videobackend.Settings{
		InputPath:  values.InputPath,
		FFmpegPath: values.FFmpegPath,
		Cropbox:    values.Cropbox,
		SampleRate: values.SampleRate,
		MockFrames: values.MockFrames,
	})
	if err != nil {
		return result, err
	}
	log.Info("Reading %s at %g fps, cropped to %s [%s]", describeInput(values), values.SampleRate, values.Cropbox, conn.UUID())

	defer shutdown(conn, values.MetricsTextfile)

	a := archiver.New(archiver.Settings{
		OutputDir:  values.OutputDir,
		SampleRate: values.SampleRate,
		Threshold:  values.Threshold,
	}, writer)
	return a.Run(conn)
}

func describeInput(values configdef.Values) string {
	if values.VideoBackend == configdef.BackendMock {
		return "mock clock stream"
	}
	return values.InputPath
}

func shutdown(conn videobackend.Connection, metricsTextfile string) {
	if err := conn.Close(); err != nil {
		log.Error("Unable to close video stream [%s]: %v", conn.UUID(), err)
	}
	surfaceDiagnostics(conn.Diagnostics())

	if len(metricsTextfile) == 0 {
		return
	}
	if err := writeMetrics(metricsTextfile); err != nil {
		log.Error("Unable to write metrics to %s: %v", metricsTextfile, err)
	}
}

func surfaceDiagnostics(lines []string) {
	rule := strings.Repeat("=", bannerWidth)
	log.Info("Remainder decoder output:")
	log.Info(rule)
	for _, line := range lines {
		log.Info("%s", line)
	}
	log.Info(rule)
}
