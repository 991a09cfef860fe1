package videobackend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/tauraamui/xerror"

	"github.com/SreenikethanI/mp4-recovery-experience/pkg/log"
	"github.com/SreenikethanI/mp4-recovery-experience/pkg/video/videoframe"
)

const defaultFFmpegBinary = "ffmpeg"

// closeGracePeriod is how long a decoder which already closed its output is
// given to exit and finish writing diagnostics before it gets killed.
var closeGracePeriod = 2 * time.Second

var lookPath = func(file string) (string, error) {
	return exec.LookPath(file)
}

var newCommand = func(ctx context.Context, name string, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, name, args...)
}

type ffmpegBackend struct{}

func (b *ffmpegBackend) Connect(ctx context.Context, settings Settings) (Connection, error) {
	conn := ffmpegConnection{}
	if err := conn.connect(ctx, settings); err != nil {
		return nil, err
	}
	return &conn, nil
}

func buildArgs(settings Settings) []string {
	return []string{
		"-i", settings.InputPath,
		"-vf", fmt.Sprintf(
			"fps=%s,crop=%s",
			strconv.FormatFloat(settings.SampleRate, 'f', -1, 64), settings.Cropbox,
		),
		"-f", "rawvideo",
		"-pix_fmt", "gray",
		"-hide_banner",
		"-",
	}
}

type ffmpegConnection struct {
	uuid      string
	dims      videoframe.Dimensions
	cmd       *exec.Cmd
	stdout    io.ReadCloser
	stderr    *lineCollector
	ended     atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

func (c *ffmpegConnection) connect(ctx context.Context, settings Settings) error {
	c.uuid = uuid.NewString()
	c.dims = settings.Cropbox.Dimensions()

	if _, err := fs.Stat(settings.InputPath); err != nil {
		return xerror.Errorf("%w: unable to open input %s: %v", ErrSourceUnavailable, settings.InputPath, err)
	}

	binary := settings.FFmpegPath
	if len(binary) == 0 {
		binary = defaultFFmpegBinary
	}
	path, err := lookPath(binary)
	if err != nil {
		return xerror.Errorf("%w: unable to find decoder %s: %v", ErrSourceUnavailable, binary, err)
	}

	c.cmd = newCommand(ctx, path, buildArgs(settings)...)
	c.stderr = &lineCollector{onLine: func(line string) {
		log.Debug("ffmpeg [%s]: %s", c.uuid, line)
	}}
	c.cmd.Stderr = c.stderr

	stdout, err := c.cmd.StdoutPipe()
	if err != nil {
		return xerror.Errorf("%w: unable to open pipe for stdout: %v", ErrSourceUnavailable, err)
	}
	c.stdout = stdout

	if err := c.cmd.Start(); err != nil {
		return xerror.Errorf("%w: unable to start decoder %s: %v", ErrSourceUnavailable, path, err)
	}
	log.Debug("Started decoder [%s] pid %d: %s %v", c.uuid, c.cmd.Process.Pid, path, c.cmd.Args[1:])
	return nil
}

func (c *ffmpegConnection) UUID() string { return c.uuid }

func (c *ffmpegConnection) FrameSize() int { return c.dims.Size() }

func (c *ffmpegConnection) Read() (videoframe.Frame, error) {
	if c.ended.Load() {
		return videoframe.Frame{}, &EndOfStream{Expected: c.dims.Size()}
	}
	frame, err := readFrame(c.stdout, c.dims)
	if err != nil {
		c.ended.Store(true)
		return videoframe.Frame{}, err
	}
	return frame, nil
}

func (c *ffmpegConnection) Diagnostics() []string {
	return c.stderr.Lines()
}

func (c *ffmpegConnection) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.shutdown()
	})
	return c.closeErr
}

func (c *ffmpegConnection) shutdown() error {
	defer c.stderr.Close()

	if !c.ended.Load() {
		log.Debug("Killing decoder [%s] before its stream ended", c.uuid)
		c.kill()
	}

	exited := make(chan error, 1)
	go func() { exited <- c.cmd.Wait() }()

	var err error
	select {
	case err = <-exited:
	case <-time.After(closeGracePeriod):
		log.Warn("Decoder [%s] still running %s after its stream ended, killing it", c.uuid, closeGracePeriod)
		c.kill()
		err = <-exited
	}
	return c.releaseErr(err)
}

func (c *ffmpegConnection) kill() {
	if c.cmd.Process == nil {
		return
	}
	if err := c.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		log.Warn("Unable to kill decoder [%s]: %v", c.uuid, err)
	}
}

// releaseErr drops the exit status of the decoder, a killed or failed
// decoder has already told its story through the stream and diagnostics.
func (c *ffmpegConnection) releaseErr(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		log.Debug("Decoder [%s] exited: %v", c.uuid, err)
		return nil
	}
	return xerror.Errorf("unable to release decoder [%s]: %w", c.uuid, err)
}
