package archiver

import (
	"errors"

	"github.com/tauraamui/xerror"

	"github.com/SreenikethanI/mp4-recovery-experience/pkg/log"
	"github.com/SreenikethanI/mp4-recovery-experience/pkg/metrics"
	"github.com/SreenikethanI/mp4-recovery-experience/pkg/video/videobackend"
	"github.com/SreenikethanI/mp4-recovery-experience/pkg/video/videoframe"
	"github.com/SreenikethanI/mp4-recovery-experience/pkg/video/videosink"
)

var (
	ErrPersistenceFailure = errors.New("unable to persist frame")
	ErrFinished           = errors.New("archiver already finished")
)

type State int

const (
	AwaitingFirstFrame State = iota
	Streaming
	Finished
)

func (s State) String() string {
	switch s {
	case AwaitingFirstFrame:
		return "awaiting first frame"
	case Streaming:
		return "streaming"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Source is the pull side of a frame stream.
type Source interface {
	Read() (videoframe.Frame, error)
}

type Settings struct {
	OutputDir  string
	SampleRate float64
	Threshold  float64
}

type Result struct {
	FramesRead  int
	FramesSaved int
	// ShortRead is how many bytes of an unfinished frame arrived before
	// the stream ended.
	ShortRead int
	Saved     []string
}

var equalFrames = videoframe.Equal

// Archiver compares each frame against the one before it and saves the
// frames which changed, named after their stream time.
type Archiver struct {
	settings Settings
	writer   videosink.Writer
	state    State
	previous videoframe.Frame
	index    int
	result   Result
}

func New(settings Settings, writer videosink.Writer) *Archiver {
	return &Archiver{settings: settings, writer: writer, state: AwaitingFirstFrame}
}

func (a *Archiver) State() State { return a.state }

func (a *Archiver) Result() Result { return a.result }

// Run pulls frames from src until it ends or a frame cannot be compared or
// saved. Reaching the end of the stream is not an error.
func (a *Archiver) Run(src Source) (Result, error) {
	for {
		frame, err := src.Read()
		if err != nil {
			a.state = Finished
			var eos *videobackend.EndOfStream
			if errors.As(err, &eos) {
				if eos.Cause != nil {
					log.Warn("Stream read failed: %v", eos.Cause)
				}
				log.Info("End of stream, expected %d bytes, got %d", eos.Expected, eos.Received)
				a.result.ShortRead = eos.Received
				return a.result, nil
			}
			return a.result, xerror.Errorf("unable to read frame %d: %w", a.index, err)
		}

		if err := a.Process(frame); err != nil {
			return a.result, err
		}
	}
}

// Process takes ownership of frame, the next one in the stream.
func (a *Archiver) Process(frame videoframe.Frame) error {
	if a.state == Finished {
		return ErrFinished
	}

	index := a.index
	a.index++
	a.result.FramesRead = a.index
	metrics.RecordFrameRead()

	if a.state == AwaitingFirstFrame {
		a.previous = frame
		a.state = Streaming
		return nil
	}

	equal, err := equalFrames(a.previous, frame, a.settings.Threshold)
	if err != nil {
		a.state = Finished
		return xerror.Errorf("unable to compare frame %d with its predecessor: %w", index, err)
	}
	a.previous = frame
	if equal {
		return nil
	}
	metrics.RecordFrameChanged()

	return a.save(index, frame)
}

func (a *Archiver) save(index int, frame videoframe.Frame) error {
	seconds := Seconds(index, a.settings.SampleRate)
	path := FileName(a.settings.OutputDir, seconds)

	if err := a.writer.Write(path, frame); err != nil {
		a.state = Finished
		log.Error("Unable to save frame %d to %s: %v", index, path, err)
		return xerror.Errorf("%w: frame %d to %s: %v", ErrPersistenceFailure, index, path, err)
	}

	a.result.FramesSaved++
	a.result.Saved = append(a.result.Saved, path)
	metrics.RecordFrameSaved(seconds)
	log.Info("Saved - frame %d - timestamp %s - %s", index, Clock(seconds), path)
	return nil
}
