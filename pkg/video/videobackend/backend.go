package videobackend

import (
	"context"

	"github.com/spf13/afero"

	"github.com/SreenikethanI/mp4-recovery-experience/pkg/configdef"
	"github.com/SreenikethanI/mp4-recovery-experience/pkg/video/videoframe"
)

var fs = afero.NewOsFs()

// Settings describe the decoded stream a connection must produce.
type Settings struct {
	InputPath  string
	FFmpegPath string
	Cropbox    configdef.Cropbox
	SampleRate float64
	// MockFrames is how many frames the mock backend emits before ending.
	MockFrames int
}

// Connection is a single pass, non-restartable sequence of frames.
type Connection interface {
	UUID() string
	FrameSize() int
	// Read blocks until a whole frame is available. A stream which closes
	// before that yields an *EndOfStream error, never a partial frame.
	Read() (videoframe.Frame, error)
	// Diagnostics returns the text the source wrote besides frames. It is
	// complete once Close has returned.
	Diagnostics() []string
	Close() error
}

type Backend interface {
	Connect(context.Context, Settings) (Connection, error)
}

func Default() Backend {
	return FFmpeg()
}

func FFmpeg() Backend {
	return &ffmpegBackend{}
}

func Mock() Backend {
	return &mockVideoBackend{}
}

func Resolve(t string) Backend {
	switch t {
	case configdef.BackendMock:
		return Mock()
	default:
		return Default()
	}
}
