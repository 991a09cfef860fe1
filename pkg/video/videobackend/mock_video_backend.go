package videobackend

import (
	"context"
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/google/uuid"
	"github.com/tauraamui/xerror"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/SreenikethanI/mp4-recovery-experience/pkg/video/videoframe"
)

var parseClockFont = sync.OnceValues(func() (*truetype.Font, error) {
	return freetype.ParseFont(goregular.TTF)
})

// mockVideoBackend renders an on-screen meeting clock instead of decoding a
// recording, the clock ticks once per second of stream time.
type mockVideoBackend struct{}

func (b *mockVideoBackend) Connect(ctx context.Context, settings Settings) (Connection, error) {
	if settings.SampleRate <= 0 {
		return nil, xerror.Errorf("%w: mock sample rate must be positive, got %v", ErrSourceUnavailable, settings.SampleRate)
	}

	f, err := parseClockFont()
	if err != nil {
		return nil, xerror.Errorf("%w: unable to load clock font: %v", ErrSourceUnavailable, err)
	}

	dims := settings.Cropbox.Dimensions()
	return &mockVideoConnection{
		ctx:        ctx,
		uuid:       uuid.NewString(),
		dims:       dims,
		rate:       settings.SampleRate,
		frameCount: settings.MockFrames,
		face: truetype.NewFace(f, &truetype.Options{
			Size:    clockFontSize(dims),
			Hinting: font.HintingFull,
		}),
		lastSecond: -1,
	}, nil
}

func clockFontSize(dims videoframe.Dimensions) float64 {
	// "00:00:00" is a little under four ems wide in Go Regular
	size := math.Min(float64(dims.H)*0.6, float64(dims.W-4)/4)
	return math.Max(size, 4)
}

type mockVideoConnection struct {
	ctx        context.Context
	uuid       string
	dims       videoframe.Dimensions
	rate       float64
	frameCount int
	index      int
	face       font.Face
	lastSecond int
	canvas     *image.Gray
	renders    int
	closed     bool
}

func (mvc *mockVideoConnection) UUID() string { return mvc.uuid }

func (mvc *mockVideoConnection) FrameSize() int { return mvc.dims.Size() }

func (mvc *mockVideoConnection) Read() (videoframe.Frame, error) {
	if mvc.closed || mvc.index >= mvc.frameCount {
		return videoframe.Frame{}, &EndOfStream{Expected: mvc.dims.Size()}
	}
	if err := mvc.ctx.Err(); err != nil {
		return videoframe.Frame{}, &EndOfStream{Expected: mvc.dims.Size(), Cause: err}
	}

	second := int(float64(mvc.index) / mvc.rate)
	if second != mvc.lastSecond {
		mvc.canvas = mvc.renderClock(second)
		mvc.lastSecond = second
		mvc.renders++
	}
	mvc.index++

	return videoframe.New(mvc.dims, mvc.canvas.Pix)
}

func (mvc *mockVideoConnection) renderClock(second int) *image.Gray {
	canvas := image.NewGray(image.Rect(0, 0, mvc.dims.W, mvc.dims.H))
	metrics := mvc.face.Metrics()
	baseline := (mvc.dims.H + metrics.Ascent.Ceil() - metrics.Descent.Ceil()) / 2

	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.White,
		Face: mvc.face,
		Dot:  fixed.Point26_6{X: fixed.I(2), Y: fixed.I(baseline)},
	}
	drawer.DrawString(clockText(second))
	return canvas
}

func clockText(second int) string {
	return fmt.Sprintf("%02d:%02d:%02d", second/3600, second%3600/60, second%60)
}

func (mvc *mockVideoConnection) Diagnostics() []string {
	return []string{
		fmt.Sprintf("mock clock [%s]: %d frames read, %d distinct clock faces rendered", mvc.uuid, mvc.index, mvc.renders),
	}
}

func (mvc *mockVideoConnection) Close() error {
	mvc.closed = true
	mvc.canvas = nil
	return nil
}
