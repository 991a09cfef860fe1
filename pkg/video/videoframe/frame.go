package videoframe

import (
	"errors"

	"github.com/tauraamui/xerror"
)

var ErrFrameLengthMismatch = errors.New("frame length mismatch")

type Dimensions struct {
	W, H int
}

// Size is the byte length of a single channel 8-bit frame.
func (d Dimensions) Size() int {
	return d.W * d.H
}

// Frame is one grayscale sample, one byte per pixel in row-major order.
// Its pixels cannot change once constructed.
type Frame struct {
	dims Dimensions
	data []byte
}

// New copies data, so the caller may reuse its buffer afterwards.
func New(dims Dimensions, data []byte) (Frame, error) {
	if len(data) != dims.Size() {
		return Frame{}, xerror.Errorf(
			"%w: %dx%d frame expects %d bytes, got %d",
			ErrFrameLengthMismatch, dims.W, dims.H, dims.Size(), len(data),
		)
	}
	owned := make([]byte, len(data))
	copy(owned, data)
	return Frame{dims: dims, data: owned}, nil
}

// Bytes returns a copy of the pixels.
func (f Frame) Bytes() []byte {
	data := make([]byte, len(f.data))
	copy(data, f.data)
	return data
}

func (f Frame) Dimensions() Dimensions { return f.dims }

func (f Frame) Len() int { return len(f.data) }
