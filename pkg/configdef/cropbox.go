package configdef

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/tauraamui/xerror"

	"github.com/SreenikethanI/mp4-recovery-experience/pkg/video/videoframe"
)

// Cropbox is the region cut out of every source frame before sampling,
// written as width:height:x:y.
type Cropbox struct {
	W, H, X, Y int
}

func ParseCropbox(s string) (Cropbox, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 4 {
		return Cropbox{}, xerror.Errorf("invalid cropbox %q: expected width:height:x:y", s)
	}

	var values [4]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Cropbox{}, xerror.Errorf("invalid cropbox %q: %w", s, err)
		}
		values[i] = v
	}
	return Cropbox{W: values[0], H: values[1], X: values[2], Y: values[3]}, nil
}

func (c Cropbox) String() string {
	return fmt.Sprintf("%d:%d:%d:%d", c.W, c.H, c.X, c.Y)
}

// Set parses s into c, letting a cropbox be given as a command line flag.
func (c *Cropbox) Set(s string) error {
	parsed, err := ParseCropbox(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c *Cropbox) Type() string { return "cropbox" }

func (c Cropbox) Dimensions() videoframe.Dimensions {
	return videoframe.Dimensions{W: c.W, H: c.H}
}

func (c Cropbox) validate() error {
	if c.W < 1 || c.H < 1 {
		return fmt.Errorf("cropbox %s must have a width and height of at least 1", c)
	}
	if c.X < 0 || c.Y < 0 {
		return fmt.Errorf("cropbox %s must not have a negative offset", c)
	}
	return nil
}

func (c Cropbox) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Cropbox) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return c.Set(s)
}
