package videobackend

import (
	"context"
	"os/exec"
	"time"

	"github.com/spf13/afero"
)

var (
	ReadFrame = readFrame
	BuildArgs = buildArgs
	ClockText = clockText
)

type LineCollector = lineCollector

func OverrideFS(replacement afero.Fs) func() {
	ref := fs
	fs = replacement
	return func() { fs = ref }
}

func OverrideLookPath(replacement func(string) (string, error)) func() {
	ref := lookPath
	lookPath = replacement
	return func() { lookPath = ref }
}

func OverrideNewCommand(replacement func(context.Context, string, ...string) *exec.Cmd) func() {
	ref := newCommand
	newCommand = replacement
	return func() { newCommand = ref }
}

func OverrideCloseGracePeriod(d time.Duration) func() {
	ref := closeGracePeriod
	closeGracePeriod = d
	return func() { closeGracePeriod = ref }
}
