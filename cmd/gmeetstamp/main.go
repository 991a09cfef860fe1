package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"gocv.io/x/gocv"

	"github.com/SreenikethanI/mp4-recovery-experience/pkg/archiver"
	"github.com/SreenikethanI/mp4-recovery-experience/pkg/config"
	"github.com/SreenikethanI/mp4-recovery-experience/pkg/configdef"
	"github.com/SreenikethanI/mp4-recovery-experience/pkg/extractor"
	"github.com/SreenikethanI/mp4-recovery-experience/pkg/log"
	"github.com/SreenikethanI/mp4-recovery-experience/pkg/process"
	"github.com/SreenikethanI/mp4-recovery-experience/pkg/video/videobackend"
	"github.com/SreenikethanI/mp4-recovery-experience/pkg/video/videosink"
)

const (
	name  = "gmeetstamp"
	usage = "Usage: gmeetstamp setup | [flags] [input path]"
)

func setup() error {
	log.Info("Setting up gmeetstamp...")

	err := config.DefaultCreator().Create()
	if err != nil {
		if !errors.Is(err, configdef.ErrConfigAlreadyExists) {
			return err
		}
		log.Error(err.Error())
	}
	return nil
}

func extract(args []string) error {
	values, err := config.DefaultResolver().Resolve()
	if err != nil {
		return err
	}

	if err := parseFlags(&values, args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w\n%s", err, usage)
	}
	if values.Debug {
		log.SetLevel("debug")
	}

	values.Normalize()
	if err := values.RunValidate(); err != nil {
		return err
	}

	backend := videobackend.Resolve(values.VideoBackend)
	writer := videosink.Resolve(values.ImageWriter, values.JPEGQuality)

	var result archiver.Result
	proc := process.New(process.Settings{
		WaitForShutdownMsg: "Stopping timestamp extraction...",
		Process: func(ctx context.Context) (err error) {
			result, err = extractor.Run(ctx, values, backend, writer)
			return err
		},
	})

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	proc.Start()
	go func() {
		killSignal := <-interrupt
		fmt.Print("\r")
		log.Warn("Received signal: %s", killSignal)
		proc.Stop()
	}()

	err = proc.Wait()
	log.Info("Read %d frames, saved %d to %s", result.FramesRead, result.FramesSaved, values.OutputDir)

	if values.ImageWriter == configdef.WriterOpenCV {
		var b bytes.Buffer
		if err := gocv.MatProfile.WriteTo(&b, 1); err == nil {
			log.Debug("OpenCV Mat profile, %d still allocated:\n%s", gocv.MatProfile.Count(), b.String())
		}
	}

	return err
}

func init() {
	log.SetLevel(os.Getenv("GMEETSTAMP_LOGGING_LEVEL"))
}

func main() {
	var err error
	if len(os.Args) > 1 && os.Args[1] == "setup" {
		err = setup()
	} else {
		err = extract(os.Args[1:])
	}

	exitOnError(err)
}

// exitOnError logs err and exits with status 1.
func exitOnError(err error) {
	if err != nil {
		log.Fatal("%v", err)
	}
}
