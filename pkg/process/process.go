package process

import (
	"context"
	"sync"

	"github.com/SreenikethanI/mp4-recovery-experience/pkg/log"
)

type Process interface {
	Setup() Process
	Start()
	Stop()
	Wait() error
}

type Settings struct {
	WaitForShutdownMsg string
	Process            func(context.Context) error
}

func New(settings Settings) Process {
	ctx, canceller := context.WithCancel(context.Background())
	return &process{
		waitForShutdownMsg: settings.WaitForShutdownMsg,
		process:            settings.Process,
		ctx:                ctx,
		canceller:          canceller,
		done:               make(chan struct{}),
	}
}

type process struct {
	process            func(context.Context) error
	waitForShutdownMsg string
	ctx                context.Context
	canceller          context.CancelFunc
	startOnce          sync.Once
	stopOnce           sync.Once
	started            bool
	done               chan struct{}
	err                error
}

func (p *process) logShutdown() {
	if len(p.waitForShutdownMsg) > 0 {
		log.Info(p.waitForShutdownMsg)
	}
}

func (p *process) Setup() Process { return p }

// Start runs the process function on its own goroutine. Only the first
// call has any effect. A process stopped before it starts runs with an
// already cancelled context.
func (p *process) Start() {
	p.startOnce.Do(func() {
		p.started = true
		go func() {
			defer close(p.done)
			p.err = p.process(p.ctx)
		}()
	})
}

func (p *process) Stop() {
	p.stopOnce.Do(func() {
		p.logShutdown()
		p.canceller()
	})
}

// Wait blocks until the process function returns and hands back its error.
// It returns at once if the process was never started.
func (p *process) Wait() error {
	if !p.started {
		return nil
	}
	<-p.done
	p.canceller()
	return p.err
}
