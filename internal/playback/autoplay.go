package playback

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/san-kum/algoviz/internal/step"
)

// CommandType selects the Player transition a Command applies.
type CommandType int

const (
	CommandPlay CommandType = iota + 1
	CommandPause
	CommandToggle
	CommandStepForward
	CommandStepBackward
	CommandReset
	CommandSeek
	CommandSpeed
	CommandLoad
)

// Command is a transport request for an Autoplay loop.
type Command struct {
	Type     CommandType
	Step     int
	Speed    time.Duration
	Sequence *step.Sequence
}

// ErrStopped is returned by Send once the loop has exited.
var ErrStopped = errors.New("playback: autoplay stopped")

// Autoplay owns a Player and applies commands and ticks to it from a single
// goroutine. The render callback sees every change; a panicking render is
// logged and does not affect the Player.
type Autoplay struct {
	player   *Player
	render   func(Frame)
	logger   *slog.Logger
	commands chan Command
	done     chan struct{}
}

// NewAutoplay wraps p. render may be nil.
func NewAutoplay(p *Player, render func(Frame), logger *slog.Logger) *Autoplay {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Autoplay{
		player:   p,
		render:   render,
		logger:   logger,
		commands: make(chan Command),
		done:     make(chan struct{}),
	}
}

// Send delivers cmd to the loop.
func (a *Autoplay) Send(ctx context.Context, cmd Command) error {
	select {
	case a.commands <- cmd:
		return nil
	case <-a.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed when Run returns.
func (a *Autoplay) Done() <-chan struct{} { return a.done }

// Run drives the Player until ctx is cancelled.
func (a *Autoplay) Run(ctx context.Context) error {
	defer close(a.done)

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	var (
		armed     bool
		scheduled uint64
	)
	rearm := func() {
		p := a.player
		if !p.IsPlaying() {
			if armed {
				timer.Stop()
				armed = false
			}
			return
		}
		if armed && scheduled == p.Epoch() {
			return
		}
		timer.Reset(p.Speed())
		armed = true
		scheduled = p.Epoch()
	}

	a.notify()
	rearm()

	for {
		var tick <-chan time.Time
		if armed {
			tick = timer.C
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-a.commands:
			a.apply(cmd)
			a.notify()
			rearm()
		case <-tick:
			armed = false
			if a.player.Tick(scheduled) {
				a.notify()
			}
			rearm()
		}
	}
}

func (a *Autoplay) apply(cmd Command) {
	p := a.player
	switch cmd.Type {
	case CommandPlay:
		p.Play()
	case CommandPause:
		p.Pause()
	case CommandToggle:
		p.Toggle()
	case CommandStepForward:
		p.StepForward()
	case CommandStepBackward:
		p.StepBackward()
	case CommandReset:
		p.Reset()
	case CommandSeek:
		p.GoToStep(cmd.Step)
	case CommandSpeed:
		p.SetSpeed(cmd.Speed)
	case CommandLoad:
		p.Load(cmd.Sequence)
	default:
		a.logger.Warn("unknown playback command", "type", int(cmd.Type))
	}
}

func (a *Autoplay) notify() {
	if a.render == nil {
		return
	}
	f := a.player.Frame()
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("render failed", "algorithm", f.Algorithm, "cursor", f.Cursor, "panic", r)
		}
	}()
	a.render(f)
}
