package playback

import (
	"time"

	"github.com/san-kum/algoviz/internal/step"
)

// Speed bounds for autoplay.
const (
	MinSpeed     = 50 * time.Millisecond
	MaxSpeed     = 2000 * time.Millisecond
	DefaultSpeed = 500 * time.Millisecond
)

// State is the coarse transport state.
type State int

const (
	Empty State = iota
	Paused
	Playing
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Paused:
		return "paused"
	case Playing:
		return "playing"
	}
	return "unknown"
}

// Player holds a sequence and a cursor into it.
type Player struct {
	seq     *step.Sequence
	cursor  int
	playing bool
	speed   time.Duration
	epoch   uint64
}

// Option configures a Player.
type Option func(*Player)

// WithSpeed sets the initial autoplay interval, clamped to the valid range.
func WithSpeed(d time.Duration) Option {
	return func(p *Player) { p.speed = ClampSpeed(d) }
}

// New returns an empty, paused Player.
func New(opts ...Option) *Player {
	p := &Player{speed: DefaultSpeed}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ClampSpeed limits d to [MinSpeed, MaxSpeed].
func ClampSpeed(d time.Duration) time.Duration {
	return min(max(d, MinSpeed), MaxSpeed)
}

// Load replaces the sequence, rewinds to the first step and pauses.
// A nil or empty sequence leaves the Player empty.
func (p *Player) Load(seq *step.Sequence) {
	if seq.Len() == 0 {
		seq = nil
	}
	p.seq = seq
	p.cursor = 0
	p.playing = false
	p.epoch++
}

// Sequence returns the loaded sequence, nil when empty.
func (p *Player) Sequence() *step.Sequence { return p.seq }

func (p *Player) empty() bool { return p.seq.Len() == 0 }

func (p *Player) last() int { return p.seq.Len() - 1 }

// Play starts autoplay. On the terminal step it restarts from the first,
// even when the last tick left the Player playing there.
func (p *Player) Play() {
	if p.empty() {
		return
	}
	if p.cursor == p.last() {
		p.cursor = 0
	} else if p.playing {
		return
	}
	p.playing = true
	p.epoch++
}

// Pause stops autoplay.
func (p *Player) Pause() {
	if p.empty() || !p.playing {
		return
	}
	p.playing = false
	p.epoch++
}

// Toggle switches between Play and Pause. On the terminal step it always
// restarts playback.
func (p *Player) Toggle() {
	if p.playing && p.cursor != p.last() {
		p.Pause()
		return
	}
	p.Play()
}

// halt pauses ahead of a manual transition.
func (p *Player) halt() {
	p.playing = false
	p.epoch++
}

// StepForward pauses and advances one step, staying on the terminal step.
func (p *Player) StepForward() {
	if p.empty() {
		return
	}
	p.halt()
	if p.cursor < p.last() {
		p.cursor++
	}
}

// StepBackward pauses and moves back one step, staying on the first.
func (p *Player) StepBackward() {
	if p.empty() {
		return
	}
	p.halt()
	if p.cursor > 0 {
		p.cursor--
	}
}

// Reset pauses and rewinds to the first step.
func (p *Player) Reset() {
	if p.empty() {
		return
	}
	p.halt()
	p.cursor = 0
}

// GoToStep pauses and moves to n, clamped to the sequence.
func (p *Player) GoToStep(n int) {
	if p.empty() {
		return
	}
	p.halt()
	p.cursor = min(max(n, 0), p.last())
}

// SetSpeed changes the autoplay interval. A tick already scheduled keeps
// its old delay.
func (p *Player) SetSpeed(d time.Duration) {
	p.speed = ClampSpeed(d)
}

// Tick applies one autoplay transition scheduled under epoch: advance, or
// pause when already on the terminal step. It reports whether the tick was
// applied; stale ticks and ticks while paused are ignored.
func (p *Player) Tick(epoch uint64) bool {
	if epoch != p.epoch || !p.playing || p.empty() {
		return false
	}
	if p.cursor >= p.last() {
		p.halt()
		return true
	}
	p.cursor++
	return true
}

// Current returns a copy of the step under the cursor.
func (p *Player) Current() (step.Step, bool) {
	return p.seq.At(p.cursor)
}

func (p *Player) Cursor() int { return p.cursor }

func (p *Player) Len() int { return p.seq.Len() }

func (p *Player) IsPlaying() bool { return p.playing }

func (p *Player) Speed() time.Duration { return p.speed }

// Epoch identifies the current autoplay schedule.
func (p *Player) Epoch() uint64 { return p.epoch }

func (p *Player) IsAtStart() bool { return !p.empty() && p.cursor == 0 }

func (p *Player) IsAtEnd() bool { return !p.empty() && p.cursor == p.last() }

// Progress is (cursor+1)/len, or 0 when empty.
func (p *Player) Progress() float64 {
	if p.empty() {
		return 0
	}
	return float64(p.cursor+1) / float64(p.seq.Len())
}

func (p *Player) State() State {
	switch {
	case p.empty():
		return Empty
	case p.playing:
		return Playing
	}
	return Paused
}

// Frame is a read-only view of the Player for renderers.
type Frame struct {
	Algorithm string
	Step      step.Step
	Cursor    int
	Len       int
	State     State
	Speed     time.Duration
	Progress  float64
	AtStart   bool
	AtEnd     bool
}

// Frame captures the current view.
func (p *Player) Frame() Frame {
	cur, _ := p.Current()
	return Frame{
		Algorithm: p.seq.Algorithm(),
		Step:      cur,
		Cursor:    p.cursor,
		Len:       p.Len(),
		State:     p.State(),
		Speed:     p.speed,
		Progress:  p.Progress(),
		AtStart:   p.IsAtStart(),
		AtEnd:     p.IsAtEnd(),
	}
}
