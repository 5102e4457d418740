package step

import (
	"errors"
	"fmt"
)

// Sequence is the immutable, ordered trace of one generator run.
type Sequence struct {
	algorithm string
	steps     []Step
}

// NewSequence copies steps into a sequence.
func NewSequence(algorithm string, steps []Step) *Sequence {
	c := make([]Step, len(steps))
	copy(c, steps)
	return &Sequence{algorithm: algorithm, steps: c}
}

func (s *Sequence) Algorithm() string {
	if s == nil {
		return ""
	}
	return s.algorithm
}

func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.steps)
}

// At returns a copy of the step at i, or false when i is out of range.
func (s *Sequence) At(i int) (Step, bool) {
	if s == nil || i < 0 || i >= len(s.steps) {
		return nil, false
	}
	return Clone(s.steps[i]), true
}

// Last returns the terminal step.
func (s *Sequence) Last() (Step, bool) {
	return s.At(s.Len() - 1)
}

// Steps returns copies of every step.
func (s *Sequence) Steps() []Step {
	if s == nil {
		return nil
	}
	c := make([]Step, len(s.steps))
	for i, st := range s.steps {
		c[i] = Clone(st)
	}
	return c
}

func (s *Sequence) Family() Family {
	if s.Len() > 0 {
		return s.steps[0].Family()
	}
	return ""
}

// Recorder accumulates steps for a generator. Steps offered after the
// terminal step are dropped.
type Recorder struct {
	algorithm string
	steps     []Step
	done      bool
}

func NewRecorder(algorithm string) *Recorder {
	return &Recorder{algorithm: algorithm, steps: make([]Step, 0, 32)}
}

func (r *Recorder) Emit(s Step) {
	if r.done {
		return
	}
	r.steps = append(r.steps, s)
	if s.Head().Kind.Terminal() {
		r.done = true
	}
}

func (r *Recorder) Done() bool { return r.done }

func (r *Recorder) Sequence() *Sequence {
	return &Sequence{algorithm: r.algorithm, steps: r.steps}
}

var (
	ErrEmptySequence   = errors.New("step: empty sequence")
	ErrMissingTerminal = errors.New("step: sequence does not end in a terminal step")
	ErrEarlyTerminal   = errors.New("step: terminal step before end of sequence")
	ErrCounterDecrease = errors.New("step: counter decreased")
	ErrMixedFamilies   = errors.New("step: sequence mixes families")
)

// ValidationError locates a broken sequence invariant.
type ValidationError struct {
	Index   int
	Wrapped error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("step %d: %v", e.Index, e.Wrapped)
}

func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

// Validate checks the structural invariants every generated sequence holds.
func Validate(s *Sequence) error {
	n := s.Len()
	if n == 0 {
		return ErrEmptySequence
	}
	family := s.steps[0].Family()
	prev := Counters{}
	for i, st := range s.steps {
		h := st.Head()
		if st.Family() != family {
			return &ValidationError{Index: i, Wrapped: ErrMixedFamilies}
		}
		if h.Kind.Terminal() && i != n-1 {
			return &ValidationError{Index: i, Wrapped: ErrEarlyTerminal}
		}
		if !h.Counters.AtLeast(prev) {
			return &ValidationError{Index: i, Wrapped: ErrCounterDecrease}
		}
		prev = h.Counters
	}
	if !s.steps[n-1].Head().Kind.Terminal() {
		return &ValidationError{Index: n - 1, Wrapped: ErrMissingTerminal}
	}
	return nil
}
