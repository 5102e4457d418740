package metrics

import "github.com/san-kum/algoviz/internal/step"

// Metric folds a step sequence into a single value.
type Metric interface {
	Name() string
	Observe(s step.Step)
	Value() float64
	Reset()
}

// Counter reports the final value of one operation counter.
type Counter struct {
	name string
	pick func(step.Counters) int
	last int
}

func NewComparisons() *Counter {
	return &Counter{name: "comparisons", pick: func(c step.Counters) int { return c.Comparisons }}
}

func NewSwaps() *Counter {
	return &Counter{name: "swaps", pick: func(c step.Counters) int { return c.Swaps }}
}

func NewWrites() *Counter {
	return &Counter{name: "writes", pick: func(c step.Counters) int { return c.Writes }}
}

func NewCalls() *Counter {
	return &Counter{name: "calls", pick: func(c step.Counters) int { return c.CallCount }}
}

func (c *Counter) Name() string { return c.name }

func (c *Counter) Observe(s step.Step) {
	c.last = c.pick(s.Head().Counters)
}

func (c *Counter) Value() float64 { return float64(c.last) }

func (c *Counter) Reset() { c.last = 0 }

// KindShare is the fraction of steps with the given kind.
type KindShare struct {
	kind    step.Kind
	hits    int
	samples int
}

func NewKindShare(kind step.Kind) *KindShare {
	return &KindShare{kind: kind}
}

func (k *KindShare) Name() string { return string(k.kind) + "_share" }

func (k *KindShare) Observe(s step.Step) {
	k.samples++
	if s.Head().Kind == k.kind {
		k.hits++
	}
}

func (k *KindShare) Value() float64 {
	if k.samples == 0 {
		return 0
	}
	return float64(k.hits) / float64(k.samples)
}

func (k *KindShare) Reset() {
	k.hits = 0
	k.samples = 0
}

// WorkPerStep is the mean number of counted operations per step.
type WorkPerStep struct {
	last    step.Counters
	samples int
}

func NewWorkPerStep() *WorkPerStep { return &WorkPerStep{} }

func (w *WorkPerStep) Name() string { return "work_per_step" }

func (w *WorkPerStep) Observe(s step.Step) {
	w.last = s.Head().Counters
	w.samples++
}

func (w *WorkPerStep) Value() float64 {
	if w.samples == 0 {
		return 0
	}
	total := w.last.Comparisons + w.last.Swaps + w.last.Writes + w.last.CallCount
	return float64(total) / float64(w.samples)
}

func (w *WorkPerStep) Reset() {
	w.last = step.Counters{}
	w.samples = 0
}
