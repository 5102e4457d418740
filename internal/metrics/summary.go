package metrics

import (
	"maps"
	"slices"

	"github.com/san-kum/algoviz/internal/step"
)

// Summary describes a whole trace.
type Summary struct {
	Algorithm string             `json:"algorithm"`
	Family    step.Family        `json:"family"`
	Steps     int                `json:"steps"`
	Final     step.Counters      `json:"final"`
	Terminal  step.Kind          `json:"terminal"`
	Message   string             `json:"message"`
	Kinds     map[step.Kind]int  `json:"kinds"`
	Values    map[string]float64 `json:"values"`
}

// DefaultMetrics returns a fresh set of the standard trace metrics.
func DefaultMetrics() []Metric {
	return []Metric{
		NewComparisons(),
		NewSwaps(),
		NewWrites(),
		NewCalls(),
		NewWorkPerStep(),
	}
}

// Summarize runs ms over seq, or DefaultMetrics when ms is empty.
func Summarize(seq *step.Sequence, ms ...Metric) Summary {
	if len(ms) == 0 {
		ms = DefaultMetrics()
	}
	for _, m := range ms {
		m.Reset()
	}

	sum := Summary{
		Algorithm: seq.Algorithm(),
		Family:    seq.Family(),
		Steps:     seq.Len(),
		Kinds:     make(map[step.Kind]int),
		Values:    make(map[string]float64, len(ms)),
	}
	for _, s := range seq.Steps() {
		sum.Kinds[s.Head().Kind]++
		for _, m := range ms {
			m.Observe(s)
		}
	}
	if last, ok := seq.Last(); ok {
		h := last.Head()
		sum.Final = h.Counters
		sum.Terminal = h.Kind
		sum.Message = h.Message
	}
	for _, m := range ms {
		sum.Values[m.Name()] = m.Value()
	}
	return sum
}

// KindNames lists the kinds present in the summary, sorted.
func (s Summary) KindNames() []step.Kind {
	return slices.Sorted(maps.Keys(s.Kinds))
}

// Series extracts one counter per step, for plotting.
func Series(seq *step.Sequence, pick func(step.Counters) int) []float64 {
	out := make([]float64, 0, seq.Len())
	for _, s := range seq.Steps() {
		out = append(out, float64(pick(s.Head().Counters)))
	}
	return out
}

// CounterPickers maps counter names to accessors.
var CounterPickers = map[string]func(step.Counters) int{
	"comparisons": func(c step.Counters) int { return c.Comparisons },
	"swaps":       func(c step.Counters) int { return c.Swaps },
	"writes":      func(c step.Counters) int { return c.Writes },
	"calls":       func(c step.Counters) int { return c.CallCount },
}
