package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/san-kum/algoviz/internal/step"
)

// Collectors records catalog activity on a private registry.
type Collectors struct {
	Generations *prometheus.CounterVec
	Rejected    *prometheus.CounterVec
	Steps       *prometheus.HistogramVec
	Duration    *prometheus.HistogramVec
	Operations  *prometheus.CounterVec

	registry *prometheus.Registry
}

func NewCollectors() *Collectors {
	c := &Collectors{
		Generations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "algoviz_generations_total",
				Help: "Traces generated per algorithm",
			},
			[]string{"algorithm"},
		),
		Rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "algoviz_rejected_params_total",
				Help: "Parameter documents rejected per algorithm",
			},
			[]string{"algorithm"},
		),
		Steps: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "algoviz_trace_steps",
				Help:    "Steps per generated trace",
				Buckets: prometheus.ExponentialBuckets(4, 4, 8),
			},
			[]string{"algorithm"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "algoviz_generation_duration_seconds",
				Help:    "Wall time spent generating a trace",
				Buckets: prometheus.ExponentialBuckets(1e-5, 4, 8),
			},
			[]string{"algorithm"},
		),
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "algoviz_operations_total",
				Help: "Counted operations in generated traces",
			},
			[]string{"algorithm", "counter"},
		),
		registry: prometheus.NewRegistry(),
	}
	c.registry.MustRegister(c.Generations, c.Rejected, c.Steps, c.Duration, c.Operations)
	return c
}

func (c *Collectors) ObserveGeneration(algorithm string, seq *step.Sequence, elapsed time.Duration) {
	c.Generations.WithLabelValues(algorithm).Inc()
	c.Steps.WithLabelValues(algorithm).Observe(float64(seq.Len()))
	c.Duration.WithLabelValues(algorithm).Observe(elapsed.Seconds())

	last, ok := seq.Last()
	if !ok {
		return
	}
	counters := last.Head().Counters
	for name, pick := range CounterPickers {
		c.Operations.WithLabelValues(algorithm, name).Add(float64(pick(counters)))
	}
}

func (c *Collectors) ObserveRejected(algorithm string) {
	c.Rejected.WithLabelValues(algorithm).Inc()
}

func (c *Collectors) Registry() *prometheus.Registry { return c.registry }

// WriteFile dumps the registry in the text exposition format.
func (c *Collectors) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
