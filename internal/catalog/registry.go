package catalog

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"github.com/san-kum/algoviz/internal/step"
)

// Entry describes one registered algorithm.
type Entry struct {
	Name     string
	Family   step.Family
	Title    string
	Notes    string
	Schema   string
	Defaults map[string]any

	run func(map[string]any) (*step.Sequence, error)

	compileOnce sync.Once
	compiled    *gojsonschema.Schema
	compileErr  error
}

func newEntry[T any](name string, family step.Family, title, notes, schema string, defaults map[string]any, gen func(T) *step.Sequence) *Entry {
	return &Entry{
		Name:     name,
		Family:   family,
		Title:    title,
		Notes:    notes,
		Schema:   schema,
		Defaults: defaults,
		run: func(params map[string]any) (*step.Sequence, error) {
			in, err := decode[T](params)
			if err != nil {
				return nil, err
			}
			return gen(in), nil
		},
	}
}

func (e *Entry) schema() (*gojsonschema.Schema, error) {
	e.compileOnce.Do(func() {
		e.compiled, e.compileErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(e.Schema))
	})
	return e.compiled, e.compileErr
}

// Params overlays overrides on the entry defaults.
func (e *Entry) Params(overrides map[string]any) map[string]any {
	out := maps.Clone(e.Defaults)
	if out == nil {
		out = make(map[string]any, len(overrides))
	}
	maps.Copy(out, overrides)
	return out
}

// RandomKey names the parameter a random array fills, or "" when the
// algorithm has no single array input.
func (e *Entry) RandomKey() string {
	if _, ok := e.Defaults["weights"]; ok {
		return ""
	}
	for _, k := range []string{"array", "values"} {
		if _, ok := e.Defaults[k]; ok {
			return k
		}
	}
	return ""
}

// GenerationRecorder observes catalog activity.
type GenerationRecorder interface {
	ObserveGeneration(algorithm string, seq *step.Sequence, elapsed time.Duration)
	ObserveRejected(algorithm string)
}

type Registry struct {
	entries  map[string]*Entry
	logger   *slog.Logger
	recorder GenerationRecorder
}

// Option configures a Registry.
type Option func(*Registry)

func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

func WithRecorder(rec GenerationRecorder) Option {
	return func(r *Registry) { r.recorder = rec }
}

// NewRegistry returns a registry holding every built-in algorithm.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[string]*Entry),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, e := range builtins() {
		r.entries[e.Name] = e
	}
	return r
}

func (r *Registry) Get(name string) (*Entry, error) {
	e, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
	}
	return e, nil
}

// List returns the registered names in order.
func (r *Registry) List() []string {
	return slices.Sorted(maps.Keys(r.entries))
}

// Entries returns every entry ordered by family, then name.
func (r *Registry) Entries() []*Entry {
	out := slices.Collect(maps.Values(r.entries))
	slices.SortFunc(out, func(a, b *Entry) int {
		if a.Family != b.Family {
			return familyRank(a.Family) - familyRank(b.Family)
		}
		if a.Name < b.Name {
			return -1
		}
		if a.Name > b.Name {
			return 1
		}
		return 0
	})
	return out
}

func familyRank(f step.Family) int {
	return slices.Index(step.Families(), f)
}

// Validate checks params, merged over the defaults, against the schema.
func (r *Registry) Validate(name string, params map[string]any) error {
	e, err := r.Get(name)
	if err != nil {
		return err
	}
	return r.validate(e, e.Params(params))
}

func (r *Registry) validate(e *Entry, merged map[string]any) error {
	schema, err := e.schema()
	if err != nil {
		return fmt.Errorf("compiling %s schema: %w", e.Name, err)
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(merged))
	if err != nil {
		return &ParamError{Algorithm: e.Name, Violations: []string{err.Error()}}
	}
	if result.Valid() {
		return nil
	}
	violations := make([]string, 0, len(result.Errors()))
	for _, v := range result.Errors() {
		violations = append(violations, v.String())
	}
	return &ParamError{Algorithm: e.Name, Violations: violations}
}

// Generate validates params, decodes them and runs the generator.
func (r *Registry) Generate(name string, params map[string]any) (*step.Sequence, error) {
	e, err := r.Get(name)
	if err != nil {
		return nil, err
	}

	merged := e.Params(params)
	if err := r.validate(e, merged); err != nil {
		r.reject(name, err)
		return nil, err
	}

	start := time.Now()
	seq, err := e.run(merged)
	if err != nil {
		perr := &ParamError{Algorithm: name, Violations: []string{err.Error()}}
		r.reject(name, perr)
		return nil, perr
	}
	elapsed := time.Since(start)

	if r.recorder != nil {
		r.recorder.ObserveGeneration(name, seq, elapsed)
	}
	r.logger.Debug("generated trace", "algorithm", name, "steps", seq.Len(), "elapsed", elapsed)
	return seq, nil
}

func (r *Registry) reject(name string, err error) {
	if r.recorder != nil {
		r.recorder.ObserveRejected(name)
	}
	r.logger.Debug("rejected params", "algorithm", name, "error", err)
}
