// Package tui renders playback frames as plain terminal output, for
// autoplay without an interactive program.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/step"
	"github.com/san-kum/algoviz/internal/viz"
)

const (
	canvasWidth  = 60
	canvasHeight = 8
	clearScreen  = "\033[2J\033[H"
	hideCursor   = "\033[?25l"
	showCursor   = "\033[?25h"
)

// LiveRenderer writes one full frame per call to Render.
type LiveRenderer struct {
	out    io.Writer
	width  int
	clear  bool
	canvas *viz.Canvas
	series []float64
}

type Option func(*LiveRenderer)

// WithWidth sets the text width.
func WithWidth(w int) Option {
	return func(r *LiveRenderer) { r.width = max(w, 20) }
}

// WithClear redraws in place with ANSI escapes instead of appending frames.
func WithClear(clear bool) Option {
	return func(r *LiveRenderer) { r.clear = clear }
}

// NewLiveRenderer renders frames of seq to out.
func NewLiveRenderer(out io.Writer, seq *step.Sequence, opts ...Option) *LiveRenderer {
	r := &LiveRenderer{
		out:    out,
		width:  canvasWidth,
		canvas: viz.NewCanvas(canvasWidth, canvasHeight),
		series: metrics.Series(seq, metrics.CounterPickers["comparisons"]),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws f. It has the signature playback.Autoplay expects.
func (r *LiveRenderer) Render(f playback.Frame) {
	var b strings.Builder
	if r.clear {
		b.WriteString(clearScreen)
	}
	b.WriteString(fmt.Sprintf("  %s  step %d/%d  [%s]  %s\n",
		f.Algorithm, min(f.Cursor+1, f.Len), f.Len, f.State, f.Speed))
	b.WriteString("  " + viz.ProgressBar(f.Progress, r.width) + "\n\n")

	viz.PlotStep(r.canvas, f.Step)
	for _, row := range strings.Split(strings.TrimRight(r.canvas.String(), "\n"), "\n") {
		b.WriteString("  " + row + "\n")
	}
	b.WriteString("\n")

	for _, line := range strings.Split(viz.Render(f.Step, r.width), "\n") {
		b.WriteString("  " + line + "\n")
	}

	if upto := r.series[:min(f.Cursor+1, len(r.series))]; len(upto) > 1 {
		b.WriteString("  cmp " + viz.SparklineChart(upto, min(len(upto), r.width-4)) + "\n")
	}
	if !r.clear {
		b.WriteString("\n")
	}
	fmt.Fprint(r.out, b.String())
}

func (r *LiveRenderer) Start() {
	if r.clear {
		fmt.Fprint(r.out, hideCursor)
	}
}

func (r *LiveRenderer) Stop() {
	if r.clear {
		fmt.Fprint(r.out, showCursor)
	}
}
