package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/playback"
)

func TestLiveRenderer_Render(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	seq := algo.BubbleSort([]int{3, 1, 2})
	p := playback.New()
	p.Load(seq)
	p.GoToStep(seq.Len() - 1)

	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, seq, WithWidth(40))
	r.Start()
	r.Render(p.Frame())
	r.Stop()

	out := buf.String()
	if strings.Contains(out, clearScreen) || strings.Contains(out, hideCursor) {
		t.Error("escapes written without WithClear")
	}
	for _, want := range []string{"bubble_sort", "[paused]", "cmp "} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLiveRenderer_ClearMode(t *testing.T) {
	seq := algo.LinearSearch([]int{1, 2}, 2)
	p := playback.New()
	p.Load(seq)

	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, seq, WithClear(true))
	r.Start()
	r.Render(p.Frame())

	if !strings.HasPrefix(buf.String(), hideCursor+clearScreen) {
		t.Errorf("expected cursor hide then clear, got %q", buf.String()[:12])
	}
}

func TestLiveRenderer_EmptyFrame(t *testing.T) {
	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, nil)
	r.Render(playback.New().Frame())
	if !strings.Contains(buf.String(), "no steps") {
		t.Errorf("empty frame output:\n%s", buf.String())
	}
}
