// Package export writes step sequences to files: JSON documents, CSV rows
// and SVG renderings of single steps or counter series.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/step"
)

type Format string

const (
	JSON Format = "json"
	CSV  Format = "csv"
	SVG  Format = "svg"
)

var ErrUnknownFormat = errors.New("export: unknown format")

// ParseFormat accepts a format name in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case JSON, CSV, SVG:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Record is one step tagged with its position.
type Record struct {
	Index  int         `json:"index"`
	Family step.Family `json:"family"`
	Step   step.Step   `json:"step"`
}

// Document is the JSON form of a sequence.
type Document struct {
	Algorithm string          `json:"algorithm"`
	Family    step.Family     `json:"family"`
	Steps     int             `json:"steps"`
	Summary   metrics.Summary `json:"summary"`
	Trace     []Record        `json:"trace"`
}

func NewDocument(seq *step.Sequence) Document {
	doc := Document{
		Algorithm: seq.Algorithm(),
		Family:    seq.Family(),
		Steps:     seq.Len(),
		Summary:   metrics.Summarize(seq, metrics.DefaultMetrics()...),
		Trace:     make([]Record, 0, seq.Len()),
	}
	for i, s := range seq.Steps() {
		doc.Trace = append(doc.Trace, Record{Index: i, Family: s.Family(), Step: s})
	}
	return doc
}

// WriteJSON encodes seq as an indented Document.
func WriteJSON(w io.Writer, seq *step.Sequence) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewDocument(seq))
}

var csvHeader = []string{"index", "kind", "comparisons", "swaps", "writes", "calls", "focus", "message"}

// WriteCSV writes one row per step with its counters.
func WriteCSV(w io.Writer, seq *step.Sequence) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i, s := range seq.Steps() {
		h := s.Head()
		focus := make([]string, len(h.Focus))
		for j, f := range h.Focus {
			focus[j] = strconv.Itoa(f)
		}
		row := []string{
			strconv.Itoa(i),
			string(h.Kind),
			strconv.Itoa(h.Counters.Comparisons),
			strconv.Itoa(h.Counters.Swaps),
			strconv.Itoa(h.Counters.Writes),
			strconv.Itoa(h.Counters.CallCount),
			strings.Join(focus, " "),
			h.Message,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Write renders seq in format f. SVG draws the step at index at.
func Write(w io.Writer, f Format, seq *step.Sequence, at int) error {
	switch f {
	case JSON:
		return WriteJSON(w, seq)
	case CSV:
		return WriteCSV(w, seq)
	case SVG:
		s, ok := seq.At(at)
		if !ok {
			return fmt.Errorf("export: step %d out of range [0,%d)", at, seq.Len())
		}
		_, err := io.WriteString(w, StepToSVG(s, DefaultSVGOptions()))
		return err
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// WriteFile is Write to a new file at path.
func WriteFile(path string, f Format, seq *step.Sequence, at int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(file, f, seq, at); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
