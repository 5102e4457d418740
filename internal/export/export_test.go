package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/algoviz/internal/algo"
)

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"json", "CSV", " svg "} {
		if _, err := ParseFormat(in); err != nil {
			t.Errorf("ParseFormat(%q): %v", in, err)
		}
	}
	if _, err := ParseFormat("gif"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestWriteJSON(t *testing.T) {
	seq := algo.LinearSearch([]int{4, 2, 7}, 7)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, seq); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var doc struct {
		Algorithm string `json:"algorithm"`
		Steps     int    `json:"steps"`
		Trace     []struct {
			Index int `json:"index"`
			Step  struct {
				Kind  string `json:"kind"`
				Index int    `json:"index"`
			} `json:"step"`
		} `json:"trace"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Algorithm != "linear_search" || doc.Steps != seq.Len() || len(doc.Trace) != seq.Len() {
		t.Fatalf("doc = %+v", doc)
	}
	final := doc.Trace[len(doc.Trace)-1].Step
	if final.Kind != "found" || final.Index != 2 {
		t.Errorf("final step = %+v", final)
	}
}

func TestWriteCSV(t *testing.T) {
	seq := algo.BubbleSort([]int{2, 1})

	var buf bytes.Buffer
	if err := WriteCSV(&buf, seq); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != seq.Len()+1 {
		t.Fatalf("got %d rows, want %d", len(rows), seq.Len()+1)
	}
	if rows[len(rows)-1][1] != "complete" {
		t.Errorf("last kind = %s", rows[len(rows)-1][1])
	}
}

func TestWriteFile_SVG(t *testing.T) {
	seq := algo.BubbleSort([]int{3, 1, 2})
	path := filepath.Join(t.TempDir(), "step.svg")

	if err := WriteFile(path, SVG, seq, seq.Len()-1); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "<?xml") || !strings.Contains(string(data), "<circle") {
		t.Error("svg has no dots")
	}
}

func TestWrite_SVGOutOfRange(t *testing.T) {
	seq := algo.BubbleSort([]int{1})
	if err := Write(&bytes.Buffer{}, SVG, seq, 5); err == nil {
		t.Error("expected out of range error")
	}
}

func TestSeriesToSVG(t *testing.T) {
	if SeriesToSVG([]float64{1}, 100, 50, "#fff") != "" {
		t.Error("single point should render nothing")
	}
	out := SeriesToSVG([]float64{0, 1, 3}, 100, 50, "#fff")
	if !strings.Contains(out, " L") {
		t.Errorf("missing path segments: %s", out)
	}
}
