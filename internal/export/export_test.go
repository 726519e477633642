package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/san-kum/shmsim/internal/series"
	"github.com/san-kum/shmsim/internal/storage"
)

func TestWriteJSON(t *testing.T) {
	meta := &storage.RunMetadata{ID: "shm_1", Spring: 2.0, Mass: 1.0, Steps: 2}
	run := &storage.Run{
		Times:        series.Series{0, 0.5, 1.0},
		Position:     series.Series{1, 0.5, -0.2},
		Velocity:     series.Series{0, -1, -1.2},
		Acceleration: series.Series{0, -2, -0.4},
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, meta, run); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var decoded RunData
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if decoded.Meta.ID != "shm_1" {
		t.Errorf("expected id shm_1, got %s", decoded.Meta.ID)
	}
	if len(decoded.Position) != 3 {
		t.Errorf("expected 3 position samples, got %d", len(decoded.Position))
	}
	if decoded.Total != nil {
		t.Error("expected energy fields omitted when empty")
	}
}

func TestCurveToSVG(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{0, 1, 0, -1}

	svg := CurveToSVG(xs, ys, 640, 480, "#00ff00")

	if !strings.HasPrefix(svg, `<?xml`) {
		t.Error("expected XML header")
	}
	if !strings.Contains(svg, "<path") {
		t.Error("expected a path element")
	}
	if !strings.Contains(svg, "#00ff00") {
		t.Error("expected stroke color in output")
	}
}

func TestCurveToSVG_Degenerate(t *testing.T) {
	if got := CurveToSVG([]float64{1}, []float64{1}, 100, 100, "#fff"); got != "" {
		t.Error("expected empty output for a single point")
	}
	if got := CurveToSVG([]float64{1, 2}, []float64{1}, 100, 100, "#fff"); got != "" {
		t.Error("expected empty output for mismatched lengths")
	}
	// A flat line must not divide by a zero range.
	if got := CurveToSVG([]float64{0, 1, 2}, []float64{5, 5, 5}, 100, 100, "#fff"); got == "" {
		t.Error("expected output for a flat line")
	}
}
