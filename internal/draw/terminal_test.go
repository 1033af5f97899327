package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestChunkWriterOffsets(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 3, 2)
	cw.MoveCursor(1, 1)
	cw.WriteString("x")
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "\x1b[3;4Hx" {
		t.Errorf("output = %q, want %q", got, "\x1b[3;4Hx")
	}
	if cw.Len() != 0 {
		t.Error("Flush did not reset the buffer")
	}
}

type recordingWriter struct {
	writes []int
}

func (w *recordingWriter) Write(p []byte) (int, error) {
	w.writes = append(w.writes, len(p))
	return len(p), nil
}

func TestChunkWriterFlushesEverything(t *testing.T) {
	w := &recordingWriter{}
	cw := NewChunkWriter(w, 0, 0)
	cw.WriteString(strings.Repeat("a", 20000))
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}

	total := 0
	for _, n := range w.writes {
		total += n
	}
	if total != 20000 {
		t.Errorf("wrote %d bytes, want 20000", total)
	}
}

func TestFitTerminal(t *testing.T) {
	tests := []struct {
		w, h                   int
		rw, rh, offCol, offRow int
	}{
		{80, 24, 80, 24, 0, 0},
		{300, 24, MaxTermWidth, 24, 30, 0},
		{100, 100, 100, MaxTermHeight, 0, 10},
	}
	for _, tt := range tests {
		rw, rh, oc, or := FitTerminal(tt.w, tt.h)
		if rw != tt.rw || rh != tt.rh || oc != tt.offCol || or != tt.offRow {
			t.Errorf("FitTerminal(%d, %d) = %d, %d, %d, %d, want %d, %d, %d, %d",
				tt.w, tt.h, rw, rh, oc, or, tt.rw, tt.rh, tt.offCol, tt.offRow)
		}
	}
}

func TestRenderBorder(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 5, 5)
	RenderBorder(cw, 4, 2, 5, 5)
	cw.MoveCursor(1, 1)
	cw.Flush()

	s := out.String()
	if !strings.Contains(s, "┌────┐") || !strings.Contains(s, "└────┘") {
		t.Errorf("border corners missing in %q", s)
	}
	if strings.Count(s, "│") != 4 {
		t.Errorf("side bars = %d, want 4", strings.Count(s, "│"))
	}
	if !strings.HasSuffix(s, "\x1b[6;6H") {
		t.Error("offset not restored after drawing the border")
	}

	out.Reset()
	RenderBorder(cw, 4, 2, 0, 0)
	cw.Flush()
	if out.Len() != 0 {
		t.Error("border drawn without room for it")
	}
}
