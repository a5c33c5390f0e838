package render_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"bitchess/chess"
	"bitchess/render"
)

func TestSVGStart(t *testing.T) {
	var buf bytes.Buffer
	if err := render.SVG(&buf, chess.New()); err != nil {
		t.Fatalf("SVG: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("output is not an svg document:\n%s", out)
	}
	if n := strings.Count(out, "<rect"); n != 64 {
		t.Fatalf("got %d squares, want 64", n)
	}
	if n := strings.Count(out, "♟"); n != 8 {
		t.Fatalf("got %d black pawns, want 8", n)
	}
	if n := strings.Count(out, "♔"); n != 1 {
		t.Fatalf("got %d white kings, want 1", n)
	}
}

func TestSVGMarks(t *testing.T) {
	var buf bytes.Buffer
	err := render.SVG(&buf, chess.Empty(),
		render.SquareColors("#eeeeee", "#888888"),
		render.Mark("#ff0000", chess.E4, chess.D5),
		render.NoCoordinates())
	if err != nil {
		t.Fatalf("SVG: %v", err)
	}
	out := buf.String()
	if n := strings.Count(out, "fill:#ff0000"); n != 2 {
		t.Fatalf("got %d marked squares, want 2", n)
	}
	if n := strings.Count(out, "fill:#eeeeee") + strings.Count(out, "fill:#888888"); n != 62 {
		t.Fatalf("got %d plain squares, want 62", n)
	}
	if strings.Contains(out, "<text") {
		t.Fatalf("empty board without coordinates should have no text")
	}
}

func TestSVGCoverageMask(t *testing.T) {
	var buf bytes.Buffer
	b := chess.New()
	if err := render.SVG(&buf, b, render.MarkMask("#00ff00", b.Coverage(chess.White)), render.FromBlack()); err != nil {
		t.Fatalf("SVG: %v", err)
	}
	if n := strings.Count(buf.String(), "fill:#00ff00"); n != 8 {
		t.Fatalf("got %d covered squares, want 8", n)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSVGWriteError(t *testing.T) {
	if err := render.SVG(failingWriter{}, chess.New()); err == nil {
		t.Fatalf("expected the write error to surface")
	}
}
