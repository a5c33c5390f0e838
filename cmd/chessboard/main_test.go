package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bitchess/chess"
)

func TestRunWritesDiagram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mate.svg")
	err := run("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		[]string{"f2f3", "e7e5", "g2g4", "d8h4"}, true, true, path)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "fill:#e06c6c") {
		t.Fatalf("checked king is not highlighted")
	}
}

func TestRunRejectsIllegalMove(t *testing.T) {
	err := run("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		[]string{"e2e4", "e2e4"}, false, false, "")
	if !errors.Is(err, chess.ErrSourceEmpty) {
		t.Fatalf("err = %v, want ErrSourceEmpty", err)
	}
}
