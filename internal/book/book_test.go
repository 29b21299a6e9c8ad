package book

import (
	"strings"
	"testing"

	"github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/rs/zerolog"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"

func TestCompileEmpty(t *testing.T) {
	bk, err := Compile(startFEN, goosemg.White, "", 0, zerolog.Nop())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(bk) != 0 {
		t.Errorf("book has %d entries, want 0", len(bk))
	}
}

func TestCompileLine(t *testing.T) {
	bk, err := Compile(startFEN, goosemg.White, "e2e4 e7e5 g1f3", 0, zerolog.Nop())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(bk) != 2 {
		t.Fatalf("book has %d entries, want 2", len(bk))
	}
	if got := bk[startFEN]; got != "e2e4" {
		t.Errorf("root book move = %q, want e2e4", got)
	}
	if got := bk["rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6"]; got != "g1f3" {
		t.Errorf("book move after 1. e4 e5 = %q, want g1f3", got)
	}
}

func TestCompileMultipleLines(t *testing.T) {
	bk, err := Compile(startFEN, goosemg.White, "e2e4 e7e5 g1f3, e2e4 c7c5 b1c3", 0, zerolog.Nop())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(bk) != 3 {
		t.Errorf("book has %d entries, want 3", len(bk))
	}
}

func TestCompileStarExpansion(t *testing.T) {
	bk, err := Compile(startFEN, goosemg.White, "e2e4 * g1f3", 0, zerolog.Nop())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	// The root entry plus one entry per black reply to 1. e4.
	if len(bk) != 21 {
		t.Errorf("book has %d entries, want 21", len(bk))
	}
	if got := bk[startFEN]; got != "e2e4" {
		t.Errorf("root book move = %q, want e2e4", got)
	}
}

func TestCompileStarKeepsExplicitLines(t *testing.T) {
	bk, err := Compile(startFEN, goosemg.White, "e2e4 e7e5 d2d4, e2e4 * g1f3", 0, zerolog.Nop())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if got := bk["rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6"]; got != "d2d4" {
		t.Errorf("explicit line was overridden by star expansion: got %q", got)
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name  string
		lines string
		want  string
	}{
		{"conflict", "e2e4, d2d4", "cannot specify both"},
		{"two stars", "e2e4 * * g1f3", "more than one '*'"},
		{"illegal move", "e2e5", "illegal move"},
		{"garbage move", "zz99", "illegal move"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(startFEN, goosemg.White, tt.lines, 0, zerolog.Nop())
			if err == nil {
				t.Fatalf("Compile(%q) did not fail", tt.lines)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}
