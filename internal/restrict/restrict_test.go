package restrict

import (
	"testing"

	"github.com/Oliverans/GooseEngineMG/goosemg"

	"github.com/freeeve/matetb/internal/chessx"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"

func checkAllowed(t *testing.T, f *Filter, fen, uci string) bool {
	t.Helper()
	b, err := chessx.NewBoard(fen)
	if err != nil {
		t.Fatalf("NewBoard(%q): %v", fen, err)
	}
	m, ok := chessx.FindUCIMove(b, uci)
	if !ok {
		t.Fatalf("FindUCIMove(%s) failed in %s", uci, fen)
	}
	return f.Allowed(b, m)
}

func TestFilterAllowed(t *testing.T) {
	const (
		rookFEN    = "r3k3/8/8/8/8/8/8/R3K3 w - -"
		captureFEN = "4k3/8/8/3p4/4P3/8/8/4K3 w - -"
		epFEN      = "4k3/8/8/3pP3/8/8/8/4K3 w - d6"
		promoFEN   = "4k3/P7/8/8/8/8/8/4K3 w - -"
	)
	tests := []struct {
		name string
		opts Options
		fen  string
		uci  string
		want bool
	}{
		{"no restrictions", Options{}, startFEN, "e2e4", true},
		{"excluded move", Options{ExcludeMoves: "e2e4"}, startFEN, "e2e4", false},
		{"other move passes", Options{ExcludeMoves: "e2e4"}, startFEN, "d2d4", true},
		{"excluded SAN", Options{ExcludeSANs: "Nf3"}, startFEN, "g1f3", false},
		{"excluded from", Options{ExcludeFrom: "e2"}, startFEN, "e2e3", false},
		{"excluded to", Options{ExcludeTo: "e4"}, startFEN, "e2e4", false},
		{"captures excluded", Options{ExcludeCaptures: true}, captureFEN, "e4d5", false},
		{"quiet move passes", Options{ExcludeCaptures: true}, captureFEN, "e4e5", true},
		{"en passant is a capture", Options{ExcludeCaptures: true}, epFEN, "e5d6", false},
		{"captures of pawns", Options{ExcludeCapturesOf: "p"}, captureFEN, "e4d5", false},
		{"captures of knights only", Options{ExcludeCapturesOf: "n"}, captureFEN, "e4d5", true},
		{"en passant target square empty", Options{ExcludeCapturesOf: "p"}, epFEN, "e5d6", true},
		{"to attacked", Options{ExcludeToAttacked: true}, rookFEN, "a1a2", false},
		{"to unattacked", Options{ExcludeToAttacked: true}, rookFEN, "a1b1", true},
		{"to capturable", Options{ExcludeToCapturable: true}, rookFEN, "a1a4", false},
		{"to safe square", Options{ExcludeToCapturable: true}, rookFEN, "a1b1", true},
		{"allowing capture", Options{ExcludeAllowingCapture: true}, rookFEN, "a1a4", false},
		{"removing the capturer", Options{ExcludeAllowingCapture: true}, rookFEN, "a1a8", true},
		{"allowing from", Options{ExcludeAllowingFrom: "a8"}, rookFEN, "a1b1", false},
		{"allowing from, rook gone", Options{ExcludeAllowingFrom: "a8"}, rookFEN, "a1a8", true},
		{"allowing to", Options{ExcludeAllowingTo: "a1"}, rookFEN, "a1b1", false},
		{"allowing move", Options{ExcludeAllowingMoves: "a8a2"}, rookFEN, "a1b1", false},
		{"allowing move gone", Options{ExcludeAllowingMoves: "a8a2"}, rookFEN, "a1a8", true},
		{"allowing SAN", Options{ExcludeAllowingSANs: "Rxa4"}, rookFEN, "a1a4", false},
		{"allowing SAN not matched", Options{ExcludeAllowingSANs: "Rxa4"}, rookFEN, "a1b1", true},
		{"promotion to queen", Options{ExcludePromotionTo: "q"}, promoFEN, "a7a8q", false},
		{"underpromotion passes", Options{ExcludePromotionTo: "q"}, promoFEN, "a7a8n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFilter(&tt.opts, goosemg.White)
			if err != nil {
				t.Fatalf("NewFilter: %v", err)
			}
			if got := checkAllowed(t, f, tt.fen, tt.uci); got != tt.want {
				t.Errorf("Allowed(%s) = %v, want %v", tt.uci, got, tt.want)
			}
		})
	}
}

func TestFilterDefendingSidePasses(t *testing.T) {
	f, err := NewFilter(&Options{ExcludeMoves: "e2e4", ExcludeCaptures: true}, goosemg.Black)
	if err != nil {
		t.Fatalf("NewFilter: %v", err)
	}
	if !checkAllowed(t, f, startFEN, "e2e4") {
		t.Error("defending side move was filtered")
	}
}

func TestNewFilterBadSquare(t *testing.T) {
	for _, field := range []string{"ExcludeFrom", "ExcludeTo", "ExcludeAllowingFrom", "ExcludeAllowingTo"} {
		o := Options{}
		switch field {
		case "ExcludeFrom":
			o.ExcludeFrom = "i9"
		case "ExcludeTo":
			o.ExcludeTo = "a0"
		case "ExcludeAllowingFrom":
			o.ExcludeAllowingFrom = "e"
		case "ExcludeAllowingTo":
			o.ExcludeAllowingTo = "e44"
		}
		if _, err := NewFilter(&o, goosemg.White); err == nil {
			t.Errorf("%s with a bad square name did not error", field)
		}
	}
}

func TestParseSquares(t *testing.T) {
	bb, err := parseSquares("a1 h8 e4")
	if err != nil {
		t.Fatalf("parseSquares: %v", err)
	}
	want := uint64(1)<<0 | uint64(1)<<63 | uint64(1)<<28
	if bb != want {
		t.Errorf("parseSquares = %x, want %x", bb, want)
	}
	if bb, err := parseSquares(""); err != nil || bb != 0 {
		t.Errorf("parseSquares(\"\") = %x, %v", bb, err)
	}
}
