package chessx

import "testing"

func TestKeyFENRoundTrip(t *testing.T) {
	fens := []string{
		startFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3",
		"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq -",
		"r3k2r/8/8/8/8/8/8/R3K2R b Kq -",
		"4k3/8/8/8/8/8/8/4K2R w K -",
		"k7/8/1K6/8/8/8/8/7R w - -",
		"8/8/8/1p6/6k1/1p2Q3/p1p1p3/rbrbK3 w - -",
		"4k3/8/8/8/8/8/8/4K3 b - -",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			k, err := EncodeFEN(fen)
			if err != nil {
				t.Fatalf("EncodeFEN: %v", err)
			}
			if got := k.FEN(); got != fen {
				t.Errorf("round trip %q -> %q", fen, got)
			}
		})
	}
}

func TestKeyIgnoresClocks(t *testing.T) {
	a, err := EncodeFEN(startFEN + " 0 1")
	if err != nil {
		t.Fatalf("EncodeFEN: %v", err)
	}
	b, err := EncodeFEN(startFEN + " 37 99")
	if err != nil {
		t.Fatalf("EncodeFEN: %v", err)
	}
	if a != b {
		t.Error("keys differ for positions equal up to clocks")
	}
}

func TestKeyDistinguishesState(t *testing.T) {
	pairs := []struct {
		name string
		a, b string
	}{
		{
			"side to move",
			"4k3/8/8/8/8/8/8/4K3 w - -",
			"4k3/8/8/8/8/8/8/4K3 b - -",
		},
		{
			"castling rights",
			"r3k2r/8/8/8/8/8/8/R3K2R w KQkq -",
			"r3k2r/8/8/8/8/8/8/R3K2R w - -",
		},
		{
			"piece placement",
			startFEN,
			"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3",
		},
	}
	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			ka, err := EncodeFEN(tt.a)
			if err != nil {
				t.Fatalf("EncodeFEN(%q): %v", tt.a, err)
			}
			kb, err := EncodeFEN(tt.b)
			if err != nil {
				t.Fatalf("EncodeFEN(%q): %v", tt.b, err)
			}
			if ka == kb {
				t.Errorf("keys equal for %q and %q", tt.a, tt.b)
			}
		})
	}
}

func TestKeyBoardRoundTrip(t *testing.T) {
	fen := "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6"
	k, err := EncodeFEN(fen)
	if err != nil {
		t.Fatalf("EncodeFEN: %v", err)
	}
	b, err := k.Board()
	if err != nil {
		t.Fatalf("Board: %v", err)
	}
	if Encode(b) != k {
		t.Error("re-encoding the decoded board gives a different key")
	}
	if got := FENKey(b); got != fen {
		t.Errorf("decoded board FEN = %q, want %q", got, fen)
	}
}
