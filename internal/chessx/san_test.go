package chessx

import "testing"

func TestSAN(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		uci  string
		want string
	}{
		{"pawn push", startFEN, "e2e4", "e4"},
		{"knight", startFEN, "g1f3", "Nf3"},
		{"pawn capture", "4k3/8/8/3p4/4P3/8/8/4K3 w - -", "e4d5", "exd5"},
		{"en passant", "4k3/8/8/3pP3/8/8/8/4K3 w - d6", "e5d6", "exd6"},
		{"rook mate", "k7/8/1K6/8/8/8/8/7R w - -", "h1h8", "Rh8#"},
		{"rook check", "4k3/8/8/8/8/8/8/R3K3 w - -", "a1a8", "Ra8+"},
		{"short castle", "4k2r/8/8/8/8/8/8/4K3 b k -", "e8g8", "O-O"},
		{"long castle", "r3k3/8/8/8/8/8/8/4K3 b q -", "e8c8", "O-O-O"},
		{"file disambiguation", "4k3/8/8/8/8/8/8/N1N1K3 w - -", "a1b3", "Nab3"},
		{"rank disambiguation", "4k3/8/8/8/8/N7/8/N3K3 w - -", "a1c2", "N1c2"},
		{"promotion check", "4k3/P7/8/8/8/8/8/4K3 w - -", "a7a8q", "a8=Q+"},
		{"underpromotion", "4k3/P7/8/8/8/8/8/4K3 w - -", "a7a8n", "a8=N"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBoard(tt.fen)
			if err != nil {
				t.Fatalf("NewBoard: %v", err)
			}
			m, ok := FindUCIMove(b, tt.uci)
			if !ok {
				t.Fatalf("FindUCIMove(%s) failed", tt.uci)
			}
			if got := SAN(b, m); got != tt.want {
				t.Errorf("SAN(%s) = %q, want %q", tt.uci, got, tt.want)
			}
		})
	}
}
