package chessx

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/Oliverans/GooseEngineMG/goosemg"
)

// ParseEPD extracts the four-field FEN and the mating side from an EPD
// string. The side to move of the position is the mating side unless a
// "bm #-N" opcode indicates the opponent mates, in which case it is flipped.
func ParseEPD(epd string) (fen string, matingSide goosemg.Color, err error) {
	parts := strings.Fields(epd)
	if len(parts) < 4 {
		return "", goosemg.White, fmt.Errorf("EPD %q is too short", epd)
	}
	fen = strings.Join(parts[:4], " ")
	matingSide = goosemg.White
	if parts[1] == "b" {
		matingSide = goosemg.Black
	}
	for i := 4; i+1 < len(parts); i++ {
		if parts[i] == "bm" && strings.Contains(parts[i+1], "#-") {
			matingSide = 1 - matingSide
			break
		}
	}
	return fen, matingSide, nil
}

// NewBoard parses a FEN (clocks optional) into a board.
func NewBoard(fen string) (*goosemg.Board, error) {
	b, err := goosemg.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("parse FEN %q: %w", fen, err)
	}
	return b, nil
}

// FENKey returns the FEN of the board without the clock fields.
func FENKey(b *goosemg.Board) string {
	full := b.ToFEN()
	fields := strings.Fields(full)
	return strings.Join(fields[:4], " ")
}

// FindUCIMove resolves a UCI move string against the board's legal moves.
func FindUCIMove(b *goosemg.Board, uci string) (goosemg.Move, bool) {
	parsed, err := goosemg.ParseMove(uci)
	if err != nil {
		return 0, false
	}
	for _, m := range b.GenerateLegalMoves() {
		if m.From() == parsed.From() && m.To() == parsed.To() &&
			m.PromotionPieceType() == parsed.PromotionPieceType() {
			return m, true
		}
	}
	return 0, false
}

// InsufficientMaterial reports whether neither side can possibly deliver
// checkmate: no pawns, rooks or queens on the board, and at most one minor
// piece in total, or exactly one bishop per side with both on the same
// square color.
func InsufficientMaterial(b *goosemg.Board) bool {
	w := b.Bitboards(goosemg.White)
	bl := b.Bitboards(goosemg.Black)
	if w.Pawns|bl.Pawns|w.Rooks|bl.Rooks|w.Queens|bl.Queens != 0 {
		return false
	}
	minors := bits.OnesCount64(w.Knights | w.Bishops | bl.Knights | bl.Bishops)
	if minors <= 1 {
		return true
	}
	if minors == 2 && bits.OnesCount64(w.Bishops) == 1 && bits.OnesCount64(bl.Bishops) == 1 {
		return squareColor(bits.TrailingZeros64(w.Bishops)) ==
			squareColor(bits.TrailingZeros64(bl.Bishops))
	}
	return false
}

// CDBLink builds a chessdb.cn query URL for the root position and a PV in
// UCI notation, with spaces replaced so the link survives terminal pasting.
func CDBLink(rootFEN string, pv string) string {
	s := "https://chessdb.cn/queryc_en/?" + rootFEN + " moves " + pv
	return strings.ReplaceAll(s, " ", "_")
}

func squareColor(sq int) int {
	return (sq/8 + sq%8) % 2
}
