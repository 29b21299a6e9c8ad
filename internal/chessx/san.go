package chessx

import (
	"strings"

	"github.com/Oliverans/GooseEngineMG/goosemg"
)

var pieceLetters = [...]string{"", "", "N", "B", "R", "Q", "K"}

// SAN renders a legal move in standard algebraic notation, including the
// "+" or "#" suffix.
func SAN(b *goosemg.Board, m goosemg.Move) string {
	var sb strings.Builder
	from, to := m.From(), m.To()
	pt := m.MovedPiece().Type()
	isCapture := m.CapturedPiece() != goosemg.NoPiece || m.Flags() == goosemg.FlagEnPassant

	switch {
	case pt == goosemg.PieceTypeKing && m.Flags() == goosemg.FlagCastle:
		if to%8 > from%8 {
			sb.WriteString("O-O")
		} else {
			sb.WriteString("O-O-O")
		}
	case pt == goosemg.PieceTypePawn:
		if isCapture {
			sb.WriteByte('a' + byte(from%8))
			sb.WriteByte('x')
		}
		sb.WriteString(squareName(to))
		if promo := m.PromotionPieceType(); promo != goosemg.PieceTypeNone {
			sb.WriteByte('=')
			sb.WriteString(pieceLetters[promo])
		}
	default:
		sb.WriteString(pieceLetters[pt])
		sb.WriteString(disambiguation(b, m))
		if isCapture {
			sb.WriteByte('x')
		}
		sb.WriteString(squareName(to))
	}

	if ok, st := b.MakeMove(m); ok {
		if b.InCheckmate() {
			sb.WriteByte('#')
		} else if b.InCheck(b.SideToMove()) {
			sb.WriteByte('+')
		}
		b.UnmakeMove(m, st)
	}
	return sb.String()
}

func disambiguation(b *goosemg.Board, m goosemg.Move) string {
	from, to := m.From(), m.To()
	pt := m.MovedPiece().Type()
	sameFile, sameRank, others := false, false, false
	for _, o := range b.GenerateLegalMoves() {
		if o.To() != to || o.From() == from || o.MovedPiece().Type() != pt {
			continue
		}
		others = true
		if o.From()%8 == from%8 {
			sameFile = true
		}
		if o.From()/8 == from/8 {
			sameRank = true
		}
	}
	switch {
	case !others:
		return ""
	case !sameFile:
		return string('a' + byte(from%8))
	case !sameRank:
		return string('1' + byte(from/8))
	default:
		return squareName(from)
	}
}

func squareName(sq goosemg.Square) string {
	return string([]byte{'a' + byte(sq%8), '1' + byte(sq/8)})
}
