package chessx

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/Oliverans/GooseEngineMG/goosemg"
)

// Key is a 24-byte canonical encoding of a position, excluding the halfmove
// clock and fullmove number. Bytes 0-7 hold the occupancy bitboard
// (little-endian); bytes 8-23 hold one nibble per occupied square in
// ascending square order.
type Key [24]byte

// Nibble codes. 0-5 are white pawn..king, 6-11 black pawn..king.
const (
	nibEPPawn      = 12 // pawn that just double-stepped (en passant capturable)
	nibCastleRook  = 13 // rook retaining castling rights on its corner square
	nibWhiteKingWT = 14 // white king, white to move
	nibBlackKingBT = 15 // black king, black to move
)

// Encode packs the board into a Key. Two positions encode equal if and only
// if they agree on piece placement, side to move, castling rights, and the
// en passant square.
func Encode(b *goosemg.Board) Key {
	var k Key
	occ := b.AllOccupancy()
	for i := 0; i < 8; i++ {
		k[i] = byte(occ >> (8 * i))
	}

	castle := castlingField(b)
	epPawn := goosemg.NoSquare
	if ep := b.EnPassantSquare(); ep != goosemg.NoSquare {
		if ep/8 == 2 {
			epPawn = ep + 8
		} else if ep/8 == 5 {
			epPawn = ep - 8
		}
	}
	stm := b.SideToMove()

	idx := 0
	rem := occ
	for rem != 0 {
		sq := goosemg.Square(bits.TrailingZeros64(rem))
		rem &= rem - 1
		p := b.PieceAt(sq)
		nib := pieceNibble(p)
		switch {
		case sq == epPawn && p.Type() == goosemg.PieceTypePawn:
			nib = nibEPPawn
		case nib == 3 && castleRookFlag(sq, castle): // white rook
			nib = nibCastleRook
		case nib == 9 && castleRookFlag(sq, castle): // black rook
			nib = nibCastleRook
		case nib == 5 && stm == goosemg.White:
			nib = nibWhiteKingWT
		case nib == 11 && stm == goosemg.Black:
			nib = nibBlackKingBT
		}
		k[8+idx/2] |= byte(nib) << (4 * uint(idx%2))
		idx++
	}
	return k
}

// EncodeFEN encodes a FEN (clocks optional) into a Key.
func EncodeFEN(fen string) (Key, error) {
	b, err := goosemg.ParseFEN(fen)
	if err != nil {
		return Key{}, fmt.Errorf("encode %q: %w", fen, err)
	}
	return Encode(b), nil
}

func pieceNibble(p goosemg.Piece) int {
	n := int(p.Type()) - 1
	if p.Color() == goosemg.Black {
		n += 6
	}
	return n
}

func castlingField(b *goosemg.Board) string {
	fields := strings.SplitN(b.ToFEN(), " ", 4)
	return fields[2]
}

func castleRookFlag(sq goosemg.Square, castle string) bool {
	switch sq {
	case 7:
		return strings.Contains(castle, "K")
	case 0:
		return strings.Contains(castle, "Q")
	case 63:
		return strings.Contains(castle, "k")
	case 56:
		return strings.Contains(castle, "q")
	}
	return false
}

// Board reconstructs the position from the key. Clocks are zeroed.
func (k Key) Board() (*goosemg.Board, error) {
	b, err := goosemg.ParseFEN(k.FEN())
	if err != nil {
		return nil, fmt.Errorf("decode key: %w", err)
	}
	return b, nil
}

// FEN renders the key as a four-field FEN string.
func (k Key) FEN() string {
	var occ uint64
	for i := 0; i < 8; i++ {
		occ |= uint64(k[i]) << (8 * i)
	}

	var pieces [64]byte
	castle := ""
	ep := goosemg.NoSquare
	var stm byte

	idx := 0
	rem := occ
	for rem != 0 {
		sq := bits.TrailingZeros64(rem)
		rem &= rem - 1
		nib := int(k[8+idx/2]>>(4*uint(idx%2))) & 0xF
		idx++
		switch nib {
		case nibEPPawn:
			if sq/8 == 3 {
				pieces[sq] = 'P'
				ep = goosemg.Square(sq - 8)
			} else {
				pieces[sq] = 'p'
				ep = goosemg.Square(sq + 8)
			}
		case nibCastleRook:
			switch sq {
			case 7:
				pieces[sq], castle = 'R', castle+"K"
			case 0:
				pieces[sq], castle = 'R', castle+"Q"
			case 63:
				pieces[sq], castle = 'r', castle+"k"
			case 56:
				pieces[sq], castle = 'r', castle+"q"
			}
		case nibWhiteKingWT:
			pieces[sq] = 'K'
			stm = 'w'
		case nibBlackKingBT:
			pieces[sq] = 'k'
			stm = 'b'
		default:
			letters := "PNBRQKpnbrqk"
			pieces[sq] = letters[nib]
		}
	}
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			c := pieces[rank*8+file]
			if c == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(c)
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteByte(stm)
	sb.WriteByte(' ')
	if castle == "" {
		castle = "-"
	}
	// Reorder to KQkq.
	ordered := ""
	for _, c := range "KQkq" {
		if strings.ContainsRune(castle, c) {
			ordered += string(c)
		}
	}
	if ordered == "" {
		ordered = "-"
	}
	sb.WriteString(ordered)
	sb.WriteByte(' ')
	if ep == goosemg.NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteByte('a' + byte(ep%8))
		sb.WriteByte('1' + byte(ep/8))
	}
	return sb.String()
}
