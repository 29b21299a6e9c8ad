package restrict

import (
	"fmt"
	"strings"

	"github.com/Oliverans/GooseEngineMG/goosemg"

	"github.com/freeeve/matetb/internal/chessx"
)

// Filter decides which of the mating side's moves enter the game tree.
// Defending moves always pass.
type Filter struct {
	matingSide goosemg.Color

	excludeMoves map[string]struct{}
	excludeSANs  map[string]struct{}

	excludeFrom uint64
	excludeTo   uint64

	excludeCaptures    bool
	excludeCapturesOf  string
	excludeToAttacked  bool
	excludePromotionTo string

	excludeToCapturable    bool
	excludeAllowingCapture bool
	excludeAllowingFrom    uint64
	excludeAllowingTo      uint64
	excludeAllowingMoves   map[string]struct{}
	excludeAllowingSANs    map[string]struct{}

	needReplies bool
}

// NewFilter builds a Filter from the option set for the given mating side.
func NewFilter(o *Options, matingSide goosemg.Color) (*Filter, error) {
	f := &Filter{
		matingSide:             matingSide,
		excludeMoves:           stringSet(o.ExcludeMoves),
		excludeSANs:            stringSet(o.ExcludeSANs),
		excludeCaptures:        o.ExcludeCaptures,
		excludeCapturesOf:      o.ExcludeCapturesOf,
		excludeToAttacked:      o.ExcludeToAttacked,
		excludePromotionTo:     o.ExcludePromotionTo,
		excludeToCapturable:    o.ExcludeToCapturable,
		excludeAllowingCapture: o.ExcludeAllowingCapture,
		excludeAllowingMoves:   stringSet(o.ExcludeAllowingMoves),
		excludeAllowingSANs:    stringSet(o.ExcludeAllowingSANs),
	}
	var err error
	if f.excludeFrom, err = parseSquares(o.ExcludeFrom); err != nil {
		return nil, fmt.Errorf("excludeFrom: %w", err)
	}
	if f.excludeTo, err = parseSquares(o.ExcludeTo); err != nil {
		return nil, fmt.Errorf("excludeTo: %w", err)
	}
	if f.excludeAllowingFrom, err = parseSquares(o.ExcludeAllowingFrom); err != nil {
		return nil, fmt.Errorf("excludeAllowingFrom: %w", err)
	}
	if f.excludeAllowingTo, err = parseSquares(o.ExcludeAllowingTo); err != nil {
		return nil, fmt.Errorf("excludeAllowingTo: %w", err)
	}
	f.needReplies = f.excludeToCapturable || f.excludeAllowingCapture ||
		f.excludeAllowingFrom != 0 || f.excludeAllowingTo != 0 ||
		len(f.excludeAllowingMoves) > 0 || len(f.excludeAllowingSANs) > 0
	return f, nil
}

// Allowed reports whether the move may be played in the restricted tree.
// The move must be legal for b's side to move. The board is restored before
// returning.
func (f *Filter) Allowed(b *goosemg.Board, m goosemg.Move) bool {
	if b.SideToMove() != f.matingSide {
		return true
	}
	uci := m.String()
	if _, ok := f.excludeMoves[uci]; ok {
		return false
	}
	if len(f.excludeSANs) > 0 {
		if _, ok := f.excludeSANs[chessx.SAN(b, m)]; ok {
			return false
		}
	}
	if f.excludeFrom&(1<<uint(m.From())) != 0 {
		return false
	}
	if f.excludeTo&(1<<uint(m.To())) != 0 {
		return false
	}
	if f.excludeCaptures {
		if goosemg.IsCapture(m, b) {
			return false
		}
	} else if f.excludeCapturesOf != "" {
		// En passant leaves the target square empty, so it never matches.
		if goosemg.IsCapture(m, b) {
			if p := b.PieceAt(m.To()); p != goosemg.NoPiece &&
				strings.ContainsRune(f.excludeCapturesOf, pieceLetter(p)) {
				return false
			}
		}
	}
	if f.excludeToAttacked && b.IsSquareAttacked(m.To(), 1-b.SideToMove()) {
		return false
	}
	if f.excludePromotionTo != "" && len(uci) == 5 &&
		strings.IndexByte(f.excludePromotionTo, uci[4]) >= 0 {
		return false
	}
	if f.needReplies {
		ok, st := b.MakeMove(m)
		if !ok {
			return false
		}
		allowed := true
		for _, r := range b.GenerateLegalMoves() {
			if f.badReply(b, m, r) {
				allowed = false
				break
			}
		}
		b.UnmakeMove(m, st)
		return allowed
	}
	return true
}

// badReply is evaluated on the board after the candidate move was made.
func (f *Filter) badReply(b *goosemg.Board, candidate, r goosemg.Move) bool {
	if f.excludeToCapturable && goosemg.IsCapture(r, b) && r.To() == candidate.To() {
		return true
	}
	if f.excludeAllowingCapture && goosemg.IsCapture(r, b) {
		return true
	}
	if f.excludeAllowingFrom&(1<<uint(r.From())) != 0 {
		return true
	}
	if f.excludeAllowingTo&(1<<uint(r.To())) != 0 {
		return true
	}
	if _, ok := f.excludeAllowingMoves[r.String()]; ok {
		return true
	}
	if len(f.excludeAllowingSANs) > 0 {
		if _, ok := f.excludeAllowingSANs[chessx.SAN(b, r)]; ok {
			return true
		}
	}
	return false
}

func stringSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		set[tok] = struct{}{}
	}
	return set
}

func parseSquares(s string) (uint64, error) {
	var bb uint64
	for _, tok := range strings.Fields(s) {
		if len(tok) != 2 || tok[0] < 'a' || tok[0] > 'h' || tok[1] < '1' || tok[1] > '8' {
			return 0, fmt.Errorf("bad square name %q", tok)
		}
		bb |= 1 << (uint(tok[1]-'1')*8 + uint(tok[0]-'a'))
	}
	return bb, nil
}

func pieceLetter(p goosemg.Piece) rune {
	return rune("?pnbrqk"[p.Type()])
}
