// Package book compiles comma separated opening lines into a position to
// move mapping that overrides the move filter while it applies.
package book

import (
	"fmt"
	"strings"

	"github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/rs/zerolog"

	"github.com/freeeve/matetb/internal/chessx"
)

// Book maps a FEN without clock fields to the mating side's forced move in
// UCI notation.
type Book map[string]string

// Compile expands and replays the opening lines from the root position.
// Each line is a space separated sequence of UCI moves; at most one "*"
// placeholder per line stands for any defending reply. Conflicting book
// entries and illegal moves are reported as errors.
func Compile(rootFEN string, matingSide goosemg.Color, openingMoves string, verbose int, logger zerolog.Logger) (Book, error) {
	var lines [][]string
	for _, line := range strings.Split(openingMoves, ",") {
		stars := strings.Count(line, "*")
		if stars > 1 {
			return nil, fmt.Errorf("more than one '*' in line %s", line)
		}
		if stars == 0 {
			lines = append(lines, strings.Fields(line))
			continue
		}
		starPos := strings.Index(line, "*")
		pre := strings.Fields(line[:starPos])
		post := strings.Fields(line[starPos+1:])
		board, err := replay(rootFEN, pre)
		if err != nil {
			return nil, err
		}
		for _, reply := range board.GenerateLegalMoves() {
			uci := reply.String()
			if hasLine(lines, pre, uci) {
				continue
			}
			expanded := make([]string, 0, len(pre)+1+len(post))
			expanded = append(expanded, pre...)
			expanded = append(expanded, uci)
			expanded = append(expanded, post...)
			lines = append(lines, expanded)
		}
	}

	book := make(Book)
	for _, moves := range lines {
		if verbose >= 3 {
			line := strings.Join(moves, " ")
			logger.Info().Str("line", line).Msg("processing book line")
			if verbose >= 4 {
				logger.Info().Str("link", chessx.CDBLink(rootFEN, line)).Msg("book line")
			}
		}
		board, err := chessx.NewBoard(rootFEN)
		if err != nil {
			return nil, err
		}
		for _, moveStr := range moves {
			if board.SideToMove() == matingSide {
				fen := chessx.FENKey(board)
				if existing, ok := book[fen]; ok && existing != moveStr {
					return nil, fmt.Errorf("cannot specify both %s and %s for position %s",
						moveStr, existing, fen)
				}
				book[fen] = moveStr
			}
			m, ok := chessx.FindUCIMove(board, moveStr)
			if !ok {
				return nil, fmt.Errorf("illegal move %s in position %s",
					moveStr, chessx.FENKey(board))
			}
			if ok, _ := board.MakeMove(m); !ok {
				return nil, fmt.Errorf("illegal move %s in position %s",
					moveStr, chessx.FENKey(board))
			}
		}
	}
	return book, nil
}

func replay(rootFEN string, moves []string) (*goosemg.Board, error) {
	board, err := chessx.NewBoard(rootFEN)
	if err != nil {
		return nil, err
	}
	for _, moveStr := range moves {
		m, ok := chessx.FindUCIMove(board, moveStr)
		if !ok {
			return nil, fmt.Errorf("illegal move %s in position %s",
				moveStr, chessx.FENKey(board))
		}
		if ok, _ := board.MakeMove(m); !ok {
			return nil, fmt.Errorf("illegal move %s in position %s",
				moveStr, chessx.FENKey(board))
		}
	}
	return board, nil
}

func hasLine(lines [][]string, pre []string, move string) bool {
	for _, existing := range lines {
		if len(existing) < len(pre)+1 {
			continue
		}
		match := true
		for i := range pre {
			if existing[i] != pre[i] {
				match = false
				break
			}
		}
		if match && existing[len(pre)] == move {
			return true
		}
	}
	return false
}
