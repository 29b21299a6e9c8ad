// Package tb builds a restricted retrograde tablebase: every position the
// move filter admits is enumerated from the root, linked to its children
// and scored by iterating mate distances to a fixed point.
package tb

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/freeeve/matetb/internal/book"
	"github.com/freeeve/matetb/internal/chessx"
	"github.com/freeeve/matetb/internal/restrict"
)

// Config carries everything a build needs. MaxDepth < 0 means unlimited.
type Config struct {
	RootFEN     string
	MatingSide  goosemg.Color
	Filter      *restrict.Filter
	Book        book.Book
	MaxDepth    int
	Concurrency int
	Verbose     int
	Logger      zerolog.Logger
}

type node struct {
	score    Score
	children []uint32
}

// Table is a fully built tablebase. Scores are from the perspective of the
// side to move in each position.
type Table struct {
	cfg   Config
	index *indexMap
	nodes []node
}

type seed struct {
	id    uint32
	score Score
}

// Build enumerates, connects and solves the table for cfg.
func Build(cfg Config) (*Table, error) {
	t := &Table{cfg: cfg, index: newIndexMap()}
	log := cfg.Logger

	start := time.Now()
	if err := t.enumerate(); err != nil {
		return nil, err
	}
	log.Info().Int("positions", t.index.size()).
		Dur("elapsed", time.Since(start)).Msg("enumeration done")

	start = time.Now()
	if err := t.connect(); err != nil {
		return nil, err
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("children connected")

	start = time.Now()
	t.solve()
	log.Info().Dur("elapsed", time.Since(start)).Msg("scores converged")
	return t, nil
}

// allowedMoves lists the moves that enter the tree from b. A book entry for
// the position overrides the filter and pins the single move it names.
func (t *Table) allowedMoves(b *goosemg.Board) []goosemg.Move {
	legal := b.GenerateLegalMoves()
	if b.SideToMove() == t.cfg.MatingSide {
		if only, ok := t.cfg.Book[chessx.FENKey(b)]; ok {
			if t.cfg.Verbose >= 3 {
				t.cfg.Logger.Info().Str("fen", chessx.FENKey(b)).
					Str("move", only).Msg("book move")
			}
			for _, m := range legal {
				if m.String() == only {
					return []goosemg.Move{m}
				}
			}
			return nil
		}
	}
	moves := legal[:0]
	for _, m := range legal {
		if t.cfg.Filter.Allowed(b, m) {
			moves = append(moves, m)
		}
	}
	return moves
}

func (t *Table) enumerate() error {
	rootBoard, err := chessx.NewBoard(t.cfg.RootFEN)
	if err != nil {
		return err
	}
	level := []chessx.Key{chessx.Encode(rootBoard)}

	var mu sync.Mutex
	var seeds []seed
	depth := 0
	for len(level) > 0 && (t.cfg.MaxDepth < 0 || depth <= t.cfg.MaxDepth) {
		expand := t.cfg.MaxDepth < 0 || depth < t.cfg.MaxDepth
		var next []chessx.Key
		batch := len(level) / (t.cfg.Concurrency * 8)
		if batch < 128 {
			batch = 128
		}
		var g errgroup.Group
		g.SetLimit(t.cfg.Concurrency)
		for lo := 0; lo < len(level); lo += batch {
			hi := lo + batch
			if hi > len(level) {
				hi = len(level)
			}
			keys := level[lo:hi]
			g.Go(func() error {
				var localNext []chessx.Key
				var localSeeds []seed
				for _, k := range keys {
					id, fresh := t.index.insertIfAbsent(k)
					if !fresh {
						continue
					}
					if id != 0 && id%10000 == 0 {
						t.cfg.Logger.Info().Uint32("positions", id).
							Int("depth", depth).Msg("enumerating")
					}
					b, err := k.Board()
					if err != nil {
						return err
					}
					moves := t.allowedMoves(b)
					if len(moves) == 0 {
						if len(b.GenerateLegalMoves()) == 0 && b.InCheck(b.SideToMove()) {
							localSeeds = append(localSeeds, seed{id, -Mate})
						}
						continue
					}
					if !expand {
						continue
					}
					for _, m := range moves {
						ok, st := b.MakeMove(m)
						if !ok {
							continue
						}
						localNext = append(localNext, chessx.Encode(b))
						b.UnmakeMove(m, st)
					}
				}
				mu.Lock()
				next = append(next, localNext...)
				seeds = append(seeds, localSeeds...)
				mu.Unlock()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		level = next
		depth++
	}

	t.nodes = make([]node, t.index.size())
	for _, s := range seeds {
		t.nodes[s.id].score = s.score
	}
	return nil
}

func (t *Table) connect() error {
	var done atomic.Int64
	var g errgroup.Group
	g.SetLimit(t.cfg.Concurrency)
	for i := range t.index.shards {
		s := &t.index.shards[i]
		g.Go(func() error {
			for k, id := range s.m {
				if t.nodes[id].score != 0 {
					continue
				}
				// All legal moves, not just the filtered ones: a successor
				// only qualifies by being present in the index, which the
				// filtered enumeration determined.
				b, err := k.Board()
				if err != nil {
					return err
				}
				for _, m := range b.GenerateLegalMoves() {
					ok, st := b.MakeMove(m)
					if !ok {
						continue
					}
					if cid, found := t.index.find(chessx.Encode(b)); found {
						t.nodes[id].children = append(t.nodes[id].children, cid)
					}
					b.UnmakeMove(m, st)
				}
				if n := done.Add(1); n%10000 == 0 {
					t.cfg.Logger.Info().Int64("positions", n).Msg("connecting")
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// solve sweeps the node array until no score changes. Scores are read and
// written atomically so a sweep may use values the same sweep produced.
func (t *Table) solve() {
	batch := len(t.nodes) / (t.cfg.Concurrency * 32)
	if batch < 128 {
		batch = 128
	}
	iteration := 0
	var changed atomic.Int64
	changed.Store(1)
	for changed.Load() != 0 {
		changed.Store(0)
		var g errgroup.Group
		g.SetLimit(t.cfg.Concurrency)
		for hi := len(t.nodes); hi > 0; hi -= batch {
			lo := hi - batch
			if lo < 0 {
				lo = 0
			}
			g.Go(func() error {
				var local int64
				for j := hi - 1; j >= lo; j-- {
					n := &t.nodes[j]
					if len(n.children) == 0 {
						continue
					}
					best := None
					for _, c := range n.children {
						s := atomic.LoadInt32(&t.nodes[c].score)
						if s != 0 {
							s = propagate(s)
						}
						if best == None || s > best {
							best = s
						}
					}
					if best != None && atomic.LoadInt32(&n.score) != best {
						atomic.StoreInt32(&n.score, best)
						local++
					}
				}
				changed.Add(local)
				return nil
			})
		}
		g.Wait()
		iteration++
		t.cfg.Logger.Info().Int("iteration", iteration).
			Int64("changed", changed.Load()).Msg("solving")
	}
}

// Probe returns the score of the position or None when it is not in the
// table. The FEN's clock fields are ignored.
func (t *Table) Probe(fen string) (Score, error) {
	k, err := chessx.EncodeFEN(fen)
	if err != nil {
		return None, err
	}
	return t.probeKey(k), nil
}

func (t *Table) probeBoard(b *goosemg.Board) Score {
	return t.probeKey(chessx.Encode(b))
}

func (t *Table) probeKey(k chessx.Key) Score {
	id, ok := t.index.find(k)
	if !ok {
		return None
	}
	return t.nodes[id].score
}

// principalVariation follows the best table move from b until the line ends
// in mate or a draw. The board is restored before returning.
func (t *Table) principalVariation(b *goosemg.Board) []string {
	if b.InCheckmate() {
		return nil
	}
	drawn50 := b.IsDrawBy50()
	if b.InStalemate() || chessx.InsufficientMaterial(b) ||
		(drawn50 && b.SideToMove() == t.cfg.MatingSide) {
		return nil
	}
	if drawn50 {
		return []string{"; draw by 50mr"}
	}
	best := None
	var bestMove goosemg.Move
	for _, m := range b.GenerateLegalMoves() {
		ok, st := b.MakeMove(m)
		if !ok {
			continue
		}
		s := t.probeBoard(b)
		b.UnmakeMove(m, st)
		if s != None && s != 0 {
			s = propagate(s)
		}
		if best == None || (s != None && s > best) {
			best = s
			bestMove = m
		}
	}
	if best == None {
		return nil
	}
	uci := bestMove.String()
	ok, st := b.MakeMove(bestMove)
	if !ok {
		return nil
	}
	pv := append([]string{uci}, t.principalVariation(b)...)
	b.UnmakeMove(bestMove, st)
	return pv
}

type rootLine struct {
	move  string
	score Score
	pv    []string
}

// Report writes the mate claim and, at higher verbosity, a MultiPV listing
// of every root move with its table score.
func (t *Table) Report(w io.Writer) error {
	b, err := chessx.NewBoard(t.cfg.RootFEN)
	if err != nil {
		return err
	}
	root := chessx.FENKey(b)

	var lines []rootLine
	for _, m := range b.GenerateLegalMoves() {
		ok, st := b.MakeMove(m)
		if !ok {
			continue
		}
		s := t.probeBoard(b)
		if s != None && s != 0 {
			s = propagate(s)
		}
		line := rootLine{move: m.String(), score: s}
		line.pv = []string{line.move}
		if s != None && s != 0 {
			line.pv = append(line.pv, t.principalVariation(b)...)
		}
		b.UnmakeMove(m, st)
		lines = append(lines, line)
	}
	sort.SliceStable(lines, func(i, j int) bool {
		si, sj := lines[i].score, lines[j].score
		if si == None {
			return false
		}
		if sj == None {
			return true
		}
		return si > sj
	})
	if len(lines) == 0 {
		fmt.Fprintln(w, "No mate found.")
		return nil
	}

	best := lines[0]
	if best.score != None && best.score != 0 {
		fmt.Fprintf(w, "\nMatetrack:\n%s bm #%d; PV: %s;\n",
			root, Score2Mate(best.score), strings.Join(best.pv, " "))
	} else {
		fmt.Fprintln(w, "No mate found.")
	}

	if t.cfg.Verbose == 0 {
		return nil
	}
	fmt.Fprintln(w, "\nMultiPV:")
	for i, line := range lines {
		if line.score == None {
			fmt.Fprintf(w, "multipv %d score None\n", i+1)
			continue
		}
		fmt.Fprintf(w, "multipv %d score cp %d", i+1, line.score)
		if mate := Score2Mate(line.score); mate != None {
			fmt.Fprintf(w, " mate %d", mate)
		}
		pvStr := strings.TrimSuffix(strings.Join(line.pv, " "), ";")
		fmt.Fprintf(w, " pv %s\n", pvStr)
		if t.cfg.Verbose >= 2 {
			fmt.Fprintf(w, "%s\n\n", chessx.CDBLink(root, pvStr))
		}
	}
	return nil
}

// WriteDump writes every table position as "FEN" or "FEN bm #N;" lines,
// compressed with zstd when the path ends in .zst.
func (t *Table) WriteDump(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	var w io.Writer = f
	var enc *zstd.Encoder
	if strings.HasSuffix(path, ".zst") {
		enc, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			f.Close()
			return err
		}
		w = enc
	}
	bw := bufio.NewWriter(w)
	for i := range t.index.shards {
		s := &t.index.shards[i]
		for k, id := range s.m {
			bw.WriteString(k.FEN())
			if sc := t.nodes[id].score; sc != 0 && sc != None {
				fmt.Fprintf(bw, " bm #%d;", Score2Mate(sc))
			}
			bw.WriteByte('\n')
		}
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	if enc != nil {
		if err := enc.Close(); err != nil {
			f.Close()
			return err
		}
	}
	if err := f.Close(); err != nil {
		return err
	}
	t.cfg.Logger.Info().Str("path", path).
		Int("positions", t.index.size()).Msg("wrote table")
	return nil
}

// Size returns the number of positions in the table.
func (t *Table) Size() int {
	return t.index.size()
}
