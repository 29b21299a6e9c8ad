package main

import (
	"flag"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/Oliverans/GooseEngineMG/goosemg"

	"github.com/freeeve/matetb/internal/book"
	"github.com/freeeve/matetb/internal/chessx"
	"github.com/freeeve/matetb/internal/logx"
	"github.com/freeeve/matetb/internal/restrict"
	"github.com/freeeve/matetb/internal/tb"
)

func main() {
	defaultConcurrency := runtime.NumCPU()
	if env := os.Getenv("MATETB_CONCURRENCY"); env != "" {
		if n, err := strconv.Atoi(env); err == nil && n > 0 {
			defaultConcurrency = n
		}
	}

	var o restrict.Options
	flag.StringVar(&o.EPD, "epd", "8/8/8/1p6/6k1/1p2Q3/p1p1p3/rbrbK3 w - - bm #36;",
		"EPD of the position, with the mating side to move unless bm starts with #-")
	flag.IntVar(&o.Depth, "depth", -1, "Maximum depth in plies (-1 = unlimited)")
	flag.StringVar(&o.OpeningMoves, "openingMoves", "",
		"Comma separated opening lines in UCI notation, at most one '*' per line")
	flag.StringVar(&o.ExcludeMoves, "excludeMoves", "",
		"Space separated UCI moves the mating side may never play")
	flag.StringVar(&o.ExcludeSANs, "excludeSANs", "",
		"Space separated SAN moves the mating side may never play")
	flag.StringVar(&o.ExcludeFrom, "excludeFrom", "",
		"Space separated squares the mating side may never move from")
	flag.StringVar(&o.ExcludeTo, "excludeTo", "",
		"Space separated squares the mating side may never move to")
	flag.BoolVar(&o.ExcludeCaptures, "excludeCaptures", false,
		"Exclude all captures by the mating side")
	flag.StringVar(&o.ExcludeCapturesOf, "excludeCapturesOf", "",
		"Piece letters (pnbrq) the mating side may never capture")
	flag.BoolVar(&o.ExcludeToAttacked, "excludeToAttacked", false,
		"Exclude moves to squares attacked by the defending side")
	flag.BoolVar(&o.ExcludeToCapturable, "excludeToCapturable", false,
		"Exclude moves whose piece could be captured on its destination square")
	flag.StringVar(&o.ExcludePromotionTo, "excludePromotionTo", "",
		"Piece letters (nbrq) the mating side may never promote to")
	flag.BoolVar(&o.ExcludeAllowingCapture, "excludeAllowingCapture", false,
		"Exclude moves that allow the defending side any capture")
	flag.StringVar(&o.ExcludeAllowingFrom, "excludeAllowingFrom", "",
		"Exclude moves that allow a reply from one of these squares")
	flag.StringVar(&o.ExcludeAllowingTo, "excludeAllowingTo", "",
		"Exclude moves that allow a reply to one of these squares")
	flag.StringVar(&o.ExcludeAllowingMoves, "excludeAllowingMoves", "",
		"Exclude moves that allow one of these UCI replies")
	flag.StringVar(&o.ExcludeAllowingSANs, "excludeAllowingSANs", "",
		"Exclude moves that allow one of these SAN replies")
	flag.StringVar(&o.OutFile, "outFile", "",
		"Write the table as EPD lines to this file (.zst compresses)")
	flag.IntVar(&o.Verbose, "verbose", 0, "Verbosity level (0-4)")
	flag.IntVar(&o.Concurrency, "concurrency", defaultConcurrency, "Number of worker goroutines")
	flag.Parse()

	logger := logx.NewLogger()

	rootFEN, matingSide, err := chessx.ParseEPD(o.EPD)
	if err != nil {
		logger.Fatal().Err(err).Msg("parse EPD")
	}
	side := "WHITE"
	if matingSide == goosemg.Black {
		side = "BLACK"
	}
	logger.Info().Str("side", side).Msg("restricting moves for the mating side")

	if applied, warning := o.ApplyPreset(); applied {
		logger.Info().Msg("applied built-in restrictions for this position")
		if warning {
			os.Stderr.WriteString(restrict.EngineWarning)
		}
	}
	logger.Info().Str("options", o.String()).Msg("effective options")

	logger.Info().Msg("preparing the opening book ...")
	bk, err := book.Compile(rootFEN, matingSide, o.OpeningMoves, o.Verbose, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("compile opening book")
	}
	logger.Info().Int("positions", len(bk)).Msg("opening book ready")
	if o.Verbose >= 4 {
		for fen, move := range bk {
			logger.Info().Str("fen", fen).Str("move", move).Msg("book entry")
		}
	}

	filter, err := restrict.NewFilter(&o, matingSide)
	if err != nil {
		logger.Fatal().Err(err).Msg("build move filter")
	}

	start := time.Now()
	table, err := tb.Build(tb.Config{
		RootFEN:     rootFEN,
		MatingSide:  matingSide,
		Filter:      filter,
		Book:        bk,
		MaxDepth:    o.Depth,
		Concurrency: o.Concurrency,
		Verbose:     o.Verbose,
		Logger:      logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("build tablebase")
	}
	logger.Info().Int("positions", table.Size()).
		Dur("elapsed", time.Since(start)).Msg("tablebase built")

	if err := table.Report(os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("write report")
	}

	if o.OutFile != "" {
		if err := table.WriteDump(o.OutFile); err != nil {
			logger.Fatal().Err(err).Msg("write table file")
		}
	}
}
