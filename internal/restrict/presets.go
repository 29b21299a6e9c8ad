package restrict

import (
	"strings"
)

// EngineWarning is printed for presets covering studies where the pruned
// tree alone is known to be insufficient.
const EngineWarning = "\n!! WARNING: An engine may be needed (not implemented yet).\n"

type preset struct {
	epds    []string
	warning bool
	apply   func(epd string, o *Options)
}

// ApplyPreset fills in the restriction options for a catalog of known study
// positions. It only acts when no restriction or opening option was given.
// The returned flags report whether a preset matched and whether it carries
// the engine warning.
func (o *Options) ApplyPreset() (applied, warning bool) {
	if !o.RestrictionsEmpty() {
		return false, false
	}
	parts := strings.Fields(o.EPD)
	if len(parts) < 4 {
		return false, false
	}
	epd := strings.Join(parts[:4], " ")
	for _, p := range presets {
		for _, known := range p.epds {
			if epd == known {
				p.apply(epd, o)
				return true, p.warning
			}
		}
	}
	return false, false
}

var presets = []preset{
	{
		epds: []string{"8/8/7p/5K1k/R7/8/8/8 w - -"}, // bm #6
		apply: func(_ string, o *Options) {
			o.ExcludeAllowingCapture = true
			o.ExcludeAllowingMoves = "h2h1q"
			if o.Depth < 0 {
				o.Depth = 11
			}
		},
	},
	{
		epds: []string{"8/4p2p/8/8/8/8/6p1/2B1K1kb w - -"}, // bm #7
		apply: func(_ string, o *Options) {
			o.ExcludeAllowingCapture = true
			o.ExcludeAllowingFrom = "g1"
			o.ExcludeAllowingMoves = "e6e5 e5e4"
		},
	},
	{
		epds: []string{"8/8/7P/8/pp6/kp6/1p6/1Kb5 w - -"}, // bm #7
		apply: func(_ string, o *Options) {
			o.ExcludeFrom = "b1"
			o.ExcludeCaptures = true
			o.ExcludePromotionTo = "qrb"
			o.ExcludeToCapturable = true
		},
	},
	{
		epds: []string{
			"8/6Q1/8/7k/8/6p1/6p1/6Kb w - -", // bm #7
			"8/8/8/8/Q7/5kp1/6p1/6Kb w - -",  // bm #7
		},
		apply: func(_ string, o *Options) {
			o.ExcludeFrom = "g1"
			o.ExcludeToCapturable = true
			if o.Depth < 0 {
				o.Depth = 13
			}
		},
	},
	{
		epds: []string{"8/3Q4/8/1r6/kp6/bp6/1p6/1K6 w - -"}, // bm #8
		apply: func(_ string, o *Options) {
			o.ExcludeFrom = "b1"
			o.ExcludeTo = "b3"
			o.ExcludeToCapturable = true
			if o.Depth < 0 {
				o.Depth = 15
			}
		},
	},
	{
		epds: []string{"k7/2Q5/8/2p5/1pp5/1pp5/prp5/nbK5 w - -"}, // bm #11
		apply: func(_ string, o *Options) {
			o.ExcludeFrom = "c1"
			o.ExcludeTo = "b2"
			o.ExcludeToCapturable = true
		},
	},
	{
		epds: []string{"8/2P5/8/8/8/1p2k1p1/1p1pppp1/1Kbrqbrn w - -"}, // bm #12
		apply: func(_ string, o *Options) {
			o.OpeningMoves = "c7c8q"
			o.ExcludeFrom = "b1"
			o.ExcludeToCapturable = true
		},
	},
	{
		epds: []string{"8/8/1p6/1p6/1p6/1p6/pppbK3/rbk3N1 w - -"}, // bm #13
		apply: func(_ string, o *Options) {
			o.ExcludeFrom = "e2"
			o.ExcludeToCapturable = true
		},
	},
	{
		epds: []string{
			"8/8/8/6r1/8/6B1/p1p5/k1Kb4 w - -",            // bm #7
			"k7/8/1Qp5/2p5/2p5/6p1/2p1ppp1/2Kbrqrn w - -", // bm #15
		},
		apply: func(_ string, o *Options) {
			o.ExcludeFrom = "c1"
			o.ExcludeToCapturable = true
		},
	},
	{
		epds: []string{"8/8/8/2p5/1pp5/brpp4/1pprp2P/qnkbK3 w - -"}, // bm #15
		apply: func(_ string, o *Options) {
			o.ExcludeFrom = "e1"
			o.ExcludePromotionTo = "qrb"
			o.ExcludeToCapturable = true
		},
	},
	{
		epds: []string{"4k3/6Q1/8/8/5p2/1p1p1p2/1ppp1p2/nrqrbK2 w - -"}, // bm #15
		apply: func(_ string, o *Options) {
			o.ExcludeFrom = "f1"
			o.ExcludeToCapturable = true
		},
	},
	{
		epds: []string{"8/8/8/2p5/1pp5/brpp4/qpprp2P/1nkbnK2 w - -"}, // bm #16
		apply: func(_ string, o *Options) {
			o.OpeningMoves = "f1e1"
			o.ExcludeFrom = "e1"
			o.ExcludePromotionTo = "qrb"
			o.ExcludeToCapturable = true
		},
	},
	{
		epds: []string{"8/8/8/2p5/1pp5/brpp4/qpprpK1P/1nkbn3 w - -"}, // bm #16
		apply: func(_ string, o *Options) {
			o.OpeningMoves = "f2e1"
			o.ExcludeFrom = "e1"
			o.ExcludePromotionTo = "qrb"
			o.ExcludeToCapturable = true
		},
	},
	{
		epds: []string{"8/p7/8/8/8/3p1b2/pp1K1N2/qk6 w - -"}, // bm #18
		apply: func(_ string, o *Options) {
			o.ExcludeFrom = "d2"
			o.ExcludeToCapturable = true
		},
	},
	{
		epds: []string{"k7/8/1Q6/8/8/6p1/1p1pppp1/1Kbrqbrn w - -"}, // bm #26
		apply: func(_ string, o *Options) {
			o.ExcludeFrom = "b1"
			o.ExcludeToCapturable = true
		},
	},
	{
		epds: []string{
			"8/8/2p5/2p5/p1p5/rbp5/p1p2Q2/n1K4k w - -", // bm #26
			"8/2p5/2p5/8/p1p5/rbp5/p1p2Q2/n1K4k w - -", // bm #28
		},
		apply: func(_ string, o *Options) {
			o.ExcludeFrom = "c1"
			o.ExcludeTo = "a3 c3"
			o.ExcludeToCapturable = true
		},
	},
	{
		epds: []string{
			"4k3/6Q1/8/5p2/5p2/1p3p2/1ppp1p2/nrqrbK2 w - -", // bm #17
			"4k3/6Q1/8/8/8/1p3p2/1ppp1p2/nrqrbK2 w - -",     // bm #18
			"8/7p/4k3/5p2/3Q1p2/5p2/5p1p/5Kbr w - -",        // bm #30
		},
		apply: func(_ string, o *Options) {
			o.ExcludeFrom = "f1"
			o.ExcludeTo = "h1"
			o.ExcludeToCapturable = true
		},
	},
	{
		epds: []string{
			"8/8/8/8/6k1/8/2Qp1pp1/3Kbrrb w - -",        // bm #9
			"8/3Q4/8/2kp4/8/1p1p4/pp1p4/rrbK4 w - -",    // bm #12
			"8/8/8/6k1/3Q4/8/3p1pp1/3Kbrrb w - -",       // bm #12
			"k7/8/8/2Q5/3p4/1p1p4/pp1p4/rrbK4 w - -",    // bm #14
			"7k/8/8/8/8/5Qp1/3p1pp1/3Kbrrn w - -",       // bm #16
			"6k1/8/5Q2/8/8/8/3p1pp1/3Kbrrb w - -",       // bm #17
			"4Q3/6k1/8/8/8/8/3p1pp1/3Kbrrb w - -",       // bm #18
			"5k2/8/4Q3/8/8/8/3p1pp1/3Kbrrb w - -",       // bm #18
			"6k1/8/8/8/8/3Q4/3p1pp1/3Kbrrb w - -",       // bm #18
			"8/8/8/1p6/1k6/3Q4/pp1p4/rrbK4 w - -",       // bm #18
			"4k3/8/3Q4/8/8/8/3p1pp1/3Kbrrb w - -",       // bm #19
			"4k3/2Q5/8/8/8/8/3p1pp1/3Kbrrb w - -",       // bm #20
			"8/8/8/8/1Q6/3k4/3p1pp1/3Kbrrb w - -",       // bm #20
			"8/8/6k1/Q7/8/8/3p1pp1/3Kbrrb w - -",        // bm #20
			"8/8/2k5/8/3p4/Qp1p4/pp1p4/rrbK4 w - -",     // bm #20
			"8/3k4/3p1Q2/8/8/1p1p4/pp1p4/rrbK4 w - -",   // bm #23
			"8/1p6/1Q6/8/2kp4/3p4/pp1p4/rrbK4 w - -",    // bm #26
			"8/6p1/4Q3/6k1/8/8/3p1pp1/3Kbrrb w - -",     // bm #29
			"2k5/3p4/1Q6/8/8/1p1p4/pp1p4/rrbK4 w - -",   // bm #30
			"4k3/3p4/5Q2/8/8/1p1p4/pp1p4/rrbK4 w - -",   // bm #30
			"3Q4/8/8/8/k7/8/3p1pp1/3Kbrrb w - -",        // bm #32
			"8/2Q5/8/8/1k1p4/4p1p1/3prpp1/3Kbbrn w - -", // bm #34
		},
		apply: func(_ string, o *Options) {
			o.ExcludeFrom = "d1"
			o.ExcludeAllowingCapture = true
		},
	},
	{
		epds: []string{
			"8/8/8/1p6/6k1/1Q6/p1p1p3/rbrbK3 b - -",   // bm #-35
			"8/8/8/1p6/6k1/1p2Q3/p1p1p3/rbrbK3 w - -", // bm #36
		},
		apply: func(_ string, o *Options) {
			o.ExcludeFrom = "e1"
			o.ExcludeTo = "a1 c1"
			o.ExcludeToAttacked = true
		},
	},
	{
		epds: []string{"7k/8/5p2/8/8/8/P1Kp1pp1/4brrb w - -"}, // bm #43
		apply: func(_ string, o *Options) {
			o.OpeningMoves = "c2d1"
			o.ExcludeFrom = "d1"
			o.ExcludeToAttacked = true
		},
	},
	{
		epds: []string{"8/1p6/8/3p3k/3p4/6Q1/pp1p4/rrbK4 w - -"}, // bm #46
		apply: func(_ string, o *Options) {
			o.ExcludeFrom = "d1"
			o.ExcludeCaptures = true
			o.ExcludeToAttacked = true
		},
	},
	{
		epds: []string{
			"6Q1/8/7k/8/8/6p1/4p1pb/4Kbrr w - -",    // bm #12
			"2Q5/k7/8/8/8/8/1pp1p3/brrbK3 w - -",    // bm #16
			"8/8/3p4/1Q6/8/2k5/ppp1p3/brrbK3 w - -", // bm #22
			"8/1p2k3/8/8/5Q2/8/ppp1p3/qrrbK3 w - -", // bm #50
			"8/1p2k3/8/8/5Q2/8/ppp1p3/bqrbK3 w - -", // bm #50
		},
		apply: func(_ string, o *Options) {
			o.ExcludeFrom = "e1"
			o.ExcludeAllowingCapture = true
		},
	},
	{
		epds: []string{"8/7p/7p/7p/1p3Q1p/1Kp5/nppr4/qrk5 w - -"}, // bm #54
		apply: func(_ string, o *Options) {
			o.ExcludeFrom = "b3"
			o.ExcludeAllowingCapture = true
			o.ExcludeAllowingFrom = "b1 h1"
			o.ExcludeAllowingMoves = "c3c2"
		},
	},
	{
		epds: []string{
			"8/1p6/4k3/8/3p1Q2/3p4/pp1p4/rrbK4 w - -",    // bm #56
			"8/6pp/5p2/k7/3p4/1Q2p3/3prpp1/3Kbqrb w - -", // bm #57
		},
		apply: func(_ string, o *Options) {
			o.ExcludeFrom = "d1"
			o.ExcludeToAttacked = true
		},
	},
	{
		epds: []string{"5Q2/p1p5/p1p5/6rp/7k/6p1/p1p3P1/rbK5 w - -"}, // bm #60 (finds #62)
		apply: func(_ string, o *Options) {
			o.ExcludeFrom = "c1 g2"
			o.ExcludeTo = "a1 g3"
			o.ExcludeAllowingCapture = true
			o.ExcludeAllowingFrom = "h5"
		},
	},
	{
		epds: []string{
			"4R3/1n1p4/3n4/8/8/p4p2/7p/5K1k w - -",     // bm #20
			"4R3/1n1p1p2/3n4/8/8/p4p2/7p/5K1k w - -",   // bm #32
			"4R3/pn1p1p1p/p2n4/8/8/p4p2/7p/5K1k w - -", // bm #69
		},
		apply: func(_ string, o *Options) {
			o.OpeningMoves = "e8e1 d6e4 e1e4 f3f2 f1f2 * e4e1, e8e1 d6e4 e1e4 * e4e1, " +
				"e8e1 * f1f2"
			o.ExcludeSANs = "Ra2 Ra3 Ra4 Ra5 Ra6 Ra7 Ra8 " +
				"Rb2 Rb3 Rb4 Rb5 Rb6 Rb7 Rb8 " +
				"Rc2 Rc3 Rc4 Rc5 Rc6 Rc7 Rc8 " +
				"Rd2 Rd3 Rd4 Rd5 Rd6 Rd7 Rd8 " +
				"Re2 Re3 Re4 Re5 Re6 Re7 Re8 " +
				"Rf2 Rf3 Rf4 Rf5 Rf6 Rf7 Rf8 " +
				"Rg2 Rg3 Rg4 Rg5 Rg6 Rg7 Rg8 " +
				"Rh2 Rh3 Rh4 Rh5 Rh6 Rh7 Rh8"
			o.ExcludeAllowingCapture = true
			o.ExcludeAllowingFrom = "a1 d1 f1 h1"
		},
	},
	{
		epds: []string{"8/1p4Pp/1p6/1p6/1p5p/5r1k/5p1p/5Kbr w - -"}, // bm #72
		apply: func(_ string, o *Options) {
			o.OpeningMoves = "g7g8q"
			o.ExcludeFrom = "f1"
			o.ExcludeTo = "h1"
			o.ExcludeAllowingCapture = true
			o.ExcludeAllowingFrom = "b3 h5 h4"
		},
	},
	{
		epds: []string{
			"8/6Pp/8/8/7p/5r2/4Kpkp/6br w - -",         // bm #19
			"8/1p4Pp/1p6/1p6/1p5p/5r2/4Kpkp/6br w - -", // bm #77
		},
		apply: func(_ string, o *Options) {
			o.OpeningMoves = "g7g8q g2h3 e2f1, g7g8q f3g3 g8d5 g3f3 d5f3, g7g8q f3g3 g8d5 g2h3 " +
				"d5e6 g3g4 e2f1, g7g8q f3g3 g8d5 g2h3 d5e6 h3g2 e6e4 g3f3 e4f3, " +
				"g7g8q f3g3 g8d5 g2h3 d5e6 h3g2 e6e4 g2h3 e2f1"
			o.ExcludeFrom = "f1"
			o.ExcludeTo = "h1"
			o.ExcludeAllowingCapture = true
			o.ExcludeAllowingFrom = "b3 h5 h4"
		},
	},
	{
		epds: []string{
			"8/8/8/8/NK6/1B1N4/2rpn1pp/2bk1brq w - -",      // bm #7
			"8/7p/8/8/NK6/1B1N4/2rpn1pp/2bk1brq w - -",     // bm #27
			"8/5ppp/5p2/8/NK6/1B1N4/2rpn1pp/2bk1brq w - -", // bm #87
		},
		warning: true,
		apply: func(_ string, o *Options) {
			o.ExcludeSANs = "Nb6 Nb5 Nc4"
			o.ExcludeFrom = "a4 b3 d3"
			o.ExcludeAllowingCapture = true
		},
	},
	{
		epds: []string{
			"8/5P2/8/8/8/n7/1pppp2K/br1r1kn1 w - -",     // bm #10
			"8/3p1P2/8/8/8/n7/1pppp2K/br1r1kn1 w - -",   // bm #28
			"8/2pp1P2/8/8/8/n7/1pppp2K/br1r1kn1 w - -",  // bm #48
			"8/pppp1P2/8/8/8/n7/1pppp2K/br1r1kn1 w - -", // bm #93
		},
		apply: func(_ string, o *Options) {
			o.OpeningMoves = "f7f8q g1f3 f8f3 f1e1 f3g3 e1f1 g3g1, " +
				"f7f8q f1e1 f8a3 g1f3 a3f3 * f3g3 e1f1 g3g1, " +
				"f7f8q f1e1 f8a3 g1h3 a3h3 e1f2 h3g3 f2f1 g3g1, " +
				"f7f8q f1e1 f8a3 g1h3 a3h3 * h3g3 e1f1 g3g1, " +
				"f7f8q f1e1 f8a3 e1f1 a3f8 g1f3 f8f3 f1e1 f3g3 e1f1 g3g1, " +
				"f7f8q f1e1 f8a3 e1f1 a3f8 f1e1 f8c5 g1f3 h2g3 d1c1 c5f2 e1d1 f2f3 " +
				"d1e1 f3h1, " +
				"f7f8q f1e1 f8a3 e1f1 a3f8 f1e1 f8c5 g1f3 h2g3 f3d4 c5d4 e1f1 d4f2, " +
				"f7f8q f1e1 f8a3 e1f1 a3f8 f1e1 f8c5 g1f3 h2g3 f3d4 c5d4 * d4g1, " +
				"f7f8q f1e1 f8a3 e1f1 a3f8 f1e1 f8c5 g1f3 h2g3 * c5f2, " +
				"f7f8q f1e1 f8a3 e1f1 a3f8 f1e1 f8c5 g1h3 h2h3 e1f1 c5f5 f1g1 f5g4 " +
				"g1f2 g4g3 f2f1 g3g2 f1e1 g2g1, " +
				"f7f8q f1e1 f8a3 e1f1 a3f8 f1e1 f8c5 g1h3 h2h3 e1f1 c5f5 f1e1 f5g6 " +
				"e1f2 g6g3 f2f1 g3g2 f1e1 g2g1, " +
				"f7f8q f1e1 f8a3 e1f1 a3f8 f1e1 f8c5 g1h3 h2h3 e1f1 c5f5 f1e1 f5g6 " +
				"e1f1 g6g2 f1e1 g2g1, " +
				"f7f8q f1e1 f8a3 e1f1 a3f8 f1e1 f8c5 g1h3 h2h3 e1f1 c5f5 f1e1 f5g6 * " +
				"g6g1, " +
				"f7f8q f1e1 f8a3 e1f1 a3f8 f1e1 f8c5 g1h3 h2h3 * c5g1, " +
				"f7f8q f1e1 f8a3 e1f1 a3f8 f1e1 f8c5 * c5g1, " +
				"f7f8q f1e1 f8a3 e1f2 a3g3, " +
				"f7f8q f1e1 f8a3 d1c1 a3g3, " +
				"f7f8q f1e1 f8a3 b1c1 a3g3, " +
				"f7f8q f1e1 f8a3 * a3g3 e1f1 g3g1"
			o.ExcludeSANs = "Kh1 Kg1 Kg2 Kg3 Kg4 Kh4"
			o.ExcludeTo = "b2 c2 d2 e2"
			o.ExcludeAllowingCapture = true
			o.ExcludeAllowingFrom = "b2 c2 d2 e2"
			o.ExcludeAllowingSANs = "Ke3 Kf3 Kh1 Kg2 Kh2"
		},
	},
	{
		epds: []string{
			"7K/8/8/8/4n3/pp1N3p/rp2N1br/bR3n1k w - -",         // bm #3
			"7K/8/8/7p/p3n3/1p1N3p/rp2N1br/bR3n1k w - -",       // bm #31
			"7K/3p4/4p3/1p5p/p3n3/1p1N3p/rp2N1br/bR3n1k w - -", // bm #96
		},
		warning: true,
		apply: func(_ string, o *Options) {
			o.ExcludeFrom = "d3 e2"
			o.ExcludeAllowingCapture = true
			o.ExcludeAllowingFrom = "b2 h2 h1"
			o.ExcludeAllowingSANs = "Be4 Bd5 Bc6 Bb7 Ba8 Bg4 Bh5"
		},
	},
	{
		epds: []string{
			"8/8/6p1/6Pb/p3P1k1/P1p1PNnr/2P1PKRp/7B w - -",        // bm #12
			"8/4p3/6p1/6Pb/p3P1k1/P1p1PNnr/2P1PKRp/7B w - -",      // bm #34
			"8/p1p1p3/2p3p1/6Pb/p3P1k1/P1p1PNnr/2P1PKRp/7B w - -", // bm #100
		},
		apply: func(_ string, o *Options) {
			o.ExcludeSANs = "Rf2"
			o.ExcludeFrom = "f3 e4"
			o.ExcludeAllowingCapture = true
		},
	},
	{
		epds: []string{
			"n1K5/bNp5/1pP5/1k4p1/1N2pnp1/PP2p1p1/4rpP1/5B2 w - -",   // bm #16
			"n1K5/bNp1p3/1pP5/1k4p1/1N3np1/PP2p1p1/4rpP1/5B2 w - -",  // bm #35
			"n1K5/bNp1p1p1/1pP5/1k6/1N3np1/PP2p1p1/4rpP1/5B2 w - -",  // bm #57
			"n1K5/bNp1p1p1/1pP3p1/1k2p3/1N3n2/PP4p1/4rpP1/5B2 w - -", // bm #101
		},
		warning: true,
		apply: func(_ string, o *Options) {
			o.ExcludeFrom = "a3 b3 b4 b7 c6 g2"
			o.ExcludeAllowingCapture = true
			o.ExcludeAllowingFrom = "a8 b5 b6 c7 e2 f1 g3 g2 d3"
			o.ExcludeTo = "a8"
			o.ExcludeToCapturable = true
			o.ExcludeMoves = "f1c4 e2c4 e2d1 e2f3 e2g4 e2h5 f1g2 f1h3 d3c2 d3b1 d3e4 " +
				"d3f5 d3g6 d3h7"
		},
	},
	{
		epds: []string{
			"8/8/8/3p2p1/p2np1K1/p3N1pp/rb1N2pr/k1n3Rb w - -",  // bm #4
			"8/8/8/3p2p1/p2np1Kp/p3N1p1/rb1N2pr/k1n3Rb w - -",  // bm #35
			"8/4p3/3p4/p5p1/3n2Kp/p3N1p1/rb1N2pr/k1n3Rb w - -", // bm #102
		},
		warning: true,
		apply: func(_ string, o *Options) {
			o.ExcludeFrom = "d2 e3 g1"
			o.ExcludeTo = "g3"
			o.ExcludeAllowingFrom = "a1 a2 d5"
			o.ExcludeAllowingCapture = true
		},
	},
	{
		epds: []string{
			"2RN1qN1/5P2/3p1P2/3P4/1K6/1p1p1pp1/1p1p1np1/bk1b2Q1 w - -",  // bm #5
			"2RN1qN1/5P2/3p1P2/3P4/8/Kp1p1pp1/1p1p1np1/bk1b2Q1 w - -",    // bm #21
			"3N1qN1/1Kn2P2/3p1Pp1/3P1pp1/R7/1p1p4/1p1p1n2/bk1b2Q1 w - -", // bm #107
			"3N1qN1/1Kn2P2/1Q1p1Pp1/3P1pp1/1R6/1p1p4/kp1p4/b2b3n w - -",  // bm #109 (not yet)
		},
		warning: true,
		apply: func(epd string, o *Options) {
			if epd == "3N1qN1/1Kn2P2/1Q1p1Pp1/3P1pp1/1R6/1p1p4/kp1p4/b2b3n w - -" {
				o.OpeningMoves = "b4a4 * b6g1"
			}
			o.ExcludeFrom = "d5 e7 g7 e8"
			o.ExcludeTo = "d6 a1 b2 b3 d1 d2 d3"
			o.ExcludeSANs = "Qxf2 Qxf3 Qxf4 Qxf5 Qxf6 Qxf7 Qxg8 Qxg2 Qxg3 Qxg4 Qxg5 " +
				"Qxg6 Qxg7 Qxg8 Qxh1 Qxh1+ Rb1 Rb2 Rb3 Rb4 Rb5 Rb6 Rb7 Rb8 " +
				"Rd1 Rd2 Rd3 Rd4 Rd5 Rd6 Rd7 Rd8 Re1 Re2 Re3 Re4 Re5 Re6 " +
				"Re7 Re8 Rf1 Rf2 Rf3 Rf4 Rf5 Rf6 Rf7 Rf8 Rg1 Rg2 Rg3 Rg4 " +
				"Rg5 Rg6 Rg7 Rg8 Rh1 Rh2 Rh3 Rh4 Rh5 Rh6 Rh7 Rh8"
			o.ExcludeMoves = "d8e6 d8c6 d8b7 f7h8 f7h6 f7g5 f7e5 f7d6 g8f6 g8e7 h6g4 " +
				"h6f5 h6f7 f7f8n"
			o.ExcludeToCapturable = true
			o.ExcludePromotionTo = "qrb"
			o.ExcludeAllowingFrom = "c7 a1 b2 b3 d1 d2 d3 g7 h6 f7 g8 e8 d8 e7 h8 c8 b8 a8"
			o.ExcludeAllowingTo = "f1 g1 f6 d5"
			o.ExcludeAllowingMoves = "a2a3 c2c3"
			o.ExcludeAllowingSANs = "Nxf7 Nxf6 Nxf7+ Nxf6+"
		},
	},
	{
		epds: []string{
			"8/p7/8/p7/b3Q3/K7/p1r5/rk6 w - -",      // bm #10
			"8/p7/8/p7/b3Q3/K6p/p1r5/rk6 w - -",     // bm #22
			"8/p6p/7p/p6p/b3Q2p/K6p/p1r5/rk6 w - -", // bm #120
		},
		apply: func(_ string, o *Options) {
			o.ExcludeFrom = "a3"
			o.ExcludeTo = "a1"
			o.ExcludeAllowingCapture = true
			o.ExcludeAllowingFrom = "a1 h1"
			o.ExcludeAllowingSANs = "Kb1 Kc2 Kd1 Kd2"
		},
	},
	{
		epds: []string{
			"r1b5/1pKp4/pP1P4/P6B/3pn3/1P1k4/1P6/5N1N w - -",       // bm #4
			"r1b5/1pKp4/pP1P4/P6B/3pn2p/1P1k4/1P6/5N1N w - -",      // bm #26
			"r1b5/1pKp4/pP1P1p1p/P4p1B/3pn2p/1P1k4/1P6/5N1N w - -", // bm #121
		},
		warning: true,
		apply: func(_ string, o *Options) {
			o.OpeningMoves = "h5d1"
			o.ExcludeFrom = "d1 f1 h1 b2 b3 a5 b6 d6"
			o.ExcludeTo = "c8"
			o.ExcludeAllowingFrom = "d3 d4 a6 b7 c8 d7"
			o.ExcludeAllowingTo = "d1 f1 h1"
		},
	},
	{
		epds:    []string{"8/1p1p4/3p2p1/5pP1/1p3P1k/1P1p1P1p/1P1P1P1K/7B w - -"}, // bm #121
		warning: true,
		apply: func(_ string, o *Options) {
			o.ExcludeCaptures = true
			o.ExcludeFrom = "h1"
		},
	},
	{
		epds: []string{
			"n7/b1p1K3/1pP5/1P6/7p/1p4Pn/1P2N1br/3NRn1k w - -",     // bm #6
			"n7/b1p1K3/1pP5/1P6/6pp/1p4Pn/1P2N1br/3NRn1k w - -",    // bm #9
			"n7/b1p1K3/1pP5/1P4p1/6pp/1p4Pn/1P2N1br/3NRn1k w - -",  // bm #92
			"n7/b1p1K3/1pP4p/1P4p1/6p1/1p4Pn/1P2N1br/3NRn1k w - -", // bm #126
		},
		warning: true,
		apply: func(_ string, o *Options) {
			o.ExcludeFrom = "b2 d1 e1 b5 c6"
			o.ExcludeTo = "a8 b6 c7 b3"
			o.ExcludeMoves = "e2g1 e2c1 e2c3 e2d4 e2f4 g3h1 g3h5 g3f5 g3e4 g3f1"
			o.ExcludeToCapturable = true
			o.ExcludePromotionTo = "qrbn"
			o.ExcludeAllowingFrom = "a8 b6 c7 h2 f1"
		},
	},
}
