package bsgs

import (
	"math/big"
	"time"

	"github.com/katalvlaran/symarch/schreier"
	"github.com/rs/zerolog"
)

// Construction selects the BSGS construction strategy.
type Construction int

const (
	// Auto lets Options.CheckAltSym decide, falling back to deterministic
	// Schreier–Sims.
	Auto Construction = iota
	// SchreierSims is deterministic Schreier–Sims.
	SchreierSims
	// SchreierSimsRandom is randomised Schreier–Sims with deterministic
	// fallback verification.
	SchreierSimsRandom
	// Solve is the solvable-group specialised construction. Unsupported;
	// see ErrSolveUnsupported.
	Solve
)

// Options configures BSGS construction.
type Options struct {
	Construction Construction
	Transversals schreier.Kind

	// CheckAltSym, when true and degree > 8, runs a product-replacement
	// symmetric/alternating recognition pass before falling back to the
	// chosen Construction.
	CheckAltSym bool

	// ReduceGens requests the constructor discard redundant strong
	// generators once the chain is complete (kept permissively disabled
	// by default: reduction is a size optimisation, not a correctness
	// requirement, and this implementation does not yet perform it).
	ReduceGens bool

	SchreierSimsRandomW             int
	SchreierSimsRandomKnownOrder    *big.Int
	SchreierSimsRandomRetries       int
	SchreierSimsRandomUseKnownOrder bool

	// Timeout bounds wall-clock construction time; zero means no limit.
	Timeout time.Duration

	// Logger receives construction progress (base extensions, Sn/An
	// recognition, randomised retries and fallbacks). Nil means no-op.
	Logger *zerolog.Logger
}

// logger returns o.Logger, or a disabled logger if none was set.
func (o Options) logger() zerolog.Logger {
	if o.Logger != nil {
		return *o.Logger
	}
	return zerolog.Nop()
}

// DefaultOptions returns the zero-value-safe defaults used when a nil
// *Options is supplied to Build.
func DefaultOptions() Options {
	return Options{
		Construction:               Auto,
		Transversals:               schreier.Tree,
		CheckAltSym:                true,
		ReduceGens:                 false,
		SchreierSimsRandomW:        10,
		SchreierSimsRandomRetries:  1,
	}
}

// FillDefaults returns *opts if non-nil, else DefaultOptions(). Mirrors
// ReprOptions::fill_defaults in the source: options are plain records, not a
// functional-options chain, since every field has an independent, documented
// default.
func FillDefaults(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}
	return *opts
}
