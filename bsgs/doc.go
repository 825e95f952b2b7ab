// Package bsgs builds and queries base-and-strong-generating-set (BSGS)
// representations of a permutation group: an ordered base B = (b1,...,bk), a
// strong generating set S, and a chain of Schreier structures Sigma_i
// recording the orbit of b_i under the i-th stabiliser.
//
// Construction follows deterministic or randomised Schreier–Sims (Holt, Eick
// & O'Brien, "Handbook of Computational Group Theory", ch. 4), with an
// explicit shortcut for recognised symmetric/alternating groups. Long-running
// construction is cooperatively cancellable via context.Context, polled at
// each Schreier-generator queue step, using golang.org/x/sync/errgroup for
// the driver/worker deadline handoff.
package bsgs
