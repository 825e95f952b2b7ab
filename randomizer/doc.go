// Package randomizer implements product replacement, a practical algorithm
// for generating (approximately) uniformly distributed random elements of a
// permutation group from a generating set, together with the classical
// cycle-type Monte Carlo test for recognising symmetric and alternating
// groups (Holt, Eick & O'Brien, "Handbook of Computational Group Theory",
// §4.2). The PRNG source is golang.org/x/exp/rand so that runs are
// replayable under a fixed seed, which symarch's randomised Schreier–Sims
// path relies on for reproducible tests.
package randomizer
