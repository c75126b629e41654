// Package drift simulates neutral genetic drift in a Wright–Fisher
// population: every generation the 2N gene copies of a diploid population of
// size N are drawn with replacement from the previous generation, so the
// allele count is Binomial(2N, p).
//
// Drift is the forward-time view of the coalescent: two copies picked today
// share a parent in the previous generation with probability 1/2N, which
// is why coalescent time is measured in units of 2N generations.
//
// Every generation draws one Binomial(2N, p) count from the Source, so a
// trajectory of g generations is reproducible from the seed alone.
// Simulation stops at the first generation the allele is lost or fixed.
package drift
