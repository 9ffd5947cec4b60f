package searcher

// Score given to a finished game from the winner's side. It exceeds any
// piece differential (at most 64), so a forced result dominates every
// heuristic score and keeps its sign through repeated negation.
const Sentinel = 999999
