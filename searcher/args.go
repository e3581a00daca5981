package searcher

// Hyperparameters for alpha-beta search

const DefaultMaxDepth = 4 // Plies searched past the root's children before the heuristic cutoff
