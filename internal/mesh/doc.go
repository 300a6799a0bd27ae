package mesh

// Package mesh implements the row-major grid of colored control points and the
// constrained editing operations applied to it: lattice generation, resizing,
// edge-constrained point updates, even redistribution, and color reference
// removal. All operations are all-or-nothing: a failed call leaves the grid
// unchanged.
