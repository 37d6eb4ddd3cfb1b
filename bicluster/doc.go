// Package bicluster implements the exhaustive pairwise pattern search over a
// bitword-encoded binary matrix.
//
// A bicluster is a set of rows and a set of columns such that every selected
// row carries a 1 in every selected column. The search derives one candidate
// column pattern per unordered row pair via word-level AND, skips patterns
// that are too narrow or already explored, and then grows the surviving
// candidate against all remaining rows with a full-matrix containment test.
//
// The search is exhaustive over row pairs, deterministic, and makes no
// maximality or disjointness guarantee: returned biclusters may overlap in
// rows and columns. When two pairs derive the same pattern the bicluster from
// the earliest pair wins; later duplicates are skipped, not merged.
package bicluster
