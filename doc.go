// Package bibit discovers biclusters in large sparse presence/absence
// matrices: submatrices formed by a subset of rows (samples) and a subset of
// columns (features) in which every selected row carries a 1 in every
// selected column.
//
// The engine packs each matrix row into fixed-width bitwords so that column
// comparison runs as word-level AND, enumerates all unordered row pairs to
// derive candidate patterns, grows each new qualifying pattern against the
// full matrix, and sweeps the whole procedure across the cross product of
// three knobs: bitword width (bwl), minimum rows (mnr) and minimum columns
// (mnc). Sweep cells are independent and execute on a fixed-size worker pool.
//
// # Quick start
//
//	m, err := matrix.FromStrings([]string{
//	    "1100",
//	    "1101",
//	    "1110",
//	    "0011",
//	})
//	if err != nil {
//	    panic(err)
//	}
//
//	engine, err := bibit.New(m, bibit.WithLogger(bibit.NewTextLogger(slog.LevelInfo)))
//	if err != nil {
//	    panic(err)
//	}
//
//	// Single configuration.
//	found, err := engine.Search(ctx, bibit.Params{Width: 4, MinRows: 2, MinCols: 2})
//
//	// Full parameter sweep with per-run statistics.
//	result, err := engine.Sweep(ctx, sweep.DefaultRanges(m.Cols()))
//	for _, s := range result.StatsTable() {
//	    fmt.Println(s.Params, s.Biclusters, s.SearchTime)
//	}
//
// Data preparation (NA handling, removal of all-zero rows and columns,
// binarization of raw counts) and persistence of results are upstream and
// downstream responsibilities; this module consumes a clean 0/1 matrix and
// produces in-memory, serialization-ready records.
package bibit
