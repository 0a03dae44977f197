// Package mitosis models the quantities that change during mitotic cell division.
//
// The package defines the enumerations a learner chooses from and the pure
// function that derives counts from them:
//
//   - [CellType]: animal or plant
//   - [Composition]: one of the fixed chromosome configurations (2n=4, 2n=6, 3n=6)
//   - [Phase]: prophase, metaphase, anaphase, telophase (cyclic)
//   - [ComputeStats]: chromosome, DNA and chromatid counts for a composition and phase
//
// # Example
//
//	stats, _ := mitosis.ComputeStats(mitosis.Diploid6, mitosis.Metaphase)
//	fmt.Println(stats.Chromosomes, stats.DNA, stats.Chromatids) // 6 12 12
//
// Values outside the defined enumerations are rejected with [ErrInvalidInput].
package mitosis
