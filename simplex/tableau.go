// Package simplex - the in-place pivot engine.
//
// The tableau is the only mutable state of a solve. It is a single owned
// row-major []float64 buffer plus a right-hand-side slice and a fixed-size
// basis array (one column index per row, all distinct). Pivots are applied
// strictly sequentially; nothing here is safe for concurrent use, and
// nothing here needs to be — each solve owns its tableau exclusively.
//
// Invariant maintained across pivots: the basis columns of A form an
// invertible matrix, and the implied solution satisfies A·x = b within the
// configured tolerance.
package simplex

// pivotOutcome is the terminal state of one pricing loop.
type pivotOutcome int

const (
	// outcomeOptimal means no reduced cost improves: current basis is optimal
	// for the priced cost vector.
	outcomeOptimal pivotOutcome = iota
	// outcomeUnbounded means an improving column had no positive row
	// coefficient: the priced objective decreases without limit.
	outcomeUnbounded
	// outcomeLimit means the pivot cap was exhausted mid-loop.
	outcomeLimit
)

// tableau carries B⁻¹A and B⁻¹b for the current basis, updated in place.
type tableau struct {
	rows, cols int
	t          []float64 // rows×cols, row-major
	rhs        []float64 // length rows, kept ≥ 0 (clamped at ±eps)
	basis      []int     // length rows, basis[r] = basic column of row r
	artificial []bool    // per column, shared with the standard form
	eps        float64

	reduced []float64 // scratch: reduced costs, length cols
}

// newTableau copies the standard-form program into a fresh tableau seeded
// with the per-row slack/artificial basis. O(rows·cols).
func newTableau(sf *standardForm, eps float64) *tableau {
	tb := &tableau{
		rows:       sf.rows,
		cols:       sf.cols,
		t:          make([]float64, sf.rows*sf.cols),
		rhs:        make([]float64, sf.rows),
		basis:      make([]int, sf.rows),
		artificial: sf.artificial,
		eps:        eps,
		reduced:    make([]float64, sf.cols),
	}
	var r, c int
	for r = 0; r < sf.rows; r++ {
		for c = 0; c < sf.cols; c++ {
			tb.t[r*sf.cols+c] = sf.a.At(r, c)
		}
		tb.rhs[r] = sf.b[r]
		tb.basis[r] = sf.seed[r]
	}

	return tb
}

// at reads the current coefficient of column c in row r.
func (tb *tableau) at(r, c int) float64 { return tb.t[r*tb.cols+c] }

// objective evaluates the priced cost of the current basic solution:
// Σ cost[basis[r]]·rhs[r]. O(rows).
func (tb *tableau) objective(cost []float64) float64 {
	var z float64
	for r := 0; r < tb.rows; r++ {
		z += cost[tb.basis[r]] * tb.rhs[r]
	}

	return z
}

// reducedCosts fills tb.reduced with r_j = c_j − Σ_r cost[basis[r]]·t[r][j]
// for every column. O(rows·cols).
func (tb *tableau) reducedCosts(cost []float64) {
	copy(tb.reduced, cost)
	var (
		r, c int
		cb   float64
		base int
	)
	for r = 0; r < tb.rows; r++ {
		cb = cost[tb.basis[r]]
		if cb == 0 {
			continue
		}
		base = r * tb.cols
		for c = 0; c < tb.cols; c++ {
			tb.reduced[c] -= cb * tb.t[base+c]
		}
	}
}

// pivot makes column pc basic in row pr: normalizes the pivot row and
// eliminates pc from every other row, then re-clamps right-hand sides that
// drifted within ±eps of zero. O(rows·cols).
func (tb *tableau) pivot(pr, pc int) {
	var (
		base  = pr * tb.cols
		inv   = 1 / tb.t[base+pc]
		r, c  int
		f     float64
		rbase int
	)
	for c = 0; c < tb.cols; c++ {
		tb.t[base+c] *= inv
	}
	tb.rhs[pr] *= inv

	for r = 0; r < tb.rows; r++ {
		if r == pr {
			continue
		}
		rbase = r * tb.cols
		f = tb.t[rbase+pc]
		if f == 0 {
			continue
		}
		for c = 0; c < tb.cols; c++ {
			tb.t[rbase+c] -= f * tb.t[base+c]
		}
		tb.t[rbase+pc] = 0 // exact zero, not float residue
		tb.rhs[r] -= f * tb.rhs[pr]
		if tb.rhs[r] < 0 && tb.rhs[r] > -tb.eps {
			tb.rhs[r] = 0
		}
	}
	tb.basis[pr] = pc
}

// ratioRow runs the minimum-ratio test for entering column col: among rows
// with a strictly positive coefficient, the row minimizing rhs/coeff wins;
// ties go to the lowest row index (deterministic, reproducible pivots).
// Returns -1 when no row qualifies (unbounded direction).
func (tb *tableau) ratioRow(col int) int {
	var (
		best    = -1
		bestVal float64
		r       int
		a, v    float64
	)
	for r = 0; r < tb.rows; r++ {
		a = tb.at(r, col)
		if a <= tb.eps {
			continue
		}
		v = tb.rhs[r] / a
		if best == -1 || v < bestVal-tb.eps {
			best, bestVal = r, v
		}
	}

	return best
}

// evictionRow looks for a row whose basic variable is artificial and whose
// entering-column coefficient is non-zero. Such a row has rhs = 0 after a
// successful Phase 1, so pivoting there is degenerate and safely drives the
// artificial out before the entering variable could drag it off zero.
func (tb *tableau) evictionRow(col int) int {
	var (
		r int
		a float64
	)
	for r = 0; r < tb.rows; r++ {
		if !tb.artificial[tb.basis[r]] {
			continue
		}
		a = tb.at(r, col)
		if a > tb.eps || a < -tb.eps {
			return r
		}
	}

	return -1
}

// iterate prices cost over the allowed columns and pivots until the priced
// objective is optimal, unbounded, or the pivot budget runs out.
//
// Entering rule: Dantzig (most negative reduced cost, lowest index on ties)
// while the objective keeps improving; Bland (lowest improvable index) once
// the objective has stalled for more than rows+cols consecutive pivots —
// the classic anti-cycling fallback, restoring finite termination on
// degenerate tableaus.
//
// When barArtificials is set (Phase 2), artificial columns never enter, and
// rows still held by a zero-level artificial are vacated first via
// evictionRow.
//
// used is shared across phases so the cap bounds the whole solve.
func (tb *tableau) iterate(cost []float64, barArtificials bool, maxPivots int, used *int) pivotOutcome {
	var (
		stall     int
		stallCap  = tb.rows + tb.cols
		lastObj   = tb.objective(cost)
		entering  int
		pr        int
		obj       float64
		c         int
		rc, bestR float64
	)
	for {
		tb.reducedCosts(cost)

		// Entering column.
		entering = -1
		if stall <= stallCap {
			bestR = -tb.eps // Dantzig: strictly improving only
			for c = 0; c < tb.cols; c++ {
				if barArtificials && tb.artificial[c] {
					continue
				}
				rc = tb.reduced[c]
				if rc < bestR {
					bestR = rc
					entering = c
				}
			}
		} else {
			for c = 0; c < tb.cols; c++ { // Bland: lowest improvable index
				if barArtificials && tb.artificial[c] {
					continue
				}
				if tb.reduced[c] < -tb.eps {
					entering = c
					break
				}
			}
		}
		if entering == -1 {
			return outcomeOptimal
		}

		// Leaving row.
		pr = -1
		if barArtificials {
			pr = tb.evictionRow(entering)
		}
		if pr == -1 {
			pr = tb.ratioRow(entering)
		}
		if pr == -1 {
			return outcomeUnbounded
		}

		if *used >= maxPivots {
			return outcomeLimit
		}
		tb.pivot(pr, entering)
		*used++

		obj = tb.objective(cost)
		if obj < lastObj-tb.eps {
			stall = 0
		} else {
			stall++
		}
		lastObj = obj
	}
}

// evictArtificials pivots zero-level artificials out of the basis after
// Phase 1. A row where no non-artificial column has a usable coefficient is
// linearly redundant; its artificial stays basic, pinned at zero, and the
// Phase-2 entry bar keeps it there.
func (tb *tableau) evictArtificials() {
	var (
		r, c int
		a    float64
	)
	for r = 0; r < tb.rows; r++ {
		if !tb.artificial[tb.basis[r]] {
			continue
		}
		for c = 0; c < tb.cols; c++ {
			if tb.artificial[c] {
				continue
			}
			a = tb.at(r, c)
			if a > tb.eps || a < -tb.eps {
				tb.pivot(r, c) // rhs[r] == 0 ⇒ degenerate, feasibility intact
				break
			}
		}
	}
}
