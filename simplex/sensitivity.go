// Package simplex - shadow prices (dual values) from the final tableau.
package simplex

// duals reads one shadow price per original constraint.
//
// Every standard-form row keeps a designated seed column (its slack or
// artificial) whose original coefficient column is the unit vector e_r of
// that row. At optimality the simplex multiplier of row r is therefore
//
//	y_r = Σ_k c[basis[k]] · t[k][seed_r]        (= c_B·B⁻¹·e_r)
//
// i.e. the priced-out value of the seed column — no explicit basis inverse
// is ever formed. Two corrections map y back onto the caller's model:
// rows negated during standardization flip sign (scale), and Maximize
// models flip once more (objSign), so the reported value is always
//
//	Duals[i] = ∂Objective/∂RHS_i   in the model's own sense.
//
// Consequences of that convention on minimization problems: a binding
// capacity (≤) row prices at ≤ 0 — one more unit of capacity can only
// lower the optimal cost — while a binding demand (≥ or =) row prices at
// ≥ 0, the marginal cost of one more demanded unit. Rows appended for
// finite upper bounds are internal and never reported.
//
// Only meaningful at StatusOptimal; Solve calls this on request alone.
// Complexity: O(numCons·rows).
func duals(sf *standardForm, tb *tableau) []float64 {
	y := make([]float64, sf.numCons)
	var (
		i, r int
		z    float64
		seed int
	)
	for i = 0; i < sf.numCons; i++ {
		seed = sf.seed[i]
		z = 0
		for r = 0; r < tb.rows; r++ {
			z += sf.c[tb.basis[r]] * tb.at(r, seed)
		}
		y[i] = sf.objSign * sf.scale[i] * z
	}

	return y
}
