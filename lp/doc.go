// Package lp defines the core linear-model primitives shared by every
// lvlopt solver: variables, sparse linear constraints and a linear
// objective, bundled into a Model.
//
// 🚀 What is a Model?
//
//	A Model owns three things:
//	  • a variable list — each Variable has a label and [Lower, Upper] bounds
//	    (defaults 0 and +Inf); the index returned by AddVariable is stable
//	    and is how every other structure refers to the variable
//	  • a constraint list — each Constraint is a sparse map from variable
//	    index to coefficient, a Relation (≤, ≥, =) and a right-hand side;
//	    constraints are immutable once added and keep their index forever
//	  • an objective — a sparse coefficient map plus a Sense
//	    (Minimize or Maximize)
//
// ✨ Guarantees:
//
//   - No dangling references — AddConstraint and SetObjective reject any
//     coefficient keyed by a variable index that does not exist yet.
//   - Immutability — coefficient maps are copied on the way in; mutating
//     the caller's map after the fact cannot corrupt the model.
//   - No NaN/±Inf smuggling — coefficients, right-hand sides and finite
//     bounds are checked as they enter.
//
// ⚙️ Usage:
//
//	m := lp.NewModel()
//	x := m.AddVariable("x")
//	y, _ := m.AddBoundedVariable("y", 0, 40)
//
//	_, err := m.AddConstraint(map[int]float64{x: 1, y: 2}, lp.LessEq, 14)
//	// handle err (ErrDanglingVariable, ErrBadCoefficient, ...)
//
//	err = m.SetObjective(map[int]float64{x: 3, y: 4}, lp.Maximize)
//
// A populated Model is then handed to simplex.Solve; package lp performs
// no solving itself.
package lp
