// Package lp - shared types and sentinel errors for linear models.
package lp

import "errors"

// Sentinel errors returned by Model construction and validation.
var (
	// ErrEmptyModel indicates a model with no variables or no constraints.
	ErrEmptyModel = errors.New("lp: model must have at least one variable and one constraint")

	// ErrNoObjective indicates that SetObjective was never called on the model.
	ErrNoObjective = errors.New("lp: model has no objective")

	// ErrDanglingVariable indicates a coefficient keyed by a variable index
	// that does not exist in the model's variable list.
	ErrDanglingVariable = errors.New("lp: coefficient references unknown variable index")

	// ErrBadBounds indicates Lower > Upper, or a NaN bound, or Lower = +Inf / Upper = -Inf.
	ErrBadBounds = errors.New("lp: variable bounds are invalid")

	// ErrBadCoefficient indicates a NaN or infinite coefficient or right-hand side.
	ErrBadCoefficient = errors.New("lp: coefficient or right-hand side is not finite")

	// ErrBadRelation indicates a Relation value outside {LessEq, GreaterEq, Equal}.
	ErrBadRelation = errors.New("lp: unknown constraint relation")

	// ErrBadSense indicates a Sense value outside {Minimize, Maximize}.
	ErrBadSense = errors.New("lp: unknown objective sense")
)

// Sense is the optimization direction of an objective.
type Sense int

const (
	// Minimize seeks the smallest objective value (the internal canonical sense).
	Minimize Sense = iota

	// Maximize seeks the largest objective value; it is normalized to
	// Minimize internally by negating the cost vector.
	Maximize
)

// String returns a human-readable sense name.
func (s Sense) String() string {
	switch s {
	case Minimize:
		return "minimize"
	case Maximize:
		return "maximize"
	default:
		return "unknown"
	}
}

// Relation is the comparison operator of a linear constraint.
type Relation int

const (
	// LessEq constrains the row to Σ aᵢxᵢ ≤ rhs.
	LessEq Relation = iota

	// GreaterEq constrains the row to Σ aᵢxᵢ ≥ rhs.
	GreaterEq

	// Equal constrains the row to Σ aᵢxᵢ = rhs.
	Equal
)

// String returns the operator symbol for the relation.
func (r Relation) String() string {
	switch r {
	case LessEq:
		return "<="
	case GreaterEq:
		return ">="
	case Equal:
		return "="
	default:
		return "?"
	}
}

// Variable is a single decision variable. Variables are owned by the Model
// and referenced by their stable index everywhere else; they are never
// copied by value once indexed.
type Variable struct {
	// Label is a human-readable name, e.g. "plant A → product X".
	Label string

	// Lower is the lower bound (default 0). May be -Inf (free variable).
	Lower float64

	// Upper is the upper bound (default +Inf).
	Upper float64
}

// Constraint is one linear constraint row: Σ Coeffs[i]·xᵢ  Relation  RHS.
// Coeffs is sparse — variable indices with zero coefficient are omitted.
// Constraints are immutable once added to a Model.
type Constraint struct {
	Coeffs   map[int]float64
	Relation Relation
	RHS      float64
}

// Objective is the linear objective: optimize Σ Coeffs[i]·xᵢ toward Sense.
type Objective struct {
	Coeffs map[int]float64
	Sense  Sense
}
