// Package simplex - statuses, options and sentinel errors for the solver.
package simplex

import (
	"errors"
	"math"
)

// Sentinel errors returned by Solve. Verdicts about the program itself
// (infeasible, unbounded) are NOT errors — they come back as a Status
// inside Solution so callers can branch without special-casing.
var (
	// ErrNilModel indicates that a nil *lp.Model was passed to Solve.
	ErrNilModel = errors.New("simplex: model is nil")

	// ErrBadEpsilon indicates a non-positive or NaN Eps option.
	ErrBadEpsilon = errors.New("simplex: Eps must be a positive finite number")

	// ErrBadMaxIterations indicates a negative MaxIterations option.
	ErrBadMaxIterations = errors.New("simplex: MaxIterations must be non-negative")

	// ErrIterationLimit indicates the hard pivot cap was reached before the
	// solver could terminate. It signals a modeling pathology or a tolerance
	// misconfiguration, not a mathematical verdict.
	ErrIterationLimit = errors.New("simplex: pivot limit exceeded before termination")

	// ErrInconsistent indicates the objective recomputed from the original
	// cost vector disagrees with the tableau's objective beyond tolerance.
	// It is fatal: it means a solver bug, never a usable answer.
	ErrInconsistent = errors.New("simplex: objective cross-check mismatch")
)

// DefaultEps is the default tolerance for "effectively zero" comparisons:
// reduced-cost signs, pivot eligibility, basis residuals.
const DefaultEps = 1e-9

// Status is the solver's verdict about the linear program.
type Status int

const (
	// StatusOptimal means an optimal basic feasible solution was found.
	StatusOptimal Status = iota

	// StatusInfeasible means no point satisfies all constraints
	// (Phase 1 terminated with a strictly positive artificial sum).
	StatusInfeasible

	// StatusUnbounded means the objective can improve without limit
	// (an entering column had no positive row coefficient).
	StatusUnbounded
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "unknown"
	}
}

// Solution is the immutable outcome of one Solve call.
//
// Objective and Values are only meaningful when Status is StatusOptimal;
// otherwise Objective is NaN and Values is nil. Duals is populated only
// when WithDuals was requested and the status is optimal.
type Solution struct {
	// Status is the solver verdict.
	Status Status

	// Objective is the optimal objective value in the model's own sense
	// (a Maximize model reports the maximum, not its negation).
	Objective float64

	// Values holds one solved value per original variable index.
	// Auxiliary slack/surplus/artificial columns never appear here.
	Values []float64

	// Duals holds one shadow price per original constraint index:
	// the marginal change of Objective per unit increase of that
	// constraint's right-hand side. Nil unless requested via WithDuals.
	Duals []float64
}

// IsOptimal reports whether the solution carries an optimal point.
func (s Solution) IsOptimal() bool { return s.Status == StatusOptimal }

// Value returns the solved value of variable i, or 0 if i is out of range.
func (s Solution) Value(i int) float64 {
	if i < 0 || i >= len(s.Values) {
		return 0
	}

	return s.Values[i]
}

// Dual returns the shadow price of constraint i, or 0 if duals were not
// computed or i is out of range.
func (s Solution) Dual(i int) float64 {
	if i < 0 || i >= len(s.Duals) {
		return 0
	}

	return s.Duals[i]
}

// Options configures one Solve call.
//
// Eps           – tolerance for every "effectively zero" comparison
//                 (reduced costs, pivot eligibility, residuals). Must be > 0.
// MaxIterations – hard pivot cap. 0 means automatic: proportional to
//                 rows×columns of the standard-form program.
// ComputeDuals  – derive one shadow price per original constraint from the
//                 final tableau. Off by default (skips work on large solves).
type Options struct {
	Eps           float64
	MaxIterations int
	ComputeDuals  bool
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithEpsilon overrides the numerical tolerance. Values ≤ 0 or NaN are
// rejected by Solve with ErrBadEpsilon.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		o.Eps = eps
	}
}

// WithMaxIterations overrides the hard pivot cap. 0 restores the automatic
// cap; negative values are rejected by Solve with ErrBadMaxIterations.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithDuals enables shadow-price extraction for optimal solutions.
func WithDuals() Option {
	return func(o *Options) {
		o.ComputeDuals = true
	}
}

// DefaultOptions returns the solver defaults: Eps = DefaultEps,
// automatic pivot cap, no dual computation.
func DefaultOptions() Options {
	return Options{
		Eps:           DefaultEps,
		MaxIterations: 0,
		ComputeDuals:  false,
	}
}

// validateOptions rejects unusable tolerances and caps before any work.
func validateOptions(o Options) error {
	if o.Eps <= 0 || math.IsNaN(o.Eps) || math.IsInf(o.Eps, 0) {
		return ErrBadEpsilon
	}
	if o.MaxIterations < 0 {
		return ErrBadMaxIterations
	}

	return nil
}
