// Package lvlopt is your in-memory toolkit for modeling and solving
// linear optimization problems — from raw linear programs to ready-made
// production-allocation planning.
//
// 🚀 What is lvlopt?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Linear models: typed variables, sparse constraints, min/max objectives
//		• Standard-form conversion: slack, surplus and artificial variables,
//		  bound shifting and free-variable splitting — all bookkept for you
//		• Two-phase simplex: Dantzig pricing with Bland's anti-cycling fallback
//		• Verdicts, not surprises: Optimal / Infeasible / Unbounded as data
//		• Sensitivity: shadow prices (dual values) on request
//		• Multi-plant planning: capacities, demands and unit costs in,
//		  a minimum-cost production plan out
//
// ✨ Why choose lvlopt?
//
//   - Deterministic – fixed tie-break rules, identical plans on every run
//   - Rock-solid guarantees – every solve cross-checks its own objective
//   - Pure Go – no cgo, no hidden native solvers
//   - Honest verdicts – infeasible and unbounded are answers, not errors
//
// Everything is organized under three subpackages:
//
//	lp/         — linear model primitives: Variable, Constraint, Objective, Model
//	simplex/    — standard-form conversion + two-phase simplex solver + duals
//	multiplant/ — production-allocation layer: plants, products, demands, plans
//
// Quick ASCII example:
//
//	    plant A (cap 100) ──5$/u──▶ product X (demand 150)
//	    plant B (cap  80) ──7$/u──▶
//
//	ships 100 units from A and 50 from B for a total cost of 850.
//
// Dive into examples/ for runnable scenarios, and each package's doc.go
// for contracts, complexity notes and the full error taxonomy.
//
//	go get github.com/katalvlaran/lvlopt
package lvlopt
