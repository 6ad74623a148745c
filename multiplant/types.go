// Package multiplant - domain types and sentinel errors.
package multiplant

import "errors"

// Sentinel errors returned by Build and Optimize before any solver work.
var (
	// ErrNoPlants indicates an empty plant list.
	ErrNoPlants = errors.New("multiplant: problem has no plants")

	// ErrNoProducts indicates an empty product list.
	ErrNoProducts = errors.New("multiplant: problem has no products")

	// ErrNegativeCapacity indicates a plant with Capacity < 0.
	ErrNegativeCapacity = errors.New("multiplant: plant capacity must be non-negative")

	// ErrNegativeDemand indicates a product with Demand < 0.
	ErrNegativeDemand = errors.New("multiplant: product demand must be non-negative")

	// ErrDuplicateName indicates two plants or two products sharing a name,
	// or an empty name.
	ErrDuplicateName = errors.New("multiplant: plant and product names must be unique and non-empty")

	// ErrNoProducer indicates a product that no plant has a cost entry for —
	// its demand row would reference no variable at all.
	ErrNoProducer = errors.New("multiplant: product has no plant able to produce it")

	// ErrBadCost indicates a NaN or infinite production/shipping cost.
	ErrBadCost = errors.New("multiplant: cost entries must be finite")
)

// Plant is one manufacturing site with a total output capacity (units).
type Plant struct {
	Name     string
	Capacity float64
}

// Product is one demand point: a product name and the quantity required.
type Product struct {
	Name   string
	Demand float64
}

// DemandPolicy selects the relation of every demand row.
type DemandPolicy int

const (
	// MeetExactly emits = demand rows: produce precisely what is demanded.
	// Overproduction is forbidden even when it would be cheap.
	MeetExactly DemandPolicy = iota

	// MeetAtLeast emits ≥ demand rows: overproduction is allowed when the
	// optimizer finds it useful (it never is under positive costs, but the
	// relaxation keeps otherwise-tight programs feasible).
	MeetAtLeast
)

// String returns a human-readable policy name.
func (d DemandPolicy) String() string {
	switch d {
	case MeetExactly:
		return "meet-exactly"
	case MeetAtLeast:
		return "meet-at-least"
	default:
		return "unknown"
	}
}

// Problem is the full domain description handed to Build or Optimize.
//
// ProductionCost maps plant name → product name → unit cost; a missing
// entry means the plant cannot make that product and no route variable is
// created. ShippingCost is an optional same-shaped per-route add-on;
// entries for impossible routes are ignored.
type Problem struct {
	Plants   []Plant
	Products []Product

	ProductionCost map[string]map[string]float64
	ShippingCost   map[string]map[string]float64

	Demand DemandPolicy
}

// Route names one producible (plant, product) pair and its variable index
// in the built model. Routes are created in deterministic order: plants in
// declaration order, products in declaration order within each plant.
type Route struct {
	Plant      string
	Product    string
	PlantIdx   int
	ProductIdx int
}

// Index records how the built lp.Model maps back onto the domain: the
// route behind every variable and the constraint row behind every plant
// and product. Variable i of the model corresponds to Routes[i].
type Index struct {
	Routes      []Route
	CapacityRow []int // per plant index: its ≤ capacity constraint
	DemandRow   []int // per product index: its =/≥ demand constraint
}
