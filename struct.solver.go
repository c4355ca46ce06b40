package irrigate

import (
	"errors"
	"fmt"
	"math"
)

// DefaultStep is the water-lattice resolution: the granularity at which
// continuous water quantities are rounded for table indexing. Coarser steps
// trade allocation precision for solver cost.
const DefaultStep = .01

// ErrInvalidInput flags capacities, steps or records the solver cannot index
// over. Everything else (unknown crops, out-of-table stages, forecast
// surplus) is normalized by the formulas, not rejected.
var ErrInvalidInput = errors.New("irrigate: invalid input")

// Solver allocates a finite water budget across a sequence of land states by
// backward induction over a (period, remaining-water) lattice. Value/policy
// tables are retained between calls so repeated invocations do not
// reallocate; a Solver is therefore not safe for concurrent use.
type Solver struct {
	Cap     float64 // total water budget [units]
	Step    float64 // lattice resolution [units]
	Horizon int     // expected period count; informational only
	DM      DemandModel

	v   []float64 // value table, (n+1)·nw, strided [t*nw+w]
	p   []int32   // policy table [lattice units], n·nw
	req []float64 // per-period requirement
	ben []float64 // per-period benefit by lattice allocation
}

// New returns a solver over the given budget with the stock demand tables
// and the default lattice step. Cap, Step and DM may be adjusted before
// solving.
func New(cap float64, horizon int) *Solver {
	return &Solver{Cap: cap, Step: DefaultStep, Horizon: horizon, DM: DefaultDemandModel()}
}

// lattice returns the number of whole lattice increments within quantity q.
func (s *Solver) lattice(q float64) int {
	return int(q/s.Step + 1e-8) // tolerance for exact multiples held imprecisely
}

func (s *Solver) check(recs []LandParameters) error {
	if s.Cap < 0. || math.IsNaN(s.Cap) || math.IsInf(s.Cap, 0) {
		return fmt.Errorf("%w: capacity %v", ErrInvalidInput, s.Cap)
	}
	if s.Step <= 0. || math.IsNaN(s.Step) || math.IsInf(s.Step, 0) {
		return fmt.Errorf("%w: lattice step %v", ErrInvalidInput, s.Step)
	}
	for i := range recs {
		p := &recs[i]
		if badfloat(p.SoilMoisture) || badfloat(p.Temperature) || badfloat(p.Humidity) ||
			badfloat(p.RainfallForecast) || badfloat(p.Evapotranspiration) {
			return fmt.Errorf("%w: record %d holds NaN/Inf", ErrInvalidInput, i)
		}
	}
	if s.Horizon > 0 && s.Horizon != len(recs) {
		fmt.Printf(" solver: %d records given, horizon set to %d\n", len(recs), s.Horizon)
	}
	return nil
}

func badfloat(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// resize readies the tables for n periods over nw lattice states and zeroes
// the base-case row V[n][*].
func (s *Solver) resize(n, nw int) {
	if cap(s.v) < (n+1)*nw {
		s.v = make([]float64, (n+1)*nw)
	} else {
		s.v = s.v[:(n+1)*nw]
	}
	if cap(s.p) < n*nw {
		s.p = make([]int32, n*nw)
	} else {
		s.p = s.p[:n*nw]
	}
	if cap(s.req) < n {
		s.req = make([]float64, n)
	} else {
		s.req = s.req[:n]
	}
	base := s.v[n*nw:]
	for i := range base {
		base[i] = 0.
	}
}
