package irrigate

import "math"

// Solve runs backward induction over the water lattice and replays the
// resulting policy from full capacity, returning the day-by-day allocation
// plan. Zero capacity or an empty record sequence degrades to an empty
// schedule with savings equal to the full budget.
func (s *Solver) Solve(recs []LandParameters) (*Plan, error) {
	if err := s.check(recs); err != nil {
		return nil, err
	}
	n, nw := len(recs), s.lattice(s.Cap)+1
	s.resize(n, nw)
	for i := range recs {
		s.req[i] = s.DM.Requirement(&recs[i])
	}

	for t := n - 1; t >= 0; t-- {
		lreq := s.lattice(s.req[t])
		s.ben = benefits(s.ben[:0], lreq, s.req[t], s.Step)
		s.fillStates(t, 0, nw, nw, lreq)
	}
	return s.replay(recs, nw), nil
}

// fillStates computes period t values and policies for lattice states
// w0 ≤ w < w1. Row t+1 must be complete; states within a row are
// independent.
func (s *Solver) fillStates(t, w0, w1, nw, lreq int) {
	row, next := s.v[t*nw:(t+1)*nw], s.v[(t+1)*nw:(t+2)*nw]
	pol := s.p[t*nw : (t+1)*nw]
	for w := w0; w < w1; w++ {
		amax := lreq // allocating beyond requirement buys nothing
		if w < amax {
			amax = w
		}
		best, ba := next[w], 0 // a = 0
		for la := 1; la <= amax; la++ {
			if v := s.ben[la] + next[w-la]; v > best { // strict: ties keep the smaller allocation
				best, ba = v, la
			}
		}
		row[w], pol[w] = best, int32(ba)
	}
}

// benefits tabulates the payoff at every lattice allocation 0..lreq.
func benefits(buf []float64, lreq int, req, step float64) []float64 {
	for la := 0; la <= lreq; la++ {
		buf = append(buf, benefit(float64(la)*step, req))
	}
	return buf
}

// replay walks the policy forward from full capacity, assembling the
// schedule and summary totals.
func (s *Solver) replay(recs []LandParameters, nw int) *Plan {
	n := len(recs)
	pln := Plan{Schedule: make([]Allocation, n)}
	w := nw - 1
	for t := 0; t < n; t++ {
		la := int(s.p[t*nw+w])
		a, e := float64(la)*s.Step, efficiency(float64(la)*s.Step, s.req[t])
		pln.Schedule[t] = Allocation{
			Day:        t + 1,
			Water:      a,
			Params:     recs[t],
			Efficiency: e,
		}
		pln.TotalWaterUsed += a
		pln.TotalEfficiency += e
		w -= la
		if w < 0 {
			panic("irrigate: lattice accounting error")
		}
	}
	pln.WaterSavings = s.Cap - pln.TotalWaterUsed
	return &pln
}

// Benefit is the payoff of allocating a to the given land state: 1 once the
// requirement is met (saturating, over-allocation buys nothing), linear 80%
// partial credit below it, 0 for nothing.
func (s *Solver) Benefit(a float64, p *LandParameters) float64 {
	return benefit(a, s.DM.Requirement(p))
}

// Efficiency scores an allocation as the percent of requirement met, 100 by
// convention when nothing was needed.
func (s *Solver) Efficiency(a float64, p *LandParameters) float64 {
	return efficiency(a, s.DM.Requirement(p))
}

func benefit(a, req float64) float64 {
	switch {
	case a <= 0.:
		return 0. // no demand, no reward: a=0 scores 0 even when req=0
	case a >= req:
		return 1.
	default:
		return .8 * a / req
	}
}

func efficiency(a, req float64) float64 {
	if req <= 0. {
		return 100.
	}
	return 100. * math.Min(1., a/req)
}
