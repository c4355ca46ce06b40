package irrigate

// SolveNaive is a plain nested-slice rendition of the recurrence that
// recomputes the requirement at every state and allocates its tables per
// call. It applies the same lattice rule as Solve and must return identical
// plans; kept as a transparent cross-check for the strided solver.
func (s *Solver) SolveNaive(recs []LandParameters) (*Plan, error) {
	if err := s.check(recs); err != nil {
		return nil, err
	}
	n, nw := len(recs), s.lattice(s.Cap)+1

	dp := make([][]float64, n+1)
	pol := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]float64, nw)
		pol[i] = make([]int, nw)
	}

	for i := n - 1; i >= 0; i-- {
		for w := 0; w < nw; w++ {
			avail := float64(w) * s.Step
			amax := s.lattice(avail)
			if lr := s.lattice(s.DM.Requirement(&recs[i])); lr < amax {
				amax = lr
			}
			best, ba := dp[i+1][w], 0
			for la := 1; la <= amax; la++ {
				v := benefit(float64(la)*s.Step, s.DM.Requirement(&recs[i])) + dp[i+1][w-la]
				if v > best {
					best, ba = v, la
				}
			}
			dp[i][w], pol[i][w] = best, ba
		}
	}

	pln := Plan{Schedule: make([]Allocation, n)}
	w := nw - 1
	for i := 0; i < n; i++ {
		la := pol[i][w]
		a := float64(la) * s.Step
		e := efficiency(a, s.DM.Requirement(&recs[i]))
		pln.Schedule[i] = Allocation{Day: i + 1, Water: a, Params: recs[i], Efficiency: e}
		pln.TotalWaterUsed += a
		pln.TotalEfficiency += e
		w -= la
	}
	pln.WaterSavings = s.Cap - pln.TotalWaterUsed
	return &pln, nil
}
