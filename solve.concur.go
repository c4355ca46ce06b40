package irrigate

import (
	"runtime"
	"sync"
)

// SolveConcurrent is Solve with each period row evaluated in parallel across
// the water lattice. States of a row only read the completed row below, so
// the result is bit-identical to Solve; periods themselves stay strictly
// sequential.
func (s *Solver) SolveConcurrent(recs []LandParameters) (*Plan, error) {
	if err := s.check(recs); err != nil {
		return nil, err
	}
	n, nw := len(recs), s.lattice(s.Cap)+1
	s.resize(n, nw)
	for i := range recs {
		s.req[i] = s.DM.Requirement(&recs[i])
	}

	nwk := runtime.GOMAXPROCS(0)
	if nwk > nw {
		nwk = nw
	}
	csz := (nw + nwk - 1) / nwk

	var wg sync.WaitGroup
	for t := n - 1; t >= 0; t-- {
		lreq := s.lattice(s.req[t])
		s.ben = benefits(s.ben[:0], lreq, s.req[t], s.Step)
		for w0 := 0; w0 < nw; w0 += csz {
			w1 := w0 + csz
			if w1 > nw {
				w1 = nw
			}
			wg.Add(1)
			go func(w0, w1 int) {
				s.fillStates(t, w0, w1, nw, lreq)
				wg.Done()
			}(w0, w1)
		}
		wg.Wait()
	}
	return s.replay(recs, nw), nil
}
