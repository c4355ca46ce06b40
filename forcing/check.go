package forcing

import "fmt"

func (frc *Forcing) CheckAndPrint() {
	fmt.Println("Forcing summary:")
	nt := len(frc.T)
	fmt.Printf(" %v to %v, daily (%d timesteps)\n", frc.T[0].Format("2006-01-02"), frc.T[nt-1].Format("2006-01-02"), nt)

	srf, stm, shm := 0., 0., 0.
	for j := range frc.T {
		srf += frc.Rf[j]
		stm += (frc.Tx[j] + frc.Tn[j]) / 2.
		shm += frc.Rh[j]
	}
	srf *= 365.24 / float64(nt)

	fmt.Printf(" rainfall (units/yr): %.1f   mean T: %.1f   mean RH: %.0f%%\n", srf, stm/float64(nt), shm/float64(nt))
}
