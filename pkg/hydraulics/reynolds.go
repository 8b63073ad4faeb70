package hydraulics

import "fmt"

// Reynolds returns rho·v·d/mu. The viscosity must be positive; the other
// arguments are taken as given.
func Reynolds(rho, v, d, mu float64) (float64, error) {
	if !positive(mu) {
		return 0, fmt.Errorf("%w: viscosity must be positive, got %g", ErrInvalidParameter, mu)
	}
	return rho * v * d / mu, nil
}
