package physics

import "math"

// SolveHawking computes black-hole thermodynamic quantities for a
// Kerr-Newman hole: outer horizon, surface gravity, Hawking temperature,
// and Bekenstein-Hawking entropy (geometric units, kB = hbar = 1).
func SolveHawking(inputs map[string]any) (Result, error) {
	mass, err := requireNumber(inputs, "mass")
	if err != nil {
		return Result{}, err
	}
	j, err := numberOr(inputs, "angular_momentum", 0)
	if err != nil {
		return Result{}, err
	}
	q, err := numberOr(inputs, "charge", 0)
	if err != nil {
		return Result{}, err
	}

	a := j / mass
	rPlus := mass + math.Sqrt(mass*mass-a*a-q*q)

	kappa := (rPlus - mass) / (2*rPlus*rPlus + 2*a*a)
	temperature := kappa / (2 * math.Pi)
	entropy := math.Pi * (rPlus*rPlus + a*a)

	return Result{
		Type:           TypeHawkingRadiation,
		Implemented:    true,
		EventHorizon:   ptr(rPlus),
		SurfaceGravity: ptr(kappa),
		Temperature:    ptr(temperature),
		Entropy:        ptr(entropy),
	}, nil
}
