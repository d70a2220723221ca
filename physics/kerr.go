package physics

import "math"

// SolveKerr evaluates the Kerr metric in Boyer-Lindquist coordinates at a
// point. The spin parameter is a = angular_momentum / mass. The Ricci
// scalar is identically zero: Kerr is a vacuum solution.
func SolveKerr(inputs map[string]any) (Result, error) {
	mass, err := requireNumber(inputs, "mass")
	if err != nil {
		return Result{}, err
	}
	radius, err := requireNumber(inputs, "radius")
	if err != nil {
		return Result{}, err
	}
	theta, err := numberOr(inputs, "theta", DefaultTheta)
	if err != nil {
		return Result{}, err
	}
	j, err := numberOr(inputs, "angular_momentum", 0)
	if err != nil {
		return Result{}, err
	}

	rs := 2 * mass
	a := j / mass
	cos := math.Cos(theta)
	sin2 := math.Sin(theta) * math.Sin(theta)

	rho2 := radius*radius + a*a*cos*cos
	delta := radius*radius - rs*radius + a*a

	horizonDisc := math.Sqrt(mass*mass - a*a)

	return Result{
		Type:        TypeKerr,
		Implemented: true,
		Metric: &MetricComponents{
			Gtt:         -(1 - rs*radius/rho2),
			Grr:         rho2 / delta,
			GThetaTheta: ptr(rho2),
			GPhiPhi:     ptr((radius*radius + a*a + rs*radius*a*a*sin2/rho2) * sin2),
		},
		RicciScalar:    ptr(0),
		EventHorizon:   ptr(mass + horizonDisc),
		InnerHorizon:   ptr(mass - horizonDisc),
		Ergosphere:     ptr(mass + math.Sqrt(mass*mass-a*a*cos*cos)),
		VacuumSolution: boolPtr(true),
	}, nil
}
