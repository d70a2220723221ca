package physics

import "math"

// Solver computes a Result from validated inputs. Solvers are pure: no
// I/O, no shared state, deterministic output.
type Solver func(inputs map[string]any) (Result, error)

// SolveSchwarzschild evaluates the Schwarzschild metric at a point.
// The system works in units where G/c^2 is folded into how mass is
// supplied, so the Schwarzschild radius is rs = 2*mass; the Ricci scalar
// uses the SI constants directly.
func SolveSchwarzschild(inputs map[string]any) (Result, error) {
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

	rs := 2 * mass
	f := 1 - rs/radius
	sin2 := math.Sin(theta) * math.Sin(theta)

	c2 := SpeedOfLight * SpeedOfLight
	ricci := 2 * GravitationalConstant * mass / (c2 * radius * radius * radius)
	gm := GravitationalConstant * mass
	kretschmann := 48 * gm * gm / (c2 * c2 * math.Pow(radius, 6))

	return Result{
		Type:        TypeSchwarzschild,
		Implemented: true,
		Metric: &MetricComponents{
			Gtt:         -f,
			Grr:         1 / f,
			GThetaTheta: ptr(radius * radius),
			GPhiPhi:     ptr(radius * radius * sin2),
		},
		RicciScalar:       ptr(ricci),
		EventHorizon:      ptr(rs),
		KretschmannScalar: ptr(kretschmann),
		VacuumSolution:    boolPtr(true),
	}, nil
}

func boolPtr(v bool) *bool { return &v }
