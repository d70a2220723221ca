package physics

import "math"

// SolveFLRW evaluates the Friedmann-Lemaitre-Robertson-Walker metric for
// curvature sign k in {-1, 0, +1}. Any other k falls back to the flat
// form. The scale factor defaults to 1 and the Hubble parameter is passed
// through, defaulting to 70 km/s/Mpc.
func SolveFLRW(inputs map[string]any) (Result, error) {
	a, err := numberOr(inputs, "scale_factor", 1)
	if err != nil {
		return Result{}, err
	}
	r, err := numberOr(inputs, "radius", 1)
	if err != nil {
		return Result{}, err
	}
	theta, err := numberOr(inputs, "theta", DefaultTheta)
	if err != nil {
		return Result{}, err
	}
	k, err := numberOr(inputs, "k", 0)
	if err != nil {
		return Result{}, err
	}
	hubble, err := numberOr(inputs, "hubble_parameter", DefaultHubbleParameter)
	if err != nil {
		return Result{}, err
	}

	a2 := a * a
	var grr float64
	switch k {
	case -1:
		grr = a2 / (1 - r*r)
	case 1:
		grr = a2 / (1 + r*r)
	default:
		grr = a2
	}

	sin2 := math.Sin(theta) * math.Sin(theta)
	ricci := 6 * (a2 + k) / (a2 * a2)

	return Result{
		Type:        TypeFLRW,
		Implemented: true,
		Metric: &MetricComponents{
			Gtt:         -1,
			Grr:         grr,
			GThetaTheta: ptr(a2 * r * r),
			GPhiPhi:     ptr(a2 * r * r * sin2),
		},
		RicciScalar:     ptr(ricci),
		HubbleParameter: ptr(hubble),
	}, nil
}
