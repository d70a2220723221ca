package physics

// SolveEinsteinTensor derives the Einstein tensor for the metric named by
// the metric_type input. The supported metrics are vacuum solutions, for
// which every component vanishes identically. Other metric types fail
// rather than pretend a zero tensor was computed.
func SolveEinsteinTensor(inputs map[string]any) (Result, error) {
	metricType, ok := stringField(inputs, "metric_type")
	if !ok {
		return Result{}, &MissingFieldError{
			Field:   "metric_type",
			Message: "missing metric type for einstein_tensor calculation",
		}
	}

	switch metricType {
	case TypeSchwarzschild, TypeKerr:
		return Result{
			Type:        TypeEinsteinTensor,
			Implemented: true,
			EinsteinTensor: map[string]float64{
				"G_tt":          0,
				"G_rr":          0,
				"G_theta_theta": 0,
				"G_phi_phi":     0,
			},
			VacuumSolution: boolPtr(true),
		}, nil
	default:
		return Result{}, &UnsupportedMetricError{MetricType: metricType}
	}
}
