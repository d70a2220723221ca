package physics

// Validator checks that inputs are physically admissible for one
// calculation type. It runs before any solver math and has no side
// effects. Presence checks happen before range checks so a caller always
// learns about an absent field first.
type Validator func(inputs map[string]any) error

func validatePositive(inputs map[string]any, field, label string) error {
	v, err := requireNumber(inputs, field)
	if err != nil {
		return err
	}
	if v <= 0 {
		return constraintf("%s must be positive", label)
	}
	return nil
}

// validateSchwarzschild requires mass > 0 and radius > 0.
func validateSchwarzschild(inputs map[string]any) error {
	if err := validatePositive(inputs, "mass", "Mass"); err != nil {
		return err
	}
	return validatePositive(inputs, "radius", "Radius")
}

// validateKerr additionally enforces the Kerr bound a^2 <= m^2 on the
// angular momentum.
func validateKerr(inputs map[string]any) error {
	if err := validateSchwarzschild(inputs); err != nil {
		return err
	}
	mass, err := requireNumber(inputs, "mass")
	if err != nil {
		return err
	}
	j, err := numberOr(inputs, "angular_momentum", 0)
	if err != nil {
		return err
	}
	if j*j > mass*mass {
		return constraintf("Angular momentum squared cannot exceed mass squared")
	}
	return nil
}

// validateHawking enforces the cosmic censorship bound a^2 + Q^2 <= m^2.
// Charge and angular momentum default to zero when absent.
func validateHawking(inputs map[string]any) error {
	if err := validatePositive(inputs, "mass", "Mass"); err != nil {
		return err
	}
	mass, err := requireNumber(inputs, "mass")
	if err != nil {
		return err
	}
	j, err := numberOr(inputs, "angular_momentum", 0)
	if err != nil {
		return err
	}
	q, err := numberOr(inputs, "charge", 0)
	if err != nil {
		return err
	}
	if j*j+q*q > mass*mass {
		return constraintf("cosmic censorship constraint violated: angular_momentum^2 + charge^2 cannot exceed mass^2")
	}
	return nil
}

// validateEinsteinTensor requires a nested metric_type naming the metric
// whose tensor should be derived. Its absence is reported distinctly from
// a generic missing field.
func validateEinsteinTensor(inputs map[string]any) error {
	if _, ok := stringField(inputs, "metric_type"); !ok {
		return &MissingFieldError{
			Field:   "metric_type",
			Message: "missing metric type for einstein_tensor calculation",
		}
	}
	return nil
}

// validateFLRW accepts any inputs; the FLRW solver applies defaults for
// everything it reads.
func validateFLRW(inputs map[string]any) error {
	return nil
}

// validateNothing is the validator for stub calculation types.
func validateNothing(inputs map[string]any) error {
	return nil
}
