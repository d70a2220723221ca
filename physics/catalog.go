package physics

// Operation pairs the validator and solver for one calculation type.
type Operation struct {
	Validate Validator
	Solve    Solver
}

// Catalog returns the full dispatch table: every advertised calculation
// type mapped to its validator/solver pair. The returned map is freshly
// built on each call so callers may extend it without aliasing.
func Catalog() map[string]Operation {
	ops := map[string]Operation{
		TypeSchwarzschild:    {Validate: validateSchwarzschild, Solve: SolveSchwarzschild},
		TypeKerr:             {Validate: validateKerr, Solve: SolveKerr},
		TypeEinsteinTensor:   {Validate: validateEinsteinTensor, Solve: SolveEinsteinTensor},
		TypeHawkingRadiation: {Validate: validateHawking, Solve: SolveHawking},
		TypeFLRW:             {Validate: validateFLRW, Solve: SolveFLRW},
	}
	for _, t := range StubTypes {
		ops[t] = Operation{Validate: validateNothing, Solve: stubSolver(t)}
	}
	return ops
}
