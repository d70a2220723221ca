package physics

// stubSolver returns a solver whose output is explicitly marked as not
// yet computed. The marker is the contract: callers must treat
// Implemented=false as "unsupported", never as a physically meaningful
// all-zero answer.
func stubSolver(calcType string) Solver {
	return func(map[string]any) (Result, error) {
		return Result{
			Type:        calcType,
			Implemented: false,
			Note:        "calculation type " + calcType + " is not yet implemented; values are placeholders",
		}, nil
	}
}
