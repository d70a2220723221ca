// Package physics provides closed-form solvers for general-relativity
// metric calculations, together with the physical admissibility checks
// that must pass before a solver runs.
//
// Solvers are pure functions of their validated inputs: for a fixed
// calculation type and input set, repeated calls return bit-identical
// results. Calculation types that are advertised but not yet computable
// return a Result explicitly marked Implemented=false rather than
// fabricated zeros.
package physics
