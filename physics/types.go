package physics

import "math"

// Standard SI constants used by the curvature scalars.
const (
	GravitationalConstant = 6.674e-11   // m^3 kg^-1 s^-2
	SpeedOfLight          = 299792458.0 // m s^-1
)

// Calculation types with closed-form solvers.
const (
	TypeSchwarzschild    = "schwarzschild"
	TypeKerr             = "kerr"
	TypeEinsteinTensor   = "einstein_tensor"
	TypeHawkingRadiation = "hawking_radiation"
	TypeFLRW             = "flrw"
)

// StubTypes are the advertised calculation types whose solvers are not
// yet implemented. Requests for these succeed but return a Result with
// Implemented=false.
var StubTypes = []string{
	"christoffel",
	"ricci_tensor",
	"riemann_tensor",
	"weyl_tensor",
	"geodesic",
	"event_horizon",
	"redshift",
	"gravitational_lensing",
	"gravitational_waves",
	"energy_conditions",
	"stress_energy_tensor",
	"reissner_nordstrom",
	"kerr_newman",
	"godel",
	"friedmann",
	"bianchi_identities",
	"kretschmann_scalar",
	"penrose_diagram",
	"black_hole_thermodynamics",
	"cosmological_constant",
	"dark_energy",
	"dark_matter",
	"inflation",
	"wormhole",
}

// MetricComponents holds the diagonal components of a spacetime metric.
// GThetaTheta and GPhiPhi are pointers so that a shaped response can omit
// them while always carrying g_tt and g_rr.
type MetricComponents struct {
	Gtt         float64  `json:"g_tt"`
	Grr         float64  `json:"g_rr"`
	GThetaTheta *float64 `json:"g_theta_theta,omitempty"`
	GPhiPhi     *float64 `json:"g_phi_phi,omitempty"`
}

// Result is the outcome of one calculation. Scalar fields are pointers so
// each calculation type carries only the quantities it actually derives.
type Result struct {
	Type        string            `json:"type"`
	Implemented bool              `json:"implemented"`
	Metric      *MetricComponents `json:"metricComponents,omitempty"`

	RicciScalar       *float64 `json:"ricciScalar,omitempty"`
	EventHorizon      *float64 `json:"eventHorizon,omitempty"`
	InnerHorizon      *float64 `json:"innerHorizon,omitempty"`
	Ergosphere        *float64 `json:"ergosphere,omitempty"`
	SurfaceGravity    *float64 `json:"surfaceGravity,omitempty"`
	Temperature       *float64 `json:"temperature,omitempty"`
	Entropy           *float64 `json:"entropy,omitempty"`
	HubbleParameter   *float64 `json:"hubbleParameter,omitempty"`
	KretschmannScalar *float64 `json:"kretschmannScalar,omitempty"`

	EinsteinTensor map[string]float64 `json:"einsteinTensor,omitempty"`
	VacuumSolution *bool              `json:"isVacuumSolution,omitempty"`

	// Note explains a stub result; empty for computed results.
	Note string `json:"note,omitempty"`
}

// Finite reports whether every numeric field of the result is a finite
// IEEE-754 double. Solvers can produce NaN or Inf from admissible but
// degenerate inputs (e.g. radius exactly at the horizon); callers must
// reject such results rather than cache or return them.
func (r Result) Finite() bool {
	if r.Metric != nil {
		if !finite(r.Metric.Gtt) || !finite(r.Metric.Grr) {
			return false
		}
		if r.Metric.GThetaTheta != nil && !finite(*r.Metric.GThetaTheta) {
			return false
		}
		if r.Metric.GPhiPhi != nil && !finite(*r.Metric.GPhiPhi) {
			return false
		}
	}
	for _, v := range []*float64{
		r.RicciScalar, r.EventHorizon, r.InnerHorizon, r.Ergosphere,
		r.SurfaceGravity, r.Temperature, r.Entropy,
		r.HubbleParameter, r.KretschmannScalar,
	} {
		if v != nil && !finite(*v) {
			return false
		}
	}
	for _, v := range r.EinsteinTensor {
		if !finite(v) {
			return false
		}
	}
	return true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ptr returns a pointer to v, for populating optional result fields.
func ptr(v float64) *float64 { return &v }
