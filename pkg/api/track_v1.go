// pkg/api/track_v1.go
package api

// TrackPointV1 is the stable JSON/JSONL schema for one trajectory sample.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type TrackPointV1 struct {
	StarID          string  `json:"star_id"`
	Step            int     `json:"step"`
	Age             float64 `json:"age_myr"`
	Stage           string  `json:"stage"` // "MS", "HG", "COWD", ...
	Mass            float64 `json:"mass"`
	Metallicity     float64 `json:"metallicity"`
	Luminosity      float64 `json:"luminosity"`
	Radius          float64 `json:"radius"`
	Temperature     float64 `json:"temperature"`
	CoreMass        float64 `json:"core_mass"`
	EnvelopeMass    float64 `json:"envelope_mass"`
	AngularMomentum float64 `json:"angular_momentum,omitempty"`
	AngularVelocity float64 `json:"angular_velocity"`
}

// LandmarksV1 is the stable schema for the landmark table of one mass.
type LandmarksV1 struct {
	Mass        float64 `json:"mass"`
	Metallicity float64 `json:"metallicity"`

	MHook float64 `json:"m_hook"`
	MHeF  float64 `json:"m_hef"`
	MFGB  float64 `json:"m_fgb"`

	LZAMS float64 `json:"l_zams"`
	RZAMS float64 `json:"r_zams"`

	THook float64 `json:"t_hook"`
	TMS   float64 `json:"t_ms"`
	LTMS  float64 `json:"l_tms"`
	RTMS  float64 `json:"r_tms"`

	TBGB float64 `json:"t_bgb"`
	LBGB float64 `json:"l_bgb"`
	RBGB float64 `json:"r_bgb"`

	THeI float64 `json:"t_hei"`
	LHeI float64 `json:"l_hei"`
	RHeI float64 `json:"r_hei"`

	McBGB  float64 `json:"mc_bgb"`
	McHeI  float64 `json:"mc_hei"`
	McBAGB float64 `json:"mc_bagb"`
}

// StarSummaryV1 is the stable schema for the end state of one trajectory
// (population runs with --final-only).
type StarSummaryV1 struct {
	StarID       string       `json:"star_id"`
	InitialMass  float64      `json:"initial_mass"`
	Steps        int          `json:"steps"`
	Stages       []string     `json:"stages"` // in order of first appearance
	Final        TrackPointV1 `json:"final"`
	Error        string       `json:"error,omitempty"`
	HitStepLimit bool         `json:"hit_step_limit,omitempty"`
}
