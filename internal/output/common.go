// internal/output/common.go
package output

import (
	"herd/core/stage"
	"herd/core/star"
)

// Output formats understood by the writers.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatJSONL  = "jsonl"
	FormatPretty = "pretty"
)

// TSVHeader is the canonical header row for track-point text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "star_id\tstep\tage_myr\tstage\tmass\tmetallicity\tluminosity\tradius\ttemperature\tcore_mass\tenvelope_mass\tangular_velocity"

// SummaryTSVHeader is the header row for --final-only text output.
const SummaryTSVHeader = "star_id\tinitial_mass\tsteps\tfinal_stage\tage_myr\tmass\tluminosity\tradius\ttemperature\tcore_mass\tstages\terror"

// Row is one track point tagged with the star it belongs to.
// Step counts from 0 at the ZAMS.
type Row struct {
	StarID string
	Step   int
	Point  star.TrackPoint
}

// Summary is the end state of one trajectory.
type Summary struct {
	StarID      string
	InitialMass float64
	Steps       int
	Stages      []stage.Stage
	Final       star.TrackPoint
	Err         error
}
