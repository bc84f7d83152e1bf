package types

// PlaneMetadata describes one 2D plane of a series: its position along the
// C/T/Z axes plus per-plane acquisition settings.
//
// C, T and Z are required by the OME schema; a Plane element missing any of
// them is dropped with a warning rather than failing the whole series. The
// remaining fields are optional, with stage position units defaulting to
// "reference frame" and time units to "s" per the schema.
type PlaneMetadata struct {
	C int `json:"c"`
	T int `json:"t"`
	Z int `json:"z"`

	TimeInterval float64 `json:"time_interval"`
	TimeUnit     string  `json:"time_unit"`

	ExposureTime     float64 `json:"exposure_time"`
	ExposureTimeUnit string  `json:"exposure_time_unit"`

	StageX     float64 `json:"stage_x"`
	StageXUnit string  `json:"stage_x_unit"`
	StageY     float64 `json:"stage_y"`
	StageYUnit string  `json:"stage_y_unit"`
	StageZ     float64 `json:"stage_z"`
	StageZUnit string  `json:"stage_z_unit"`
}

// AsMap exports the record as a map keyed by field name.
func (p PlaneMetadata) AsMap() map[string]any {
	return map[string]any{
		"c":                  p.C,
		"t":                  p.T,
		"z":                  p.Z,
		"time_interval":      p.TimeInterval,
		"time_unit":          p.TimeUnit,
		"exposure_time":      p.ExposureTime,
		"exposure_time_unit": p.ExposureTimeUnit,
		"stage_x":            p.StageX,
		"stage_x_unit":       p.StageXUnit,
		"stage_y":            p.StageY,
		"stage_y_unit":       p.StageYUnit,
		"stage_z":            p.StageZ,
		"stage_z_unit":       p.StageZUnit,
	}
}
