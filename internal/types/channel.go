package types

// ChannelMetadata describes one acquisition channel of a series.
//
// All fields are optional in the OME schema. Numeric fields are zero when
// the source omits them; the wavelength and pinhole unit fields carry the
// OME defaults (nm, µm) and Color defaults to "-1" (white in the OME
// signed-RGBA encoding).
type ChannelMetadata struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	SamplesPerPixel  int    `json:"samples_per_pixel"`
	IlluminationType string `json:"illumination_type"`

	PinholeSize     float64 `json:"pinhole_size"`
	PinholeSizeUnit string  `json:"pinhole_size_unit"`

	AcquisitionMode string `json:"acquisition_mode"`
	ContrastMethod  string `json:"contrast_method"`

	ExcitationWavelength float64 `json:"excitation_wavelength"`
	ExcitationUnit       string  `json:"excitation_unit"`
	EmissionWavelength   float64 `json:"emission_wavelength"`
	EmissionUnit         string  `json:"emission_unit"`

	Fluor      string  `json:"fluor"`
	NDFilter   float64 `json:"nd_filter"`
	PockelCell int     `json:"pockel_cell"`
	Color      string  `json:"color"`
}

// AsMap exports the record as a map keyed by field name.
func (c ChannelMetadata) AsMap() map[string]any {
	return map[string]any{
		"id":                    c.ID,
		"name":                  c.Name,
		"samples_per_pixel":     c.SamplesPerPixel,
		"illumination_type":     c.IlluminationType,
		"pinhole_size":          c.PinholeSize,
		"pinhole_size_unit":     c.PinholeSizeUnit,
		"acquisition_mode":      c.AcquisitionMode,
		"contrast_method":       c.ContrastMethod,
		"excitation_wavelength": c.ExcitationWavelength,
		"excitation_unit":       c.ExcitationUnit,
		"emission_wavelength":   c.EmissionWavelength,
		"emission_unit":         c.EmissionUnit,
		"fluor":                 c.Fluor,
		"nd_filter":             c.NDFilter,
		"pockel_cell":           c.PockelCell,
		"color":                 c.Color,
	}
}
