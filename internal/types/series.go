package types

// SeriesMetadata describes one series (one image dataset) within a
// multi-series OME file.
//
// The field set mirrors the attributes of the OME Image and Pixels elements.
// A SeriesMetadata value is immutable once produced by a Reader; callers may
// copy and retain it freely.
//
// SizeX through SizeT are required by the OME schema. A series whose Pixels
// element omits any of them cannot be represented and fails construction
// with a *FieldMissingError. The physical calibration fields are optional
// and zero-valued when the source omits them; their unit fields carry the
// OME defaults (µm for voxel sizes, s for the time increment) even then.
type SeriesMetadata struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Pixel storage description.
	PixelID         string `json:"pixel_id"`
	DimensionOrder  string `json:"dimension_order"`
	PixelType       string `json:"pixel_type"`
	SignificantBits int    `json:"significant_bits"`
	Interleaved     bool   `json:"interleaved"`
	BigEndian       bool   `json:"big_endian"`

	// Dimensions.
	SizeX int `json:"sizex"`
	SizeY int `json:"sizey"`
	SizeZ int `json:"sizez"`
	SizeC int `json:"sizec"`
	SizeT int `json:"sizet"`

	// Physical calibration.
	VoxelSizeX float64 `json:"voxel_size_x"`
	VoxelUnitX string  `json:"voxel_unit_x"`
	VoxelSizeY float64 `json:"voxel_size_y"`
	VoxelUnitY string  `json:"voxel_unit_y"`
	VoxelSizeZ float64 `json:"voxel_size_z"`
	VoxelUnitZ string  `json:"voxel_unit_z"`

	TimeIncrement float64 `json:"time_increment"`
	TimeUnit      string  `json:"time_unit"`

	// Nested acquisition records, in document order.
	Channels []ChannelMetadata `json:"channels"`
	Planes   []PlaneMetadata   `json:"planes"`
}

// AsMap exports the record as a map keyed by field name, recursing into
// channels and planes. The keys match the json tags (snake_case), so the
// result is suitable for key-based lookup and for generic serialization.
func (s SeriesMetadata) AsMap() map[string]any {
	channels := make([]map[string]any, len(s.Channels))
	for i, c := range s.Channels {
		channels[i] = c.AsMap()
	}
	planes := make([]map[string]any, len(s.Planes))
	for i, p := range s.Planes {
		planes[i] = p.AsMap()
	}

	return map[string]any{
		"id":               s.ID,
		"name":             s.Name,
		"pixel_id":         s.PixelID,
		"dimension_order":  s.DimensionOrder,
		"pixel_type":       s.PixelType,
		"significant_bits": s.SignificantBits,
		"interleaved":      s.Interleaved,
		"big_endian":       s.BigEndian,
		"sizex":            s.SizeX,
		"sizey":            s.SizeY,
		"sizez":            s.SizeZ,
		"sizec":            s.SizeC,
		"sizet":            s.SizeT,
		"voxel_size_x":     s.VoxelSizeX,
		"voxel_unit_x":     s.VoxelUnitX,
		"voxel_size_y":     s.VoxelSizeY,
		"voxel_unit_y":     s.VoxelUnitY,
		"voxel_size_z":     s.VoxelSizeZ,
		"voxel_unit_z":     s.VoxelUnitZ,
		"time_increment":   s.TimeIncrement,
		"time_unit":        s.TimeUnit,
		"channels":         channels,
		"planes":           planes,
	}
}
