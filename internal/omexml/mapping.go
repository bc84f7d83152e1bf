package omexml

import (
	"fmt"
	"strconv"

	"github.com/keithschulze/omemeta/internal/types"
)

// seriesMapper carries the identity of the series being mapped so that
// warnings and field errors are attributed to it.
type seriesMapper struct {
	id    string
	index int
	warns []types.Warning
}

func (d *Document) mapSeries(node *element, index int) (types.SeriesMetadata, []types.Warning, error) {
	m := &seriesMapper{id: node.attrs["ID"], index: index}

	pixels := node.child("Pixels", d.ns)
	if pixels == nil {
		return types.SeriesMetadata{}, nil, &types.FieldMissingError{
			SeriesID:    m.id,
			SeriesIndex: index,
			Field:       "Pixels",
		}
	}

	sm := types.SeriesMetadata{
		ID:   m.id,
		Name: node.attrs["Name"],

		PixelID:         pixels.attrs["ID"],
		DimensionOrder:  pixels.attrs["DimensionOrder"],
		PixelType:       pixels.attrs["Type"],
		SignificantBits: m.optInt("series", pixels.attrs, "SignificantBits"),
		Interleaved:     m.optBool("series", pixels.attrs, "Interleaved"),
		BigEndian:       m.optBool("series", pixels.attrs, "BigEndian"),

		VoxelSizeX: m.optFloat("series", pixels.attrs, "PhysicalSizeX"),
		VoxelUnitX: attrDefault(pixels.attrs, "PhysicalSizeXUnit", "µm"),
		VoxelSizeY: m.optFloat("series", pixels.attrs, "PhysicalSizeY"),
		VoxelUnitY: attrDefault(pixels.attrs, "PhysicalSizeYUnit", "µm"),
		VoxelSizeZ: m.optFloat("series", pixels.attrs, "PhysicalSizeZ"),
		VoxelUnitZ: attrDefault(pixels.attrs, "PhysicalSizeZUnit", "µm"),

		TimeIncrement: m.optFloat("series", pixels.attrs, "TimeIncrement"),
		TimeUnit:      attrDefault(pixels.attrs, "TimeIncrementUnit", "s"),
	}

	// The five dimension sizes are the only attributes whose absence fails
	// the series.
	var err error
	if sm.SizeX, err = m.requiredInt(pixels.attrs, "SizeX"); err != nil {
		return types.SeriesMetadata{}, m.warns, err
	}
	if sm.SizeY, err = m.requiredInt(pixels.attrs, "SizeY"); err != nil {
		return types.SeriesMetadata{}, m.warns, err
	}
	if sm.SizeZ, err = m.requiredInt(pixels.attrs, "SizeZ"); err != nil {
		return types.SeriesMetadata{}, m.warns, err
	}
	if sm.SizeC, err = m.requiredInt(pixels.attrs, "SizeC"); err != nil {
		return types.SeriesMetadata{}, m.warns, err
	}
	if sm.SizeT, err = m.requiredInt(pixels.attrs, "SizeT"); err != nil {
		return types.SeriesMetadata{}, m.warns, err
	}

	for _, cn := range pixels.childrenNamed("Channel", d.ns) {
		sm.Channels = append(sm.Channels, m.mapChannel(cn))
	}
	for _, pn := range pixels.childrenNamed("Plane", d.ns) {
		if plane, ok := m.mapPlane(pn); ok {
			sm.Planes = append(sm.Planes, plane)
		}
	}

	return sm, m.warns, nil
}

func (m *seriesMapper) mapChannel(node *element) types.ChannelMetadata {
	return types.ChannelMetadata{
		ID:               node.attrs["ID"],
		Name:             node.attrs["Name"],
		SamplesPerPixel:  m.optInt("channel", node.attrs, "SamplesPerPixel"),
		IlluminationType: node.attrs["IlluminationType"],

		PinholeSize:     m.optFloat("channel", node.attrs, "PinholeSize"),
		PinholeSizeUnit: attrDefault(node.attrs, "PinholeSizeUnit", "µm"),

		AcquisitionMode: node.attrs["AcquisitionMode"],
		ContrastMethod:  node.attrs["ContrastMethod"],

		ExcitationWavelength: m.optFloat("channel", node.attrs, "ExcitationWavelength"),
		ExcitationUnit:       attrDefault(node.attrs, "ExcitationWavelengthUnit", "nm"),
		EmissionWavelength:   m.optFloat("channel", node.attrs, "EmissionWavelength"),
		EmissionUnit:         attrDefault(node.attrs, "EmissionWavelengthUnit", "nm"),

		Fluor:      node.attrs["Fluor"],
		NDFilter:   m.optFloat("channel", node.attrs, "NDFilter"),
		PockelCell: m.optInt("channel", node.attrs, "PockelCellSetting"),
		Color:      attrDefault(node.attrs, "Color", "-1"),
	}
}

// mapPlane maps a Plane element. A plane missing any of its C/T/Z indices
// cannot be positioned within the series and is dropped with a warning.
func (m *seriesMapper) mapPlane(node *element) (types.PlaneMetadata, bool) {
	plane := types.PlaneMetadata{
		TimeInterval: m.optFloat("plane", node.attrs, "DeltaT"),
		TimeUnit:     attrDefault(node.attrs, "DeltaTUnit", "s"),

		ExposureTime:     m.optFloat("plane", node.attrs, "ExposureTime"),
		ExposureTimeUnit: attrDefault(node.attrs, "ExposureTimeUnit", "s"),

		StageX:     m.optFloat("plane", node.attrs, "PositionX"),
		StageXUnit: attrDefault(node.attrs, "PositionXUnit", "reference frame"),
		StageY:     m.optFloat("plane", node.attrs, "PositionY"),
		StageYUnit: attrDefault(node.attrs, "PositionYUnit", "reference frame"),
		StageZ:     m.optFloat("plane", node.attrs, "PositionZ"),
		StageZUnit: attrDefault(node.attrs, "PositionZUnit", "reference frame"),
	}

	indices := []struct {
		key string
		dst *int
	}{
		{"TheC", &plane.C},
		{"TheT", &plane.T},
		{"TheZ", &plane.Z},
	}
	for _, idx := range indices {
		v, ok := node.attrs[idx.key]
		if !ok {
			m.warn("plane", "dropped plane: missing %s", idx.key)
			return types.PlaneMetadata{}, false
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			m.warn("plane", "dropped plane: invalid %s value %q", idx.key, v)
			return types.PlaneMetadata{}, false
		}
		*idx.dst = n
	}

	return plane, true
}

func (m *seriesMapper) requiredInt(attrs map[string]string, key string) (int, error) {
	v, ok := attrs[key]
	if !ok || v == "" {
		return 0, &types.FieldMissingError{SeriesID: m.id, SeriesIndex: m.index, Field: key}
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &types.FieldMissingError{
			SeriesID:    m.id,
			SeriesIndex: m.index,
			Field:       key,
			Reason:      fmt.Sprintf("invalid value %q", v),
		}
	}
	return n, nil
}

func (m *seriesMapper) optInt(stage string, attrs map[string]string, key string) int {
	v, ok := attrs[key]
	if !ok || v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		m.warn(stage, "invalid %s value %q", key, v)
		return 0
	}
	return n
}

func (m *seriesMapper) optFloat(stage string, attrs map[string]string, key string) float64 {
	v, ok := attrs[key]
	if !ok || v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		m.warn(stage, "invalid %s value %q", key, v)
		return 0
	}
	return f
}

func (m *seriesMapper) optBool(stage string, attrs map[string]string, key string) bool {
	v, ok := attrs[key]
	if !ok || v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		m.warn(stage, "invalid %s value %q", key, v)
		return false
	}
	return b
}

func (m *seriesMapper) warn(stage, format string, args ...any) {
	m.warns = append(m.warns, types.Warning{
		Stage:   stage,
		Series:  m.index,
		Message: fmt.Sprintf(format, args...),
	})
}

func attrDefault(attrs map[string]string, key, def string) string {
	if v, ok := attrs[key]; ok && v != "" {
		return v
	}
	return def
}
