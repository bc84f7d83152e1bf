package omexml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keithschulze/omemeta/internal/types"
)

const fullSeriesXML = `<?xml version="1.0" encoding="UTF-8"?>
<OME xmlns="http://www.openmicroscopy.org/Schemas/OME/2016-06">
  <Image ID="Image:0" Name="decon.dv">
    <Pixels ID="Pixels:0" DimensionOrder="XYZCT" Type="uint16"
            SignificantBits="12" Interleaved="false" BigEndian="true"
            SizeX="960" SizeY="960" SizeZ="40" SizeC="2" SizeT="1"
            PhysicalSizeX="0.0645" PhysicalSizeXUnit="µm"
            PhysicalSizeY="0.0645" PhysicalSizeYUnit="µm"
            PhysicalSizeZ="0.2" PhysicalSizeZUnit="µm"
            TimeIncrement="2.5" TimeIncrementUnit="ms">
      <Channel ID="Channel:0:0" Name="DAPI" SamplesPerPixel="1"
               IlluminationType="Epifluorescence" PinholeSize="1.2"
               AcquisitionMode="WideField" ContrastMethod="Fluorescence"
               ExcitationWavelength="358" EmissionWavelength="461"
               Fluor="DAPI" NDFilter="0.5" PockelCellSetting="3"
               Color="65535"/>
      <Channel ID="Channel:0:1"/>
      <Plane TheC="0" TheT="0" TheZ="0" DeltaT="0.0" ExposureTime="0.05"
             PositionX="1000.25" PositionXUnit="µm" PositionY="2000.5"
             PositionZ="15.75"/>
      <Plane TheC="1" TheT="0" TheZ="0"/>
    </Pixels>
  </Image>
</OME>`

func TestParse_Envelope(t *testing.T) {
	doc, err := Parse([]byte(fullSeriesXML))
	require.NoError(t, err)

	assert.Equal(t, "http://www.openmicroscopy.org/Schemas/OME/2016-06", doc.Namespace())
	assert.Equal(t, 1, doc.SeriesCount())
	assert.Equal(t, []byte(fullSeriesXML), doc.Raw())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty input", ""},
		{"not xml", "definitely not xml"},
		{"wrong root element", `<?xml version="1.0"?><Pixels SizeX="1"/>`},
		{"unclosed element", `<OME><Image ID="Image:0">`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
		})
	}
}

func TestParse_NoNamespace(t *testing.T) {
	// Documents without an xmlns declaration still parse; all elements
	// share the empty namespace.
	doc, err := Parse([]byte(`<OME><Image ID="Image:0"><Pixels SizeX="4" SizeY="4" SizeZ="1" SizeC="1" SizeT="1"/></Image></OME>`))
	require.NoError(t, err)
	require.Equal(t, 1, doc.SeriesCount())

	series, _, err := doc.Series(0)
	require.NoError(t, err)
	assert.Equal(t, 4, series.SizeX)
}

func TestDocument_Series(t *testing.T) {
	doc, err := Parse([]byte(fullSeriesXML))
	require.NoError(t, err)

	series, warns, err := doc.Series(0)
	require.NoError(t, err)
	assert.Empty(t, warns)

	assert.Equal(t, "Image:0", series.ID)
	assert.Equal(t, "decon.dv", series.Name)
	assert.Equal(t, "Pixels:0", series.PixelID)
	assert.Equal(t, "XYZCT", series.DimensionOrder)
	assert.Equal(t, "uint16", series.PixelType)
	assert.Equal(t, 12, series.SignificantBits)
	assert.False(t, series.Interleaved)
	assert.True(t, series.BigEndian)

	assert.Equal(t, 960, series.SizeX)
	assert.Equal(t, 960, series.SizeY)
	assert.Equal(t, 40, series.SizeZ)
	assert.Equal(t, 2, series.SizeC)
	assert.Equal(t, 1, series.SizeT)

	assert.Equal(t, 0.0645, series.VoxelSizeX)
	assert.Equal(t, 0.0645, series.VoxelSizeY)
	assert.Equal(t, 0.2, series.VoxelSizeZ)
	assert.Equal(t, 2.5, series.TimeIncrement)
	assert.Equal(t, "ms", series.TimeUnit)

	require.Len(t, series.Channels, 2)
	full := series.Channels[0]
	assert.Equal(t, "Channel:0:0", full.ID)
	assert.Equal(t, "DAPI", full.Name)
	assert.Equal(t, 1, full.SamplesPerPixel)
	assert.Equal(t, "Epifluorescence", full.IlluminationType)
	assert.Equal(t, 1.2, full.PinholeSize)
	assert.Equal(t, "µm", full.PinholeSizeUnit)
	assert.Equal(t, "WideField", full.AcquisitionMode)
	assert.Equal(t, "Fluorescence", full.ContrastMethod)
	assert.Equal(t, 358.0, full.ExcitationWavelength)
	assert.Equal(t, "nm", full.ExcitationUnit)
	assert.Equal(t, 461.0, full.EmissionWavelength)
	assert.Equal(t, "nm", full.EmissionUnit)
	assert.Equal(t, "DAPI", full.Fluor)
	assert.Equal(t, 0.5, full.NDFilter)
	assert.Equal(t, 3, full.PockelCell)
	assert.Equal(t, "65535", full.Color)

	// A bare channel gets the schema defaults.
	bare := series.Channels[1]
	assert.Equal(t, "Channel:0:1", bare.ID)
	assert.Equal(t, "µm", bare.PinholeSizeUnit)
	assert.Equal(t, "nm", bare.ExcitationUnit)
	assert.Equal(t, "nm", bare.EmissionUnit)
	assert.Equal(t, "-1", bare.Color)

	require.Len(t, series.Planes, 2)
	plane := series.Planes[0]
	assert.Equal(t, 0, plane.C)
	assert.Equal(t, 0.05, plane.ExposureTime)
	assert.Equal(t, "s", plane.ExposureTimeUnit)
	assert.Equal(t, 1000.25, plane.StageX)
	assert.Equal(t, "µm", plane.StageXUnit)
	assert.Equal(t, 2000.5, plane.StageY)
	assert.Equal(t, "reference frame", plane.StageYUnit)
	assert.Equal(t, 15.75, plane.StageZ)
	assert.Equal(t, 1, series.Planes[1].C)
}

func TestDocument_Series_RequiredMissing(t *testing.T) {
	tests := []struct {
		name   string
		pixels string
		field  string
	}{
		{"missing SizeX", `SizeY="8" SizeZ="1" SizeC="1" SizeT="1"`, "SizeX"},
		{"missing SizeT", `SizeX="8" SizeY="8" SizeZ="1" SizeC="1"`, "SizeT"},
		{"invalid SizeC", `SizeX="8" SizeY="8" SizeZ="1" SizeC="two" SizeT="1"`, "SizeC"},
		{"empty SizeZ", `SizeX="8" SizeY="8" SizeZ="" SizeC="1" SizeT="1"`, "SizeZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(`<OME><Image ID="Image:0"><Pixels ` + tt.pixels + `/></Image></OME>`))
			require.NoError(t, err)

			_, _, err = doc.Series(0)
			var missing *types.FieldMissingError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.field, missing.Field)
			assert.Equal(t, "Image:0", missing.SeriesID)
			assert.Equal(t, 0, missing.SeriesIndex)
		})
	}
}

func TestDocument_Series_NoPixels(t *testing.T) {
	doc, err := Parse([]byte(`<OME><Image ID="Image:0"/></OME>`))
	require.NoError(t, err)

	_, _, err = doc.Series(0)
	var missing *types.FieldMissingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Pixels", missing.Field)
}

func TestDocument_Series_Warnings(t *testing.T) {
	doc, err := Parse([]byte(`<OME><Image ID="Image:0">
		<Pixels SizeX="8" SizeY="8" SizeZ="1" SizeC="1" SizeT="1"
		        PhysicalSizeX="tiny">
			<Plane TheT="0" TheZ="0"/>
			<Plane TheC="0" TheT="0" TheZ="0"/>
		</Pixels>
	</Image></OME>`))
	require.NoError(t, err)

	series, warns, err := doc.Series(0)
	require.NoError(t, err)

	// Unparseable optional field defaults to zero; the positionless plane
	// is dropped. Both produce warnings, the series itself survives.
	assert.Equal(t, 0.0, series.VoxelSizeX)
	require.Len(t, series.Planes, 1)
	require.Len(t, warns, 2)
	assert.Equal(t, "series", warns[0].Stage)
	assert.Equal(t, "plane", warns[1].Stage)
}

func TestDocument_Series_OutOfRange(t *testing.T) {
	doc, err := Parse([]byte(`<OME/>`))
	require.NoError(t, err)
	assert.Equal(t, 0, doc.SeriesCount())

	_, _, err = doc.Series(0)
	require.Error(t, err)
}

func TestDocument_IgnoresForeignNamespaceImages(t *testing.T) {
	// Image elements outside the root's namespace are not series.
	doc, err := Parse([]byte(`<OME xmlns="urn:ome" xmlns:sa="urn:sa">
		<Image ID="Image:0"><Pixels SizeX="8" SizeY="8" SizeZ="1" SizeC="1" SizeT="1"/></Image>
		<sa:Image ID="Annotation:0"/>
	</OME>`))
	require.NoError(t, err)
	assert.Equal(t, 1, doc.SeriesCount())
}
