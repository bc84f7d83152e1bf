package omemeta

import (
	"io"

	"github.com/keithschulze/omemeta/internal/types"
)

// SourceKind is an alias to types.SourceKind.
// Re-exported from internal/types to maintain the public API.
type SourceKind = types.SourceKind

// Re-export all source kind constants.
const (
	SourceUnknown = types.SourceUnknown
	SourceOMEXML  = types.SourceOMEXML
	SourceGzipXML = types.SourceGzipXML
	SourceBridged = types.SourceBridged
)

// DetectSource is a wrapper around types.DetectSource.
// It classifies how the OME-XML metadata for a file is obtained: read
// directly, decompressed, or bridged through an external tool.
func DetectSource(r io.ReaderAt, size int64, path string) (SourceKind, error) {
	return types.DetectSource(r, size, path)
}
