package types

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// SourceKind classifies how the OME-XML metadata for a path is obtained.
type SourceKind int

const (
	// SourceUnknown represents a file that could not be classified.
	SourceUnknown SourceKind = iota
	// SourceOMEXML represents a raw OME-XML document read directly.
	SourceOMEXML
	// SourceGzipXML represents a gzip-compressed OME-XML document.
	SourceGzipXML
	// SourceBridged represents a proprietary image format whose metadata
	// must be extracted by an external Bio-Formats tool.
	SourceBridged
)

// String returns a human-readable name for the source kind.
func (k SourceKind) String() string {
	switch k {
	case SourceOMEXML:
		return "OME-XML"
	case SourceGzipXML:
		return "gzip OME-XML"
	case SourceBridged:
		return "bridged image format"
	default:
		return "unknown"
	}
}

// DetectSource classifies a file by examining magic bytes, falling back to
// the path extension for files too small to sniff.
//
// Detection does not validate document structure; a file that sniffs as XML
// may still fail to parse as OME-XML later.
func DetectSource(r io.ReaderAt, size int64, path string) (SourceKind, error) {
	if size >= 4 {
		magic := make([]byte, 4)
		if _, err := r.ReadAt(magic, 0); err != nil {
			return SourceUnknown, err
		}

		// gzip member header
		if magic[0] == 0x1f && magic[1] == 0x8b {
			return SourceGzipXML, nil
		}

		// XML declaration, UTF-8 BOM, or a bare root element
		trimmed := bytes.TrimLeft(magic, " \t\r\n")
		if bytes.HasPrefix(magic, []byte("<?xm")) ||
			bytes.HasPrefix(magic, []byte{0xef, 0xbb, 0xbf}) ||
			bytes.HasPrefix(trimmed, []byte("<")) {
			return SourceOMEXML, nil
		}
	}

	switch {
	case hasSuffixFold(path, ".ome.xml"), hasSuffixFold(path, ".xml"), hasSuffixFold(path, ".ome"):
		return SourceOMEXML, nil
	case hasSuffixFold(path, ".gz"):
		return SourceGzipXML, nil
	}

	// Anything else is assumed to be a proprietary microscopy format that
	// Bio-Formats resolves to OME metadata (.lif, .czi, .nd2, .dv, ...).
	if filepath.Ext(path) != "" {
		return SourceBridged, nil
	}
	return SourceUnknown, nil
}

func hasSuffixFold(path, suffix string) bool {
	return strings.HasSuffix(strings.ToLower(path), suffix)
}
