// Package extract obtains OME-XML metadata documents for image files.
//
// Two extractors are provided: FileExtractor reads documents stored as
// plain or gzip-compressed OME-XML, and CommandExtractor bridges to an
// externally managed Bio-Formats command-line tool for every proprietary
// microscopy format. The tool installation and its JVM belong to the
// caller; this package only runs the command it is given.
package extract

import (
	"context"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"

	"github.com/keithschulze/omemeta/internal/types"
)

// Extractor obtains the OME-XML metadata document describing an image file.
type Extractor interface {
	// Extract returns the OME-XML document for the file at path. Failures
	// to resolve the path or produce a document are reported as
	// *types.MetadataUnavailableError.
	Extract(ctx context.Context, path string) ([]byte, error)
}

// FileExtractor reads OME-XML documents stored directly on disk, either as
// plain XML (.ome.xml, .ome, .xml) or gzip-compressed XML. It cannot handle
// proprietary image formats; those need a CommandExtractor.
//
// FileExtractor is the default extractor used by Read.
type FileExtractor struct{}

func (FileExtractor) Extract(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &types.MetadataUnavailableError{Path: path, Reason: "open file", Err: err}
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, &types.MetadataUnavailableError{Path: path, Reason: "stat file", Err: err}
	}

	kind, err := types.DetectSource(f, stat.Size(), path)
	if err != nil {
		return nil, &types.MetadataUnavailableError{Path: path, Reason: "detect source kind", Err: err}
	}

	switch kind {
	case types.SourceOMEXML:
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, &types.MetadataUnavailableError{Path: path, Reason: "read file", Err: err}
		}
		return data, nil

	case types.SourceGzipXML:
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, &types.MetadataUnavailableError{Path: path, Reason: "open gzip stream", Err: err}
		}
		defer zr.Close()
		data, err := io.ReadAll(zr)
		if err != nil {
			return nil, &types.MetadataUnavailableError{Path: path, Reason: "decompress gzip stream", Err: err}
		}
		return data, nil

	default:
		return nil, &types.MetadataUnavailableError{
			Path:   path,
			Reason: kind.String() + " requires an external Bio-Formats extractor",
		}
	}
}
