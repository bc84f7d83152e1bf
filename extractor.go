package omemeta

import (
	"github.com/keithschulze/omemeta/internal/extract"
)

// Extractor is an alias to extract.Extractor.
// Re-exported from internal/extract; implement it to plug in a custom
// metadata source.
type Extractor = extract.Extractor

// FileExtractor is an alias to extract.FileExtractor, the default extractor
// for files stored as plain or gzip-compressed OME-XML.
type FileExtractor = extract.FileExtractor

// CommandExtractor is an alias to extract.CommandExtractor, the bridge to
// an externally managed Bio-Formats command-line tool.
type CommandExtractor = extract.CommandExtractor

// PathPlaceholder marks where CommandExtractor substitutes the image file
// path into its argument template.
const PathPlaceholder = extract.PathPlaceholder

// NewBioFormatsExtractor returns a CommandExtractor for the showinf tool of
// a Bio-Formats command-line (bftools) installation at dir. With an empty
// dir, showinf is resolved from PATH.
func NewBioFormatsExtractor(dir string) *CommandExtractor {
	return extract.NewBioFormatsExtractor(dir)
}
