package omemeta

import (
	"github.com/keithschulze/omemeta/internal/extract"
)

// Option configures behavior when reading OME metadata.
//
// Options use the functional options pattern:
//
//	reader, err := omemeta.Read("stack.lif",
//	    omemeta.WithExtractor(omemeta.NewBioFormatsExtractor("/opt/bftools")),
//	    omemeta.WithStrictSeries(),
//	)
type Option func(*readOptions)

// readOptions holds configuration for reading metadata.
type readOptions struct {
	extractor      Extractor
	strictSeries   bool // first malformed series aborts eager drains
	ignoreWarnings bool // discard collected warnings
}

// defaultOptions returns the default configuration.
func defaultOptions() *readOptions {
	return &readOptions{
		extractor: extract.FileExtractor{},
	}
}

// WithExtractor selects the extractor that obtains the OME-XML document.
//
// The default FileExtractor handles files stored as plain or
// gzip-compressed OME-XML. Pass a CommandExtractor (or any custom
// Extractor) to read proprietary formats through Bio-Formats:
//
//	reader, err := omemeta.Read("stack.lif",
//	    omemeta.WithExtractor(omemeta.NewBioFormatsExtractor("/opt/bftools")),
//	)
func WithExtractor(e Extractor) Option {
	return func(o *readOptions) {
		o.extractor = e
	}
}

// WithStrictSeries makes a malformed series fatal to the eager drains.
//
// By default ReadAll and Snapshot skip series whose required fields cannot
// be extracted, recording a warning for each. With strict series enabled
// they abort on the first such series and return its *FieldMissingError.
//
// Next is unaffected: it always reports the malformed series itself and
// leaves the continue/stop choice to the caller.
func WithStrictSeries() Option {
	return func(o *readOptions) {
		o.strictSeries = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// By default non-fatal mapping issues (unparseable optional values, dropped
// malformed planes, series skipped during an eager drain) are collected in
// Reader.Warnings. This option discards them.
func WithIgnoreWarnings() Option {
	return func(o *readOptions) {
		o.ignoreWarnings = true
	}
}
