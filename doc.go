// Package omemeta provides lazy, per-series reading of OME (Open Microscopy
// Environment) image metadata.
//
// omemeta does not parse microscopy image formats itself. It obtains the
// OME-XML metadata document for a file - directly for .ome.xml files, or
// through an externally managed Bio-Formats tool for proprietary formats -
// and maps it into typed, immutable per-series records, one series at a
// time, strictly on caller demand.
//
// # Quick Start
//
// Reading the series of an OME-XML file:
//
//	reader, err := omemeta.Read("decon.ome.xml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for {
//		series, err := reader.Next()
//		if errors.Is(err, omemeta.ErrNoMoreSeries) {
//			break
//		}
//		if err != nil {
//			log.Printf("skipping series: %v", err)
//			continue
//		}
//		fmt.Printf("%s %s %dx%d\n", series.ID, series.Name, series.SizeX, series.SizeY)
//	}
//
// # Laziness
//
// Read parses only the document envelope. Each Next call maps exactly one
// series into a record; no series is materialized ahead of demand. A Reader
// is single-pass and not restartable: call Read again to iterate again.
// Snapshot eagerly materializes whatever has not been consumed yet into a
// map keyed by series ID, for lookup rather than positional access.
//
// # Proprietary formats
//
// Formats that are not stored as OME-XML (.lif, .czi, .nd2, .dv, ...) need
// a Bio-Formats command-line installation, which the caller owns:
//
//	reader, err := omemeta.Read("stack.lif",
//		omemeta.WithExtractor(omemeta.NewBioFormatsExtractor("/opt/bftools")),
//	)
//
// omemeta never installs, starts, or manages that tool or its JVM.
//
// # Error Handling
//
// omemeta distinguishes three conditions:
//
//   - *MetadataUnavailableError: no document could be obtained or parsed
//     for the path. Returned by Read.
//   - *FieldMissingError: one series lacks a required field. Returned by
//     Next for that series only; the cursor advances, so callers choose
//     whether to stop or continue. The eager drains (ReadAll, Snapshot)
//     skip such series with a warning unless WithStrictSeries is set.
//   - ErrNoMoreSeries: ordinary exhaustion of the iterator.
//
// Non-fatal mapping issues are collected as Reader.Warnings.
package omemeta
