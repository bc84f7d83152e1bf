package omemeta

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/keithschulze/omemeta/internal/omexml"
	"github.com/keithschulze/omemeta/internal/types"
)

// Reader is a single-pass lazy iterator over the series of one OME file.
//
// A Reader holds the parsed document envelope; per-series records are
// mapped one at a time as Next advances. Readers are not restartable and
// not safe for concurrent use. Re-calling Read on the same path yields a
// fresh, fully independent Reader.
type Reader struct {
	// Path the reader was opened from.
	Path string

	doc      *omexml.Document
	next     int
	warnings []Warning
	opts     *readOptions
}

// Read obtains the OME metadata for the image file at path and returns a
// lazy per-series iterator over it.
//
// By default the file itself must hold OME-XML (plain or gzip-compressed).
// Use WithExtractor to bridge to a Bio-Formats tool for proprietary
// formats; the tool and its runtime must already be set up by the caller.
//
// Read fails with *MetadataUnavailableError when the path does not resolve
// or no OME-XML document can be obtained or parsed for it. It never returns
// a silently empty reader for a bad path.
func Read(path string, opts ...Option) (*Reader, error) {
	return ReadContext(context.Background(), path, opts...)
}

// ReadContext is Read with context support. The context covers metadata
// extraction, which for bridged formats runs an external tool.
func ReadContext(ctx context.Context, path string, opts ...Option) (*Reader, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	data, err := options.extractor.Extract(ctx, path)
	if err != nil {
		var unavailable *MetadataUnavailableError
		if errors.As(err, &unavailable) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, &types.MetadataUnavailableError{Path: path, Reason: "extract metadata", Err: err}
	}

	doc, err := omexml.Parse(data)
	if err != nil {
		return nil, &types.MetadataUnavailableError{Path: path, Reason: "parse OME-XML", Err: err}
	}

	return &Reader{Path: path, doc: doc, opts: options}, nil
}

// ReadMany reads the metadata of multiple image files concurrently.
//
// Files are read in parallel using up to runtime.NumCPU() goroutines;
// results are returned in input order. If any file fails, ReadMany returns
// the first error and no readers. Each returned Reader remains a
// single-threaded, single-pass iterator; only the Read calls run in
// parallel.
func ReadMany(ctx context.Context, paths ...string) ([]*Reader, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Reader, len(paths))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			reader, err := ReadContext(ctx, path)
			if err != nil {
				return err
			}
			results[i] = reader
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Len returns the number of series reported by the document, independent of
// how many have been consumed.
func (r *Reader) Len() int {
	return r.doc.SeriesCount()
}

// Remaining returns the number of series not yet consumed.
func (r *Reader) Remaining() int {
	return r.doc.SeriesCount() - r.next
}

// XML returns the raw OME-XML document backing this reader.
func (r *Reader) XML() []byte {
	return r.doc.Raw()
}

// Next maps the next un-consumed series into a record.
//
// Once the document is exhausted Next returns ErrNoMoreSeries. A
// *FieldMissingError reports that this particular series lacks a required
// field; the cursor has already advanced, so the caller may keep calling
// Next to continue with the remaining series.
func (r *Reader) Next() (SeriesMetadata, error) {
	if r.next >= r.doc.SeriesCount() {
		return SeriesMetadata{}, ErrNoMoreSeries
	}

	i := r.next
	r.next++

	series, warns, err := r.doc.Series(i)
	if !r.opts.ignoreWarnings {
		r.warnings = append(r.warnings, warns...)
	}
	if err != nil {
		return SeriesMetadata{}, err
	}
	return series, nil
}

// ReadAll drains the remaining series in document order.
//
// Malformed series are skipped with a warning by default; with
// WithStrictSeries the first malformed series aborts the drain.
func (r *Reader) ReadAll() ([]SeriesMetadata, error) {
	var out []SeriesMetadata
	for {
		series, err := r.Next()
		if errors.Is(err, ErrNoMoreSeries) {
			return out, nil
		}
		if err != nil {
			if r.opts.strictSeries {
				return nil, err
			}
			if !r.opts.ignoreWarnings {
				r.warnings = append(r.warnings, Warning{
					Stage:   "series",
					Series:  r.next - 1,
					Message: "skipped: " + err.Error(),
				})
			}
			continue
		}
		out = append(out, series)
	}
}

// Snapshot eagerly materializes the remaining un-consumed series into a map
// keyed by series ID, consuming the iterator. The map supports lookup by
// identity rather than positional indexing; after K of N series have been
// consumed it holds exactly the other N-K.
//
// The skip/strict policy of ReadAll applies.
func (r *Reader) Snapshot() (map[string]SeriesMetadata, error) {
	remaining, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	snapshot := make(map[string]SeriesMetadata, len(remaining))
	for _, series := range remaining {
		snapshot[series.ID] = series
	}
	return snapshot, nil
}

// Warnings returns the non-fatal issues collected so far while mapping
// series. Empty when WithIgnoreWarnings is set.
func (r *Reader) Warnings() []Warning {
	return r.warnings
}
