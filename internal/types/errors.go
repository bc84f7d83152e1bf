package types

import (
	"errors"
	"fmt"
)

// ErrNoMoreSeries is returned by Reader.Next once every series in the
// document has been consumed. It marks ordinary exhaustion, not a failure;
// check it with errors.Is.
var ErrNoMoreSeries = errors.New("no more series")

// MetadataUnavailableError is returned when no OME-XML document can be
// obtained or parsed for a path: the file does not resolve, the external
// extractor failed, or its output is not OME-XML.
type MetadataUnavailableError struct {
	Path   string
	Reason string
	Err    error // underlying cause, if any
}

func (e *MetadataUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: metadata unavailable: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: metadata unavailable: %s", e.Path, e.Reason)
}

func (e *MetadataUnavailableError) Unwrap() error {
	return e.Err
}

// FieldMissingError is returned when a required field cannot be extracted
// for one series. It is scoped to that series: the iterator cursor has
// already advanced past it when the error is returned, so the caller may
// continue with the next series.
type FieldMissingError struct {
	SeriesID    string
	SeriesIndex int
	Field       string
	Reason      string // empty means the attribute is absent
}

func (e *FieldMissingError) Error() string {
	id := e.SeriesID
	if id == "" {
		id = "unnamed"
	}
	if e.Reason != "" {
		return fmt.Sprintf("series %d (%s): required field %s: %s", e.SeriesIndex, id, e.Field, e.Reason)
	}
	return fmt.Sprintf("series %d (%s): required field %s missing", e.SeriesIndex, id, e.Field)
}

// Warning represents a non-fatal issue encountered while mapping OME-XML
// into records: an optional field with an unparseable value, a dropped
// malformed plane, or a malformed series skipped during an eager drain.
//
// Warnings are collected on the Reader as iteration advances.
type Warning struct {
	// Stage of mapping where the issue occurred: "series", "channel" or
	// "plane".
	Stage string

	// Series index the warning belongs to.
	Series int

	// Warning message
	Message string
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	return fmt.Sprintf("series %d: %s: %s", w.Series, w.Stage, w.Message)
}
