package omemeta

import (
	"github.com/keithschulze/omemeta/internal/types"
)

// MetadataUnavailableError is an alias to types.MetadataUnavailableError.
// Re-exported from internal/types to form the public error surface.
type MetadataUnavailableError = types.MetadataUnavailableError

// FieldMissingError is an alias to types.FieldMissingError.
// Re-exported from internal/types to form the public error surface.
type FieldMissingError = types.FieldMissingError

// Warning is an alias to types.Warning.
// Re-exported from internal/types to form the public error surface.
type Warning = types.Warning

// ErrNoMoreSeries marks ordinary exhaustion of a Reader.
var ErrNoMoreSeries = types.ErrNoMoreSeries
