package omemeta

import (
	"github.com/keithschulze/omemeta/internal/types"
)

// SeriesMetadata is an alias to types.SeriesMetadata.
// Re-exported from internal/types as the public record type.
type SeriesMetadata = types.SeriesMetadata

// ChannelMetadata is an alias to types.ChannelMetadata.
// Re-exported from internal/types as the public record type.
type ChannelMetadata = types.ChannelMetadata

// PlaneMetadata is an alias to types.PlaneMetadata.
// Re-exported from internal/types as the public record type.
type PlaneMetadata = types.PlaneMetadata
