package readme

import "errors"

var (
	// ErrMarkerCardinality is returned when the managed block is missing
	// or its sentinels appear more than once outside code fences.
	ErrMarkerCardinality = errors.New("marker block missing or duplicated")

	// ErrMarkerOrder is returned when the end sentinel does not follow the
	// begin sentinel.
	ErrMarkerOrder = errors.New("invalid marker block")

	// ErrIDNotFound is returned by strict removals that match no id.
	ErrIDNotFound = errors.New("id_not_found")
)
