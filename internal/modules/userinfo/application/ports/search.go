package ports

import "context"

// TrackResult is one candidate from a catalog track search.
type TrackResult struct {
	Title      string
	Artists    []string
	Album      string
	ArtworkURL string
}

// TrackSearcher queries an external music catalog for tracks matching a
// free-text query. Implementations may return an empty slice and must
// not be assumed to always succeed.
type TrackSearcher interface {
	SearchTrack(ctx context.Context, query string, limit, offset int) ([]TrackResult, error)
}
