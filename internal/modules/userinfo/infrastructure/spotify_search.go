package infrastructure

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/elliebot/ellie/internal/modules/userinfo/application/ports"
)

// Ensure SpotifySearcher implements ports.TrackSearcher.
var _ ports.TrackSearcher = (*SpotifySearcher)(nil)

// SpotifySearcher implements ports.TrackSearcher against the Spotify
// Web API using the client-credentials grant. Credentials are supplied
// at construction; nothing is read from the environment here.
type SpotifySearcher struct {
	client *spotify.Client
}

// NewSpotifySearcher creates a new SpotifySearcher. The returned
// searcher fetches and refreshes its access token lazily via the
// oauth2 token source.
func NewSpotifySearcher(ctx context.Context, clientID, clientSecret string) (*SpotifySearcher, error) {
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("missing Spotify client credentials")
	}

	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}

	httpClient := config.Client(ctx)
	return &SpotifySearcher{client: spotify.New(httpClient)}, nil
}

// SearchTrack performs a single catalog search and returns the
// candidate tracks in relevance order. An empty result is not an error.
func (s *SpotifySearcher) SearchTrack(
	ctx context.Context,
	query string,
	limit, offset int,
) ([]ports.TrackResult, error) {
	result, err := s.client.Search(ctx, query, spotify.SearchTypeTrack,
		spotify.Limit(limit), spotify.Offset(offset))
	if err != nil {
		return nil, fmt.Errorf("spotify search failed: %w", err)
	}
	if result.Tracks == nil {
		return nil, nil
	}

	tracks := make([]ports.TrackResult, 0, len(result.Tracks.Tracks))
	for _, track := range result.Tracks.Tracks {
		artists := make([]string, 0, len(track.Artists))
		for _, artist := range track.Artists {
			artists = append(artists, artist.Name)
		}

		var artworkURL string
		if len(track.Album.Images) > 0 {
			artworkURL = track.Album.Images[0].URL
		}

		tracks = append(tracks, ports.TrackResult{
			Title:      track.Name,
			Artists:    artists,
			Album:      track.Album.Name,
			ArtworkURL: artworkURL,
		})
	}

	return tracks, nil
}
