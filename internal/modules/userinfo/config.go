package userinfo

// Config holds the userinfo module configuration. The Spotify
// credentials feed the track-search enrichment; they are injected into
// the searcher at construction rather than read inside rendering logic.
type Config struct {
	SpotifyClientID     string `env:"SPOTIFY_CLIENT_ID"`
	SpotifyClientSecret string `env:"SPOTIFY_CLIENT_SECRET"`
}

// HasSpotifyCredentials reports whether both credentials are present.
func (c *Config) HasSpotifyCredentials() bool {
	return c.SpotifyClientID != "" && c.SpotifyClientSecret != ""
}
