package spotify

// PartialTrackMetadata is the caller-provided part of a track's metadata.
// Album is optional.
type PartialTrackMetadata struct {
	Title  string
	Artist string
	Album  string
}

// TrackMetadata is a fully-resolved metadata option for a track.
type TrackMetadata struct {
	Title         string `json:"title"`
	Artist        string `json:"artist"`
	Album         string `json:"album"`
	AlbumCoverURL string `json:"albumCoverUrl"`
}

// Wire types for the Spotify search response.

type spotifyAlbumImage struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

type spotifyAlbum struct {
	Name   string              `json:"name"`
	Images []spotifyAlbumImage `json:"images"`
}

type spotifyArtist struct {
	Name string `json:"name"`
}

type spotifyTrack struct {
	Name    string          `json:"name"`
	Album   spotifyAlbum    `json:"album"`
	Artists []spotifyArtist `json:"artists"`
}

type searchResponse struct {
	Tracks struct {
		Total int            `json:"total"`
		Items []spotifyTrack `json:"items"`
	} `json:"tracks"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	Error       string `json:"error"`
}

// apiToken is the cached access token with its expiry unix timestamp.
type apiToken struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}
