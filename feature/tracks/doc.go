// Package tracks implements the track metadata search feature. It resolves
// partial metadata (title and artist, optionally album) into full metadata
// options via Spotify, including album cover art URLs.
package tracks
