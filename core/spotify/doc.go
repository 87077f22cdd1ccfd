// Package spotify wraps the Spotify Web API for track metadata lookups.
//
// Authentication uses the client-credentials flow. Access tokens are cached
// (with their expiry) in the application cache; an expired cached token is
// rejected and refetched transparently.
//
// Searches combine free text with track:/artist:/album: filters and return
// up to 10 TrackMetadata options: title, artists joined with " & ", album
// name, and the largest album cover image.
//
// Both endpoints are configurable, which keeps the client testable against
// an httptest server.
package spotify
