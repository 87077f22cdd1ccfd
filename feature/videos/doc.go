// Package videos implements the YouTube video search feature.
//
// It exposes GET /search/video and returns typed search results (video id,
// watch URL, title, author, thumbnail). Results are cached briefly so rapid
// repeat searches do not hammer the upstream.
//
// In mock mode the service serves fixture data from the configured mock
// file instead of calling YouTube.
package videos
