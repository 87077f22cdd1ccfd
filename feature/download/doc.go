// Package download implements the MP3 download feature: it fetches a
// YouTube audio stream, transcodes it to MP3 with ffmpeg, writes ID3v2
// metadata including cover art, and streams the result to the client.
package download
