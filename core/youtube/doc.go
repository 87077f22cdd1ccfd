// Package youtube provides video search and audio retrieval.
//
// Search goes through the public Innertube API (the same endpoint the web
// client uses) and returns typed results: video id, watch URL, title,
// author, and the largest thumbnail.
//
// Audio retrieval is delegated to kkdai/youtube: the best audio/mp4 stream
// of a video is downloaded to a local file, ready for MP3 transcoding.
//
// # Errors
//
// ErrVideoNotFound marks a video that does not exist, is unavailable, or has
// no audio stream; handlers translate it to 404.
package youtube
