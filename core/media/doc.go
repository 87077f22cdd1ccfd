// Package media turns a downloaded audio stream into a tagged MP3.
//
// Transcoding shells out to ffmpeg (320k constant bitrate, audio only);
// tagging writes an ID3v2 frame set: title, artist, album, and an optional
// front-cover JPEG.
package media
