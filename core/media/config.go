package media

// Config holds configuration for the media toolchain.
type Config struct {
	// FFmpegPath is the ffmpeg binary used for MP3 transcoding.
	FFmpegPath string `mapstructure:"ffmpeg_path" default:"/usr/bin/ffmpeg"`
}
