package media

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// MP3Args builds the ffmpeg argument list for an MP3 transcode at 320k.
func MP3Args(source, dest string) []string {
	return []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", source,
		"-vn",
		"-ab", "320k",
		dest,
	}
}

// ConvertToMP3 transcodes the source file into an MP3 at dest.
func ConvertToMP3(ctx context.Context, ffmpegBinary, source, dest string) error {
	cmd := exec.CommandContext(ctx, ffmpegBinary, MP3Args(source, dest)...) //nolint:gosec
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg transcode: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}
