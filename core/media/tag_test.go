package media_test

import (
	"os"
	"path/filepath"
	"testing"

	"music-downloader/core/media"

	id3v2 "github.com/bogem/id3v2/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.mp3")
	require.NoError(t, os.WriteFile(path, []byte("not really mpeg frames"), 0o644))

	cover := []byte{0xFF, 0xD8, 0xFF} // jpeg magic is enough for the frame
	require.NoError(t, media.WriteTags(path, "Title", "Artist", "Album", cover))

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	require.NoError(t, err)
	defer tag.Close()

	assert.Equal(t, "Title", tag.Title())
	assert.Equal(t, "Artist", tag.Artist())
	assert.Equal(t, "Album", tag.Album())

	frames := tag.GetFrames(tag.CommonID("Attached picture"))
	require.Len(t, frames, 1)
	pic, ok := frames[0].(id3v2.PictureFrame)
	require.True(t, ok)
	assert.Equal(t, cover, pic.Picture)

	// The empty lyrics frame is a player-compatibility quirk: some players
	// won't show the artist without it.
	lyrics := tag.GetFrames(tag.CommonID("Unsynchronised lyrics/text transcription"))
	require.Len(t, lyrics, 1)
	uslt, ok := lyrics[0].(id3v2.UnsynchronisedLyricsFrame)
	require.True(t, ok)
	assert.Empty(t, uslt.Lyrics)
}

func TestWriteTags_NoCover(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.mp3")
	require.NoError(t, os.WriteFile(path, []byte("audio"), 0o644))

	require.NoError(t, media.WriteTags(path, "Title", "Artist", "Album", nil))

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	require.NoError(t, err)
	defer tag.Close()

	assert.Empty(t, tag.GetFrames(tag.CommonID("Attached picture")))
}
