package media

import (
	"fmt"

	id3v2 "github.com/bogem/id3v2/v2"
)

// WriteTags writes an ID3v2 tag to the MP3 at path. cover, when non-empty,
// is attached as the front-cover JPEG.
func WriteTags(path, title, artist, album string, cover []byte) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open mp3 for tagging: %w", err)
	}
	defer tag.Close()

	tag.SetTitle(title)
	tag.SetArtist(artist)
	tag.SetAlbum(album)

	// Some players don't recognize the artist when the track has no lyrics
	// frame, so an empty one is always written.
	tag.AddUnsynchronisedLyricsFrame(id3v2.UnsynchronisedLyricsFrame{
		Encoding:          id3v2.EncodingUTF8,
		Language:          "eng",
		ContentDescriptor: "",
		Lyrics:            "",
	})

	if len(cover) > 0 {
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    "image/jpeg",
			PictureType: id3v2.PTFrontCover,
			Description: "Front cover",
			Picture:     cover,
		})
	}

	return tag.Save()
}
