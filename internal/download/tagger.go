package download

import (
	"fmt"
	"strings"

	"playlistdl/internal/model"

	"github.com/bogem/id3v2/v2"
)

// id3v24Separator разделитель нескольких значений в ID3v2.4
const id3v24Separator = "\x00"

// ID3Tagger записывает название и исполнителей в MP3
type ID3Tagger struct{}

// Tag перезаписывает фреймы TIT2 и TPE1
func (ID3Tagger) Tag(path string, track model.Track) error {
	tags, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open tags: %w", err)
	}
	defer tags.Close()

	tags.SetVersion(4)
	tags.SetDefaultEncoding(id3v2.EncodingUTF8)
	tags.SetTitle(track.Title)
	if len(track.Artists) > 0 {
		tags.SetArtist(strings.Join(track.Artists, id3v24Separator))
	}

	if err := tags.Save(); err != nil {
		return fmt.Errorf("save tags: %w", err)
	}
	return nil
}
