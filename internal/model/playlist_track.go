// Package model содержит модели данных.
//
// Группа: ENTITIES - Основные сущности
// Содержит: Track
package model

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ArtistSeparator разделяет имена исполнителей в описании трека
const ArtistSeparator = ", "

// Track представляет трек из плейлиста Spotify
type Track struct {
	ID      string   // Spotify Track ID
	Title   string   // Название трека
	Artists []string // Исполнители в порядке API
}

// Descriptor возвращает строку "<название> <исполнитель1>, <исполнитель2>"
// для поиска трека на видеоплатформе.
func (t Track) Descriptor() string {
	descriptor := t.Title + " " + strings.Join(t.Artists, ArtistSeparator)
	return norm.NFC.String(descriptor)
}
