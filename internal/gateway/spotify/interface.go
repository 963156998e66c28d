// Package spotify реализует интерфейсы для работы с Spotify Web API.
package spotify

import (
	"context"

	"playlistdl/internal/model"
)

// Interface определяет интерфейс для работы с Spotify API
type Interface interface {
	// GetPlaylistTracks получает треки плейлиста по его ID
	GetPlaylistTracks(ctx context.Context, playlistID string) ([]model.Track, error)
}

var _ Interface = (*Client)(nil)
