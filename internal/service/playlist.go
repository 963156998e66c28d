// Package service содержит бизнес-логику приложения.
package service

import (
	"context"
	"errors"

	"playlistdl/internal/gateway/spotify"
	"playlistdl/internal/model"

	"go.uber.org/zap"
)

// FetchStatus итог получения треков плейлиста
type FetchStatus int

const (
	// FetchOK треки получены
	FetchOK FetchStatus = iota
	// FetchInvalidRef ссылка не содержит ID плейлиста, провайдер не вызывался
	FetchInvalidRef
	// FetchNotFound провайдер ответил, но треков нет
	FetchNotFound
	// FetchProviderError провайдер вернул ошибку
	FetchProviderError
)

func (s FetchStatus) String() string {
	switch s {
	case FetchOK:
		return "ok"
	case FetchInvalidRef:
		return "invalid_ref"
	case FetchNotFound:
		return "not_found"
	case FetchProviderError:
		return "provider_error"
	default:
		return "unknown"
	}
}

// FetchResult результат получения треков.
// Err заполнен для FetchInvalidRef и FetchProviderError.
type FetchResult struct {
	Status     FetchStatus
	PlaylistID string
	Tracks     []model.Track
	Err        error
}

// Descriptors возвращает поисковые строки треков в порядке плейлиста
func (r FetchResult) Descriptors() []string {
	descriptors := make([]string, 0, len(r.Tracks))
	for _, track := range r.Tracks {
		descriptors = append(descriptors, track.Descriptor())
	}
	return descriptors
}

// TrackSource источник треков плейлиста
type TrackSource interface {
	GetPlaylistTracks(ctx context.Context, playlistID string) ([]model.Track, error)
}

// PlaylistService получает треки плейлиста у провайдера метаданных
type PlaylistService struct {
	source TrackSource
	logger *zap.Logger
}

// NewPlaylistService создает новый сервис плейлистов
func NewPlaylistService(source TrackSource, logger *zap.Logger) *PlaylistService {
	return &PlaylistService{
		source: source,
		logger: logger,
	}
}

// Fetch получает треки плейлиста по ссылке. Ошибки не возвращаются наружу,
// а отражаются в FetchResult.Status.
func (s *PlaylistService) Fetch(ctx context.Context, playlistRef string) FetchResult {
	playlistID, err := spotify.ExtractPlaylistID(playlistRef)
	if err != nil {
		s.logger.Warn("Invalid Spotify playlist URL format",
			zap.String("playlist_url", playlistRef),
			zap.Error(err))
		return FetchResult{Status: FetchInvalidRef, Err: err}
	}

	s.logger.Info("Fetching tracks from playlist", zap.String("playlist_id", playlistID))

	tracks, err := s.source.GetPlaylistTracks(ctx, playlistID)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			s.logger.Warn("Playlist fetch cancelled", zap.String("playlist_id", playlistID))
		} else {
			s.logger.Error("Error accessing Spotify API",
				zap.String("playlist_id", playlistID),
				zap.Error(err))
		}
		return FetchResult{Status: FetchProviderError, PlaylistID: playlistID, Err: err}
	}

	if len(tracks) == 0 {
		s.logger.Info("Playlist has no tracks", zap.String("playlist_id", playlistID))
		return FetchResult{Status: FetchNotFound, PlaylistID: playlistID}
	}

	s.logger.Info("Found tracks in playlist",
		zap.String("playlist_id", playlistID),
		zap.Int("count", len(tracks)))

	return FetchResult{Status: FetchOK, PlaylistID: playlistID, Tracks: tracks}
}
