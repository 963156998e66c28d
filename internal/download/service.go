package download

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"playlistdl/internal/model"

	"go.uber.org/zap"
)

// ErrNoMatch yt-dlp завершился без ошибки, но файл не сохранен
var ErrNoMatch = errors.New("no matching video downloaded")

// Fetcher выполняет поиск и загрузку, возвращая путь к итоговому файлу
type Fetcher interface {
	Fetch(ctx context.Context, req Request) (string, error)
}

// Tagger записывает метаданные в загруженный файл
type Tagger interface {
	Tag(path string, track model.Track) error
}

// Outcome результат обработки одного трека
type Outcome struct {
	Descriptor string
	Path       string
	Err        error
}

// OK сообщает, что трек сохранен
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Service загружает треки по одному
type Service struct {
	fetcher Fetcher
	tagger  Tagger
	logger  *zap.Logger
}

// NewService создает сервис загрузки. tagger может быть nil.
func NewService(fetcher Fetcher, tagger Tagger, logger *zap.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		tagger:  tagger,
		logger:  logger,
	}
}

// DownloadTrack ищет описание трека и сохраняет лучшее аудио в dir.
// Ошибки не прерывают работу вызывающего и возвращаются в Outcome.
func (s *Service) DownloadTrack(ctx context.Context, descriptor, dir string, quality model.Quality) Outcome {
	req := BuildRequest(descriptor, dir, quality)

	s.logger.Info("Searching YouTube",
		zap.String("query", descriptor),
		zap.String("quality", quality.String()))

	path, err := s.fetcher.Fetch(ctx, req)
	if err == nil && path == "" {
		err = ErrNoMatch
	}
	if err != nil {
		s.logger.Error("Error downloading track",
			zap.String("query", descriptor),
			zap.Error(err))
		return Outcome{Descriptor: descriptor, Err: fmt.Errorf("download %q: %w", descriptor, err)}
	}

	s.logger.Info("Downloaded track",
		zap.String("query", descriptor),
		zap.String("path", path))

	return Outcome{Descriptor: descriptor, Path: path}
}

// Download загружает трек плейлиста и, если файл MP3, записывает теги.
// Ошибка тегов не делает загрузку неуспешной.
func (s *Service) Download(ctx context.Context, track model.Track, dir string, quality model.Quality) Outcome {
	outcome := s.DownloadTrack(ctx, track.Descriptor(), dir, quality)
	if !outcome.OK() || s.tagger == nil {
		return outcome
	}

	if !strings.EqualFold(filepath.Ext(outcome.Path), "."+model.TranscodeCodec) {
		return outcome
	}

	if err := s.tagger.Tag(outcome.Path, track); err != nil {
		s.logger.Warn("Failed to write ID3 tags",
			zap.String("path", outcome.Path),
			zap.Error(err))
	}

	return outcome
}
