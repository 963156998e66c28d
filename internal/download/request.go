package download

import (
	"path/filepath"

	"playlistdl/internal/model"
)

// Параметры поиска и загрузки
const (
	// SearchPrefix первый результат поиска YouTube
	SearchPrefix = "ytsearch1:"
	// BestAudioFormat лучший аудиопоток, иначе лучший общий
	BestAudioFormat = "bestaudio/best"

	passthroughTemplate = "%(title)s.%(ext)s"
	transcodeTemplate   = "%(title)s." + model.TranscodeCodec
)

// PostProcess конвертация аудио после загрузки
type PostProcess struct {
	Codec   string
	Quality string
}

// Request описывает один вызов провайдера видео
type Request struct {
	Query          string
	Format         string
	OutputTemplate string
	PostProcess    *PostProcess
}

// BuildRequest собирает запрос для описания трека, каталога и качества
func BuildRequest(descriptor, dir string, quality model.Quality) Request {
	req := Request{
		Query:          SearchPrefix + descriptor,
		Format:         BestAudioFormat,
		OutputTemplate: filepath.Join(dir, passthroughTemplate),
	}

	if quality.Transcodes() {
		req.PostProcess = &PostProcess{
			Codec:   model.TranscodeCodec,
			Quality: quality.AudioQuality(),
		}
		req.OutputTemplate = filepath.Join(dir, transcodeTemplate)
	}

	return req
}
