// Package model содержит модели данных.
//
// Группа: TYPES - Перечисления
// Содержит: Quality
package model

// Quality определяет формат сохранения аудио
type Quality int

const (
	// QualityPassthrough сохраняет исходный контейнер и кодек
	QualityPassthrough Quality = iota
	// QualityStandard MP3 стандартного качества
	QualityStandard
	// QualityHigh MP3 высокого качества
	QualityHigh
)

// TranscodeCodec кодек, в который конвертируется аудио в режимах с потерями
const TranscodeCodec = "mp3"

// QualityOption пункт меню выбора качества
type QualityOption struct {
	Key         string
	Description string
}

// QualityMenu возвращает пункты меню в порядке отображения
func QualityMenu() []QualityOption {
	return []QualityOption{
		{Key: "1", Description: "MP3 (Standard Quality)"},
		{Key: "2", Description: "MP3 (High Quality, larger size)"},
		{Key: "3", Description: "Original Audio (M4A/WebM - No conversion)"},
	}
}

// ParseQuality переводит выбор пользователя в Quality.
// Все, кроме "1" и "2", означает сохранение без конвертации.
func ParseQuality(choice string) Quality {
	switch choice {
	case "1":
		return QualityStandard
	case "2":
		return QualityHigh
	default:
		return QualityPassthrough
	}
}

// Transcodes сообщает, нужна ли конвертация в MP3
func (q Quality) Transcodes() bool {
	return q == QualityStandard || q == QualityHigh
}

// AudioQuality возвращает параметр качества для ffmpeg (VBR, 0 - лучшее)
func (q Quality) AudioQuality() string {
	switch q {
	case QualityStandard:
		return "4"
	case QualityHigh:
		return "0"
	default:
		return ""
	}
}

func (q Quality) String() string {
	switch q {
	case QualityStandard:
		return "mp3-standard"
	case QualityHigh:
		return "mp3-high"
	default:
		return "passthrough"
	}
}
