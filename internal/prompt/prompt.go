// Package prompt собирает входные данные запуска у пользователя.
package prompt

import (
	"fmt"
	"os"
	"strings"

	"playlistdl/internal/console"
	"playlistdl/internal/model"

	"github.com/AlecAivazis/survey/v2"
)

// Тексты вопросов
const (
	PlaylistQuestion    = "Enter the Spotify Playlist URL:"
	DestinationQuestion = "Enter the path to save the songs (e.g., ~/Music/):"
	QualityQuestion     = "Enter choice (1/2/3):"
)

// Prompter задает вопрос и возвращает ответ пользователя
type Prompter interface {
	Ask(message string) (string, error)
}

// SurveyPrompter задает вопросы через survey
type SurveyPrompter struct{}

// Ask показывает однострочный ввод
func (SurveyPrompter) Ask(message string) (string, error) {
	var answer string
	if err := survey.AskOne(&survey.Input{Message: message}, &answer); err != nil {
		return "", err
	}
	return answer, nil
}

// Preset значения, заданные флагами; непустые поля не спрашиваются
type Preset struct {
	PlaylistRef string
	Destination string
	Quality     string
}

// Collect спрашивает ссылку на плейлист, каталог и качество.
// Формат ссылки здесь не проверяется.
func Collect(p Prompter, out *console.Printer, preset Preset) (model.Inputs, error) {
	playlistRef, err := askOrPreset(p, PlaylistQuestion, preset.PlaylistRef)
	if err != nil {
		return model.Inputs{}, fmt.Errorf("read playlist URL: %w", err)
	}

	destination, err := askOrPreset(p, DestinationQuestion, preset.Destination)
	if err != nil {
		return model.Inputs{}, fmt.Errorf("read destination: %w", err)
	}

	choice := strings.TrimSpace(preset.Quality)
	if choice == "" {
		out.Info("\nSelect Download Format:")
		for _, opt := range model.QualityMenu() {
			out.Lines(fmt.Sprintf("%s. %s", opt.Key, opt.Description))
		}
		choice, err = askOrPreset(p, QualityQuestion, "")
		if err != nil {
			return model.Inputs{}, fmt.Errorf("read quality: %w", err)
		}
	}

	return model.Inputs{
		PlaylistRef: playlistRef,
		Destination: destination,
		Quality:     model.ParseQuality(choice),
	}, nil
}

func askOrPreset(p Prompter, message, preset string) (string, error) {
	if value := strings.TrimSpace(preset); value != "" {
		return value, nil
	}
	answer, err := p.Ask(message)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// EnsureDestination создает каталог назначения со всеми родителями
func EnsureDestination(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create destination %q: %w", dir, err)
	}
	return nil
}
