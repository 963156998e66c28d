package app

import (
	"io"
	"path/filepath"
	"strconv"

	"playlistdl/internal/download"
	"playlistdl/internal/service"

	"github.com/olekukonko/tablewriter"
)

// Summary итог запуска
type Summary struct {
	PlaylistID  string
	FetchStatus service.FetchStatus
	Attempted   int
	Succeeded   int
	Failed      int
	Outcomes    []download.Outcome
}

// Add учитывает результат одного трека
func (s *Summary) Add(outcome download.Outcome) {
	s.Attempted++
	if outcome.OK() {
		s.Succeeded++
	} else {
		s.Failed++
	}
	s.Outcomes = append(s.Outcomes, outcome)
}

// RenderSummary печатает таблицу результатов по трекам
func RenderSummary(w io.Writer, s Summary) {
	if s.Attempted == 0 {
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Track", "Result", "File"})
	table.SetAutoWrapText(false)
	table.SetRowLine(false)

	for i, outcome := range s.Outcomes {
		result, file := "ok", filepath.Base(outcome.Path)
		if !outcome.OK() {
			result, file = "failed", ""
		}
		table.Append([]string{strconv.Itoa(i + 1), outcome.Descriptor, result, file})
	}

	table.SetFooter([]string{"", "attempted " + strconv.Itoa(s.Attempted),
		"ok " + strconv.Itoa(s.Succeeded), "failed " + strconv.Itoa(s.Failed)})
	table.Render()
}
