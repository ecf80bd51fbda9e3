package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"emojied/internal/dataset"
)

// timerFiredMsg is delivered when a scheduled timer elapses
type timerFiredMsg struct {
	id uint64
}

// datasetReloadedMsg carries a dataset re-read after its file changed
type datasetReloadedMsg struct {
	path string
	ds   *dataset.Dataset
	err  error
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}

// DatasetReloaded builds the message the model expects after the dataset
// file was re-read
func DatasetReloaded(path string, ds *dataset.Dataset, err error) tea.Msg {
	return datasetReloadedMsg{path: path, ds: ds, err: err}
}
