package commands

import (
	"time"

	"github.com/K25anjali/fossil-energy-graph/internal/energy"
)

// TUIState represents the current state of the TUI.
type TUIState int

const (
	StateLoading TUIState = iota
	StateReady
	StateError
)

func (s TUIState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "Unknown"
	}
}

// FocusedPane tracks which pane has focus.
type FocusedPane int

const (
	PaneCharts FocusedPane = iota
	PaneYearInput
	PaneTable
)

// datasetLoadedMsg carries the result of loading the dataset.
type datasetLoadedMsg struct {
	dataset  energy.Dataset
	err      error
	duration time.Duration
}

// narrowMsg reports that the narrow-viewport flag flipped. The model reads
// the current flag from the observer, so late deliveries are harmless.
type narrowMsg struct{}
