package tui

import (
	"fdc/internal/model"
	"fdc/internal/scan"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Filter narrows the file list to one status.
type Filter int

const (
	FilterAll Filter = iota
	FilterDead
	FilterComments
	FilterAlive
)

func (f Filter) String() string {
	switch f {
	case FilterDead:
		return "dead"
	case FilterComments:
		return "comment-only"
	case FilterAlive:
		return "alive"
	default:
		return "all"
	}
}

// Next cycles all → dead → comment-only → alive → all.
func (f Filter) Next() Filter {
	return (f + 1) % 4
}

func (f Filter) Match(s model.Status) bool {
	switch f {
	case FilterDead:
		return s == model.StatusDead
	case FilterComments:
		return s == model.StatusCommentOnly
	case FilterAlive:
		return s == model.StatusAlive || s == model.StatusRoot
	default:
		return true
	}
}

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Finder  *scan.Finder
	Result  *scan.Result
	Files   []*model.FileInfo // display order: dead, comment-only, alive, roots
	Loading bool
	Err     error
	Status  string // outcome of the last action

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg
	Filter      Filter

	// Search State
	InputMode       bool
	InputBuffer     textinput.Model
	FilteredIndices []int // Indices into Files to show
	SearchActive    bool

	// Pending deletion of the selected file, waiting for y/n
	ConfirmDelete bool

	// Components
	DetailsViewport viewport.Model
}

// InitialModel returns the initial state.
func InitialModel(f *scan.Finder) AppModel {
	ti := textinput.New()
	ti.Placeholder = "File name..."
	ti.CharLimit = 80
	ti.Width = 24

	return AppModel{
		Finder:          f,
		Loading:         true,
		InputBuffer:     ti,
		DetailsViewport: viewport.New(40, 10),
	}
}

// Init starts the scan.
func (m AppModel) Init() tea.Cmd {
	return ScanCmd(m.Finder)
}

// Selected returns the highlighted file, or nil when the list is empty.
func (m AppModel) Selected() *model.FileInfo {
	if m.SelectedIdx < 0 || m.SelectedIdx >= len(m.FilteredIndices) {
		return nil
	}
	return m.Files[m.FilteredIndices[m.SelectedIdx]]
}
