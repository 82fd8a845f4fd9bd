package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"fdc/internal/model"
	"fdc/internal/scan"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MsgScanReady indicates that the scan has completed.
type MsgScanReady struct {
	Result *scan.Result
	Files  []*model.FileInfo
}

// MsgError indicates an error occurred.
type MsgError error

// MsgDeleted reports the outcome of deleting one file.
type MsgDeleted struct {
	Path string
	Err  error
}

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.DetailsViewport.Width = msg.Width / 2
		m.DetailsViewport.Height = msg.Height - 6 // minus title, footer and borders
		return m, nil

	case MsgScanReady:
		m.Loading = false
		m.Result = msg.Result
		m.Files = msg.Files
		m.performSearch()
		m.refreshDetails()
		return m, nil

	case MsgError:
		m.Err = msg
		m.Loading = false
		return m, nil

	case MsgDeleted:
		if msg.Err != nil {
			m.Status = fmt.Sprintf("Delete failed: %v", msg.Err)
			return m, nil
		}
		m.Status = "Deleted " + msg.Path
		// Removing a PHP file can orphan what it referenced, so scan again.
		m.Loading = true
		return m, ScanCmd(m.Finder)

	case tea.KeyMsg:
		// The finder is busy rescanning; only quitting is allowed.
		if m.Loading {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			}
			return m, nil
		}

		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.InputBuffer.Blur()
				m.performSearch()
				m.refreshDetails()
				return m, nil
			case tea.KeyEsc:
				m.clearSearch()
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			return m, cmd
		}

		if m.ConfirmDelete {
			m.ConfirmDelete = false
			if msg.String() == "y" {
				if sel := m.Selected(); sel != nil {
					return m, DeleteCmd(m.Finder, sel)
				}
			}
			m.Status = "Delete cancelled"
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.SearchActive {
				m.clearSearch()
				return m, nil
			}
			if m.Filter != FilterAll {
				m.Filter = FilterAll
				m.performSearch()
				m.refreshDetails()
			}
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
				m.refreshDetails()
			}
		case "down", "j":
			if m.SelectedIdx < len(m.FilteredIndices)-1 {
				m.SelectedIdx++
				m.refreshDetails()
			}
		case "pgup", "pgdown":
			m.DetailsViewport, cmd = m.DetailsViewport.Update(msg)
			return m, cmd
		case "f":
			m.Filter = m.Filter.Next()
			m.performSearch()
			m.refreshDetails()
		case "/":
			m.InputMode = true
			m.InputBuffer.Focus()
			m.InputBuffer.SetValue("")
			return m, textinput.Blink
		case "x":
			sel := m.Selected()
			if sel == nil {
				return m, nil
			}
			if sel.Status != model.StatusDead {
				m.Status = fmt.Sprintf("Only dead files can be deleted (%s is %s)", sel.RelPath, sel.Status)
				return m, nil
			}
			m.ConfirmDelete = true
			m.Status = ""
		}
	}

	return m, cmd
}

func (m *AppModel) clearSearch() {
	m.InputMode = false
	m.InputBuffer.Blur()
	m.InputBuffer.SetValue("")
	m.performSearch()
	m.refreshDetails()
}

// performSearch rebuilds FilteredIndices from the filter and the search term.
func (m *AppModel) performSearch() {
	term := strings.ToLower(strings.TrimSpace(m.InputBuffer.Value()))
	m.SearchActive = term != ""

	var indices []int
	for i, f := range m.Files {
		if !m.Filter.Match(f.Status) {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(f.RelPath), term) {
			continue
		}
		indices = append(indices, i)
	}
	m.FilteredIndices = indices

	// Bounds check
	if m.SelectedIdx >= len(m.FilteredIndices) {
		if len(m.FilteredIndices) > 0 {
			m.SelectedIdx = len(m.FilteredIndices) - 1
		} else {
			m.SelectedIdx = 0
		}
	}
}

// refreshDetails renders the selected file's references into the viewport.
func (m *AppModel) refreshDetails() {
	sel := m.Selected()
	if sel == nil {
		m.DetailsViewport.SetContent("No file selected.")
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", sel.Type.Icon(), sel.RelPath)
	fmt.Fprintf(&b, "Status: %s\n", sel.Status)

	m.writeRefs(&b, "Referenced by", sel.ReferencedBy, sel.Name())
	m.writeRefs(&b, "Referenced in comments", sel.ReferencedInComments, sel.Name())

	m.DetailsViewport.SetContent(b.String())
	m.DetailsViewport.GotoTop()
}

func (m *AppModel) writeRefs(b *strings.Builder, title string, refs []string, name string) {
	fmt.Fprintf(b, "\n%s (%d):\n", title, len(refs))
	if len(refs) == 0 {
		b.WriteString("  none\n")
		return
	}
	for _, ref := range refs {
		if m.Finder == nil {
			fmt.Fprintf(b, "  %s\n", ref)
			continue
		}
		ctx := model.FindLine(m.Finder.Fs(), filepath.Join(m.Finder.Root(), filepath.FromSlash(ref)), name)
		if ctx.ErrorMsg != "" {
			fmt.Fprintf(b, "  %s\n", ref)
			continue
		}
		fmt.Fprintf(b, "  %s:%d\n", ref, ctx.LineNumber)
		if ctx.HasBefore1 {
			fmt.Fprintf(b, "    %4d  %s\n", ctx.LineNumber-1, ctx.Before1)
		}
		fmt.Fprintf(b, "  > %4d  %s\n", ctx.LineNumber, ctx.Target)
		if ctx.HasAfter1 {
			fmt.Fprintf(b, "    %4d  %s\n", ctx.LineNumber+1, ctx.After1)
		}
	}
}

// displayOrder puts the files worth acting on first.
func displayOrder(res *scan.Result) []*model.FileInfo {
	files := make([]*model.FileInfo, 0, res.Total)
	files = append(files, res.Dead...)
	files = append(files, res.CommentOnly...)
	files = append(files, res.Alive...)
	files = append(files, res.Roots...)
	return files
}

// ScanCmd runs the scan in the background.
func ScanCmd(f *scan.Finder) tea.Cmd {
	return func() tea.Msg {
		res, err := f.Run(context.Background())
		if err != nil {
			return MsgError(err)
		}
		return MsgScanReady{Result: res, Files: displayOrder(res)}
	}
}

// DeleteCmd removes one dead file.
func DeleteCmd(f *scan.Finder, file *model.FileInfo) tea.Cmd {
	return func() tea.Msg {
		_, err := f.Delete([]*model.FileInfo{file})
		return MsgDeleted{Path: file.RelPath, Err: err}
	}
}
