package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fdc/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	deadStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	commentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	aliveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	rootStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63"))

	adviceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange
)

func statusStyle(s model.Status) lipgloss.Style {
	switch s {
	case model.StatusDead:
		return deadStyle
	case model.StatusCommentOnly:
		return commentStyle
	case model.StatusRoot:
		return rootStyle
	default:
		return aliveStyle
	}
}

func statusIcon(s model.Status) string {
	switch s {
	case model.StatusDead:
		return model.IconDead
	case model.StatusCommentOnly:
		return model.IconComment
	case model.StatusRoot:
		return model.IconRoot
	default:
		return model.IconOK
	}
}

func (m AppModel) View() string {
	if m.Loading {
		return "\n  " + model.IconScan + " Scanning for dead code... please wait.\n"
	}
	if m.Err != nil {
		return fmt.Sprintf("\n  Error: %v\n", m.Err)
	}

	width := m.WindowSize.Width
	height := m.WindowSize.Height

	// Subtracting 4 for the borders of both panels
	netWidth := width - 4
	if netWidth < 40 {
		netWidth = 40
	}
	leftWidth := netWidth / 2
	rightWidth := netWidth - leftWidth

	// Title, status line and footer take 4 rows, borders 2
	interiorHeight := height - 6
	if interiorHeight < 4 {
		interiorHeight = 4
	}

	left := m.renderList(leftWidth, interiorHeight)

	m.DetailsViewport.Width = rightWidth
	m.DetailsViewport.Height = interiorHeight
	right := m.DetailsViewport.View()

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Width(leftWidth).Height(interiorHeight).Render(left),
		panelStyle.Width(rightWidth).Height(interiorHeight).Render(right),
	)

	title := "fdc"
	if m.Result != nil {
		title += " " + m.Result.Root
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render(m.summary()))
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m AppModel) summary() string {
	if m.Result == nil {
		return ""
	}
	return fmt.Sprintf("%d files · %d dead · %d comment-only · filter: %s",
		m.Result.Total, len(m.Result.Dead), len(m.Result.CommentOnly), m.Filter)
}

func (m AppModel) renderList(width, height int) string {
	if len(m.FilteredIndices) == 0 {
		if m.Result != nil && !m.Result.HasDead() && m.Filter == FilterAll && !m.SearchActive {
			return aliveStyle.Render(model.IconDone + " No dead files found!")
		}
		return dimStyle.Render("No matching files.")
	}

	// Windowing keeps the selection in the middle of long lists
	startIdx := 0
	endIdx := len(m.FilteredIndices)
	if endIdx > height {
		if m.SelectedIdx >= height/2 {
			startIdx = m.SelectedIdx - height/2
		}
		if startIdx+height > len(m.FilteredIndices) {
			startIdx = len(m.FilteredIndices) - height
		}
		endIdx = startIdx + height
	}

	var lines []string
	for i := startIdx; i < endIdx; i++ {
		f := m.Files[m.FilteredIndices[i]]
		line := fmt.Sprintf("%s %s %s", statusIcon(f.Status), f.Type.Icon(), f.RelPath)
		if lipgloss.Width(line) > width-1 && width > 4 {
			line = truncate(line, width-4) + "..."
		}
		if i == m.SelectedIdx {
			lines = append(lines, selectedStyle.Render(line))
		} else {
			lines = append(lines, statusStyle(f.Status).Render(line))
		}
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func (m AppModel) footer() string {
	if m.InputMode {
		return "Search: " + m.InputBuffer.View()
	}
	if m.ConfirmDelete {
		if sel := m.Selected(); sel != nil {
			return adviceStyle.Render(fmt.Sprintf("Delete %s? (y/n)", sel.RelPath))
		}
	}
	help := dimStyle.Render("↑/↓ move · f filter · / search · x delete · pgup/pgdn scroll · q quit")
	if m.Status != "" {
		return adviceStyle.Render(m.Status) + "  " + help
	}
	return help
}
