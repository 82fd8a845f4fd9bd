package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fdc/internal/logger"
	"fdc/internal/model"
	"fdc/internal/scan"
)

const root = "/wp/plugin"

func newFinder(t *testing.T) (*scan.Finder, afero.Fs) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	files := map[string]string{
		"plugin.php":      "<?php\n/**\n * Plugin Name: Demo\n */\nrequire 'inc/loader.php';\n",
		"inc/loader.php":  "<?php\nwp_enqueue_script('a', 'app.js');\n// old.js\n",
		"app.js":          "",
		"old.js":          "",
		"orphan.css":      "",
		"inc/retired.php": "<?php\n",
	}
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fsys, root+"/"+name, []byte(content), 0644))
	}
	return scan.NewFinder(fsys, root, nil, logger.Discard()), fsys
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am, cmd
}

func loaded(t *testing.T) (AppModel, afero.Fs) {
	t.Helper()
	f, fsys := newFinder(t)
	m := InitialModel(f)
	msg := m.Init()()
	m, _ = send(t, m, msg)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, fsys
}

func selectedPaths(m AppModel) []string {
	var out []string
	for _, i := range m.FilteredIndices {
		out = append(out, m.Files[i].RelPath)
	}
	return out
}

func TestScanReady(t *testing.T) {
	m, _ := loaded(t)

	assert.False(t, m.Loading)
	require.NotNil(t, m.Result)
	assert.Equal(t, []string{
		"inc/retired.php",
		"orphan.css",
		"old.js",
		"app.js",
		"inc/loader.php",
		"plugin.php",
	}, selectedPaths(m))
	assert.Equal(t, "inc/retired.php", m.Selected().RelPath)
	assert.Contains(t, m.DetailsViewport.View(), "Status: dead")
}

func TestNavigation(t *testing.T) {
	m, _ := loaded(t)

	m, _ = send(t, m, key("k"))
	assert.Equal(t, 0, m.SelectedIdx)

	m, _ = send(t, m, key("j"))
	m, _ = send(t, m, key("j"))
	assert.Equal(t, "old.js", m.Selected().RelPath)

	for i := 0; i < 10; i++ {
		m, _ = send(t, m, key("j"))
	}
	assert.Equal(t, "plugin.php", m.Selected().RelPath)
}

func TestDetailsShowReferenceContext(t *testing.T) {
	m, _ := loaded(t)
	m, _ = send(t, m, key("j"))
	m, _ = send(t, m, key("j"))
	m, _ = send(t, m, key("j"))
	require.Equal(t, "app.js", m.Selected().RelPath)

	details := m.DetailsViewport.View()
	assert.Contains(t, details, "Referenced by (1):")
	assert.Contains(t, details, "inc/loader.php:2")
	assert.Contains(t, details, "wp_enqueue_script('a', 'app.js');")
}

func TestFilterCycle(t *testing.T) {
	m, _ := loaded(t)

	m, _ = send(t, m, key("f"))
	assert.Equal(t, FilterDead, m.Filter)
	assert.Equal(t, []string{"inc/retired.php", "orphan.css"}, selectedPaths(m))

	m, _ = send(t, m, key("f"))
	assert.Equal(t, []string{"old.js"}, selectedPaths(m))

	m, _ = send(t, m, key("f"))
	assert.Equal(t, []string{"app.js", "inc/loader.php", "plugin.php"}, selectedPaths(m))

	m, _ = send(t, m, key("f"))
	assert.Equal(t, FilterAll, m.Filter)

	m, _ = send(t, m, key("f"))
	m, _ = send(t, m, key("esc"))
	assert.Equal(t, FilterAll, m.Filter)
}

func TestSearch(t *testing.T) {
	m, _ := loaded(t)

	m, _ = send(t, m, key("/"))
	assert.True(t, m.InputMode)
	for _, r := range "inc" {
		m, _ = send(t, m, key(string(r)))
	}
	m, _ = send(t, m, key("enter"))

	assert.False(t, m.InputMode)
	assert.True(t, m.SearchActive)
	assert.Equal(t, []string{"inc/retired.php", "inc/loader.php"}, selectedPaths(m))

	m, _ = send(t, m, key("esc"))
	assert.False(t, m.SearchActive)
	assert.Len(t, m.FilteredIndices, 6)
}

func TestDeleteConfirmed(t *testing.T) {
	m, fsys := loaded(t)
	require.Equal(t, "inc/retired.php", m.Selected().RelPath)

	m, cmd := send(t, m, key("x"))
	assert.True(t, m.ConfirmDelete)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Delete inc/retired.php? (y/n)")

	m, cmd = send(t, m, key("y"))
	require.NotNil(t, cmd)
	msg := cmd()
	deleted, ok := msg.(MsgDeleted)
	require.True(t, ok)
	require.NoError(t, deleted.Err)

	exists, err := afero.Exists(fsys, root+"/inc/retired.php")
	require.NoError(t, err)
	assert.False(t, exists)

	m, cmd = send(t, m, deleted)
	assert.True(t, m.Loading)
	require.NotNil(t, cmd)

	m, _ = send(t, m, cmd())
	assert.Equal(t, "Deleted inc/retired.php", m.Status)
	assert.Len(t, m.Files, 5)
}

func TestKeysIgnoredWhileRescanning(t *testing.T) {
	m, fsys := loaded(t)

	m, _ = send(t, m, key("x"))
	m, cmd := send(t, m, key("y"))
	require.NotNil(t, cmd)
	m, rescan := send(t, m, cmd())
	require.True(t, m.Loading)
	require.NotNil(t, rescan)

	// The list still shows orphan.css below the deleted file.
	for _, k := range []string{"j", "x", "y"} {
		m, cmd = send(t, m, key(k))
		assert.Nil(t, cmd, k)
	}
	assert.False(t, m.ConfirmDelete)
	assert.Equal(t, 0, m.SelectedIdx)

	m, _ = send(t, m, rescan())
	assert.False(t, m.Loading)
	exists, err := afero.Exists(fsys, root+"/orphan.css")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestQuitWhileRescanning(t *testing.T) {
	m, _ := loaded(t)
	m.Loading = true

	_, cmd := send(t, m, key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestDeleteCancelled(t *testing.T) {
	m, fsys := loaded(t)

	m, _ = send(t, m, key("x"))
	m, cmd := send(t, m, key("n"))
	assert.Nil(t, cmd)
	assert.False(t, m.ConfirmDelete)
	assert.Equal(t, "Delete cancelled", m.Status)

	exists, err := afero.Exists(fsys, root+"/inc/retired.php")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestDeleteRefusesLiveFiles(t *testing.T) {
	m, _ := loaded(t)
	m, _ = send(t, m, key("j"))
	m, _ = send(t, m, key("j"))
	require.Equal(t, model.StatusCommentOnly, m.Selected().Status)

	m, _ = send(t, m, key("x"))
	assert.False(t, m.ConfirmDelete)
	assert.Contains(t, m.Status, "Only dead files can be deleted")
}

func TestQuit(t *testing.T) {
	m, _ := loaded(t)
	_, cmd := send(t, m, key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewStates(t *testing.T) {
	f, _ := newFinder(t)
	m := InitialModel(f)
	assert.Contains(t, m.View(), "Scanning for dead code")

	m, _ = send(t, m, MsgError(assert.AnError))
	assert.Contains(t, m.View(), "Error:")

	loadedModel, _ := loaded(t)
	view := loadedModel.View()
	assert.Contains(t, view, "fdc "+root)
	assert.Contains(t, view, "orphan.css")
	assert.Contains(t, view, "2 dead")
}
