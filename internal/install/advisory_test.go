package install

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fdc/internal/logger"
	"fdc/internal/platform"
)

func TestOnPath(t *testing.T) {
	dir := "/home/alex/.local/bin"

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"first entry", "/home/alex/.local/bin:/usr/bin", true},
		{"last entry", "/usr/bin:/home/alex/.local/bin", true},
		{"trailing slash", "/usr/bin:/home/alex/.local/bin/", true},
		{"only entry", "/home/alex/.local/bin", true},
		{"absent", "/usr/local/bin:/usr/bin", false},
		{"substring of longer entry", "/home/alex/.local/bin2:/usr/bin", false},
		{"prefix of entry", "/home/alex/.local/bin/extra", false},
		{"empty", "", false},
		{"empty entries", "::/usr/bin:", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OnPath(dir, tt.path))
		})
	}
}

func TestInstallNoAdvisoryWhenOnPath(t *testing.T) {
	fsys := newFsWithArtifact(t)
	env := newEnv("linux-gnu")
	env.Path = "/home/alex/.local/bin:/usr/bin"

	res, err := NewInstaller(fsys, logger.Discard()).Install(env)
	require.NoError(t, err)
	assert.True(t, res.OnPath)
	assert.Nil(t, res.Advisory)
}

func TestInstallAdvisoryWhenNotOnPath(t *testing.T) {
	fsys := newFsWithArtifact(t)

	res, err := NewInstaller(fsys, logger.Discard()).Install(newEnv("linux-gnu"))
	require.NoError(t, err)
	assert.Equal(t, ExitOK, ExitCode(err))
	assert.False(t, res.OnPath)
	require.NotNil(t, res.Advisory)

	assert.Equal(t, "zsh", res.Advisory.Shell)
	assert.Equal(t, "/home/alex/.zshrc", res.Advisory.RCFile)
	assert.Equal(t, `export PATH="$HOME/.local/bin:$PATH"`, res.Advisory.ExportLine)
	assert.Contains(t, res.Advisory.String(), "/home/alex/.local/bin is not on your PATH.")
	assert.Contains(t, res.Advisory.String(), res.Advisory.ExportLine)
}

func TestAdvisoryAlreadyConfigured(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/home/alex/.bash_profile",
		[]byte("export EDITOR=vim\nexport PATH=\"$HOME/.local/bin:$PATH\"\n"), 0644))

	env := newEnv("darwin")
	env.Shell = "/bin/bash"

	a := NewAdvisory(fsys, logger.Discard(), env, platform.Darwin, "/home/alex/.local/bin")
	require.Len(t, a.Configured, 1)
	assert.Equal(t, 2, a.Configured[0].Line)

	lines := a.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "/home/alex/.bash_profile:2 already adds it")
	assert.Equal(t, "Open a new terminal or run: source /home/alex/.bash_profile", lines[1])
}

func TestAdvisoryFish(t *testing.T) {
	env := newEnv("linux-gnu")
	env.Shell = "/usr/bin/fish"

	a := NewAdvisory(afero.NewMemMapFs(), logger.Discard(), env, platform.Linux, "/home/alex/.local/bin")
	assert.Equal(t, "/home/alex/.config/fish/config.fish", a.RCFile)
	assert.Equal(t, "fish_add_path $HOME/.local/bin", a.ExportLine)
	assert.Empty(t, a.Configured)
}
