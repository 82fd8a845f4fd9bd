package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fdc/internal/platform"
)

func TestDetectShell(t *testing.T) {
	tests := []struct {
		shellPath string
		want      string
	}{
		{"/bin/zsh", "zsh"},
		{"/usr/local/bin/zsh", "zsh"},
		{"/bin/bash", "bash"},
		{"/opt/homebrew/bin/bash", "bash"},
		{"/usr/bin/fish", "fish"},
		{"/bin/sh", "sh"},
		{"/bin/dash", "sh"},
		{"", "sh"},
	}

	for _, tt := range tests {
		t.Run(tt.shellPath, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectShell(tt.shellPath).Name())
		})
	}
}

func TestRCFile(t *testing.T) {
	home := "/home/alex"

	assert.Equal(t, "/home/alex/.zshrc", (&ZshShell{}).RCFile(home, platform.Linux))
	assert.Equal(t, "/home/alex/.bashrc", (&BashShell{}).RCFile(home, platform.Linux))
	assert.Equal(t, "/home/alex/.bash_profile", (&BashShell{}).RCFile(home, platform.Darwin))
	assert.Equal(t, "/home/alex/.config/fish/config.fish", (&FishShell{}).RCFile(home, platform.Darwin))
	assert.Equal(t, "/home/alex/.profile", (&PosixShell{}).RCFile(home, platform.Linux))
}

func TestExportLine(t *testing.T) {
	dir := "$HOME/.local/bin"

	assert.Equal(t, `export PATH="$HOME/.local/bin:$PATH"`, (&ZshShell{}).ExportLine(dir))
	assert.Equal(t, `export PATH="$HOME/.local/bin:$PATH"`, (&BashShell{}).ExportLine(dir))
	assert.Equal(t, `export PATH="$HOME/.local/bin:$PATH"`, (&PosixShell{}).ExportLine(dir))
	assert.Equal(t, "fish_add_path $HOME/.local/bin", (&FishShell{}).ExportLine(dir))
}

func TestHomeRelative(t *testing.T) {
	assert.Equal(t, "$HOME/.local/bin", HomeRelative("/home/alex/.local/bin", "/home/alex"))
	assert.Equal(t, "$HOME/.local/bin", HomeRelative("/home/alex/.local/bin/", "/home/alex/"))
	assert.Equal(t, "$HOME", HomeRelative("/home/alex", "/home/alex"))
	assert.Equal(t, "/opt/bin", HomeRelative("/opt/bin", "/home/alex"))
	assert.Equal(t, "/home/alexander/bin", HomeRelative("/home/alexander/bin", "/home/alex"))
	assert.Equal(t, "/usr/local/bin", HomeRelative("/usr/local/bin", ""))
}
