package shell

import (
	"fmt"
	"path/filepath"
	"strings"

	"fdc/internal/platform"
)

// Shell describes how a login shell persists PATH changes.
type Shell interface {
	Name() string
	// RCFile is the startup file a user edits to change PATH for good.
	RCFile(home string, p platform.Platform) string
	// ExportLine is the line to append to RCFile so dir is searched.
	ExportLine(dir string) string
}

// ZshShell implements Shell for Zsh.
type ZshShell struct{}

func (s *ZshShell) Name() string {
	return "zsh"
}

func (s *ZshShell) RCFile(home string, _ platform.Platform) string {
	return filepath.Join(home, ".zshrc")
}

func (s *ZshShell) ExportLine(dir string) string {
	return fmt.Sprintf(`export PATH="%s:$PATH"`, dir)
}

// BashShell implements Shell for Bash.
type BashShell struct{}

func (s *BashShell) Name() string {
	return "bash"
}

// RCFile picks ~/.bash_profile on macOS, where Terminal starts login shells
// that never read ~/.bashrc.
func (s *BashShell) RCFile(home string, p platform.Platform) string {
	if p == platform.Darwin {
		return filepath.Join(home, ".bash_profile")
	}
	return filepath.Join(home, ".bashrc")
}

func (s *BashShell) ExportLine(dir string) string {
	return fmt.Sprintf(`export PATH="%s:$PATH"`, dir)
}

// FishShell implements Shell for fish.
type FishShell struct{}

func (s *FishShell) Name() string {
	return "fish"
}

func (s *FishShell) RCFile(home string, _ platform.Platform) string {
	return filepath.Join(home, ".config", "fish", "config.fish")
}

func (s *FishShell) ExportLine(dir string) string {
	return "fish_add_path " + dir
}

// PosixShell covers sh, dash, ksh and anything unrecognised.
type PosixShell struct{}

func (s *PosixShell) Name() string {
	return "sh"
}

func (s *PosixShell) RCFile(home string, _ platform.Platform) string {
	return filepath.Join(home, ".profile")
}

func (s *PosixShell) ExportLine(dir string) string {
	return fmt.Sprintf(`export PATH="%s:$PATH"`, dir)
}

// DetectShell identifies the user's shell from $SHELL, defaulting to POSIX sh.
func DetectShell(shellPath string) Shell {
	name := filepath.Base(strings.TrimSpace(shellPath))
	switch {
	case strings.Contains(name, "zsh"):
		return &ZshShell{}
	case strings.Contains(name, "bash"):
		return &BashShell{}
	case strings.Contains(name, "fish"):
		return &FishShell{}
	default:
		return &PosixShell{}
	}
}

// HomeRelative rewrites dir as "$HOME/..." when it lives under home, which
// is the form people expect to paste into an rc file.
func HomeRelative(dir, home string) string {
	if home == "" {
		return dir
	}
	rel, err := filepath.Rel(filepath.Clean(home), filepath.Clean(dir))
	if err != nil || rel == ".." || strings.HasPrefix(rel, "../") {
		return dir
	}
	if rel == "." {
		return "$HOME"
	}
	return "$HOME/" + filepath.ToSlash(rel)
}
