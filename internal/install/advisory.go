package install

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"fdc/internal/platform"
	"fdc/internal/shell"
)

// Advisory explains how to put the target directory on PATH for good.
type Advisory struct {
	Dir        string
	Shell      string
	RCFile     string
	ExportLine string
	// Configured lists rc lines that already add Dir; the current shell
	// simply predates them.
	Configured []shell.Assignment
}

// OnPath reports whether dir is one of the entries of pathList.
func OnPath(dir, pathList string) bool {
	want := filepath.Clean(dir)
	for _, entry := range filepath.SplitList(pathList) {
		if entry == "" {
			continue
		}
		if filepath.Clean(entry) == want {
			return true
		}
	}
	return false
}

// NewAdvisory builds guidance for env's shell. Reading the rc file is best
// effort: failures are logged and the plain instruction is returned.
func NewAdvisory(fsys afero.Fs, log *slog.Logger, env Env, p platform.Platform, dir string) *Advisory {
	sh := shell.DetectShell(env.Shell)
	rc := sh.RCFile(env.Home, p)

	a := &Advisory{
		Dir:        dir,
		Shell:      sh.Name(),
		RCFile:     rc,
		ExportLine: sh.ExportLine(shell.HomeRelative(dir, env.Home)),
	}

	hits, err := shell.FindPathAssignments(fsys, rc, dir, env.Home)
	if err != nil {
		log.Warn("could not read shell startup file", "file", rc, "error", err)
		return a
	}
	a.Configured = hits
	return a
}

// Lines renders the advisory as console lines.
func (a *Advisory) Lines() []string {
	if len(a.Configured) > 0 {
		first := a.Configured[0]
		return []string{
			fmt.Sprintf("%s is not on your PATH in this shell, but %s:%d already adds it.", a.Dir, first.File, first.Line),
			fmt.Sprintf("Open a new terminal or run: source %s", a.RCFile),
		}
	}
	return []string{
		fmt.Sprintf("%s is not on your PATH.", a.Dir),
		fmt.Sprintf("Add this line to %s:", a.RCFile),
		"    " + a.ExportLine,
		"Then open a new terminal.",
	}
}

func (a *Advisory) String() string {
	return strings.Join(a.Lines(), "\n")
}
