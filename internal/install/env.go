package install

import (
	"fmt"
	"os"
	"runtime"

	"fdc/internal/platform"
)

// Env is the slice of the process environment the installer depends on.
// It is captured once at the edge and passed in, so Install never reads
// os.Getenv itself.
type Env struct {
	OSType  string // OS identifier, e.g. "linux-gnu", "darwin23", "win32"
	Home    string // user home directory
	Path    string // search path, PATH-list formatted
	Shell   string // login shell, e.g. "/bin/zsh"
	WorkDir string // directory the artifact path is relative to
}

// EnvFromOS captures the current process environment. Most shells keep
// OSTYPE unexported, so the Go runtime's GOOS is used when it is absent.
// OSType is always filled in, even when an error is returned.
func EnvFromOS() (Env, error) {
	env := Env{
		OSType: os.Getenv("OSTYPE"),
		Home:   os.Getenv("HOME"),
		Path:   os.Getenv("PATH"),
		Shell:  os.Getenv("SHELL"),
	}
	if env.OSType == "" {
		env.OSType = runtime.GOOS
	}

	if env.Home == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return env, fmt.Errorf("cannot determine home directory: %w", err)
		}
		env.Home = h
	}

	wd, err := os.Getwd()
	if err != nil {
		return env, fmt.Errorf("cannot determine working directory: %w", err)
	}
	env.WorkDir = wd

	return env, nil
}

// EnvError decides whether a failure to capture env is fatal. On an
// unsupported platform it is not: Install rejects the platform before any
// other field is used, so that error wins.
func EnvError(env Env, err error) error {
	if err == nil || !platform.Classify(env.OSType).Supported() {
		return nil
	}
	return err
}
