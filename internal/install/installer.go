// Package install copies a prebuilt fdc binary into the user's local bin
// directory.
package install

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"fdc/internal/platform"
)

const (
	// BinaryName is the installed file name.
	BinaryName = "fdc"
	// ArtifactPath is where the build step leaves the binary, relative to Env.WorkDir.
	ArtifactPath = "target/release/fdc"
	// BuildCommand produces ArtifactPath.
	BuildCommand = "go build -o target/release/fdc ."
	// BinDir is the target directory relative to the home directory.
	BinDir = ".local/bin"

	binaryMode = 0755
	dirMode    = 0755
)

// Artifact is the prebuilt binary to install.
type Artifact struct {
	SourcePath string
	Exists     bool
}

// Target is where the binary ends up.
type Target struct {
	Dir  string
	Path string
}

// Result describes a finished installation.
type Result struct {
	Platform platform.Platform
	Artifact Artifact
	Target   Target
	Bytes    int64
	OnPath   bool
	// Advisory is set when Target.Dir is not on the search path.
	Advisory *Advisory
}

// Installer performs the install against a filesystem.
type Installer struct {
	fs  afero.Fs
	log *slog.Logger
}

// NewInstaller creates an installer. Use afero.NewOsFs() for the real disk.
func NewInstaller(fsys afero.Fs, log *slog.Logger) *Installer {
	return &Installer{
		fs:  fsys,
		log: log,
	}
}

// TargetFor returns the install target for a home directory.
func TargetFor(home string) Target {
	dir := filepath.Join(home, BinDir)
	return Target{
		Dir:  dir,
		Path: filepath.Join(dir, BinaryName),
	}
}

// ArtifactFor returns the artifact location for a working directory.
func ArtifactFor(workDir string) string {
	return filepath.Join(workDir, ArtifactPath)
}

// Install runs the whole installation. It is safe to rerun: every run
// recreates the directory if needed and overwrites the previous binary.
// Nothing is written before the platform check passes.
func (i *Installer) Install(env Env) (*Result, error) {
	p := platform.Classify(env.OSType)
	i.log.Info("platform detected", "ostype", env.OSType, "platform", p.String())
	if !p.Supported() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedPlatform, env.OSType)
	}

	if env.Home == "" {
		return nil, errors.New("home directory is not set")
	}

	result := &Result{
		Platform: p,
		Target:   TargetFor(env.Home),
		Artifact: Artifact{SourcePath: ArtifactFor(env.WorkDir)},
	}

	if err := i.fs.MkdirAll(result.Target.Dir, dirMode); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", result.Target.Dir, err)
	}
	i.log.Debug("target directory ready", "dir", result.Target.Dir)

	info, err := i.fs.Stat(result.Artifact.SourcePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w at %s", ErrMissingArtifact, result.Artifact.SourcePath)
	case err != nil:
		return nil, fmt.Errorf("failed to inspect %s: %w", result.Artifact.SourcePath, err)
	case info.IsDir():
		return nil, fmt.Errorf("%w at %s (found a directory)", ErrMissingArtifact, result.Artifact.SourcePath)
	}
	result.Artifact.Exists = true

	n, err := i.copyExecutable(result.Artifact.SourcePath, result.Target.Path)
	if err != nil {
		return nil, err
	}
	result.Bytes = n
	i.log.Info("binary installed", "source", result.Artifact.SourcePath, "target", result.Target.Path, "bytes", n)

	result.OnPath = OnPath(result.Target.Dir, env.Path)
	if !result.OnPath {
		result.Advisory = NewAdvisory(i.fs, i.log, env, p, result.Target.Dir)
	}

	return result, nil
}

// copyExecutable overwrites dst with src and marks it executable. A failure
// part way through can leave dst truncated; rerunning Install repairs it.
func (i *Installer) copyExecutable(src, dst string) (int64, error) {
	in, err := i.fs.Open(src)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := i.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, binaryMode)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", dst, err)
	}

	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return n, fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return n, fmt.Errorf("failed to write %s: %w", dst, err)
	}

	// OpenFile only applies the mode to new files.
	if err := i.fs.Chmod(dst, binaryMode); err != nil {
		return n, fmt.Errorf("failed to make %s executable: %w", dst, err)
	}

	return n, nil
}
