// Command fdc-install copies a prebuilt fdc binary into ~/.local/bin.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"fdc/internal/buildinfo"
	"fdc/internal/install"
	"fdc/internal/logger"
	"fdc/internal/ui"
)

func main() {
	log := logger.Get()

	env, err := install.EnvFromOS()
	if err := install.EnvError(env, err); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
		os.Exit(install.ExitFailure)
	}

	log.Info("command invoked", "version", buildinfo.Version, "command", "fdc-install", "cwd", env.WorkDir)
	os.Exit(run(os.Args[1:], env, afero.NewOsFs(), os.Stdout, os.Stderr))
}

func run(args []string, env install.Env, fsys afero.Fs, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("fdc-install", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: fdc-install [options]\n\n")
		fmt.Fprintf(stderr, "Installs the prebuilt %s into ~/%s/%s.\n", install.ArtifactPath, install.BinDir, install.BinaryName)
		fmt.Fprintf(stderr, "Build it first with: %s\n\n", install.BuildCommand)
		fmt.Fprintf(stderr, "Options:\n")
		flags.PrintDefaults()
	}
	versionFlag := flags.BoolP("version", "V", false, "Print version information")
	helpFlag := flags.BoolP("help", "h", false, "Show this help message")

	if err := flags.Parse(args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return install.ExitFailure
	}
	if *helpFlag {
		flags.Usage()
		return install.ExitOK
	}
	if *versionFlag {
		fmt.Fprintf(stdout, "fdc-install version %s\n", buildinfo.String())
		return install.ExitOK
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "fdc-install takes no arguments\n")
		flags.Usage()
		return install.ExitFailure
	}

	out := ui.NewOutput(stdout, stderr)
	log := logger.Get()

	out.Header("Installing fdc")
	res, err := install.NewInstaller(fsys, log).Install(env)
	if err != nil {
		log.Error("install failed", "error", err)
		out.Error(err.Error())
		if hint := install.Remediation(err); hint != "" {
			out.Info(hint)
		}
		return install.ExitCode(err)
	}

	out.Muted(fmt.Sprintf("Copied %s to %s (%d bytes)", res.Artifact.SourcePath, res.Target.Path, res.Bytes))
	if res.Advisory != nil {
		for _, l := range res.Advisory.Lines() {
			out.Warning(l)
		}
	}
	out.Success(fmt.Sprintf("fdc installed to %s", res.Target.Path))
	return install.ExitOK
}
