package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fdc/internal/buildinfo"
	"fdc/internal/config"
	"fdc/internal/logger"
	"fdc/internal/model"
	"fdc/internal/report"
	"fdc/internal/scan"
	"fdc/internal/tui"
	"fdc/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

var warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

// app carries the process edges so run can be driven from tests.
type app struct {
	fs     afero.Fs
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	plain  bool
}

func main() {
	log := logger.Get()
	cwd, _ := os.Getwd()
	log.Info("command invoked", "version", buildinfo.Version, "args", os.Args[1:], "cwd", cwd)

	a := &app{
		fs:     afero.NewOsFs(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		plain:  ui.NewOutput(os.Stdout, os.Stderr).Plain(),
	}
	os.Exit(a.run(os.Args[1:]))
}

func (a *app) run(args []string) int {
	flags := pflag.NewFlagSet("fdc", pflag.ContinueOnError)
	flags.SetOutput(a.stderr)
	flags.Usage = func() {
		fmt.Fprintf(a.stderr, "Usage: fdc [path] [options]\n\n")
		fmt.Fprintf(a.stderr, "fdc (Find Dead Code) identifies unused files in WordPress plugin projects.\n")
		fmt.Fprintf(a.stderr, "A PHP, JS or CSS file is dead when no PHP file mentions its name outside comments.\n")
		fmt.Fprintf(a.stderr, "The file carrying the \"Plugin Name:\" header is the root and never dead.\n\n")
		fmt.Fprintf(a.stderr, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(a.stderr, "\nExamples:\n")
		fmt.Fprintf(a.stderr, "  fdc                  # Scan the current directory\n")
		fmt.Fprintf(a.stderr, "  fdc ./my-plugin -v   # Show alive files and comment references too\n")
		fmt.Fprintf(a.stderr, "  fdc -i               # Browse results interactively\n")
		fmt.Fprintf(a.stderr, "  fdc --json -o r.json # Save the analysis as JSON\n")
		fmt.Fprintf(a.stderr, "  fdc --delete         # Delete dead files after confirmation\n")
		fmt.Fprintf(a.stderr, "\n--delete works with the text report only; it cannot be combined with --json or --interactive.\n")
	}

	deleteFlag := flags.BoolP("delete", "d", false, "Delete found dead files (text report only)")
	verboseFlag := flags.BoolP("verbose", "v", false, "Show verbose output")
	jsonFlag := flags.BoolP("json", "j", false, "Output the analysis as JSON")
	interactiveFlag := flags.BoolP("interactive", "i", false, "Browse results in an interactive terminal UI")
	outputFlag := flags.StringP("output", "o", "", "Save the report to the specified file")
	versionFlag := flags.BoolP("version", "V", false, "Print version information")
	updateFlag := flags.BoolP("update", "u", false, "Check whether a newer release exists")
	helpFlag := flags.BoolP("help", "h", false, "Show this help message")

	if err := flags.Parse(args); err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}

	if *helpFlag {
		flags.Usage()
		return 0
	}

	if *versionFlag {
		fmt.Fprintf(a.stdout, "fdc version %s\n", buildinfo.String())
		return 0
	}

	if *updateFlag {
		a.checkUpdate(buildinfo.Version)
		return 0
	}

	if *deleteFlag && (*jsonFlag || *interactiveFlag) {
		fmt.Fprintf(a.stderr, "Error: --delete cannot be combined with --json or --interactive\n")
		return 1
	}

	root := "."
	if flags.NArg() > 0 {
		root = flags.Arg(0)
	} else if cwd, err := os.Getwd(); err == nil {
		root = cwd
	}

	if exists, _ := afero.Exists(a.fs, root); !exists {
		fmt.Fprintf(a.stderr, "Error: Path '%s' does not exist\n", root)
		return 1
	}

	cfg, err := config.Load(a.fs, root)
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}

	finder := scan.NewFinder(a.fs, root, cfg, logger.Get())

	if *interactiveFlag {
		return a.runTuiMode(finder)
	}

	if *jsonFlag {
		return a.runJSONMode(finder, *outputFlag)
	}

	return a.runReportMode(finder, *outputFlag, *verboseFlag, *deleteFlag)
}

func (a *app) runReportMode(finder *scan.Finder, outputFile string, verbose, deleteMode bool) int {
	fmt.Fprintf(a.stdout, "%s Scanning for dead code in: %s\n", model.IconScan, finder.Root())

	if verbose {
		fmt.Fprintf(a.stdout, "\nDiscovering files...\n")
	}
	if err := finder.Discover(); err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}
	if verbose {
		fmt.Fprint(a.stdout, report.Discovered(finder.Files(), a.plain))
	}
	fmt.Fprintf(a.stdout, "\n%s Found %d files to analyze\n", model.IconStats, len(finder.Files()))

	if err := finder.FindReferences(context.Background()); err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}
	res := finder.Analyze()

	if outputFile != "" {
		text := report.Render(res, report.Options{Verbose: verbose, Plain: true})
		if err := afero.WriteFile(a.fs, outputFile, []byte(text), 0644); err != nil {
			fmt.Fprintf(a.stderr, "Error writing report to %s: %v\n", outputFile, err)
			return 1
		}
		fmt.Fprintf(a.stdout, "Report saved to %s\n", outputFile)
	} else {
		fmt.Fprint(a.stdout, report.Render(res, report.Options{Verbose: verbose, Plain: a.plain}))
	}

	if deleteMode && res.HasDead() {
		if err := a.deleteDead(finder, res); err != nil {
			fmt.Fprintf(a.stderr, "Error: %v\n", err)
			return 1
		}
	}

	return 0
}

func (a *app) deleteDead(finder *scan.Finder, res *scan.Result) error {
	banner := model.IconWarn + "  DELETE MODE ENABLED"
	if !a.plain {
		banner = warnStyle.Render(banner)
	}
	fmt.Fprintf(a.stdout, "\n%s\n", banner)
	fmt.Fprintln(a.stdout, "This will permanently delete the identified dead files.")
	fmt.Fprintln(a.stdout, "Press Enter to continue or Ctrl+C to cancel...")

	if _, err := bufio.NewReader(a.stdin).ReadString('\n'); err != nil && err != io.EOF {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	for _, f := range res.Dead {
		fmt.Fprintf(a.stdout, "Deleting: %s\n", f.Path)
		if _, err := finder.Delete([]*model.FileInfo{f}); err != nil {
			return err
		}
	}
	fmt.Fprintf(a.stdout, "%s  Deleted %d dead files\n", model.IconDelete, len(res.Dead))

	if len(res.CommentOnly) > 0 {
		fmt.Fprintln(a.stdout, "Note: Files only referenced in comments were not deleted for safety.")
	}
	return nil
}

func (a *app) runJSONMode(finder *scan.Finder, outputFile string) int {
	res, err := finder.Run(context.Background())
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}

	if outputFile == "" {
		if err := report.WriteJSON(a.stdout, res); err != nil {
			fmt.Fprintf(a.stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	var buf bytes.Buffer
	if err := report.WriteJSON(&buf, res); err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}
	if err := afero.WriteFile(a.fs, outputFile, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(a.stderr, "Error writing report to %s: %v\n", outputFile, err)
		return 1
	}
	fmt.Fprintf(a.stdout, "Report saved to %s\n", filepath.Clean(outputFile))
	return 0
}

func (a *app) runTuiMode(finder *scan.Finder) int {
	m := tui.InitialModel(finder)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(a.stderr, "Alas, there's been an error: %v\n", err)
		return 1
	}
	return 0
}

// checkUpdate only reports; fdc never replaces its own binary.
func (a *app) checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      buildinfo.RepoOwner,
		Repository: buildinfo.RepoName,
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		logger.Get().Warn("version check failed", "error", err)
		fmt.Fprintf(a.stderr, "Could not check for a newer version: %v\n", err)
		return
	}

	if res.Outdated {
		fmt.Fprintf(a.stdout, "\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Fprintf(a.stdout, "👉 Download it from https://github.com/%s/%s/releases\n", buildinfo.RepoOwner, buildinfo.RepoName)
	} else {
		fmt.Fprintf(a.stdout, "✅ You are using the latest version: %s\n", currentVer)
	}
}
