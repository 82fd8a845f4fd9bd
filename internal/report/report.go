// Package report renders scan results for the terminal and as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fdc/internal/model"
	"fdc/internal/scan"
)

var (
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	rootStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	aliveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	aliveHeading = aliveStyle.Bold(true)
	deadStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	deadHeading  = deadStyle.Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	warnHeading  = warnStyle.Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// Options control rendering.
type Options struct {
	Verbose bool
	// Plain disables ANSI styling, for pipes and files.
	Plain bool
}

type renderer struct {
	b     strings.Builder
	plain bool
}

func (r *renderer) style(s lipgloss.Style, text string) string {
	if r.plain {
		return text
	}
	return s.Render(text)
}

func (r *renderer) println(parts ...string) {
	r.b.WriteString(strings.Join(parts, ""))
	r.b.WriteByte('\n')
}

// Render returns the human readable report.
func Render(res *scan.Result, opts Options) string {
	r := &renderer{plain: opts.Plain}

	if opts.Verbose {
		r.println()
		r.println(r.style(headingStyle, "=== Analysis Results ==="))
		r.println()
		r.println(r.style(headingStyle, "Root files (not considered dead):"))
		for _, f := range res.Roots {
			r.println("  ", model.IconRoot, " ", r.style(rootStyle, f.RelPath))
		}
		r.println()

		if len(res.Alive) > 0 {
			r.println(r.style(aliveHeading, "Alive files (referenced in code):"))
			for _, f := range res.Alive {
				r.println("  ", f.Type.Icon(), " ", r.style(aliveStyle, f.RelPath),
					fmt.Sprintf(" (referenced by %d file(s))", len(f.ReferencedBy)))
			}
			r.println()
		}
	}

	if len(res.Dead) > 0 {
		r.println(r.style(deadHeading, "Dead files (not referenced):"))
		for _, f := range res.Dead {
			r.println("  ", f.Type.Icon(), " ", r.style(deadStyle, f.RelPath))
		}
		r.println()
	}

	if len(res.CommentOnly) > 0 {
		r.println(r.style(warnHeading, "Files only referenced in comments (possibly temporarily dead):"))
		for _, f := range res.CommentOnly {
			r.println("  ", f.Type.Icon(), " ", r.style(warnStyle, f.RelPath))
			if opts.Verbose {
				for _, ref := range f.ReferencedInComments {
					r.println("    ", model.IconComment, " Referenced in: ", r.style(dimStyle, ref))
				}
			}
		}
		r.println()
	}

	r.println(Summary(res, opts.Plain))
	return r.b.String()
}

// Summary is the closing line of a report.
func Summary(res *scan.Result, plain bool) string {
	r := &renderer{plain: plain}
	if !res.HasDead() {
		return r.style(aliveHeading, model.IconDone+" No dead files found!")
	}
	return fmt.Sprintf("Found %s dead files and %s files only in comments",
		r.style(deadHeading, fmt.Sprint(len(res.Dead))),
		r.style(warnHeading, fmt.Sprint(len(res.CommentOnly))))
}

// Discovered lists every discovered file, one per line, for verbose discovery output.
func Discovered(files []*model.FileInfo, plain bool) string {
	r := &renderer{plain: plain}
	for _, f := range files {
		r.println("  ", f.Type.Icon(), " Found: ", r.style(dimStyle, f.RelPath))
	}
	return r.b.String()
}

type fileJSON struct {
	Path                 string   `json:"path"`
	Type                 string   `json:"type"`
	Status               string   `json:"status"`
	ReferencedBy         []string `json:"referenced_by"`
	ReferencedInComments []string `json:"referenced_in_comments"`
}

type resultJSON struct {
	Root        string     `json:"root"`
	PluginFile  string     `json:"plugin_file,omitempty"`
	Total       int        `json:"total"`
	Roots       []fileJSON `json:"roots"`
	Alive       []fileJSON `json:"alive"`
	Dead        []fileJSON `json:"dead"`
	CommentOnly []fileJSON `json:"comment_only"`
}

func toJSON(files []*model.FileInfo) []fileJSON {
	out := make([]fileJSON, 0, len(files))
	for _, f := range files {
		fj := fileJSON{
			Path:                 f.RelPath,
			Type:                 f.Type.String(),
			Status:               f.Status.String(),
			ReferencedBy:         f.ReferencedBy,
			ReferencedInComments: f.ReferencedInComments,
		}
		if fj.ReferencedBy == nil {
			fj.ReferencedBy = []string{}
		}
		if fj.ReferencedInComments == nil {
			fj.ReferencedInComments = []string{}
		}
		out = append(out, fj)
	}
	return out
}

// WriteJSON encodes the result as indented JSON with root-relative paths.
func WriteJSON(w io.Writer, res *scan.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resultJSON{
		Root:        res.Root,
		PluginFile:  res.PluginFile,
		Total:       res.Total,
		Roots:       toJSON(res.Roots),
		Alive:       toJSON(res.Alive),
		Dead:        toJSON(res.Dead),
		CommentOnly: toJSON(res.CommentOnly),
	})
}
