// Package scan finds PHP, JavaScript and CSS files in a WordPress plugin
// that no PHP file references.
package scan

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"fdc/internal/config"
	"fdc/internal/model"
)

// pluginHeader matches the required "Plugin Name:" line of a WordPress
// plugin header docblock.
var pluginHeader = regexp.MustCompile(`(?m)^\s*\*\s*Plugin Name:`)

// Finder walks a plugin directory and classifies its files.
type Finder struct {
	fs   afero.Fs
	root string
	cfg  *config.Config
	log  *slog.Logger

	files    map[string]*model.FileInfo
	phpFiles []string
}

// Result is the outcome of a scan. Every list is sorted by path.
type Result struct {
	Root string
	// PluginFile is the file carrying the plugin header, relative to Root.
	PluginFile  string
	Total       int
	Roots       []*model.FileInfo
	Alive       []*model.FileInfo
	Dead        []*model.FileInfo
	CommentOnly []*model.FileInfo
}

// NewFinder creates a Finder rooted at root. A nil cfg means no configuration.
func NewFinder(fsys afero.Fs, root string, cfg *config.Config, log *slog.Logger) *Finder {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &Finder{
		fs:    fsys,
		root:  filepath.Clean(root),
		cfg:   cfg,
		log:   log,
		files: make(map[string]*model.FileInfo),
	}
}

// Root returns the scanned directory.
func (f *Finder) Root() string {
	return f.root
}

// Fs returns the filesystem the finder reads.
func (f *Finder) Fs() afero.Fs {
	return f.fs
}

// Run discovers files, resolves references and returns the analysis.
func (f *Finder) Run(ctx context.Context) (*Result, error) {
	if err := f.Discover(); err != nil {
		return nil, err
	}
	if err := f.FindReferences(ctx); err != nil {
		return nil, err
	}
	return f.Analyze(), nil
}

// Discover records every PHP, JS and CSS file under the root. Entries that
// cannot be read are skipped, as are configured excluded directories.
func (f *Finder) Discover() error {
	if _, err := f.fs.Stat(f.root); err != nil {
		return fmt.Errorf("cannot scan %s: %w", f.root, err)
	}

	f.files = make(map[string]*model.FileInfo)
	f.phpFiles = nil

	err := afero.Walk(f.fs, f.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			f.log.Debug("skipping unreadable entry", "path", path, "error", err)
			return nil
		}
		if info.IsDir() {
			if path != f.root && f.cfg.Excluded(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !f.isRegular(path, info) {
			return nil
		}

		fileType, ok := model.FileTypeFromExt(filepath.Ext(path))
		if !ok {
			return nil
		}

		rel, err := filepath.Rel(f.root, path)
		if err != nil {
			rel = path
		}
		f.files[path] = &model.FileInfo{
			Path:    path,
			RelPath: filepath.ToSlash(rel),
			Type:    fileType,
		}
		if fileType == model.PHP {
			f.phpFiles = append(f.phpFiles, path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	sort.Strings(f.phpFiles)
	f.log.Info("discovered files", "root", f.root, "files", len(f.files), "php", len(f.phpFiles))
	return nil
}

// isRegular follows symlinks so linked files count like the files they point at.
func (f *Finder) isRegular(path string, info os.FileInfo) bool {
	if info.Mode()&os.ModeSymlink != 0 {
		target, err := f.fs.Stat(path)
		return err == nil && target.Mode().IsRegular()
	}
	return info.Mode().IsRegular()
}

// Files returns the discovered files sorted by path.
func (f *Finder) Files() []*model.FileInfo {
	out := make([]*model.FileInfo, 0, len(f.files))
	for _, fi := range f.files {
		out = append(out, fi)
	}
	sortFiles(out)
	return out
}

type reference struct {
	target    string
	inComment bool
}

// FindReferences reads every PHP file and records, for each tracked file,
// which PHP files mention its base name in code and which only in comments.
// PHP files are read concurrently; results are merged in path order.
func (f *Finder) FindReferences(ctx context.Context) error {
	type target struct {
		path string
		name string
	}
	targets := make([]target, 0, len(f.files))
	for _, fi := range f.Files() {
		fi.ReferencedBy = nil
		fi.ReferencedInComments = nil
		targets = append(targets, target{path: fi.Path, name: fi.Name()})
	}

	found := make([][]reference, len(f.phpFiles))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, php := range f.phpFiles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := afero.ReadFile(f.fs, php)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", php, err)
			}
			code, comments := SplitComments(string(data))

			var refs []reference
			for _, t := range targets {
				if t.path == php {
					continue
				}
				switch {
				case strings.Contains(code, t.name):
					refs = append(refs, reference{target: t.path})
				case strings.Contains(comments, t.name):
					refs = append(refs, reference{target: t.path, inComment: true})
				}
			}
			found[i] = refs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, php := range f.phpFiles {
		source := f.files[php].RelPath
		for _, r := range found[i] {
			fi := f.files[r.target]
			if r.inComment {
				fi.ReferencedInComments = append(fi.ReferencedInComments, source)
			} else {
				fi.ReferencedBy = append(fi.ReferencedBy, source)
			}
		}
	}
	return nil
}

// FindRoots returns the plugin entry file, the first PHP file in path order
// with a "Plugin Name:" header (empty if there is none), and the set of all
// root files including configured extra roots.
func (f *Finder) FindRoots() (string, map[string]bool) {
	roots := make(map[string]bool)

	var plugin string
	for _, php := range f.phpFiles {
		data, err := afero.ReadFile(f.fs, php)
		if err != nil {
			continue
		}
		if pluginHeader.Match(data) {
			plugin = php
			roots[php] = true
			break
		}
	}

	for _, r := range f.cfg.Roots {
		path := filepath.Join(f.root, filepath.FromSlash(r))
		if _, ok := f.files[path]; ok {
			roots[path] = true
		} else {
			f.log.Warn("configured root not found", "root", r)
		}
	}

	return plugin, roots
}

// Analyze classifies every discovered file. Call FindReferences first.
func (f *Finder) Analyze() *Result {
	plugin, roots := f.FindRoots()

	res := &Result{
		Root:  f.root,
		Total: len(f.files),
	}
	if plugin != "" {
		res.PluginFile = f.files[plugin].RelPath
	}

	for _, fi := range f.Files() {
		switch {
		case roots[fi.Path]:
			fi.Status = model.StatusRoot
			res.Roots = append(res.Roots, fi)
		case len(fi.ReferencedBy) > 0:
			fi.Status = model.StatusAlive
			res.Alive = append(res.Alive, fi)
		case len(fi.ReferencedInComments) > 0:
			fi.Status = model.StatusCommentOnly
			res.CommentOnly = append(res.CommentOnly, fi)
		default:
			fi.Status = model.StatusDead
			res.Dead = append(res.Dead, fi)
		}
	}

	f.log.Info("analysis complete", "dead", len(res.Dead), "comment_only", len(res.CommentOnly), "alive", len(res.Alive))
	return res
}

// Delete removes files from disk and from the finder, stopping at the first
// failure. It returns the relative paths removed so far.
func (f *Finder) Delete(files []*model.FileInfo) ([]string, error) {
	var deleted []string
	for _, fi := range files {
		if err := f.fs.Remove(fi.Path); err != nil {
			return deleted, fmt.Errorf("failed to delete %s: %w", fi.RelPath, err)
		}
		f.log.Info("deleted file", "path", fi.Path)
		delete(f.files, fi.Path)
		deleted = append(deleted, fi.RelPath)
	}

	php := f.phpFiles[:0]
	for _, p := range f.phpFiles {
		if _, ok := f.files[p]; ok {
			php = append(php, p)
		}
	}
	f.phpFiles = php

	return deleted, nil
}

// HasDead reports whether anything was flagged as dead or comment-only.
func (r *Result) HasDead() bool {
	return len(r.Dead) > 0 || len(r.CommentOnly) > 0
}

func sortFiles(files []*model.FileInfo) {
	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
}
