package shell

import (
	"bufio"
	"errors"
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"
)

// Assignment is a line in an rc file that adds a directory to PATH.
type Assignment struct {
	File string
	Line int
	Text string
}

var (
	// PATH=..., export PATH=..., a; PATH=...
	posixPathRe = regexp.MustCompile(`(?:^|[\s;])(?:export\s+)?PATH=(.*)$`)
	// fish_add_path dir, set -gx PATH dir $PATH, set -U fish_user_paths dir
	fishPathRe = regexp.MustCompile(`^\s*(?:fish_add_path|set\s+-[a-zA-Z]*\s+(?:PATH|fish_user_paths))\b(.*)$`)
)

// FindPathAssignments scans rcFile for PATH changes that include dir.
// A missing rc file is not an error. The file is only read.
func FindPathAssignments(fsys afero.Fs, rcFile, dir, home string) ([]Assignment, error) {
	f, err := fsys.Open(rcFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	forms := spellings(dir, home)

	var hits []Assignment
	scanner := bufio.NewScanner(f)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		var entries []string
		if m := posixPathRe.FindStringSubmatch(trimmed); m != nil {
			entries = strings.Split(cleanPathValue(m[1]), ":")
		} else if m := fishPathRe.FindStringSubmatch(trimmed); m != nil {
			entries = strings.Fields(m[1])
		} else {
			continue
		}

		for _, e := range entries {
			if forms[strings.TrimSuffix(cleanPathValue(e), "/")] {
				hits = append(hits, Assignment{File: rcFile, Line: lineNum, Text: trimmed})
				break
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return hits, nil
}

// spellings lists the ways dir may be written in an rc file.
func spellings(dir, home string) map[string]bool {
	dir = filepath.Clean(dir)
	forms := map[string]bool{dir: true}
	if rel := HomeRelative(dir, home); rel != dir {
		tail := strings.TrimPrefix(rel, "$HOME")
		forms[rel] = true
		forms["${HOME}"+tail] = true
		forms["~"+tail] = true
	}
	return forms
}

func cleanPathValue(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "'")
	v = strings.TrimSuffix(v, "'")
	v = strings.TrimPrefix(v, "\"")
	v = strings.TrimSuffix(v, "\"")
	return v
}
