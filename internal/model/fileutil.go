package model

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// LineContext represents a line from a file with surrounding context
type LineContext struct {
	Before2    string // Two lines before the target
	Before1    string // Line before the target
	Target     string // The actual target line
	After1     string // Line after the target
	After2     string // Two lines after the target
	LineNumber int    // Line number of the target
	HasBefore2 bool   // Whether there's a second line before
	HasBefore1 bool   // Whether there's a line before
	HasAfter1  bool   // Whether there's a line after
	HasAfter2  bool   // Whether there's a second line after
	ErrorMsg   string // Error message if file couldn't be read
}

func readLines(fsys afero.Fs, filePath string) ([]string, error) {
	file, err := fsys.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("could not read file: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return lines, nil
}

// FindLine returns the context of the first line in filePath containing needle.
func FindLine(fsys afero.Fs, filePath, needle string) LineContext {
	lines, err := readLines(fsys, filePath)
	if err != nil {
		return LineContext{ErrorMsg: err.Error()}
	}
	for i, l := range lines {
		if strings.Contains(l, needle) {
			return contextAt(lines, i+1)
		}
	}
	return LineContext{ErrorMsg: fmt.Sprintf("%q not found", needle)}
}

func contextAt(lines []string, lineNumber int) LineContext {
	result := LineContext{LineNumber: lineNumber}

	if lineNumber < 1 || lineNumber > len(lines) {
		result.ErrorMsg = fmt.Sprintf("Line %d out of range (file has %d lines)", lineNumber, len(lines))
		return result
	}

	result.Target = lines[lineNumber-1]

	if lineNumber > 2 {
		result.Before2 = lines[lineNumber-3]
		result.HasBefore2 = true
	}
	if lineNumber > 1 {
		result.Before1 = lines[lineNumber-2]
		result.HasBefore1 = true
	}

	if lineNumber < len(lines) {
		result.After1 = lines[lineNumber]
		result.HasAfter1 = true
	}
	if lineNumber+1 < len(lines) {
		result.After2 = lines[lineNumber+1]
		result.HasAfter2 = true
	}

	return result
}
