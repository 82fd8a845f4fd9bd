package model

import "strings"

// FileType is a kind of plugin source file fdc tracks.
type FileType int

const (
	PHP FileType = iota + 1
	JavaScript
	CSS
)

// FileTypeFromExt maps a file extension, with or without the leading dot,
// to a FileType. The match is case-insensitive.
func FileTypeFromExt(ext string) (FileType, bool) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "php":
		return PHP, true
	case "js":
		return JavaScript, true
	case "css":
		return CSS, true
	default:
		return 0, false
	}
}

func (t FileType) String() string {
	switch t {
	case PHP:
		return "php"
	case JavaScript:
		return "js"
	case CSS:
		return "css"
	default:
		return "unknown"
	}
}

// MarshalText lets FileType appear as "php", "js" or "css" in JSON.
func (t FileType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Icon returns the glyph shown next to files of this type.
func (t FileType) Icon() string {
	switch t {
	case PHP:
		return IconPHP
	case JavaScript:
		return IconJS
	case CSS:
		return IconCSS
	default:
		return IconOK
	}
}

// Status classifies a tracked file after analysis.
type Status int

const (
	StatusAlive       Status = iota // referenced from PHP code
	StatusRoot                      // the plugin entry file
	StatusDead                      // referenced nowhere
	StatusCommentOnly               // referenced only inside comments
)

func (s Status) String() string {
	switch s {
	case StatusRoot:
		return "root"
	case StatusDead:
		return "dead"
	case StatusCommentOnly:
		return "comment-only"
	default:
		return "alive"
	}
}

// MarshalText renders Status by name in JSON.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// FileInfo is a tracked source file and the PHP files that mention it.
type FileInfo struct {
	Path                 string   // absolute path as discovered
	RelPath              string   // path relative to the scan root
	Type                 FileType
	Status               Status
	ReferencedBy         []string // PHP files naming it in code
	ReferencedInComments []string // PHP files naming it only in comments
}

// Name returns the base file name, which is what references are matched on.
func (f *FileInfo) Name() string {
	if i := strings.LastIndexAny(f.Path, `/\`); i >= 0 {
		return f.Path[i+1:]
	}
	return f.Path
}
