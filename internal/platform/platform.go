// Package platform classifies the host operating system into the families
// the installer supports.
package platform

import "strings"

// Platform is an operating system family.
type Platform int

const (
	Unsupported Platform = iota
	Linux
	Darwin
)

func (p Platform) String() string {
	switch p {
	case Linux:
		return "linux"
	case Darwin:
		return "darwin"
	default:
		return "unsupported"
	}
}

// Supported reports whether fdc can be installed on p.
func (p Platform) Supported() bool {
	return p == Linux || p == Darwin
}

// familyPrefixes maps identifier prefixes to families. Both shell OSTYPE
// values ("linux-gnu", "darwin23") and Go GOOS values ("linux", "darwin")
// start with one of these.
var familyPrefixes = []struct {
	prefix   string
	platform Platform
}{
	{"linux", Linux},
	{"darwin", Darwin},
}

// Classify maps an OS identifier to its family. Anything not recognised,
// including the empty string, is Unsupported.
func Classify(osID string) Platform {
	id := strings.ToLower(strings.TrimSpace(osID))
	if id == "" {
		return Unsupported
	}
	for _, f := range familyPrefixes {
		if strings.HasPrefix(id, f.prefix) {
			return f.platform
		}
	}
	return Unsupported
}
