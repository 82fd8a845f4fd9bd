package install

import "errors"

var (
	// ErrUnsupportedPlatform means the host OS is neither Linux nor macOS.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	// ErrMissingArtifact means the prebuilt binary has not been built yet.
	ErrMissingArtifact = errors.New("prebuilt binary not found")
)

// Exit codes for fdc-install.
const (
	ExitOK                  = 0
	ExitFailure             = 1
	ExitUnsupportedPlatform = 2
	ExitMissingArtifact     = 3
)

// ExitCode maps an Install error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUnsupportedPlatform):
		return ExitUnsupportedPlatform
	case errors.Is(err, ErrMissingArtifact):
		return ExitMissingArtifact
	default:
		return ExitFailure
	}
}

// Remediation returns the instruction that fixes err, or "" if there is none.
func Remediation(err error) string {
	switch {
	case errors.Is(err, ErrMissingArtifact):
		return "Build it first: " + BuildCommand
	case errors.Is(err, ErrUnsupportedPlatform):
		return "fdc can only be installed on Linux or macOS."
	default:
		return ""
	}
}
