package install

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitUnsupportedPlatform, ExitCode(fmt.Errorf("%w: %q", ErrUnsupportedPlatform, "win32")))
	assert.Equal(t, ExitMissingArtifact, ExitCode(fmt.Errorf("%w at x", ErrMissingArtifact)))
	assert.Equal(t, ExitFailure, ExitCode(errors.New("permission denied")))
}

func TestRemediation(t *testing.T) {
	assert.Equal(t, "Build it first: "+BuildCommand, Remediation(ErrMissingArtifact))
	assert.NotEmpty(t, Remediation(ErrUnsupportedPlatform))
	assert.Empty(t, Remediation(errors.New("boom")))
}
