package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplate(t *testing.T) {
	origCommit, origDate := Commit, Date
	defer func() { Commit, Date = origCommit, origDate }()

	Commit = "abc123"
	Date = "2026-01-02"
	assert.Equal(t, "bal version {{.Version}} (commit: abc123, built: 2026-01-02)\n", Template())
}
