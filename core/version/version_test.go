package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromBuildSettings(t *testing.T) {
	assert := assert.New(t)

	v := fromBuildSettings(nil)
	assert.Equal(V, v)

	v = fromBuildSettings([]debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "0123456789abcdef0123456789abcdef01234567"},
		{Key: "vcs.time", Value: "2026-10-15T08:30:00Z"},
		{Key: "vcs.modified", Value: "true"},
	})
	assert.Equal("v0.0.0-20261015083000-0123456789ab-dirty", v.String())
	assert.True(v.Dirty)

	v = fromBuildSettings([]debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "0123456789abcdef0123456789abcdef01234567"},
		{Key: "vcs.time", Value: "2026-10-15T08:30:00Z"},
	})
	assert.Equal("v0.0.0-20261015083000-0123456789ab", v.String())
	assert.False(v.Dirty)
}
