package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func withVersion(t *testing.T, v string) {
	t.Helper()
	old := version
	version = v
	t.Cleanup(func() { version = old })
}

func TestGetVersion(t *testing.T) {
	t.Run("default is dev", func(t *testing.T) {
		withVersion(t, devVersion)
		assert.Equal(t, devVersion, GetVersion())
		assert.False(t, IsRelease())
	})

	t.Run("empty falls back to dev", func(t *testing.T) {
		withVersion(t, "")
		assert.Equal(t, devVersion, GetVersion())
	})

	t.Run("tagged release", func(t *testing.T) {
		withVersion(t, "v1.4.2")
		assert.True(t, IsRelease())
		assert.Equal(t, "1.4.2", Semver().String())
		assert.Equal(t, "shelfview/1.4.2", UserAgent())
	})

	t.Run("garbage version", func(t *testing.T) {
		withVersion(t, "not-a-version")
		assert.False(t, IsRelease())
		assert.Equal(t, "0.0.0-dev", Semver().String())
	})
}
