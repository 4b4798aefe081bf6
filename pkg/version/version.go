// Package version exposes the build version of shelfview.
//
// The version string is injected at link time:
//
//	go build -ldflags "-X github.com/rshade/shelfview/pkg/version.version=v1.2.3"
package version

import (
	"github.com/Masterminds/semver/v3"
)

// devVersion is reported when no version was injected at build time.
const devVersion = "v0.0.0-dev"

//nolint:gochecknoglobals // Overridden via -ldflags at build time.
var version = devVersion

// GetVersion returns the build version string.
func GetVersion() string {
	if version == "" {
		return devVersion
	}
	return version
}

// Semver parses the build version. Unparseable versions fall back to the dev version.
func Semver() *semver.Version {
	v, err := semver.NewVersion(GetVersion())
	if err != nil {
		return semver.MustParse(devVersion)
	}
	return v
}

// IsRelease reports whether the binary was built from a tagged release
// (a valid semantic version without a prerelease suffix).
func IsRelease() bool {
	v, err := semver.NewVersion(GetVersion())
	if err != nil {
		return false
	}
	return v.Prerelease() == ""
}

// UserAgent returns the User-Agent header value used for outbound requests.
func UserAgent() string {
	return "shelfview/" + Semver().String()
}
