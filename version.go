// Package daggerml exposes the DaggerML core version.
package daggerml

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version is the DaggerML core version. Every front-end (CLI, C ABI, Lua
// module) reports exactly this string.
const Version = "0.1.0"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// SemVer is a MAJOR.MINOR.PATCH release version.
type SemVer struct {
	Major uint64
	Minor uint64
	Patch uint64
}

var errEmptyVersion = errors.New("empty version")

// ParseVersion parses s in strict MAJOR.MINOR.PATCH form. A "v" prefix,
// pre-release and build suffixes are rejected.
func ParseVersion(s string) (SemVer, error) {
	if s == "" {
		return SemVer{}, errEmptyVersion
	}
	v, err := semver.StrictNewVersion(s)
	if err != nil {
		return SemVer{}, fmt.Errorf("invalid version %q: %w", s, err)
	}
	if v.Prerelease() != "" || v.Metadata() != "" {
		return SemVer{}, fmt.Errorf("invalid version %q: not a release version", s)
	}
	return SemVer{Major: v.Major(), Minor: v.Minor(), Patch: v.Patch()}, nil
}

func (v SemVer) String() string {
	return semver.New(v.Major, v.Minor, v.Patch, "", "").String()
}
