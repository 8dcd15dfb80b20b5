package config

import (
	"slices"
	"strings"
)

// CurrentSuiteVersion is the configVersion written by this release.
const CurrentSuiteVersion = "1"

// SupportedSuiteVersions lists every configVersion LoadSuite accepts, oldest
// first.
var SupportedSuiteVersions = []string{CurrentSuiteVersion}

// IsSupportedSuiteVersion reports whether a suite file declaring v can be
// loaded.
func IsSupportedSuiteVersion(v string) bool {
	return slices.Contains(SupportedSuiteVersions, v)
}

// SupportedSuiteVersionsCSV renders SupportedSuiteVersions for error messages.
func SupportedSuiteVersionsCSV() string {
	return strings.Join(SupportedSuiteVersions, ", ")
}
