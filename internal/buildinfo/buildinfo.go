// Package buildinfo exposes build metadata for the DaggerML binaries. The
// version itself is the core constant and cannot be overridden; the remaining
// fields are set at build time, e.g.:
//
//	-ldflags "-X 'github.com/flarebyte/daggerml/internal/buildinfo.Commit=abc123' -X 'github.com/flarebyte/daggerml/internal/buildinfo.Date=2026-02-09'"
package buildinfo

import (
	"runtime"
	"strings"

	"github.com/flarebyte/daggerml"
)

// Version mirrors the core version.
const Version = daggerml.Version

var (
	// Commit is the VCS commit hash (optional).
	Commit = ""
	// Date is the build time in RFC3339 or similar (optional).
	Date = ""
	// BuiltBy is an optional builder identifier.
	BuiltBy = ""
)

// Details is the structured form used by --json outputs.
type Details struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	BuiltBy string `json:"built_by"`
	Go      string `json:"go"`
	GoOS    string `json:"go_os"`
	GoArch  string `json:"go_arch"`
}

// Info returns the build metadata of the running binary.
func Info() Details {
	return Details{
		Version: Version,
		Commit:  Commit,
		Date:    Date,
		BuiltBy: BuiltBy,
		Go:      runtime.Version(),
		GoOS:    runtime.GOOS,
		GoArch:  runtime.GOARCH,
	}
}

// Summary returns a concise single-line version string.
func Summary() string {
	v := Version
	parts := make([]string, 0, 2)
	if Commit != "" {
		c := Commit
		if len(c) > 7 {
			c = c[:7]
		}
		parts = append(parts, "commit="+c)
	}
	if Date != "" {
		parts = append(parts, "date="+Date)
	}
	if len(parts) > 0 {
		v += " (" + strings.Join(parts, ", ") + ")"
	}
	return v
}
