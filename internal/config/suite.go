// Package config loads conformance suite files written in CUE.
//
// A suite file looks like:
//
//	{
//	  configVersion: "1"
//	  seed:          7
//	  generated:     50
//	  timeoutMs:     2000
//	  cases: [
//	    {name: "double dash", args: ["--"], exitCode: 2, stderrContains: "usage:"},
//	  ]
//	}
package config

import (
	"fmt"

	"cuelang.org/go/cue"
)

// Default suite values used when a field is absent.
const (
	DefaultSeed      = 1
	DefaultGenerated = 32
	DefaultTimeoutMs = 5000
)

// Case is one extra invocation declared in a suite file.
type Case struct {
	Name           string   `json:"name"`
	Args           []string `json:"args"`
	ExitCode       int      `json:"exitCode"`
	Stdout         *string  `json:"stdout,omitempty"`
	StderrContains string   `json:"stderrContains,omitempty"`
}

// Suite is a parsed suite file.
type Suite struct {
	ConfigVersion string
	Seed          int64
	Generated     int
	TimeoutMs     int
	Cases         []Case
}

// DefaultSuite returns the suite used when no file is given.
func DefaultSuite() Suite {
	return Suite{
		ConfigVersion: CurrentSuiteVersion,
		Seed:          DefaultSeed,
		Generated:     DefaultGenerated,
		TimeoutMs:     DefaultTimeoutMs,
	}
}

// LoadSuite reads and validates a .cue suite file.
func LoadSuite(path string) (Suite, error) {
	v, err := compileCUEFile(path)
	if err != nil {
		return Suite{}, err
	}
	return decodeSuite(v)
}

// ParseSuite validates suite source held in memory.
func ParseSuite(data []byte) (Suite, error) {
	v, err := compileCUE(data)
	if err != nil {
		return Suite{}, err
	}
	return decodeSuite(v)
}

var (
	suiteFields = []string{"configVersion", "seed", "generated", "timeoutMs", "cases"}
	caseFields  = []string{"name", "args", "exitCode", "stdout", "stderrContains"}
)

func decodeSuite(v cue.Value) (Suite, error) {
	s := DefaultSuite()
	if v.Kind() != cue.StructKind {
		return Suite{}, fmt.Errorf("invalid config: expected a struct")
	}
	if err := rejectUnknownFields(v, "config", suiteFields...); err != nil {
		return Suite{}, err
	}
	ver, err := requireStringField(v, "configVersion")
	if err != nil {
		return Suite{}, err
	}
	if !IsSupportedSuiteVersion(ver) {
		return Suite{}, fmt.Errorf("unsupported configVersion: %q (supported: %s)", ver, SupportedSuiteVersionsCSV())
	}
	s.ConfigVersion = ver

	if n, ok, err := optionalInt(v, "seed"); err != nil {
		return Suite{}, err
	} else if ok {
		s.Seed = n
	}
	if n, ok, err := optionalInt(v, "generated"); err != nil {
		return Suite{}, err
	} else if ok {
		if n < 0 {
			return Suite{}, fmt.Errorf("invalid value for generated: must be >= 0")
		}
		s.Generated = int(n)
	}
	if n, ok, err := optionalInt(v, "timeoutMs"); err != nil {
		return Suite{}, err
	} else if ok {
		if n <= 0 {
			return Suite{}, fmt.Errorf("invalid value for timeoutMs: must be > 0")
		}
		s.TimeoutMs = int(n)
	}

	cv := v.LookupPath(cue.ParsePath("cases"))
	if cv.Exists() {
		if cv.Kind() != cue.ListKind {
			return Suite{}, fmt.Errorf("invalid type for field: cases (expected list)")
		}
		items, err := cv.List()
		if err != nil {
			return Suite{}, fmt.Errorf("invalid value for cases: %v", err)
		}
		for i := 0; items.Next(); i++ {
			if err := rejectUnknownFields(items.Value(), fmt.Sprintf("cases[%d]", i), caseFields...); err != nil {
				return Suite{}, err
			}
		}
		if err := cv.Decode(&s.Cases); err != nil {
			return Suite{}, fmt.Errorf("invalid value for cases: %v", err)
		}
		for i, c := range s.Cases {
			if c.Name == "" {
				return Suite{}, fmt.Errorf("cases[%d]: missing required field: name", i)
			}
			if c.ExitCode < 0 || c.ExitCode > 255 {
				return Suite{}, fmt.Errorf("cases[%d]: invalid exitCode %d", i, c.ExitCode)
			}
		}
	}
	return s, nil
}
