package conformance

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Report formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Result is the outcome of one case.
type Result struct {
	Name     string   `json:"name" yaml:"name"`
	Args     []string `json:"args" yaml:"args"`
	ExitCode int      `json:"exitCode" yaml:"exitCode"`
	Passed   bool     `json:"passed" yaml:"passed"`
	Failures []string `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// Report aggregates a run.
type Report struct {
	Bin     string   `json:"bin" yaml:"bin"`
	Version string   `json:"version" yaml:"version"`
	Commit  string   `json:"commit,omitempty" yaml:"commit,omitempty"`
	Total   int      `json:"total" yaml:"total"`
	Passed  int      `json:"passed" yaml:"passed"`
	Failed  int      `json:"failed" yaml:"failed"`
	Results []Result `json:"results" yaml:"results"`
}

func (r *Report) add(res Result) {
	r.Results = append(r.Results, res)
	r.Total++
	if res.Passed {
		r.Passed++
	} else {
		r.Failed++
	}
}

// OK reports whether every case passed.
func (r Report) OK() bool { return r.Failed == 0 }

// Encode writes the report in the given format.
func (r Report) Encode(w io.Writer, format string) error {
	switch format {
	case "", FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			_ = enc.Close()
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	return fmt.Errorf("unsupported format %q (supported: %s, %s)", format, FormatYAML, FormatJSON)
}

// WriteFile writes the encoded report to path, creating parent directories.
func (r Report) WriteFile(path, format string) error {
	var buf bytes.Buffer
	if err := r.Encode(&buf, format); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
