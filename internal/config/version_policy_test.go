package config

import "testing"

func TestSuiteVersionPolicy(t *testing.T) {
	if !IsSupportedSuiteVersion(CurrentSuiteVersion) {
		t.Fatalf("current version %q must be supported", CurrentSuiteVersion)
	}
	for _, v := range []string{"", "0", "2", "1.0"} {
		if IsSupportedSuiteVersion(v) {
			t.Fatalf("%q should not be supported", v)
		}
	}
	if got := SupportedSuiteVersionsCSV(); got != "1" {
		t.Fatalf("unexpected csv: %q", got)
	}
}
