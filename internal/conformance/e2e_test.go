package conformance

import (
	"context"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/flarebyte/daggerml/internal/config"
)

// TestDMLBinaryConforms builds the real dml command and runs the default
// suite against it.
func TestDMLBinaryConforms(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the binary")
	}
	bin := filepath.Join(t.TempDir(), "dml")
	if runtime.GOOS == "windows" {
		bin += ".exe"
	}
	cmd := exec.Command("go", "build", "-o", bin, "../../cmd/dml")
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build failed: %v\n%s", err, string(out))
	}

	r := Runner{Bin: bin, Timeout: 10 * time.Second}
	rep, err := r.Run(context.Background(), SuiteCases(config.DefaultSuite()))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, res := range rep.Results {
		if !res.Passed {
			t.Errorf("%s %q: %v", res.Name, res.Args, res.Failures)
		}
	}
}
