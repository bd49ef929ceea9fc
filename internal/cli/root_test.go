package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/type3-dev/type3/pkg/version"
)

func TestRootCmd(t *testing.T) {
	if rootCmd.Use != "type3" {
		t.Errorf("rootCmd.Use = %q, want type3", rootCmd.Use)
	}
	if rootCmd.Version != version.GetVersion() {
		t.Errorf("rootCmd.Version = %q, want %q", rootCmd.Version, version.GetVersion())
	}
}

func TestVersionCmd(t *testing.T) {
	buf := new(bytes.Buffer)
	versionCmd.SetOut(buf)
	if err := versionCmd.RunE(versionCmd, nil); err != nil {
		t.Fatalf("version RunE error: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "type3 "+version.GetVersion()) || !strings.Contains(out, "commit:") {
		t.Errorf("unexpected version output: %q", out)
	}
}

func TestErrorLine(t *testing.T) {
	line := errorLine(errors.New("boom"))
	if !strings.Contains(line, "Error:") || !strings.HasSuffix(line, "boom") {
		t.Errorf("errorLine = %q", line)
	}
}

func TestInitDependencies(t *testing.T) {
	prev := GetDeps()
	t.Cleanup(func() { SetDeps(prev) })

	InitDependencies()
	d := GetDeps()
	if d == nil || d.Logger == nil || d.Headless == nil || d.Filesystem == nil {
		t.Fatalf("incomplete dependencies: %+v", d)
	}
	if d.Generator != nil || d.Installer != nil {
		t.Error("services should be created lazily")
	}
	if err := d.EnsureServices(); err != nil {
		t.Fatalf("EnsureServices error: %v", err)
	}
	if d.Generator == nil || d.Installer == nil {
		t.Error("EnsureServices should create generator and installer")
	}

	fsys := d.Filesystem(t.TempDir())
	if fsys.Root() == "" {
		t.Error("filesystem should be rooted at the given directory")
	}
}
