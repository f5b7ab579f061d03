package fsutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// withHome points os.UserHomeDir at a temp dir for the test.
func withHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", home)
	}
	return home
}

func TestExpandHome(t *testing.T) {
	home := withHome(t)
	cases := []struct{ in, want string }{
		{"/etc/mentord.yaml", "/etc/mentord.yaml"},
		{"", ""},
		{"~", home},
		{"~/mentord/config.toml", filepath.Join(home, "mentord", "config.toml")},
		{"~other/x", "~other/x"},
		{"relative/~/x", "relative/~/x"},
	}
	for _, c := range cases {
		got, err := ExpandHome(c.in)
		if err != nil {
			t.Fatalf("ExpandHome(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ExpandHome(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, ".env")
	if err := os.WriteFile(f, []byte("A=1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !FileExists(f) {
		t.Fatalf("expected %s to exist", f)
	}
	if FileExists(dir) {
		t.Fatalf("a directory is not a file")
	}
	if FileExists(filepath.Join(dir, "missing")) {
		t.Fatalf("missing file reported as existing")
	}
}

func TestOptionalFile(t *testing.T) {
	home := withHome(t)
	if err := os.WriteFile(filepath.Join(home, ".env"), []byte("A=1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	p, ok, err := OptionalFile(" ~/.env ")
	if err != nil || !ok || p != filepath.Join(home, ".env") {
		t.Fatalf("got (%q, %v, %v)", p, ok, err)
	}
	p, ok, err = OptionalFile("~/nope.env")
	if err != nil || ok || p != filepath.Join(home, "nope.env") {
		t.Fatalf("got (%q, %v, %v)", p, ok, err)
	}
	if p, ok, err := OptionalFile("   "); err != nil || ok || p != "" {
		t.Fatalf("blank path: (%q, %v, %v)", p, ok, err)
	}
}
