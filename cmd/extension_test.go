package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// writeExtension installs an executable xt-<name> shell script in dir.
func writeExtension(t *testing.T, dir, name, script string) {
	t.Helper()
	path := filepath.Join(dir, "xt-"+name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatalf("failed to write extension %s: %v", name, err)
	}
}

func TestRunExtension(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extension scripts use /bin/sh")
	}

	dir := t.TempDir()
	writeExtension(t, dir, "hello", `{
  echo "arg=$1"
  echo "TRACKER_FILE=$TRACKER_FILE"
  echo "TRACKER_CURRENCY=$TRACKER_CURRENCY"
  echo "TRACKER_VERBOSE=$TRACKER_VERBOSE"
} > "$2"
`)

	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv(EnvBookFile, filepath.Join(dir, "book.csv"))
	t.Setenv(EnvCurrency, "USD")
	t.Setenv(EnvVerbose, "")

	out := filepath.Join(dir, "out.txt")
	ran, code := RunExtension("hello", []string{"ping", out})
	if !ran {
		t.Fatal("expected the hello extension to run")
	}
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}

	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("extension left no output: %v", err)
	}
	got := string(content)
	for _, want := range []string{
		"arg=ping",
		EnvBookFile + "=" + filepath.Join(dir, "book.csv"),
		EnvCurrency + "=USD",
		EnvVerbose + "=false",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected extension to see %q, got:\n%s", want, got)
		}
	}
}

func TestRunExtension_ExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extension scripts use /bin/sh")
	}

	dir := t.TempDir()
	writeExtension(t, dir, "fail", "exit 7\n")
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	ran, code := RunExtension("fail", nil)
	if !ran {
		t.Fatal("expected the fail extension to run")
	}
	if code != 7 {
		t.Errorf("expected exit code 7, got %d", code)
	}
}

func TestRunExtension_NotFound(t *testing.T) {
	// An empty PATH guarantees the lookup misses.
	t.Setenv("PATH", t.TempDir())

	ran, code := RunExtension("no-such-extension", nil)
	if ran {
		t.Error("expected no extension to run")
	}
	if code != 0 {
		t.Errorf("expected exit code 0, got %d", code)
	}
}
