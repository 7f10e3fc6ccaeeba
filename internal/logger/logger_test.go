package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveLogFilePathDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("get wd failed: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldWD)
	})
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}

	got, err := resolveLogFilePath(Options{})
	if err != nil {
		t.Fatalf("resolve default log path failed: %v", err)
	}

	realTmpDir, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("resolve tmp dir symlink failed: %v", err)
	}
	realGotDir, err := filepath.EvalSymlinks(filepath.Dir(got))
	if err != nil {
		t.Fatalf("resolve log dir symlink failed: %v", err)
	}
	if realGotDir != filepath.Join(realTmpDir, defaultLogDirName) {
		t.Fatalf("log dir should default to ./%s, got %s", defaultLogDirName, realGotDir)
	}
	if filepath.Base(got) != defaultLogFilename {
		t.Fatalf("log filename should default to %s, got %s", defaultLogFilename, filepath.Base(got))
	}
	if _, err := os.Stat(filepath.Dir(got)); err != nil {
		t.Fatalf("log dir should be created: %v", err)
	}
}

func TestNewReleaseWritesToFile(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("release", Options{Dir: tmpDir, Filename: "release.log"})
	log.Info("release-log-entry")
	_ = log.Sync()

	content, err := os.ReadFile(filepath.Join(tmpDir, "release.log"))
	if err != nil {
		t.Fatalf("read release log failed: %v", err)
	}
	if !strings.Contains(string(content), "release-log-entry") {
		t.Fatalf("log file should contain the message, got: %s", string(content))
	}
}

func TestNewDebugStaysOnStdout(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("debug", Options{Dir: tmpDir, Filename: "debug.log"})
	log.Info("debug-log-entry")
	_ = log.Sync()

	if _, err := os.Stat(filepath.Join(tmpDir, "debug.log")); !os.IsNotExist(err) {
		t.Fatalf("debug mode must not create a log file")
	}
}

func TestPositiveOr(t *testing.T) {
	if got := positiveOr(0, 7); got != 7 {
		t.Fatalf("zero should fall back, got %d", got)
	}
	if got := positiveOr(-1, 7); got != 7 {
		t.Fatalf("negative should fall back, got %d", got)
	}
	if got := positiveOr(3, 7); got != 3 {
		t.Fatalf("positive should be kept, got %d", got)
	}
}
