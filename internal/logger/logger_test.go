package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestResolveLogFilePathUsesDefaults(t *testing.T) {
	tmp := t.TempDir()
	chdir(t, tmp)

	path, err := resolveLogFilePath(Options{})
	if err != nil {
		t.Fatalf("resolveLogFilePath: %v", err)
	}

	if base := filepath.Base(path); base != defaultLogFilename {
		t.Fatalf("filename = %q, want %q", base, defaultLogFilename)
	}
	// t.TempDir may sit behind a symlink on some platforms.
	wantDir, _ := filepath.EvalSymlinks(filepath.Join(tmp, defaultLogDirName))
	gotDir, _ := filepath.EvalSymlinks(filepath.Dir(path))
	if gotDir != wantDir {
		t.Fatalf("dir = %q, want %q", gotDir, wantDir)
	}

	info, err := os.Stat(filepath.Dir(path))
	if err != nil || !info.IsDir() {
		t.Fatalf("log dir not created: %v", err)
	}
}

func TestReleaseModeLogsToFile(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "shop.log")

	log := New("release", Options{Dir: tmp, Filename: "shop.log"})
	log.Warn("pedido-expirado")
	_ = log.Sync()

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read %s: %v", target, err)
	}
	if !strings.Contains(string(data), "pedido-expirado") {
		t.Fatalf("message missing from log file:\n%s", data)
	}
}

func TestDebugModeSkipsFile(t *testing.T) {
	tmp := t.TempDir()

	log := New("debug", Options{Dir: tmp, Filename: "shop.log"})
	log.Info("console-only")
	_ = log.Sync()

	if _, err := os.Stat(filepath.Join(tmp, "shop.log")); !os.IsNotExist(err) {
		t.Fatalf("debug mode wrote a file, stat err = %v", err)
	}
}
