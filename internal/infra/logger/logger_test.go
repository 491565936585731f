package logger

import (
	"os"
	"strings"
	"testing"
)

func TestSetup_WritesJSONLines(t *testing.T) {
	dir := t.TempDir()
	cleanup, err := Setup(Config{Dir: dir, Debug: true})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	L().Info("test.event", "key", "value")

	path := Path()
	if path == "" {
		t.Fatal("expected a log path after Setup")
	}
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"msg":"test.event"`) {
		t.Fatalf("log file missing event: %s", b)
	}
}

func TestSetup_CleanupRestoresDiscard(t *testing.T) {
	cleanup, err := Setup(Config{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if Path() != "" {
		t.Fatal("expected empty path after cleanup")
	}
	// Must not panic after cleanup.
	L().Info("after.cleanup")
}

func TestSetup_InfoLevelDropsDebug(t *testing.T) {
	dir := t.TempDir()
	cleanup, err := Setup(Config{Dir: dir})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	L().Debug("hidden.event")
	path := Path()
	cleanup()

	b, _ := os.ReadFile(path)
	if strings.Contains(string(b), "hidden.event") {
		t.Fatalf("debug line should have been dropped: %s", b)
	}
}
