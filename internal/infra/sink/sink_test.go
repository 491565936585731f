package sink

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpen_File_WritesOnClose(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.fa")
	s, err := Open(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Write([]byte(">s\nACGT\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	got, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != ">s\nACGT\n" {
		t.Fatalf("file contents = %q", got)
	}
}

func TestOpen_Truncates(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.fa")
	if err := os.WriteFile(p, []byte("previous contents that are longer"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Open(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Write([]byte("new"))
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	got, _ := os.ReadFile(p)
	if string(got) != "new" {
		t.Fatalf("file contents = %q", got)
	}
}

func TestOpen_BadPath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "no", "such", "dir", "out.fa"))
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func TestOpen_Stdout(t *testing.T) {
	for _, p := range []string{"", "-"} {
		s, err := Open(p)
		if err != nil {
			t.Fatalf("Open(%q): %v", p, err)
		}
		// Closing a stdout sink must not close the process stdout.
		if err := s.Close(); err != nil {
			t.Fatalf("Close after Open(%q): %v", p, err)
		}
	}
}
