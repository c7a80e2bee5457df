package stats

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestWriterWidthFallsBackForNonTerminals(t *testing.T) {
	if got := WriterWidth(&bytes.Buffer{}); got != terminalWidthBackup {
		t.Fatalf("expected %d for a buffer, got %d", terminalWidthBackup, got)
	}

	file, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatalf("create file: %v", err)
	}
	t.Cleanup(func() {
		_ = file.Close()
	})
	if got := WriterWidth(file); got != terminalWidthBackup {
		t.Fatalf("expected %d for a regular file, got %d", terminalWidthBackup, got)
	}
}
