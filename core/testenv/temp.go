package testenv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TempName returns a filename in a temporary directory.
// The file is not created. The directory is deleted during cleanup.
func TempName(t testing.TB, name ...string) (filename string) {
	filename = "temp"
	if len(name) > 0 {
		filename = name[0]
	}
	return filepath.Join(t.TempDir(), filename)
}

// WriteTemp writes content into a temporary file and returns its name.
func WriteTemp(t testing.TB, name string, content []byte) (filename string) {
	filename = TempName(t, name)
	if e := os.WriteFile(filename, content, 0o644); e != nil {
		t.Fatalf("os.WriteFile(%s) error: %v", filename, e)
	}
	return filename
}

// ReadLines reads a text file and splits it at CRLF line endings.
// The empty string after the final CRLF is dropped.
func ReadLines(t testing.TB, filename string) (lines []string) {
	body, e := os.ReadFile(filename)
	if e != nil {
		t.Fatalf("os.ReadFile(%s) error: %v", filename, e)
	}
	lines = strings.Split(string(body), "\r\n")
	if last := len(lines) - 1; lines[last] == "" {
		lines = lines[:last]
	}
	return lines
}
