package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalFileSystem(t *testing.T) {
	fs := NewLocalFileSystem()
	tempDir := t.TempDir()

	testDir := filepath.Join(tempDir, "pages")
	if err := os.Mkdir(testDir, 0770); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}

	testFile := filepath.Join(testDir, "index.html")
	content := []byte("<html>Hello, World!</html>")
	if err := os.WriteFile(testFile, content, 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	// Test Exists on a file
	exists, err := fs.Exists(testFile)
	if err != nil {
		t.Errorf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("File should exist")
	}

	// Test Exists on a directory
	exists, err = fs.Exists(testDir)
	if err != nil {
		t.Errorf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("Directory should exist")
	}

	// Test Exists on a missing path
	exists, err = fs.Exists(filepath.Join(tempDir, "nope"))
	if err != nil {
		t.Errorf("Exists on missing path should not error: %v", err)
	}
	if exists {
		t.Error("Missing path should not exist")
	}

	// Test ReadFile
	readContent, err := fs.ReadFile(testFile)
	if err != nil {
		t.Errorf("ReadFile failed: %v", err)
	}
	if string(readContent) != string(content) {
		t.Errorf("Expected %s, got %s", content, readContent)
	}

	// Test ReadFile on a missing path
	_, err = fs.ReadFile(filepath.Join(tempDir, "nope.html"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}

	// Test IsDirectory
	isDir, err := fs.IsDirectory(testDir)
	if err != nil {
		t.Errorf("IsDirectory failed: %v", err)
	}
	if !isDir {
		t.Error("testDir should be a directory")
	}

	isDir, err = fs.IsDirectory(testFile)
	if err != nil {
		t.Errorf("IsDirectory failed: %v", err)
	}
	if isDir {
		t.Error("testFile should not be a directory")
	}

	// Test IsDirectory on a missing path
	isDir, err = fs.IsDirectory(filepath.Join(tempDir, "nope"))
	if err != nil {
		t.Errorf("IsDirectory on missing path should not error: %v", err)
	}
	if isDir {
		t.Error("Missing path should not be a directory")
	}
}
