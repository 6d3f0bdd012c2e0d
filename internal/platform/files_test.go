package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestSaveBytes(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "nested", "out.png")
	payload := []byte("png bytes")

	if err := SaveBytes(path, payload); err != nil {
		t.Fatalf("SaveBytes failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read back saved file: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("Saved content = %q, expected %q", got, payload)
	}
}

func TestEnsureUniquePath(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "photo.png")

	// Free path comes back unchanged
	got, err := EnsureUniquePath(path)
	if err != nil {
		t.Fatalf("EnsureUniquePath failed: %v", err)
	}
	if got != path {
		t.Errorf("Expected unchanged path %s, got %s", path, got)
	}

	// Occupied path gets a numbered suffix
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create collision file: %v", err)
	}

	got, err = EnsureUniquePath(path)
	if err != nil {
		t.Fatalf("EnsureUniquePath failed: %v", err)
	}
	expected := filepath.Join(tempDir, "photo (1).png")
	if got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}

	// And the next collision counts up
	if err := os.WriteFile(expected, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create second collision file: %v", err)
	}

	got, err = EnsureUniquePath(path)
	if err != nil {
		t.Fatalf("EnsureUniquePath failed: %v", err)
	}
	expected = filepath.Join(tempDir, "photo (2).png")
	if got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}
}

func TestGetHomePicturesDir(t *testing.T) {
	picturesDir, err := GetHomePicturesDir()
	if err != nil {
		t.Fatalf("Failed to get pictures directory: %v", err)
	}

	if picturesDir == "" {
		t.Fatal("Pictures directory is empty")
	}

	if filepath.Base(picturesDir) != "Pictures" {
		t.Errorf("Expected directory to end with 'Pictures', got: %s", picturesDir)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	tempDir := t.TempDir()
	nonExistentFile := filepath.Join(tempDir, "nonexistent.png")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}

	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenFileWithDefaultApp_NonExistentFile(t *testing.T) {
	tempDir := t.TempDir()
	nonExistentFile := filepath.Join(tempDir, "nonexistent.png")

	err := OpenFileWithDefaultApp(nonExistentFile)
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}

	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}
