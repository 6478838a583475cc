package utils

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existingPath := filepath.Join(tmpDir, "exists.txt")
	if err := os.WriteFile(existingPath, []byte("ok"), 0644); err != nil {
		t.Fatalf("创建文件失败: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file", existingPath, true},
		{"missing file", filepath.Join(tmpDir, "missing.txt"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileExists(tt.path); got != tt.want {
				t.Fatalf("FileExists(%s) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestReadJSONFile(t *testing.T) {
	tmpDir := t.TempDir()
	good := filepath.Join(tmpDir, "good.json")
	if err := os.WriteFile(good, []byte(`{"name":"x"}`), 0644); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(tmpDir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{`), 0644); err != nil {
		t.Fatal(err)
	}

	var v struct {
		Name string `json:"name"`
	}
	if err := ReadJSONFile(good, &v); err != nil || v.Name != "x" {
		t.Fatalf("ReadJSONFile() = %v, %+v", err, v)
	}
	if err := ReadJSONFile(bad, &v); err == nil || !strings.Contains(err.Error(), "解析 JSON 失败") {
		t.Fatalf("expected parse error, got %v", err)
	}
	if err := ReadJSONFile(filepath.Join(tmpDir, "missing.json"), &v); err == nil {
		t.Fatalf("expected read error")
	}
}

func TestAtomicWriteFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "dir", "file.cs")

	if err := AtomicWriteFile(path, []byte("content"), 0644); err != nil {
		t.Fatalf("AtomicWriteFile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "content" {
		t.Fatalf("unexpected content %q, err %v", data, err)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %v", entries)
	}
}

func TestCreateFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "Foo.cs")

	if err := CreateFile(path, []byte("one"), false); err != nil {
		t.Fatalf("CreateFile() error = %v", err)
	}

	err := CreateFile(path, []byte("two"), false)
	if !errors.Is(err, ErrFileExists) {
		t.Fatalf("expected ErrFileExists, got %v", err)
	}
	if data, _ := os.ReadFile(path); string(data) != "one" {
		t.Fatalf("existing file must not change, got %q", data)
	}

	if err := CreateFile(path, []byte("two"), true); err != nil {
		t.Fatalf("CreateFile(overwrite) error = %v", err)
	}
	if data, _ := os.ReadFile(path); string(data) != "two" {
		t.Fatalf("expected overwrite, got %q", data)
	}

	if err := CreateFile(tmpDir, nil, true); err == nil {
		t.Fatalf("expected error when target is a directory")
	}
}
