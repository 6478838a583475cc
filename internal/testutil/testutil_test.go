package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateTempDirAndFile(t *testing.T) {
	tests := []struct {
		name    string
		subPath string
		content string
	}{
		{name: "simple file", subPath: "file.txt", content: "hello"},
		{name: "nested file", subPath: filepath.Join("nested", "file.txt"), content: "nested"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := CreateTempDir(t)
			path := CreateTempFile(t, dir, tt.subPath, tt.content)
			if path != filepath.Join(dir, tt.subPath) {
				t.Fatalf("unexpected path %s", path)
			}
			AssertFileExists(t, path)
			AssertFileContent(t, path, tt.content)
			AssertFileNotExists(t, filepath.Join(dir, "missing"))
		})
	}
}

func TestCreateProject(t *testing.T) {
	dir := CreateProject(t, "Contoso.App")
	data, err := os.ReadFile(filepath.Join(dir, "App.csproj"))
	if err != nil {
		t.Fatalf("read csproj: %v", err)
	}
	if !strings.Contains(string(data), "<RootNamespace>Contoso.App</RootNamespace>") {
		t.Fatalf("unexpected csproj: %s", data)
	}

	bare := CreateProject(t, "")
	data, err = os.ReadFile(filepath.Join(bare, "App.csproj"))
	if err != nil {
		t.Fatalf("read csproj: %v", err)
	}
	if strings.Contains(string(data), "RootNamespace") {
		t.Fatalf("expected no RootNamespace element: %s", data)
	}
}
