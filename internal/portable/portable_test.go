package portable

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func withFakeExecutable(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	fakeExe := filepath.Join(tmpDir, "addfile")
	if err := os.WriteFile(fakeExe, []byte("fake"), 0755); err != nil {
		t.Fatalf("Failed to create fake executable: %v", err)
	}

	prev := portableExecutableFunc
	portableExecutableFunc = func() (string, error) { return fakeExe, nil }
	t.Cleanup(func() { portableExecutableFunc = prev })
	return tmpDir
}

func TestTemplatesDir(t *testing.T) {
	dir := withFakeExecutable(t)

	got, err := TemplatesDir()
	if err != nil {
		t.Fatalf("TemplatesDir() error = %v", err)
	}
	if want := filepath.Join(dir, "Templates"); got != want {
		t.Fatalf("TemplatesDir() = %q, want %q", got, want)
	}
}

func TestIsPortableMode(t *testing.T) {
	cases := []struct {
		name  string
		setup func(t *testing.T, dir string)
		want  bool
	}{
		{name: "no_marker", setup: func(t *testing.T, dir string) {}, want: false},
		{
			name: "marker_file",
			setup: func(t *testing.T, dir string) {
				if err := os.WriteFile(filepath.Join(dir, "portable.ini"), nil, 0644); err != nil {
					t.Fatal(err)
				}
			},
			want: true,
		},
		{
			name: "marker_directory",
			setup: func(t *testing.T, dir string) {
				if err := os.MkdirAll(filepath.Join(dir, "portable.ini"), 0755); err != nil {
					t.Fatal(err)
				}
			},
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := withFakeExecutable(t)
			tc.setup(t, dir)
			if got := IsPortableMode(); got != tc.want {
				t.Fatalf("IsPortableMode() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestGetPortableConfigDir(t *testing.T) {
	dir := withFakeExecutable(t)
	got, err := GetPortableConfigDir()
	if err != nil {
		t.Fatalf("GetPortableConfigDir() error = %v", err)
	}
	if want := filepath.Join(dir, ".addfile"); got != want {
		t.Fatalf("GetPortableConfigDir() = %q, want %q", got, want)
	}
}

func TestExecutableError(t *testing.T) {
	prev := portableExecutableFunc
	portableExecutableFunc = func() (string, error) { return "", errors.New("boom") }
	t.Cleanup(func() { portableExecutableFunc = prev })

	if IsPortableMode() {
		t.Fatalf("expected false when executable path is unknown")
	}
	if _, err := TemplatesDir(); err == nil {
		t.Fatalf("expected error")
	}
}
