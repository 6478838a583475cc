package version

import "testing"

func TestVersionInfo(t *testing.T) {
	if GetVersion() != Version || Version == "" {
		t.Fatalf("unexpected version %q", GetVersion())
	}

	prevDate, prevCommit := BuildDate, GitCommit
	t.Cleanup(func() { BuildDate, GitCommit = prevDate, prevCommit })

	BuildDate = "2026-10-01"
	GitCommit = "abc1234"
	if GetBuildDate() != "2026-10-01" || GetGitCommit() != "abc1234" {
		t.Fatalf("injected build info not returned: %s %s", GetBuildDate(), GetGitCommit())
	}
}
