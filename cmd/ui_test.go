package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/YangQing-Lin/add-any-file/internal/i18n"
	"github.com/YangQing-Lin/add-any-file/internal/template"
	"github.com/YangQing-Lin/add-any-file/internal/testutil"
	"github.com/YangQing-Lin/add-any-file/internal/tui"
)

func TestUICommandRunsPrompt(t *testing.T) {
	withTempHome(t)
	root := testutil.CreateProject(t, "App")

	var gotDir string
	var gotForce bool
	orig := promptRunner
	promptRunner = func(cmd *cobra.Command, env *environment, dir string, overwrite bool) error {
		gotDir, gotForce = dir, overwrite
		if env.request().RootNamespace != "App" {
			t.Errorf("expected project namespace, got %q", env.request().RootNamespace)
		}
		return nil
	}
	t.Cleanup(func() { promptRunner = orig })

	if _, _, err := executeCommand(t, "ui", root, "--force"); err != nil {
		t.Fatalf("ui error = %v", err)
	}
	if gotDir != root || !gotForce {
		t.Fatalf("prompt got dir=%q force=%v", gotDir, gotForce)
	}
}

func TestReportPromptListsCreatedOnCancel(t *testing.T) {
	withTempHome(t)
	i18n.SetLanguage("en")
	root := testutil.CreateProject(t, "App")
	testutil.CreateTempFile(t, root, "Taken.cs", "keep")

	catalog, err := template.BuiltinCatalog()
	if err != nil {
		t.Fatalf("BuiltinCatalog() error = %v", err)
	}
	resolver := template.NewResolver(catalog, template.Options{})
	m := tui.New(context.Background(), resolver, template.Request{ProjectRoot: root, RootNamespace: "App"}, root, false)

	press := func(msg tea.KeyMsg) {
		updated, _ := m.Update(msg)
		m = updated.(tui.Model)
	}
	press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Fresh.cs, Taken.cs")})
	press(tea.KeyMsg{Type: tea.KeyEnter})
	press(tea.KeyMsg{Type: tea.KeyEsc})

	var buf bytes.Buffer
	reportPrompt(&buf, m)
	out := buf.String()
	if !strings.Contains(out, "Fresh.cs") || !strings.Contains(out, "Cancelled.") {
		t.Fatalf("expected created file and cancel notice, got: %s", out)
	}
	testutil.AssertFileExists(t, filepath.Join(root, "Fresh.cs"))
}
