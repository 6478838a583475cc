package template

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/YangQing-Lin/add-any-file/internal/testutil"
	"github.com/YangQing-Lin/add-any-file/internal/utils"
)

func TestPlanAndApply(t *testing.T) {
	catalog := newTestCatalog(t, map[string]string{
		".cs.txt":           "namespace {namespace}\nclass {itemname}",
		".cs-interface.txt": "namespace {namespace}\ninterface {itemname}",
	})
	r := NewResolver(catalog, Options{})
	root := t.TempDir()

	names, err := ParseInput("Models/, Models/User.cs, IRepository.cs, notes.unknown")
	if err != nil {
		t.Fatalf("ParseInput() error = %v", err)
	}

	items, err := r.Plan(context.Background(), Request{ProjectRoot: root, RootNamespace: "App"}, root, names)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(items))
	}
	if !items[0].Folder || items[0].Target() != filepath.Join(root, "Models") {
		t.Fatalf("unexpected folder item %+v", items[0])
	}

	for _, item := range items {
		if err := item.Apply(false); err != nil {
			t.Fatalf("Apply(%s) error = %v", item.Input, err)
		}
	}

	testutil.AssertFileContent(t, filepath.Join(root, "Models", "User.cs"), "namespace App.Models\r\nclass User")
	testutil.AssertFileContent(t, filepath.Join(root, "IRepository.cs"), "namespace App\r\ninterface IRepository")
	testutil.AssertFileContent(t, filepath.Join(root, "notes.unknown"), "")

	again, err := r.Plan(context.Background(), Request{ProjectRoot: root}, root, []string{"Models/User.cs"})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if err := again[0].Apply(false); !errors.Is(err, utils.ErrFileExists) {
		t.Fatalf("expected ErrFileExists, got %v", err)
	}
}

func TestApplyLocalTemplateWritesLongName(t *testing.T) {
	r := NewResolver(newTestCatalog(t, nil), Options{})
	root := t.TempDir()
	testutil.CreateTempFile(t, root, filepath.Join("Controllers", "{itemname}Controller.template"), "class {itemname}Controller")

	items, err := r.Plan(context.Background(), Request{ProjectRoot: root}, filepath.Join(root, "Controllers"), []string{"Home"})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if err := items[0].Apply(false); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	testutil.AssertFileContent(t, filepath.Join(root, "Controllers", "HomeController.cs"), "class HomeController")
	testutil.AssertFileNotExists(t, filepath.Join(root, "Controllers", "Home"))
}
