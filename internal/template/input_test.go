package template

import (
	"reflect"
	"testing"
)

func TestParseInput(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{name: "single", input: "Foo.cs", want: []string{"Foo.cs"}},
		{name: "comma_separated", input: "a.cs, b.cs,c.cs", want: []string{"a.cs", "b.cs", "c.cs"}},
		{name: "quoted_with_spaces", input: `"my file.txt", other.md`, want: []string{"my file.txt", "other.md"}},
		{name: "folders", input: "Models/, Models/User.cs", want: []string{"Models/", "Models/User.cs"}},
		{name: "backslashes_become_slashes", input: `Models\Admin\, Models\Admin\User.cs`, want: []string{"Models/Admin/", "Models/Admin/User.cs"}},
		{name: "empty_parts_dropped", input: " , ,a.cs,, ", want: []string{"a.cs"}},
		{name: "blank", input: "   ", want: []string{}},
		{name: "unterminated_quote", input: `"broken`, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseInput(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseInput() error = %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ParseInput(%q) = %#v, want %#v", tc.input, got, tc.want)
			}
		})
	}
}

func TestIsFolderName(t *testing.T) {
	if !IsFolderName("Models/") || !IsFolderName(`Models\`) {
		t.Fatalf("expected trailing separator to mark a folder")
	}
	if IsFolderName("Models/User.cs") {
		t.Fatalf("file path must not be a folder")
	}
}

func TestSplitNames(t *testing.T) {
	got := SplitNames([]string{"my file.txt", "a.cs,b.cs", `Models\User.cs`, " , "})
	want := []string{"my file.txt", "a.cs", "b.cs", "Models/User.cs"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitNames() = %#v, want %#v", got, want)
	}
}
