package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/recetas/internal/recipe"
	"github.com/five82/recetas/internal/ui"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSearchCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"all", []string{"search"}, "1\tEnsalada César\n2\tPasta al Pesto\n"},
		{"pasta", []string{"search", "pasta"}, "2\tPasta al Pesto\n"},
		{"case insensitive", []string{"search", "CÉSAR"}, "1\tEnsalada César\n"},
		{"no match", []string{"search", "xyz"}, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := execute(t, tc.args...)
			if err != nil {
				t.Fatalf("execute returned error: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestShowCmd_Plain(t *testing.T) {
	got, err := execute(t, "show", "--plain", "1")
	if err != nil {
		t.Fatalf("execute returned error: %v", err)
	}
	r, _ := recipe.Default().ByID("1")
	if diff := cmp.Diff(recipe.PlainText(r)+"\n", got); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
	if !strings.HasPrefix(got, "Ensalada César\n") {
		t.Fatalf("expected title first, got %q", got)
	}
}

func TestShowCmd_Markdown(t *testing.T) {
	got, err := execute(t, "show", "2")
	if err != nil {
		t.Fatalf("execute returned error: %v", err)
	}
	for _, want := range []string{"Pasta al Pesto", "Ingredientes", "Pasos"} {
		if !strings.Contains(got, want) {
			t.Fatalf("rendered output missing %q:\n%s", want, got)
		}
	}
}

func TestShowCmd_UnknownID(t *testing.T) {
	_, err := execute(t, "show", "99")
	if !errors.Is(err, recipe.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestShowCmd_RequiresID(t *testing.T) {
	if _, err := execute(t, "show"); err == nil {
		t.Fatalf("expected error without id")
	}
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"config", "prefs", "theme", "query", "log-file", "verbose"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Fatalf("missing flag --%s", name)
		}
	}
	usage := cmd.Flags().Lookup("theme").Usage
	for _, name := range ui.ThemeNames() {
		if !strings.Contains(usage, name) {
			t.Fatalf("--theme usage %q does not list %s", usage, name)
		}
	}
}
