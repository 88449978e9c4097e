package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDemoRoot(t *testing.T) {
	html := demoRoot().Serialize()
	for _, want := range []string{
		"sprout demo",
		`class="rating"`,
		"quince",
		`type="radio"`,
		"Home page.",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("demo root missing %q", want)
		}
	}
}

func TestRunExportToDir(t *testing.T) {
	dir := t.TempDir()
	if err := runExport(context.Background(), dir, "", ""); err != nil {
		t.Fatalf("runExport: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatalf("read exported page: %v", err)
	}
	if !strings.Contains(string(data), "<title>sprout demo</title>") {
		t.Errorf("exported page missing title:\n%s", data)
	}
}
