// Package domtest provides helpers for testing sprout components.
//
// Deterministic replaces the identity generator with a counting source for
// the duration of a test, so serialized markup is stable enough to assert
// on. The Expect helpers assert on serialized markup with useful failure
// output.
package domtest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sprout-ui/sprout/pkg/dom"
	"github.com/sprout-ui/sprout/pkg/host/memdoc"
)

// Deterministic installs a counting identity source ("n1", "n2", ...) and
// restores the previous source when the test finishes.
func Deterministic(t *testing.T) {
	t.Helper()
	counter := 0
	prev := dom.SetSource(func(length int) string {
		counter++
		return fmt.Sprintf("n%d", counter)
	})
	t.Cleanup(func() { dom.SetSource(prev) })
}

// NewDoc creates an in-memory host document with the given body shell,
// failing the test on parse errors.
func NewDoc(t *testing.T, shell string) *memdoc.Document {
	t.Helper()
	doc, err := memdoc.New(shell)
	if err != nil {
		t.Fatalf("memdoc.New(%q): %v", shell, err)
	}
	return doc
}

// ExpectContains asserts that markup contains the expected substring.
func ExpectContains(t *testing.T, markup, expected string) {
	t.Helper()
	if !strings.Contains(markup, expected) {
		t.Errorf("expected markup to contain %q, got:\n%s", expected, truncate(markup, 500))
	}
}

// ExpectNotContains asserts that markup does not contain the substring.
func ExpectNotContains(t *testing.T, markup, unexpected string) {
	t.Helper()
	if strings.Contains(markup, unexpected) {
		t.Errorf("expected markup to NOT contain %q, got:\n%s", unexpected, truncate(markup, 500))
	}
}

// ExpectElement asserts that markup contains an opening tag for tag.
func ExpectElement(t *testing.T, markup, tag string) {
	t.Helper()
	if !strings.Contains(markup, "<"+tag) {
		t.Errorf("expected markup to contain <%s> element, got:\n%s", tag, truncate(markup, 500))
	}
}

// ExpectAttribute asserts that markup contains attr with the given value.
func ExpectAttribute(t *testing.T, markup, attr, value string) {
	t.Helper()
	needle := attr + `="` + value + `"`
	if !strings.Contains(markup, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(markup, 500))
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
