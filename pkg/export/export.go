// Package export renders sprout trees to static HTML.
//
// Page wraps a serialized root in a complete document; WriteFile and the S3
// publisher deliver the result to disk or object storage. Exported pages are
// inert: identity markers are present but no client script is included, so
// nothing listens for events.
package export

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/sprout-ui/sprout/pkg/dom"
)

// Page describes one exported document.
type Page struct {
	// Title is the document title.
	Title string

	// Root is the tree to serialize into the document body.
	Root *dom.Node
}

// WriteTo writes the page as a complete HTML document.
func (p Page) WriteTo(w io.Writer) (int64, error) {
	if p.Root == nil {
		return 0, fmt.Errorf("export: page %q has no root", p.Title)
	}
	n, err := fmt.Fprintf(w, pageTemplate, p.Title, p.Root.Serialize())
	return int64(n), err
}

// HTML returns the page as a complete HTML document.
func (p Page) HTML() (string, error) {
	var b strings.Builder
	if _, err := p.WriteTo(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriteFile writes pages into dir, keyed by relative output path. Paths are
// sanitized the same way a static file server would sanitize request paths;
// traversal segments reject the whole page.
func WriteFile(dir string, pages map[string]Page) error {
	for rel, p := range pages {
		clean, ok := sanitizeRel(rel)
		if !ok {
			return fmt.Errorf("export: bad output path %q", rel)
		}
		out := filepath.Join(dir, filepath.FromSlash(clean))
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		html, err := p.HTML()
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	}
	return nil
}

// sanitizeRel validates a slash-separated relative output path. It rejects
// absolute paths, traversal segments, backslashes, and NUL bytes.
func sanitizeRel(rel string) (string, bool) {
	if rel == "" {
		return "", false
	}
	if strings.IndexByte(rel, 0) != -1 {
		return "", false
	}
	if strings.Contains(rel, "\\") {
		return "", false
	}
	if strings.HasPrefix(rel, "/") {
		return "", false
	}
	for _, seg := range strings.Split(rel, "/") {
		if seg == "." || seg == ".." {
			return "", false
		}
	}
	clean := path.Clean(rel)
	if clean == "." || clean == "" || strings.HasPrefix(clean, "../") || strings.HasPrefix(clean, "/") {
		return "", false
	}
	osPath := filepath.FromSlash(clean)
	if filepath.IsAbs(osPath) || filepath.VolumeName(osPath) != "" {
		return "", false
	}
	return clean, true
}

const pageTemplate = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>%s</title></head>
<body>
%s
</body>
</html>
`
