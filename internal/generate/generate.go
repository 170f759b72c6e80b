// Package generate writes the full set of extension icons into a directory.
package generate

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/Mavwarf/mkicons/internal/icon"
	"github.com/Mavwarf/mkicons/internal/paths"
)

// Entry is one output file and its pixel size.
type Entry struct {
	Name string
	Size int
}

// DefaultSet lists the icons a browser extension manifest references.
var DefaultSet = []Entry{
	{"icon16.png", 16},
	{"icon48.png", 48},
	{"icon128.png", 128},
}

// Run creates dir if needed and renders every entry of DefaultSet into it.
// The first failure stops the run.
func Run(dir string, r *icon.Renderer) error {
	return RunSet(dir, DefaultSet, r)
}

// RunSet is Run with an explicit entry list.
func RunSet(dir string, set []Entry, r *icon.Renderer) error {
	if err := paths.EnsureDir(dir); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	for _, e := range set {
		if err := r.RenderFile(e.Size, filepath.Join(dir, e.Name)); err != nil {
			return err
		}
	}
	return nil
}

// Summary writes the line telling the user where the icons went.
func Summary(w io.Writer, dir string) {
	fmt.Fprintf(w, "Icons are located in the '%s' folder\n", dir)
}
