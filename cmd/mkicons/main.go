// mkicons writes the placeholder browser-extension icons (16, 48 and 128 px)
// into ./icons.
// Usage: go run ./cmd/mkicons
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Mavwarf/mkicons/internal/console"
	"github.com/Mavwarf/mkicons/internal/generate"
	"github.com/Mavwarf/mkicons/internal/icon"
	"github.com/Mavwarf/mkicons/internal/paths"
)

func main() {
	os.Exit(run(paths.IconsDirName, icon.NewRenderer(os.Stdout), console.Stdout(), os.Stderr))
}

// run generates the icon set into dir and returns the process exit code.
// A missing encoder ends the run gracefully: remediation text, status 0.
func run(dir string, r *icon.Renderer, p console.Printer, stderr io.Writer) int {
	err := generate.Run(dir, r)
	if errors.Is(err, icon.ErrEncoderUnavailable) {
		p.Remediation()
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	p.Success()
	generate.Summary(p.W, dir)
	return 0
}
