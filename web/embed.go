// Package web provides the embedded landing page and front-end bundle.
package web

import (
	"embed"
	"io/fs"
	"log/slog"
	"os"
)

//go:embed static
var assets embed.FS

// Static returns the asset filesystem: dir on disk when non-empty, otherwise
// the embedded "static" tree. It holds index.html and the dist/ bundle.
func Static(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		slog.Error("web: sub static", "error", err)
	}
	return sub
}
