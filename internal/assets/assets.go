// Package assets embeds the stylesheet, page scripts and images served
// under /static/.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// Static returns the static tree rooted at static/
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// static is a literal directory in this package; Sub cannot fail
		panic(err)
	}
	return sub
}
