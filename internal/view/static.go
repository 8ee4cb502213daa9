package view

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFiles embed.FS

// StaticPrefix is the URL path the embedded assets are served under.
const StaticPrefix = "/static/"

// StaticHandler serves the embedded stylesheet. Mount it at StaticPrefix.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix(StaticPrefix, http.FileServerFS(sub))
}
