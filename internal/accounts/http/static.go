package http

import "net/http"

// StaticHandler serves the compiled front-end bundle from dir. The file
// server falls back to its directory handling for anything it does not
// recognise, so API routes must be registered with more specific patterns.
func StaticHandler(dir string) http.Handler {
	return http.FileServer(http.Dir(dir))
}
