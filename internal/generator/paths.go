package generator

import (
	"path"
	"strings"

	"github.com/goliatone/go-portfolio/internal/site"
)

// StaticFile pairs a content route with the file a static export writes
// for it.
type StaticFile struct {
	site.StaticPath
	File string `json:"file"`
}

// StaticFiles maps every path onto its output file.
func StaticFiles(paths []site.StaticPath) []StaticFile {
	files := make([]StaticFile, 0, len(paths))
	for _, p := range paths {
		files = append(files, StaticFile{StaticPath: p, File: OutputPath(p.Route)})
	}
	return files
}

// OutputPath maps a route onto the file a static export writes for it:
// "/" becomes "index.html" and "/excel/budget" becomes
// "excel/budget/index.html".
func OutputPath(route string) string {
	clean := strings.Trim(strings.TrimSpace(route), " \t\r\n/")
	if clean == "" {
		return "index.html"
	}
	return path.Join(clean, "index.html")
}
