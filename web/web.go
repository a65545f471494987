package web

import (
	"embed"
	"html/template"

	"github.com/yatube/yatube-be/util"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses the embedded pages into one set; pages are addressed by
// file name (index.html, profile.html, ...).
func Templates() *template.Template {
	return template.Must(template.New("").
		Funcs(template.FuncMap{
			"avatar": util.Avatar,
		}).
		ParseFS(templatesFS, "templates/*.html"))
}
