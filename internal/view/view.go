package view

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var files embed.FS

// View holds the parsed page templates keyed by page name
type View struct {
	templates map[string]*template.Template
}

func New() (*View, error) {
	pages := []string{
		"index.html",
		"register.html",
		"login.html",
		"profile.html",
		"favorites.html",
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.ParseFS(files, "templates/base.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("ошибка при разборе шаблона %s: %w", page, err)
		}
		templates[page] = t
	}

	return &View{templates: templates}, nil
}

func (v *View) Render(w http.ResponseWriter, name string, data interface{}) error {
	t, ok := v.templates[name]
	if !ok {
		return fmt.Errorf("шаблон %s не найден", name)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.ExecuteTemplate(w, "base", data)
}
