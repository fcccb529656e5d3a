package pages

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"

	"github.com/a-h/templ"

	"prsnl_web/internal/tools"
	"prsnl_web/web/templates/shared"
)

//go:embed html/*.html
var files embed.FS

// Layout files shared by every page; the rest are pages that define "content".
var layoutFiles = []string{"html/base.html", "html/breadcrumbs.html"}

var pageTemplates = mustParsePages(files)

// mustParsePages clones the base layout for every page so that each page can
// define its own "content" block.
func mustParsePages(fsys fs.FS) map[string]*template.Template {
	base := template.Must(template.ParseFS(fsys, layoutFiles...))

	names, err := fs.Glob(fsys, "html/*.html")
	if err != nil {
		panic(err)
	}

	templates := make(map[string]*template.Template)
	for _, name := range names {
		if isLayout(name) {
			continue
		}
		page := template.Must(base.Clone())
		template.Must(page.ParseFS(fsys, name))
		templates[path.Base(name)] = page
	}
	return templates
}

func isLayout(name string) bool {
	for _, l := range layoutFiles {
		if l == name {
			return true
		}
	}
	return false
}

func render(name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		tmpl, ok := pageTemplates[name]
		if !ok {
			return fmt.Errorf("template not found: %s", name)
		}
		return tmpl.ExecuteTemplate(w, "base", data)
	})
}

// ToolPageProps is the data of a resolved tool page
type ToolPageProps struct {
	Title       string
	Slug        string
	Config      tools.ToolConfig
	Breadcrumbs []shared.Breadcrumb
	Nav         []shared.NavItem
}

// ToolPage renders a single tool
func ToolPage(props ToolPageProps) templ.Component {
	return render("tool.html", props)
}

// ToolCard is one entry of the tool index
type ToolCard struct {
	Title       string
	Description string
	URL         string
	Icon        string
	Color       string
}

// SectionPageProps is the data of the tool index
type SectionPageProps struct {
	Title       string
	Tools       []ToolCard
	Breadcrumbs []shared.Breadcrumb
	Nav         []shared.NavItem
}

// SectionPage renders the list of tools
func SectionPage(props SectionPageProps) templ.Component {
	return render("section.html", props)
}

// ErrorPageProps is the data of an error page
type ErrorPageProps struct {
	Title        string
	Breadcrumbs  []shared.Breadcrumb
	Nav          []shared.NavItem
	ErrorTitle   string
	ErrorMessage string
	BackLink     string
	BackText     string
}

// ErrorPage renders an error with the regular layout
func ErrorPage(props ErrorPageProps) templ.Component {
	return render("error.html", props)
}
