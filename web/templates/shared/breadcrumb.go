package shared

import "prsnl_web/internal/tools"

// Breadcrumb represents one entry of the navigation trail
type Breadcrumb struct {
	Title  string
	URL    string
	Active bool
}

// NavItem is a sidebar link to a tool page
type NavItem struct {
	Title  string
	URL    string
	Icon   string
	Color  string
	Active bool
}

// FromTrail converts a resolver breadcrumb trail for rendering
func FromTrail(trail []tools.Breadcrumb) []Breadcrumb {
	out := make([]Breadcrumb, 0, len(trail))
	for _, b := range trail {
		out = append(out, Breadcrumb{Title: b.Label, URL: b.Href, Active: b.Active})
	}
	return out
}

// Sidebar builds the tool navigation, highlighting activeSlug
func Sidebar(catalog *tools.Catalog, activeSlug string) []NavItem {
	list := catalog.Tools()
	items := make([]NavItem, 0, len(list))
	for _, t := range list {
		items = append(items, NavItem{
			Title:  t.Config.Title,
			URL:    tools.ToolPath(t.Slug),
			Icon:   t.Config.Icon,
			Color:  t.Config.Color,
			Active: t.Slug == activeSlug,
		})
	}
	return items
}
