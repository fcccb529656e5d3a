package handlers

import "prsnl_web/internal/tools"

// ToolSummary is a tool as listed by the JSON API
type ToolSummary struct {
	Slug string `json:"slug"`
	Href string `json:"href"`
	tools.ToolConfig
}

// ToolDetail is the JSON form of a resolved tool
type ToolDetail struct {
	Tool        string             `json:"tool"`
	Config      tools.ToolConfig   `json:"config"`
	Breadcrumbs []tools.Breadcrumb `json:"breadcrumbs"`
	Views       *int64             `json:"views,omitempty"`
}

// RedirectResponse is returned by the JSON API for legacy slugs
type RedirectResponse struct {
	Redirect string `json:"redirect"`
}
