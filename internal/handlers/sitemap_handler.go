package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"prsnl_web/internal/tools"
)

type sitemapURL struct {
	Loc      string `xml:"loc"`
	Priority string `xml:"priority"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// SitemapHandler serves /sitemap.xml
type SitemapHandler struct {
	resolver *tools.Resolver
	baseURL  string
}

// NewSitemapHandler creates a SitemapHandler for the site at baseURL
func NewSitemapHandler(resolver *tools.Resolver, baseURL string) *SitemapHandler {
	return &SitemapHandler{resolver: resolver, baseURL: strings.TrimRight(baseURL, "/")}
}

// Sitemap lists the home page, the tool index and every tool page
func (h *SitemapHandler) Sitemap(c echo.Context) error {
	set := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: h.baseURL + tools.HomePath, Priority: "1.0"},
			{Loc: h.baseURL + tools.SectionPath, Priority: "0.8"},
		},
	}
	for _, t := range h.resolver.Catalog().Tools() {
		set.URLs = append(set.URLs, sitemapURL{Loc: h.baseURL + tools.ToolPath(t.Slug), Priority: "0.7"})
	}
	return c.XML(http.StatusOK, set)
}
