package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"prsnl_web/internal/tools"
)

// Pages answer HEAD as well so link checkers see the same redirects
var pageMethods = []string{http.MethodGet, http.MethodHead}

// RegisterRoutes wires the tool pages, API and sitemap onto e
func RegisterRoutes(e *echo.Echo, toolHandler *ToolHandler, sitemapHandler *SitemapHandler) {
	// Tool pages
	e.Match(pageMethods, tools.SectionPath, toolHandler.ListTools)
	e.Match(pageMethods, tools.SectionPath+"/:tool", toolHandler.ShowTool)

	// JSON API
	api := e.Group("/api")
	api.Match(pageMethods, "/tools", toolHandler.APIListTools)
	api.Match(pageMethods, "/tools/:tool", toolHandler.APIGetTool)

	e.Match(pageMethods, "/sitemap.xml", sitemapHandler.Sitemap)

	// Redirect root to the first tool
	e.Match(pageMethods, tools.HomePath, func(c echo.Context) error {
		list := toolHandler.resolver.Catalog().Tools()
		if len(list) == 0 {
			return c.Redirect(http.StatusTemporaryRedirect, tools.SectionPath)
		}
		return c.Redirect(http.StatusTemporaryRedirect, tools.ToolPath(list[0].Slug))
	})

	// Anything else may be a retired top-level tool page
	e.Match(pageMethods, "/*", toolHandler.LegacyPage)
}
