package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"prsnl_web/internal/tools"
	"prsnl_web/web/templates/pages"
	"prsnl_web/web/templates/shared"
)

// ViewCounter records and reports tool page views
type ViewCounter interface {
	Record(ctx context.Context, slug string) error
	Views(ctx context.Context, slug string) (int64, error)
}

// ToolHandler serves the /p tool pages
type ToolHandler struct {
	resolver *tools.Resolver
	views    ViewCounter
	logger   *zap.Logger
}

// NewToolHandler creates a ToolHandler. views may be nil.
func NewToolHandler(resolver *tools.Resolver, views ViewCounter, logger *zap.Logger) *ToolHandler {
	return &ToolHandler{resolver: resolver, views: views, logger: logger}
}

// ShowTool renders the page of a tool, redirecting legacy slugs
func (h *ToolHandler) ShowTool(c echo.Context) error {
	slug, err := toolParam(c)
	if err != nil {
		return err
	}
	res := h.resolver.Resolve(slug)

	switch res.Outcome {
	case tools.OutcomeRedirect:
		return c.Redirect(http.StatusMovedPermanently, withQuery(res.Target, c.QueryString()))
	case tools.OutcomeNotFound:
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("There is no tool called %q.", res.RequestedSlug))
	}

	ctx := c.Request().Context()
	if h.views != nil {
		if err := h.views.Record(ctx, res.CanonicalSlug); err != nil {
			h.logger.Warn("failed to record tool view", zap.String("tool", res.CanonicalSlug), zap.Error(err))
		}
	}

	props := pages.ToolPageProps{
		Title:       res.Config.Title,
		Slug:        res.CanonicalSlug,
		Config:      res.Config,
		Breadcrumbs: shared.FromTrail(res.Breadcrumbs),
		Nav:         shared.Sidebar(h.resolver.Catalog(), res.CanonicalSlug),
	}

	return pages.ToolPage(props).Render(ctx, c.Response())
}

// ListTools renders the tool section index
func (h *ToolHandler) ListTools(c echo.Context) error {
	catalog := h.resolver.Catalog()

	list := catalog.Tools()
	cards := make([]pages.ToolCard, 0, len(list))
	for _, t := range list {
		cards = append(cards, pages.ToolCard{
			Title:       t.Config.Title,
			Description: t.Config.Description,
			URL:         tools.ToolPath(t.Slug),
			Icon:        t.Config.Icon,
			Color:       t.Config.Color,
		})
	}

	props := pages.SectionPageProps{
		Title:       tools.SectionLabel,
		Tools:       cards,
		Breadcrumbs: shared.FromTrail(tools.SectionBreadcrumbs()),
		Nav:         shared.Sidebar(catalog, ""),
	}

	return pages.SectionPage(props).Render(c.Request().Context(), c.Response())
}

// LegacyPage redirects the retired top-level tool pages (e.g. /videos) to
// their canonical route
func (h *ToolHandler) LegacyPage(c echo.Context) error {
	path := c.Request().URL.Path
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	slug, ok := h.resolver.Catalog().LegacyPathTarget(path)
	if !ok {
		return echo.ErrNotFound
	}
	return c.Redirect(http.StatusMovedPermanently, withQuery(tools.ToolPath(slug), c.QueryString()))
}

// APIListTools returns every tool as JSON
func (h *ToolHandler) APIListTools(c echo.Context) error {
	list := h.resolver.Catalog().Tools()
	out := make([]ToolSummary, 0, len(list))
	for _, t := range list {
		out = append(out, ToolSummary{Slug: t.Slug, Href: tools.ToolPath(t.Slug), ToolConfig: t.Config})
	}
	return c.JSON(http.StatusOK, out)
}

// APIGetTool resolves a tool slug as JSON
func (h *ToolHandler) APIGetTool(c echo.Context) error {
	slug, err := toolParam(c)
	if err != nil {
		return err
	}
	res := h.resolver.Resolve(slug)

	switch res.Outcome {
	case tools.OutcomeRedirect:
		c.Response().Header().Set(echo.HeaderLocation, res.Target)
		return c.JSON(http.StatusMovedPermanently, RedirectResponse{Redirect: res.Target})
	case tools.OutcomeNotFound:
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("tool %q not found", res.RequestedSlug))
	}

	detail := ToolDetail{
		Tool:        res.CanonicalSlug,
		Config:      res.Config,
		Breadcrumbs: res.Breadcrumbs,
	}
	if h.views != nil {
		n, err := h.views.Views(c.Request().Context(), res.CanonicalSlug)
		if err != nil {
			h.logger.Warn("failed to read tool views", zap.String("tool", res.CanonicalSlug), zap.Error(err))
		} else {
			detail.Views = &n
		}
	}
	return c.JSON(http.StatusOK, detail)
}

// toolParam returns the decoded :tool segment. Echo matches on the raw path,
// so /p/code%2Dcortex arrives still escaped.
func toolParam(c echo.Context) (string, error) {
	slug, err := url.PathUnescape(c.Param("tool"))
	if err != nil {
		return "", echo.NewHTTPError(http.StatusNotFound, "There is no tool at this address.")
	}
	return slug, nil
}

func withQuery(target, query string) string {
	if query == "" {
		return target
	}
	return target + "?" + query
}
