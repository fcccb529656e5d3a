package pages

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prsnl_web/internal/tools"
	"prsnl_web/web/templates/shared"
)

func TestToolPageRendersBreadcrumbsAndSidebar(t *testing.T) {
	catalog := tools.DefaultCatalog()
	res := catalog.Resolve("timeline")

	var b strings.Builder
	err := ToolPage(ToolPageProps{
		Title:       res.Config.Title,
		Slug:        res.CanonicalSlug,
		Config:      res.Config,
		Breadcrumbs: shared.FromTrail(res.Breadcrumbs),
		Nav:         shared.Sidebar(catalog, res.CanonicalSlug),
	}).Render(context.Background(), &b)
	require.NoError(t, err)

	got := b.String()
	assert.Contains(t, got, "<title>Timeline | PRSNL</title>")
	assert.Contains(t, got, `<li><a href="/">Home</a></li>`)
	assert.Contains(t, got, `<li><a href="/p">Processing</a></li>`)
	assert.Contains(t, got, `<li aria-current="page">Timeline</li>`)
	assert.Contains(t, got, `<h1>Timeline</h1>`)
	assert.Contains(t, got, `data-tool="timeline"`)
	assert.Contains(t, got, `<li class="active"><a href="/p/timeline"`)
	assert.Contains(t, got, `<a href="/p/code"`)
}

func TestToolPageEscapesContent(t *testing.T) {
	var b strings.Builder
	err := ToolPage(ToolPageProps{
		Title:  "<script>",
		Slug:   "x",
		Config: tools.ToolConfig{Title: "<b>bold</b>"},
	}).Render(context.Background(), &b)
	require.NoError(t, err)

	assert.NotContains(t, b.String(), "<b>bold</b>")
	assert.Contains(t, b.String(), "&lt;b&gt;bold&lt;/b&gt;")
}

func TestSectionPage(t *testing.T) {
	var b strings.Builder
	err := SectionPage(SectionPageProps{
		Title: "Processing",
		Tools: []ToolCard{
			{Title: "Chat", Description: "Ask questions", URL: "/p/chat", Icon: "message-circle"},
		},
		Breadcrumbs: shared.FromTrail(tools.SectionBreadcrumbs()),
	}).Render(context.Background(), &b)
	require.NoError(t, err)

	got := b.String()
	assert.Contains(t, got, `<a href="/p/chat">`)
	assert.Contains(t, got, "Ask questions")
	assert.Contains(t, got, `<li aria-current="page">Processing</li>`)
}

func TestErrorPage(t *testing.T) {
	var b strings.Builder
	err := ErrorPage(ErrorPageProps{
		Title:        "Page Not Found",
		Breadcrumbs:  []shared.Breadcrumb{{Title: "Home", URL: "/"}, {Title: "Error", Active: true}},
		ErrorTitle:   "Page Not Found",
		ErrorMessage: "No tool here.",
		BackLink:     "/p",
		BackText:     "All tools",
	}).Render(context.Background(), &b)
	require.NoError(t, err)

	got := b.String()
	assert.Contains(t, got, "<h1>Page Not Found</h1>")
	assert.Contains(t, got, "No tool here.")
	assert.Contains(t, got, `<a class="back-link" href="/p">All tools</a>`)
}

func TestEveryPageIsParsed(t *testing.T) {
	for _, name := range []string{"tool.html", "section.html", "error.html"} {
		assert.Contains(t, pageTemplates, name)
	}
	assert.NotContains(t, pageTemplates, "base.html")
}
