package tools

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	var slugs []string
	for _, tool := range c.Tools() {
		slugs = append(slugs, tool.Slug)
	}
	assert.Equal(t, []string{"timeline", "insights", "chat", "visual", "code"}, slugs)
	assert.Equal(t, map[string]string{"code-cortex": "code", "videos": "visual"}, c.Aliases())

	for legacy := range c.Aliases() {
		assert.False(t, c.IsCanonical(legacy), "alias %s must not be canonical", legacy)
	}
}

func TestCatalogLegacyPaths(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		path string
		slug string
	}{
		{path: "/timeline", slug: "timeline"},
		{path: "/insights", slug: "insights"},
		{path: "/chat", slug: "chat"},
		{path: "/videos", slug: "visual"},
		{path: "/code-cortex", slug: "code"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			slug, ok := c.LegacyPathTarget(tt.path)
			require.True(t, ok)
			assert.Equal(t, tt.slug, slug)
		})
	}

	_, ok := c.LegacyPathTarget("/code")
	assert.False(t, ok)
}

func TestCatalogCopiesAreIndependent(t *testing.T) {
	c := DefaultCatalog()

	aliases := c.Aliases()
	aliases["timeline-old"] = "timeline"
	assert.NotContains(t, c.Aliases(), "timeline-old")

	list := c.Tools()
	list[0].Config.Title = "Changed"
	cfg, _ := c.Config("timeline")
	assert.Equal(t, "Timeline", cfg.Title)
}

func TestNewCatalogRejectsInvalidTables(t *testing.T) {
	tool := func(slug, title, legacy string) Tool {
		return Tool{Slug: slug, Config: ToolConfig{Title: title, LegacyPath: legacy}}
	}

	tests := []struct {
		name    string
		tools   []Tool
		aliases map[string]string
		want    error
	}{
		{
			name:  "empty slug",
			tools: []Tool{tool(" ", "Blank", "")},
			want:  ErrEmptySlug,
		},
		{
			name:  "duplicate slug",
			tools: []Tool{tool("chat", "Chat", ""), tool("chat", "Chat again", "")},
			want:  ErrDuplicateTool,
		},
		{
			name:  "missing title",
			tools: []Tool{tool("chat", "", "")},
			want:  ErrMissingTitle,
		},
		{
			name:    "alias shadows canonical",
			tools:   []Tool{tool("chat", "Chat", ""), tool("code", "Code", "")},
			aliases: map[string]string{"chat": "code"},
			want:    ErrAliasCollision,
		},
		{
			name:    "alias to unknown",
			tools:   []Tool{tool("chat", "Chat", "")},
			aliases: map[string]string{"talk": "conversation"},
			want:    ErrUnknownAliasTarget,
		},
		{
			name:    "alias chain",
			tools:   []Tool{tool("code", "Code", "")},
			aliases: map[string]string{"code-cortex": "code", "cortex": "code-cortex"},
			want:    ErrUnknownAliasTarget,
		},
		{
			name:    "empty alias",
			tools:   []Tool{tool("code", "Code", "")},
			aliases: map[string]string{"": "code"},
			want:    ErrEmptySlug,
		},
		{
			name:  "relative legacy path",
			tools: []Tool{tool("chat", "Chat", "chat")},
			want:  ErrInvalidLegacyPath,
		},
		{
			name:  "root legacy path",
			tools: []Tool{tool("chat", "Chat", "/")},
			want:  ErrInvalidLegacyPath,
		},
		{
			name:  "legacy path inside section",
			tools: []Tool{tool("chat", "Chat", "/p/talk")},
			want:  ErrInvalidLegacyPath,
		},
		{
			name:  "duplicate legacy path",
			tools: []Tool{tool("chat", "Chat", "/talk"), tool("code", "Code", "/talk")},
			want:  ErrDuplicateLegacyPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCatalog(tt.tools, tt.aliases)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, c)
		})
	}
}

func TestMustNewCatalogPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustNewCatalog([]Tool{{Slug: "chat"}}, nil)
	})
}

func TestLoadCatalogWithoutPath(t *testing.T) {
	c, err := LoadCatalog("")
	require.NoError(t, err)
	assert.Equal(t, DefaultCatalog().Tools(), c.Tools())
}

func TestParseCatalogOverlay(t *testing.T) {
	c, err := ParseCatalog(`
[tools.timeline]
title = "My Timeline"

[tools.notes]
title = "Notes"
icon = "book"
legacy_path = "/notes"

[tools.visual]
disabled = true

[aliases]
journal = "notes"
`)
	require.NoError(t, err)

	cfg, ok := c.Config("timeline")
	require.True(t, ok)
	assert.Equal(t, "My Timeline", cfg.Title)
	assert.Equal(t, "clock", cfg.Icon, "undefined keys keep built-in values")
	assert.Equal(t, "/timeline", cfg.LegacyPath)

	tools := c.Tools()
	assert.Equal(t, "notes", tools[len(tools)-1].Slug)

	assert.False(t, c.IsCanonical("visual"))
	_, ok = c.Alias("videos")
	assert.False(t, ok, "aliases to a disabled tool are dropped")

	assert.Equal(t, "/p/notes", c.Resolve("journal").Target)
	assert.Equal(t, "/p/code", c.Resolve("code-cortex").Target)
}

func TestParseCatalogRemovesAlias(t *testing.T) {
	c, err := ParseCatalog(`
[aliases]
code-cortex = ""
`)
	require.NoError(t, err)
	assert.Equal(t, OutcomeNotFound, c.Resolve("code-cortex").Outcome)
	assert.Equal(t, OutcomeRedirect, c.Resolve("videos").Outcome)
}

func TestParseCatalogRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{
			name: "alias collides",
			data: "[aliases]\nchat = \"code\"\n",
			want: ErrAliasCollision,
		},
		{
			name: "new tool without title",
			data: "[tools.notes]\nicon = \"book\"\n",
			want: ErrMissingTitle,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog(tt.data)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := ParseCatalog("[tools.chat]\ntitel = \"typo\"\n")
	assert.ErrorContains(t, err, "unknown key")

	_, err = ParseCatalog("not toml = = =")
	assert.Error(t, err)
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.toml")
	require.NoError(t, os.WriteFile(path, []byte("[tools.chat]\ncolor = \"#000000\"\n"), 0o600))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	cfg, _ := c.Config("chat")
	assert.Equal(t, "#000000", cfg.Color)

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "load tool catalog")
}
