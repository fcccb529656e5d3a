package tools

import (
	"fmt"
	"strings"
)

// ToolConfig is the display configuration of a single tool page.
type ToolConfig struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	LegacyPath  string `json:"legacy_path,omitempty"`
}

// Tool pairs a canonical slug with its configuration.
type Tool struct {
	Slug   string
	Config ToolConfig
}

// Catalog is an immutable set of canonical tools and legacy aliases.
// A Catalog is only obtainable through NewCatalog, so every instance
// satisfies the allow-list invariants checked there.
type Catalog struct {
	order       []string
	configs     map[string]ToolConfig
	aliases     map[string]string
	legacyPaths map[string]string
}

// NewCatalog validates tools and aliases and builds a Catalog.
//
// Tools keep the order they are given in. Aliases map a legacy slug to the
// canonical slug it was renamed to; an alias may never shadow a canonical
// slug and must resolve in a single hop.
func NewCatalog(tools []Tool, aliases map[string]string) (*Catalog, error) {
	c := &Catalog{
		order:       make([]string, 0, len(tools)),
		configs:     make(map[string]ToolConfig, len(tools)),
		aliases:     make(map[string]string, len(aliases)),
		legacyPaths: make(map[string]string, len(tools)),
	}

	for _, t := range tools {
		if strings.TrimSpace(t.Slug) == "" {
			return nil, ErrEmptySlug
		}
		if _, exists := c.configs[t.Slug]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTool, t.Slug)
		}
		if strings.TrimSpace(t.Config.Title) == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingTitle, t.Slug)
		}
		if p := t.Config.LegacyPath; p != "" {
			if err := validateLegacyPath(p); err != nil {
				return nil, fmt.Errorf("tool %s: %w", t.Slug, err)
			}
			if owner, taken := c.legacyPaths[p]; taken {
				return nil, fmt.Errorf("%w: %s (tools %s and %s)", ErrDuplicateLegacyPath, p, owner, t.Slug)
			}
			c.legacyPaths[p] = t.Slug
		}
		c.order = append(c.order, t.Slug)
		c.configs[t.Slug] = t.Config
	}

	for legacy, target := range aliases {
		if strings.TrimSpace(legacy) == "" {
			return nil, ErrEmptySlug
		}
		if _, canonical := c.configs[legacy]; canonical {
			return nil, fmt.Errorf("%w: %s", ErrAliasCollision, legacy)
		}
		if _, ok := c.configs[target]; !ok {
			return nil, fmt.Errorf("%w: %s -> %s", ErrUnknownAliasTarget, legacy, target)
		}
		c.aliases[legacy] = target
	}

	return c, nil
}

// MustNewCatalog is NewCatalog for static tables known to be valid.
func MustNewCatalog(tools []Tool, aliases map[string]string) *Catalog {
	c, err := NewCatalog(tools, aliases)
	if err != nil {
		panic(fmt.Sprintf("invalid tool catalog: %v", err))
	}
	return c
}

func validateLegacyPath(p string) error {
	if !strings.HasPrefix(p, "/") || p == "/" {
		return fmt.Errorf("%w: %q must be an absolute non-root path", ErrInvalidLegacyPath, p)
	}
	if p == SectionPath || strings.HasPrefix(p, SectionPath+"/") {
		return fmt.Errorf("%w: %q is inside %s", ErrInvalidLegacyPath, p, SectionPath)
	}
	return nil
}

// IsCanonical reports whether slug is on the allow-list.
func (c *Catalog) IsCanonical(slug string) bool {
	_, ok := c.configs[slug]
	return ok
}

// Config returns the configuration of a canonical slug.
func (c *Catalog) Config(slug string) (ToolConfig, bool) {
	cfg, ok := c.configs[slug]
	return cfg, ok
}

// Alias returns the canonical slug a legacy slug was renamed to.
func (c *Catalog) Alias(slug string) (string, bool) {
	target, ok := c.aliases[slug]
	return target, ok
}

// Aliases returns a copy of the legacy alias table.
func (c *Catalog) Aliases() map[string]string {
	out := make(map[string]string, len(c.aliases))
	for k, v := range c.aliases {
		out[k] = v
	}
	return out
}

// LegacyPathTarget returns the canonical slug whose historical path is p.
func (c *Catalog) LegacyPathTarget(p string) (string, bool) {
	slug, ok := c.legacyPaths[p]
	return slug, ok
}

// Tools returns the canonical tools in catalog order.
func (c *Catalog) Tools() []Tool {
	out := make([]Tool, 0, len(c.order))
	for _, slug := range c.order {
		out = append(out, Tool{Slug: slug, Config: c.configs[slug]})
	}
	return out
}

// Len returns the number of canonical tools.
func (c *Catalog) Len() int {
	return len(c.order)
}

// DefaultTools returns the built-in tool table.
func DefaultTools() []Tool {
	return []Tool{
		{Slug: "timeline", Config: ToolConfig{
			Title:       "Timeline",
			Description: "Everything you captured, in the order you captured it",
			Icon:        "clock",
			Color:       "#dc143c",
			LegacyPath:  "/timeline",
		}},
		{Slug: "insights", Config: ToolConfig{
			Title:       "Insights",
			Description: "Patterns, topics and trends across your knowledge base",
			Icon:        "lightbulb",
			Color:       "#f59e0b",
			LegacyPath:  "/insights",
		}},
		{Slug: "chat", Config: ToolConfig{
			Title:       "Chat",
			Description: "Ask questions answered from your own content",
			Icon:        "message-circle",
			Color:       "#10b981",
			LegacyPath:  "/chat",
		}},
		{Slug: "visual", Config: ToolConfig{
			Title:       "Visual Cortex",
			Description: "Videos, images and other visual media",
			Icon:        "film",
			Color:       "#8b5cf6",
			LegacyPath:  "/videos",
		}},
		{Slug: "code", Config: ToolConfig{
			Title:       "Code Cortex",
			Description: "Repositories, snippets and development knowledge",
			Icon:        "code",
			Color:       "#3b82f6",
			LegacyPath:  "/code-cortex",
		}},
	}
}

// DefaultAliases returns the built-in legacy slug table.
func DefaultAliases() map[string]string {
	return map[string]string{
		"code-cortex": "code",
		"videos":      "visual",
	}
}

// DefaultCatalog builds the catalog from the built-in tables.
func DefaultCatalog() *Catalog {
	return MustNewCatalog(DefaultTools(), DefaultAliases())
}
