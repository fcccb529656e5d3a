package tools

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// tools.toml key mapping. Every key is optional; only keys present in the
// file override the built-in tables.
//
//	[tools.timeline]
//	title = "Timeline"
//	description = "..."
//	icon = "clock"
//	color = "#dc143c"
//	legacy_path = "/timeline"
//
//	[aliases]
//	videos = "visual"
type fileCatalog struct {
	Tools   map[string]fileTool `toml:"tools"`
	Aliases map[string]string   `toml:"aliases"`
}

type fileTool struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Icon        string `toml:"icon"`
	Color       string `toml:"color"`
	LegacyPath  string `toml:"legacy_path"`
	Disabled    bool   `toml:"disabled"`
}

// LoadCatalog returns the built-in catalog, overlaid with the TOML file at
// path when path is not empty.
func LoadCatalog(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultCatalog(), nil
	}
	var raw fileCatalog
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("load tool catalog: %w", err)
	}
	return overlayCatalog(DefaultTools(), DefaultAliases(), raw, meta)
}

// ParseCatalog is LoadCatalog for TOML already in memory.
func ParseCatalog(data string) (*Catalog, error) {
	var raw fileCatalog
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("parse tool catalog: %w", err)
	}
	return overlayCatalog(DefaultTools(), DefaultAliases(), raw, meta)
}

func overlayCatalog(base []Tool, aliases map[string]string, raw fileCatalog, meta toml.MetaData) (*Catalog, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parse tool catalog: unknown key %q", undecoded[0].String())
	}

	index := make(map[string]int, len(base))
	for i, t := range base {
		index[t.Slug] = i
	}

	// New tools are appended in slug order so the result does not depend on
	// map iteration.
	slugs := make([]string, 0, len(raw.Tools))
	for slug := range raw.Tools {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	disabled := make(map[string]bool)
	for _, slug := range slugs {
		ft := raw.Tools[slug]
		i, known := index[slug]
		if !known {
			base = append(base, Tool{Slug: slug})
			i = len(base) - 1
			index[slug] = i
		}
		cfg := &base[i].Config
		if meta.IsDefined("tools", slug, "title") {
			cfg.Title = strings.TrimSpace(ft.Title)
		}
		if meta.IsDefined("tools", slug, "description") {
			cfg.Description = strings.TrimSpace(ft.Description)
		}
		if meta.IsDefined("tools", slug, "icon") {
			cfg.Icon = strings.TrimSpace(ft.Icon)
		}
		if meta.IsDefined("tools", slug, "color") {
			cfg.Color = strings.TrimSpace(ft.Color)
		}
		if meta.IsDefined("tools", slug, "legacy_path") {
			cfg.LegacyPath = strings.TrimSpace(ft.LegacyPath)
		}
		if ft.Disabled {
			disabled[slug] = true
		}
	}

	tools := make([]Tool, 0, len(base))
	for _, t := range base {
		if !disabled[t.Slug] {
			tools = append(tools, t)
		}
	}

	merged := make(map[string]string, len(aliases)+len(raw.Aliases))
	for legacy, target := range aliases {
		if !disabled[target] {
			merged[legacy] = target
		}
	}
	for legacy, target := range raw.Aliases {
		target = strings.TrimSpace(target)
		if target == "" {
			delete(merged, legacy)
			continue
		}
		merged[legacy] = target
	}

	return NewCatalog(tools, merged)
}
