package tools

import (
	"sync/atomic"
)

// SectionPath is the route prefix every tool page lives under.
const SectionPath = "/p"

// Fixed breadcrumb entries preceding the tool itself.
const (
	HomeLabel    = "Home"
	HomePath     = "/"
	SectionLabel = "Processing"
)

// ToolPath returns the canonical route of a tool page.
func ToolPath(slug string) string {
	return SectionPath + "/" + slug
}

// Breadcrumb is one entry of a navigation trail.
type Breadcrumb struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

// Breadcrumbs builds the trail Home > Processing > title for a tool page.
func Breadcrumbs(slug, title string) []Breadcrumb {
	return []Breadcrumb{
		{Label: HomeLabel, Href: HomePath},
		{Label: SectionLabel, Href: SectionPath},
		{Label: title, Href: ToolPath(slug), Active: true},
	}
}

// SectionBreadcrumbs builds the trail for the tool section index.
func SectionBreadcrumbs() []Breadcrumb {
	return []Breadcrumb{
		{Label: HomeLabel, Href: HomePath},
		{Label: SectionLabel, Href: SectionPath, Active: true},
	}
}

// Outcome is the kind of a resolution result.
type Outcome int

const (
	// OutcomeNotFound means the slug is neither canonical nor a legacy alias.
	OutcomeNotFound Outcome = iota
	// OutcomeRedirect means the slug is a legacy alias; Target holds the
	// canonical route to redirect to permanently.
	OutcomeRedirect
	// OutcomeResolved means the slug is canonical.
	OutcomeResolved
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRedirect:
		return "redirect"
	case OutcomeResolved:
		return "resolved"
	default:
		return "not_found"
	}
}

// Result is the outcome of resolving a requested slug. Which fields are set
// depends on Outcome:
//
//   - OutcomeRedirect: Target
//   - OutcomeNotFound: nothing beyond RequestedSlug
//   - OutcomeResolved: CanonicalSlug, Config and Breadcrumbs
type Result struct {
	Outcome       Outcome
	RequestedSlug string

	Target string

	CanonicalSlug string
	Config        ToolConfig
	Breadcrumbs   []Breadcrumb
}

// Resolve maps a requested slug against a catalog.
//
// Legacy aliases are checked first so they redirect even though they are not
// on the allow-list. Unknown slugs are rejected before any config lookup.
func (c *Catalog) Resolve(requested string) Result {
	if target, ok := c.aliases[requested]; ok {
		return Result{
			Outcome:       OutcomeRedirect,
			RequestedSlug: requested,
			Target:        ToolPath(target),
		}
	}

	cfg, ok := c.configs[requested]
	if !ok {
		return Result{Outcome: OutcomeNotFound, RequestedSlug: requested}
	}

	return Result{
		Outcome:       OutcomeResolved,
		RequestedSlug: requested,
		CanonicalSlug: requested,
		Config:        cfg,
		Breadcrumbs:   Breadcrumbs(requested, cfg.Title),
	}
}

// Resolver resolves tool slugs against the current catalog. The catalog can
// be replaced at runtime with Swap; in-flight resolutions keep reading the
// snapshot they started with.
type Resolver struct {
	catalog atomic.Pointer[Catalog]
}

// NewResolver creates a resolver serving catalog. It panics on a nil
// catalog.
func NewResolver(catalog *Catalog) *Resolver {
	if catalog == nil {
		panic("tools: NewResolver called with nil catalog")
	}
	r := &Resolver{}
	r.catalog.Store(catalog)
	return r
}

// Catalog returns the catalog currently in use.
func (r *Resolver) Catalog() *Catalog {
	return r.catalog.Load()
}

// Swap installs a new catalog and returns the previous one. A nil catalog is
// rejected and the current one stays in place.
func (r *Resolver) Swap(catalog *Catalog) (*Catalog, error) {
	if catalog == nil {
		return nil, ErrNilCatalog
	}
	return r.catalog.Swap(catalog), nil
}

// Resolve resolves requested against the current catalog.
func (r *Resolver) Resolve(requested string) Result {
	return r.catalog.Load().Resolve(requested)
}
