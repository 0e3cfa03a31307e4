// Package route is the demo site's page table. The active page is explicit state owned by
// the caller; the URL fragment is only parsed here, never read or written.
package route

import (
	"errors"
	"strings"
)

// ErrUnknownRoute is returned for navigation to a page the table does not know.
var ErrUnknownRoute = errors.New("unknown route")

// Route is one navigable page of the site.
type Route struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Table is an ordered, immutable set of routes with a default.
type Table struct {
	routes []Route
	byID   map[string]Route
	def    Route
}

// DefaultTable returns the site's pages with home as the default.
func DefaultTable() *Table {
	t, _ := NewTable("home",
		Route{ID: "home", Label: "Home"},
		Route{ID: "auth", Label: "Sign in / Sign up"},
		Route{ID: "board", Label: "Board"},
		Route{ID: "docs", Label: "Component docs"},
	)
	return t
}

// NewTable builds a table. The default must be one of routes and ids must be unique.
func NewTable(defaultID string, routes ...Route) (*Table, error) {
	t := &Table{routes: make([]Route, 0, len(routes)), byID: make(map[string]Route, len(routes))}
	for _, r := range routes {
		if r.ID == "" {
			return nil, errors.New("route id must not be empty")
		}
		if _, dup := t.byID[r.ID]; dup {
			return nil, errors.New("duplicate route id " + r.ID)
		}
		t.routes = append(t.routes, r)
		t.byID[r.ID] = r
	}
	def, ok := t.byID[defaultID]
	if !ok {
		return nil, ErrUnknownRoute
	}
	t.def = def
	return t, nil
}

// Routes lists the routes in declaration order.
func (t *Table) Routes() []Route {
	return append([]Route(nil), t.routes...)
}

// Default returns the route shown when nothing else is selected.
func (t *Table) Default() Route { return t.def }

// Resolve maps a URL fragment such as "#board" to its route.
// Empty and unknown fragments resolve to nothing.
func (t *Table) Resolve(fragment string) (Route, bool) {
	id := strings.TrimPrefix(strings.TrimSpace(fragment), "#")
	if id == "" {
		return Route{}, false
	}
	r, ok := t.byID[id]
	return r, ok
}

// Initial picks the route for a freshly loaded page: the fragment's route, or the default.
func (t *Table) Initial(fragment string) Route {
	if r, ok := t.Resolve(fragment); ok {
		return r
	}
	return t.def
}

// Navigate validates a move to target. Unknown targets fail with ErrUnknownRoute and the
// caller keeps current, or the default when current is unknown too.
func (t *Table) Navigate(current, target string) (Route, error) {
	r, ok := t.byID[target]
	if ok {
		return r, nil
	}
	if cur, ok := t.byID[current]; ok {
		return cur, ErrUnknownRoute
	}
	return t.def, ErrUnknownRoute
}

// Fragment renders the URL fragment that selects r.
func Fragment(r Route) string { return "#" + r.ID }
