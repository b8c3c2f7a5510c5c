package guard

import (
	"sort"
	"strings"

	"github.com/dmitrymomot/storefront/core/session"
)

// Access is the access level of a route.
type Access int

const (
	// Public routes are always allowed.
	Public Access = iota
	// RequiresAuth routes are allowed only with a logged-in session.
	RequiresAuth
)

// String implements fmt.Stringer.
func (a Access) String() string {
	if a == RequiresAuth {
		return "requires_auth"
	}
	return "public"
}

// Outcome is the result of resolving a path.
type Outcome int

const (
	Allowed Outcome = iota
	Denied
	NotFound
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Allowed:
		return "allowed"
	case Denied:
		return "denied"
	default:
		return "not_found"
	}
}

// Views rendered for non-allowed outcomes.
const (
	ViewAccessDenied = "access-denied"
	ViewNotFound     = "not-found"
)

// Route is a navigation target.
type Route struct {
	Path   string
	View   string
	Access Access
}

// Decision is the outcome of resolving a path.
// Route is the zero value when Outcome is NotFound.
type Decision struct {
	Route   Route
	View    string
	Outcome Outcome
}

// Table is an immutable route table.
type Table struct {
	routes []Route
}

// NewTable builds a table from routes. Paths are normalized; later entries
// replace earlier ones with the same path.
func NewTable(routes ...Route) *Table {
	byPath := make(map[string]Route, len(routes))
	for _, r := range routes {
		r.Path = Normalize(r.Path)
		byPath[r.Path] = r
	}

	t := &Table{routes: make([]Route, 0, len(byPath))}
	for _, r := range byPath {
		t.routes = append(t.routes, r)
	}
	// Longest path first so the most specific prefix wins.
	sort.Slice(t.routes, func(i, j int) bool {
		if len(t.routes[i].Path) != len(t.routes[j].Path) {
			return len(t.routes[i].Path) > len(t.routes[j].Path)
		}
		return t.routes[i].Path < t.routes[j].Path
	})
	return t
}

// DefaultTable returns the storefront navigation table.
func DefaultTable() *Table {
	return NewTable(
		Route{Path: "/", View: "homepage", Access: Public},
		Route{Path: "/home", View: "homepage", Access: Public},
		Route{Path: "/login", View: "login", Access: Public},
		Route{Path: "/create-user", View: "create-user", Access: Public},
		Route{Path: "/language", View: "language", Access: Public},
		Route{Path: "/update-user", View: "update-user", Access: RequiresAuth},
		Route{Path: "/delete-user", View: "delete-user", Access: RequiresAuth},
		Route{Path: "/cart-history", View: "cart-history", Access: RequiresAuth},
		Route{Path: "/cart", View: "cart", Access: RequiresAuth},
		Route{Path: "/logout", View: "logout", Access: RequiresAuth},
	)
}

// Routes returns a copy of the table's routes, longest path first.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Match returns the route covering path. A route covers its own path and its
// sub-paths; "/" covers only itself.
func (t *Table) Match(path string) (Route, bool) {
	path = Normalize(path)
	for _, r := range t.routes {
		if covers(r.Path, path) {
			return r, true
		}
	}
	return Route{}, false
}

// Resolve decides the outcome of navigating to path with sess.
func (t *Table) Resolve(path string, sess session.Session) Decision {
	r, ok := t.Match(path)
	if !ok {
		return Decision{View: ViewNotFound, Outcome: NotFound}
	}
	if r.Access == RequiresAuth && !sess.IsAuthenticated() {
		return Decision{Route: r, View: ViewAccessDenied, Outcome: Denied}
	}
	return Decision{Route: r, View: r.View, Outcome: Allowed}
}

// Normalize strips query, fragment and trailing slashes and ensures a leading
// slash. An empty path becomes "/".
func Normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSpace(path)
	path = strings.TrimRight(path, "/")
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

func covers(route, path string) bool {
	if route == "/" {
		return path == "/"
	}
	return path == route || strings.HasPrefix(path, route+"/")
}
