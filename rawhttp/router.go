package rawhttp

// Router maps a parsed request line to a route outcome. It is a total
// function over (method, path): every possible first line yields
// exactly one outcome, in priority order GET /version, extra exact
// routes, GET anything (NotFound), everything else (BadRequest).
//
// The zero value routes only /version; Extras registers additional
// exact-match GET paths such as /healthz or /metrics.
type Router struct {
	Extras map[string]RouteKind
}

// Route is deterministic and performs no I/O. Content negotiation is
// not its job; it decides route identity only.
func (rt Router) Route(rl RequestLine) RouteOutcome {
	if rl.Method != "GET" {
		return RouteOutcome{Kind: RouteBadRequest}
	}
	path := rl.Path
	if path == "" {
		// A GET with no path token still routes; the placeholder keeps
		// the NotFound body well-formed.
		return RouteOutcome{Kind: RouteNotFound, Path: "/unknown"}
	}
	if path == "/version" {
		return RouteOutcome{Kind: RouteVersion, Path: path}
	}
	if k, ok := rt.Extras[path]; ok {
		return RouteOutcome{Kind: k, Path: path}
	}
	return RouteOutcome{Kind: RouteNotFound, Path: path}
}
