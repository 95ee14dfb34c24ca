package rawhttp

// RequestLine is the parsed first line of a raw request.
//
// Method and Path are the first two whitespace-delimited tokens; either
// may be empty when the line is garbled or short. Fragment is the
// remainder of the raw request after the first line, uninterpreted.
type RequestLine struct {
	Method   string
	Path     string
	Fragment string
}

// RouteKind enumerates the closed set of routing decisions.
type RouteKind int

const (
	RouteVersion RouteKind = iota
	RouteNotFound
	RouteBadRequest
	RouteHealthz
	RouteMetrics
)

func (k RouteKind) String() string {
	switch k {
	case RouteVersion:
		return "version"
	case RouteNotFound:
		return "not_found"
	case RouteBadRequest:
		return "bad_request"
	case RouteHealthz:
		return "healthz"
	case RouteMetrics:
		return "metrics"
	default:
		return "unknown"
	}
}

// RouteOutcome is the routing decision for one request. Path is the
// requested path for NotFound outcomes and the matched path otherwise;
// it is empty for BadRequest.
type RouteOutcome struct {
	Kind RouteKind
	Path string
}

// RenderedResponse is a fully materialized response. The body must be
// complete before framing because Content-Length is computed from it.
type RenderedResponse struct {
	StatusLine  string
	ContentType string
	Body        string
}

// Renderer produces the response for a route outcome. wantsJSON is true
// when the raw request asked for application/json; only the Version
// outcome negotiates on it.
type Renderer interface {
	Render(o RouteOutcome, wantsJSON bool) RenderedResponse
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(o RouteOutcome, wantsJSON bool) RenderedResponse

func (f RendererFunc) Render(o RouteOutcome, wantsJSON bool) RenderedResponse {
	return f(o, wantsJSON)
}

// ConnectionOutcome reports what one connection handler did. It is
// observability data only; nothing routes on it. A connection whose
// peer sent no bytes yields a zero outcome apart from Peer.
type ConnectionOutcome struct {
	BytesRead  int
	StatusText string
	Path       string
	Peer       string
}

// Status lines shared by renderers. The uppercase reason phrases for
// 404 and 400 match the reference wire format exactly.
const (
	StatusLineOK         = "HTTP/1.1 200 OK"
	StatusLineNotFound   = "HTTP/1.1 404 NOT FOUND"
	StatusLineBadRequest = "HTTP/1.1 400 BAD REQUEST"
)
