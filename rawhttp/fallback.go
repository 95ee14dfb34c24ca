package rawhttp

import (
	"fmt"
	"html"
)

// fallbackRenderer keeps a Server with no Renderer functional, in the
// spirit of net/http's default 404 handler. Bodies are minimal; real
// deployments plug in their own Renderer.
type fallbackRenderer struct{}

func (fallbackRenderer) Render(o RouteOutcome, wantsJSON bool) RenderedResponse {
	switch o.Kind {
	case RouteVersion:
		if wantsJSON {
			return RenderedResponse{StatusLine: StatusLineOK, ContentType: "application/json", Body: `{"version": "dev"}`}
		}
		return RenderedResponse{StatusLine: StatusLineOK, ContentType: "text/html", Body: "<html><body>version dev</body></html>"}
	case RouteHealthz:
		return RenderedResponse{StatusLine: StatusLineOK, ContentType: "application/json", Body: `{"status": "ok"}`}
	case RouteMetrics:
		return RenderedResponse{StatusLine: StatusLineOK, ContentType: "text/plain", Body: ""}
	case RouteBadRequest:
		return RenderedResponse{StatusLine: StatusLineBadRequest, ContentType: "text/html", Body: "<html><body>bad request</body></html>"}
	default:
		body := fmt.Sprintf("<html><body>not found: %s</body></html>", html.EscapeString(o.Path))
		return RenderedResponse{StatusLine: StatusLineNotFound, ContentType: "text/html", Body: body}
	}
}
