// Package render provides the default response bodies for the rawhttp
// server: version info as JSON or HTML, health and metrics pages, and
// the 404/400 error pages. It is pure templating over a RouteOutcome;
// the server core works with any Renderer.
package render

import (
	"encoding/json"
	"fmt"
	"html"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"tinyhttpd/rawhttp"
)

// VersionInfo is the payload behind GET /version.
type VersionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Branch    string `json:"branch"`
	BuiltAt   string `json:"built_at"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	Arch      string `json:"arch"`
}

// Version and Commit are meant to be set at link time via
// -ldflags="-X tinyhttpd/render.Version=...".
var (
	Version = "0.1.0"
	Commit  = "unknown"
	Branch  = "main"
)

// Renderer renders the fixed route set. Metrics, when non-nil, supplies
// the counter snapshot exposed on /metrics.
type Renderer struct {
	Info    VersionInfo
	Metrics func() map[string]float64
}

// New fills VersionInfo from the running binary and the current time,
// matching the reference payload fields.
func New() *Renderer {
	return &Renderer{
		Info: VersionInfo{
			Version:   Version,
			Commit:    Commit,
			Branch:    Branch,
			BuiltAt:   strconv.FormatInt(time.Now().Unix(), 10),
			GoVersion: runtime.Version(),
			Platform:  runtime.GOOS,
			Arch:      runtime.GOARCH,
		},
	}
}

func (r *Renderer) Render(o rawhttp.RouteOutcome, wantsJSON bool) rawhttp.RenderedResponse {
	switch o.Kind {
	case rawhttp.RouteVersion:
		return r.version(wantsJSON)
	case rawhttp.RouteHealthz:
		return rawhttp.RenderedResponse{
			StatusLine:  rawhttp.StatusLineOK,
			ContentType: "application/json",
			Body:        `{"status": "ok"}`,
		}
	case rawhttp.RouteMetrics:
		return rawhttp.RenderedResponse{
			StatusLine:  rawhttp.StatusLineOK,
			ContentType: "text/plain",
			Body:        r.metricsBody(),
		}
	case rawhttp.RouteBadRequest:
		return rawhttp.RenderedResponse{
			StatusLine:  rawhttp.StatusLineBadRequest,
			ContentType: "text/html",
			Body:        badRequestPage,
		}
	default:
		return rawhttp.RenderedResponse{
			StatusLine:  rawhttp.StatusLineNotFound,
			ContentType: "text/html",
			Body:        fmt.Sprintf(notFoundPage, html.EscapeString(o.Path)),
		}
	}
}

func (r *Renderer) version(wantsJSON bool) rawhttp.RenderedResponse {
	j, err := json.MarshalIndent(r.Info, "", "    ")
	if err != nil {
		// VersionInfo is plain strings; this cannot happen in practice.
		j = []byte(`{"version": "` + r.Info.Version + `"}`)
	}
	if wantsJSON {
		return rawhttp.RenderedResponse{
			StatusLine:  rawhttp.StatusLineOK,
			ContentType: "application/json",
			Body:        string(j),
		}
	}
	body := fmt.Sprintf(versionPage,
		html.EscapeString(r.Info.Version),
		html.EscapeString(r.Info.Platform),
		html.EscapeString(r.Info.Arch),
		html.EscapeString(r.Info.BuiltAt),
		html.EscapeString(string(j)),
	)
	return rawhttp.RenderedResponse{
		StatusLine:  rawhttp.StatusLineOK,
		ContentType: "text/html",
		Body:        body,
	}
}

// metricsBody renders the counter snapshot in text exposition format,
// sorted for stable output.
func (r *Renderer) metricsBody() string {
	if r.Metrics == nil {
		return ""
	}
	snap := r.Metrics()
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s %g\n", k, snap[k])
	}
	return b.String()
}
