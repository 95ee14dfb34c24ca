package render

import (
	"encoding/json"
	"strings"
	"testing"

	"tinyhttpd/rawhttp"
)

func TestRender_VersionJSON(t *testing.T) {
	r := New()
	res := r.Render(rawhttp.RouteOutcome{Kind: rawhttp.RouteVersion, Path: "/version"}, true)
	if res.StatusLine != rawhttp.StatusLineOK {
		t.Fatalf("status = %q", res.StatusLine)
	}
	if res.ContentType != "application/json" {
		t.Fatalf("content type = %q", res.ContentType)
	}
	var got VersionInfo
	if err := json.Unmarshal([]byte(res.Body), &got); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if got.Version != r.Info.Version || got.Version == "" {
		t.Fatalf("version = %q, want %q", got.Version, r.Info.Version)
	}
	if got.Platform == "" || got.Arch == "" || got.GoVersion == "" {
		t.Fatalf("incomplete payload: %+v", got)
	}
}

func TestRender_VersionHTMLEmbedsSameVersion(t *testing.T) {
	r := New()
	res := r.Render(rawhttp.RouteOutcome{Kind: rawhttp.RouteVersion, Path: "/version"}, false)
	if res.ContentType != "text/html" {
		t.Fatalf("content type = %q", res.ContentType)
	}
	if !strings.Contains(res.Body, r.Info.Version) {
		t.Fatalf("html body missing version %q", r.Info.Version)
	}
	// The page embeds the raw JSON block too.
	if !strings.Contains(res.Body, "&#34;version&#34;") && !strings.Contains(res.Body, `"version"`) {
		t.Fatalf("html body missing raw JSON block: %q", res.Body)
	}
}

func TestRender_NotFoundEscapesPath(t *testing.T) {
	r := New()
	res := r.Render(rawhttp.RouteOutcome{Kind: rawhttp.RouteNotFound, Path: "/foo<script>"}, false)
	if res.StatusLine != rawhttp.StatusLineNotFound {
		t.Fatalf("status = %q", res.StatusLine)
	}
	if strings.Contains(res.Body, "<script>") {
		t.Fatalf("path not escaped: %q", res.Body)
	}
	if !strings.Contains(res.Body, "/foo&lt;script&gt;") {
		t.Fatalf("escaped path missing: %q", res.Body)
	}
}

func TestRender_BadRequest(t *testing.T) {
	r := New()
	res := r.Render(rawhttp.RouteOutcome{Kind: rawhttp.RouteBadRequest}, false)
	if res.StatusLine != rawhttp.StatusLineBadRequest {
		t.Fatalf("status = %q", res.StatusLine)
	}
	if res.ContentType != "text/html" {
		t.Fatalf("content type = %q", res.ContentType)
	}
}

func TestRender_Healthz(t *testing.T) {
	r := New()
	res := r.Render(rawhttp.RouteOutcome{Kind: rawhttp.RouteHealthz, Path: "/healthz"}, false)
	var got struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal([]byte(res.Body), &got); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if got.Status != "ok" {
		t.Fatalf("status field = %q", got.Status)
	}
}

func TestRender_Metrics(t *testing.T) {
	r := New()
	r.Metrics = func() map[string]float64 {
		return map[string]float64{
			"requests_total{status=\"200 OK\"}": 3,
			"connections_total":                 5,
		}
	}
	res := r.Render(rawhttp.RouteOutcome{Kind: rawhttp.RouteMetrics, Path: "/metrics"}, false)
	if res.ContentType != "text/plain" {
		t.Fatalf("content type = %q", res.ContentType)
	}
	want := "connections_total 5\nrequests_total{status=\"200 OK\"} 3\n"
	if res.Body != want {
		t.Fatalf("body = %q, want %q", res.Body, want)
	}
}

func TestRender_MetricsWithoutSource(t *testing.T) {
	r := New()
	res := r.Render(rawhttp.RouteOutcome{Kind: rawhttp.RouteMetrics, Path: "/metrics"}, false)
	if res.Body != "" || res.StatusLine != rawhttp.StatusLineOK {
		t.Fatalf("got %q %q", res.StatusLine, res.Body)
	}
}
