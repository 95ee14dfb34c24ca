package rawhttp

import "testing"

func TestRouter_Route(t *testing.T) {
	rt := Router{}
	cases := []struct {
		method, path string
		kind         RouteKind
		outPath      string
	}{
		{"GET", "/version", RouteVersion, "/version"},
		{"GET", "/", RouteNotFound, "/"},
		{"GET", "/foo", RouteNotFound, "/foo"},
		{"GET", "/version/extra", RouteNotFound, "/version/extra"},
		{"GET", "", RouteNotFound, "/unknown"},
		{"POST", "/version", RouteBadRequest, ""},
		{"DELETE", "/", RouteBadRequest, ""},
		{"get", "/version", RouteBadRequest, ""},
		{"", "", RouteBadRequest, ""},
	}
	for _, c := range cases {
		o := rt.Route(RequestLine{Method: c.method, Path: c.path})
		if o.Kind != c.kind || o.Path != c.outPath {
			t.Errorf("Route(%q %q) = %v %q, want %v %q", c.method, c.path, o.Kind, o.Path, c.kind, c.outPath)
		}
	}
}

func TestRouter_Extras(t *testing.T) {
	rt := Router{Extras: map[string]RouteKind{
		"/healthz": RouteHealthz,
		"/metrics": RouteMetrics,
	}}
	if o := rt.Route(RequestLine{Method: "GET", Path: "/healthz"}); o.Kind != RouteHealthz {
		t.Fatalf("healthz routed to %v", o.Kind)
	}
	if o := rt.Route(RequestLine{Method: "GET", Path: "/metrics"}); o.Kind != RouteMetrics {
		t.Fatalf("metrics routed to %v", o.Kind)
	}
	// Extras never shadow the fixed routes or the method gate.
	if o := rt.Route(RequestLine{Method: "GET", Path: "/version"}); o.Kind != RouteVersion {
		t.Fatalf("version routed to %v", o.Kind)
	}
	if o := rt.Route(RequestLine{Method: "POST", Path: "/healthz"}); o.Kind != RouteBadRequest {
		t.Fatalf("POST /healthz routed to %v", o.Kind)
	}
}
