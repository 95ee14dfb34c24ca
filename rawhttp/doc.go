// Package rawhttp implements a deliberately small HTTP/1.1 server
// directly on stream sockets: one bounded read, one response, one
// connection per request.
//
// The server accepts connections in a loop and hands each one to a
// connection handler that performs exactly one
// read → parse → route → render → write → close cycle. Two scheduling
// models share that handler: the default dispatches every connection to
// its own goroutine so the accept loop keeps running, and the
// Sequential mode serves connections inline, one at a time.
//
// Response bodies come from a pluggable Renderer; routing is an exact
// method+path match over a closed set of outcomes. There is no
// keep-alive, no chunked encoding, no TLS, and no request body
// handling.
//
// Quick start:
//
//	s := &rawhttp.Server{Addr: "127.0.0.1:3000"}
//	if err := s.ListenAndServe(); err != nil { log.Fatal(err) }
package rawhttp
