package rawhttp

import (
	"errors"
	"net"
	"time"

	"tinyhttpd/internal/obs"
)

// DefaultAddr is the reference bind address.
const DefaultAddr = "127.0.0.1:3000"

// Server serves one request per connection over raw TCP.
//
// The zero value is usable: it listens on DefaultAddr, routes only
// /version, renders minimal bodies, and dispatches each connection to
// its own goroutine.
type Server struct {
	Addr     string
	Router   Router
	Renderer Renderer

	// Sequential serves connections inline on the accept loop's
	// goroutine. A slow or stalled client then blocks acceptance of all
	// subsequent connections; that is the documented trade of this
	// mode, not a bug.
	Sequential bool

	// ReadBufferSize bounds the single per-connection read.
	// DefaultReadBufferSize when zero.
	ReadBufferSize int

	// ReadTimeout and WriteTimeout are optional hardening deadlines.
	// Both default to zero, matching the reference behavior: a client
	// that connects and never sends holds its handler (and, in
	// Sequential mode, the whole server) indefinitely.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	Logger obs.Logger
	Meter  obs.Meter

	// Report, if set, receives every connection's outcome or error.
	// Observability only; it runs on the handler's goroutine and must
	// not block for long in the concurrent mode.
	Report func(out ConnectionOutcome, err error)
}

// ListenAndServe binds Addr (DefaultAddr when empty) and serves until
// the listener fails permanently.
func (s *Server) ListenAndServe() error {
	addr := s.Addr
	if addr == "" {
		addr = DefaultAddr
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on l until l is closed. A failed accept is
// logged and counted, never fatal; only the listener going away stops
// the loop. Each accepted connection is handed to the connection
// handler, inline in Sequential mode or on a fresh goroutine otherwise,
// and in the latter case the loop resumes accepting immediately without
// waiting on the handler.
func (s *Server) Serve(l net.Listener) error {
	defer l.Close()
	for {
		c, err := l.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			s.logf(obs.Warn, "accept: %v", err)
			s.meter().Counter("accept_errors_total", 1)
			continue
		}
		s.meter().Counter("connections_total", 1)
		if s.Sequential {
			s.dispatch(c)
		} else {
			go s.dispatch(c)
		}
	}
}

// dispatch runs one handler cycle and reports its outcome. Errors stop
// here: a connection can fail, the server cannot.
func (s *Server) dispatch(c net.Conn) {
	out, err := s.handleConn(c)
	switch {
	case err != nil:
		s.logf(obs.Error, "conn %s: %v", out.Peer, err)
		s.meter().Counter("conn_errors_total", 1)
	case out.StatusText != "":
		s.logf(obs.Debug, "conn %s: %s %s (%d bytes in)", out.Peer, out.StatusText, out.Path, out.BytesRead)
		s.meter().Counter("requests_total", 1, obs.Label{Key: "status", Value: out.StatusText})
	}
	if s.Report != nil {
		s.Report(out, err)
	}
}

func (s *Server) renderer() Renderer {
	if s.Renderer == nil {
		return fallbackRenderer{}
	}
	return s.Renderer
}

func (s *Server) logf(level obs.Level, format string, args ...interface{}) {
	if s.Logger == nil {
		return
	}
	s.Logger.Logf(level, format, args...)
}

func (s *Server) meter() obs.Meter {
	if s.Meter == nil {
		return obs.NopMeter{}
	}
	return s.Meter
}
