package rawhttp

import (
	"bytes"
	"fmt"
	"io"
	"net"
	"strings"
	"time"
)

// DefaultReadBufferSize bounds the single read issued per connection.
// A request longer than this is truncated, not rejected; only the first
// line and the Accept probe are interpreted, so truncation is harmless
// for well-formed requests whose first line fits.
const DefaultReadBufferSize = 1024

// acceptJSONToken is probed as a substring of the raw request bytes.
const acceptJSONToken = "Accept: application/json"

// handleConn serves exactly one request/response cycle on c and closes
// it on every exit path. Failures never escape: panics from the
// renderer are recovered into the error outcome, and read/write errors
// are returned for reporting, never propagated to other connections.
func (s *Server) handleConn(c net.Conn) (out ConnectionOutcome, err error) {
	defer c.Close()
	out.Peer = c.RemoteAddr().String()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, r)
		}
	}()

	if s.ReadTimeout > 0 {
		_ = c.SetReadDeadline(time.Now().Add(s.ReadTimeout))
	}
	buf := make([]byte, s.readBufferSize())
	n, rerr := c.Read(buf)
	if n == 0 {
		if rerr != nil && rerr != io.EOF {
			return out, fmt.Errorf("rawhttp: read: %w", rerr)
		}
		// Peer closed before sending anything: no response, no error.
		return out, nil
	}

	raw := DecodeLossy(buf[:n])
	rl := ParseRequestLine(raw)
	o := s.Router.Route(rl)
	wantsJSON := strings.Contains(raw, acceptJSONToken)
	resp := s.renderer().Render(o, wantsJSON)

	if s.WriteTimeout > 0 {
		_ = c.SetWriteDeadline(time.Now().Add(s.WriteTimeout))
	}
	if _, werr := c.Write(FrameResponse(resp)); werr != nil {
		return out, fmt.Errorf("rawhttp: write: %w", werr)
	}

	out.BytesRead = n
	out.StatusText = strings.TrimPrefix(resp.StatusLine, "HTTP/1.1 ")
	out.Path = o.Path
	return out, nil
}

// FrameResponse composes the wire form of a rendered response: status
// line, Content-Type, an exact Content-Length, a blank line, then the
// body. Callers write the result in a single call.
func FrameResponse(r RenderedResponse) []byte {
	var b bytes.Buffer
	b.Grow(len(r.StatusLine) + len(r.ContentType) + len(r.Body) + 64)
	fmt.Fprintf(&b, "%s\r\nContent-Type: %s\r\nContent-Length: %d\r\n\r\n%s",
		r.StatusLine, r.ContentType, len(r.Body), r.Body)
	return b.Bytes()
}

func (s *Server) readBufferSize() int {
	if s.ReadBufferSize <= 0 {
		return DefaultReadBufferSize
	}
	return s.ReadBufferSize
}
