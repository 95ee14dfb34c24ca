package rawhttp

import "strings"

// DecodeLossy interprets raw bytes as UTF-8, substituting U+FFFD for
// invalid sequences so parsing never fails on arbitrary input.
func DecodeLossy(raw []byte) string {
	return strings.ToValidUTF8(string(raw), "�")
}

// ParseRequestLine splits the first line out of a lossily decoded
// request and extracts its method and path tokens. Missing tokens stay
// empty; the router maps those to BadRequest or the /unknown
// placeholder. The line terminator may be CRLF or bare LF.
func ParseRequestLine(raw string) RequestLine {
	line, rest, _ := strings.Cut(raw, "\n")
	line = strings.TrimSuffix(line, "\r")
	rl := RequestLine{Fragment: rest}
	fields := strings.Fields(line)
	if len(fields) > 0 {
		rl.Method = fields[0]
	}
	if len(fields) > 1 {
		rl.Path = fields[1]
	}
	return rl
}
