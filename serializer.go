package eventlog

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// TimestampLayout is RFC 3339 at second precision with a numeric offset, so UTC
// renders as +00:00 rather than Z.
const TimestampLayout = "2006-01-02T15:04:05-07:00"

// lineEscaper keeps a rendered field on one line.
var lineEscaper = strings.NewReplacer("\r", `\r`, "\n", `\n`)

// Serialize renders r as its canonical line. It is total over the declared
// variants; a nil record or nil variant pointer renders as "".
func Serialize(r Record) string {
	switch v := r.(type) {
	case HTTPRequest:
		return serializeHTTPRequest(v)
	case *HTTPRequest:
		if v == nil {
			return emptyString
		}
		return serializeHTTPRequest(*v)
	case HTTPResponse:
		return serializeHTTPResponse(v)
	case *HTTPResponse:
		if v == nil {
			return emptyString
		}
		return serializeHTTPResponse(*v)
	case HTTPRecord:
		return serializeHTTPRecord(v)
	case *HTTPRecord:
		if v == nil {
			return emptyString
		}
		return serializeHTTPRecord(*v)
	case DBRequest:
		return serializeDBRequest(v)
	case *DBRequest:
		if v == nil {
			return emptyString
		}
		return serializeDBRequest(*v)
	case DBResponse:
		return serializeDBResponse(v)
	case *DBResponse:
		if v == nil {
			return emptyString
		}
		return serializeDBResponse(*v)
	default:
		return emptyString
	}
}

func serializeHTTPRequest(r HTTPRequest) string {
	return joinFields(
		formatTimestamp(r.Timestamp),
		r.Level.String(),
		TypeRequest.String(),
		sanitize(r.Origin),
		sanitize(r.API),
		sanitize(r.Method),
		formatSize(r.PayloadSize),
		formatText(r.Body),
	)
}

func serializeHTTPResponse(r HTTPResponse) string {
	return joinFields(
		formatTimestamp(r.Timestamp),
		r.Level.String(),
		TypeResponse.String(),
		sanitize(r.Origin),
		strconv.FormatUint(uint64(r.StatusCode), 10),
		formatText(r.Body),
	)
}

func serializeHTTPRecord(r HTTPRecord) string {
	status := emptyString
	if r.StatusCode != nil {
		status = strconv.FormatUint(uint64(*r.StatusCode), 10)
	}
	return joinFields(
		formatTimestamp(r.Timestamp),
		r.Level.String(),
		r.Type.String(),
		sanitize(r.Origin),
		sanitize(r.API),
		sanitize(r.Method),
		status,
		formatText(r.Body),
	)
}

func serializeDBRequest(r DBRequest) string {
	return joinFields(
		formatTimestamp(r.Timestamp),
		r.Level.String(),
		TypeRequest.String(),
		sanitize(r.Socket),
		sanitize(r.Command),
		formatText(r.Pile),
		formatSize(r.PayloadSize),
	)
}

func serializeDBResponse(r DBResponse) string {
	exit := emptyString
	if r.ExitCode != nil {
		exit = strconv.FormatInt(int64(*r.ExitCode), 10)
	}
	return joinFields(
		formatTimestamp(r.Timestamp),
		r.Level.String(),
		TypeResponse.String(),
		exit,
		formatText(r.Message),
	)
}

// joinFields wraps each field in brackets and separates them with one space.
func joinFields(fields ...string) string {
	var buf strings.Builder
	n := len(fields) * 3
	for _, f := range fields {
		n += len(f)
	}
	buf.Grow(n)

	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteByte('[')
		buf.WriteString(f)
		buf.WriteByte(']')
	}
	return buf.String()
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func formatSize(n *uint64) string {
	if n == nil {
		return "0B"
	}
	return strconv.FormatUint(*n, 10) + "B"
}

func formatText(s *string) string {
	if s == nil {
		return emptyString
	}
	return sanitize(*s)
}

// sanitize leaves valid single-line text untouched. Invalid UTF-8 becomes U+FFFD
// and CR/LF become their two-character escapes.
func sanitize(s string) string {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "\uFFFD")
	}
	if strings.ContainsAny(s, "\r\n") {
		s = lineEscaper.Replace(s)
	}
	return s
}
