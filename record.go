package eventlog

import "time"

// Record is one request or response event. The variant set is closed: only the
// types declared in this package implement it.
type Record interface {
	// Line renders the canonical bracketed line, without a trailing newline.
	Line() string
	// Distinction names the file the record is routed to.
	Distinction() LogDistinction

	record()
}

// now stamps records at construction. Tests replace it.
var now = func() time.Time {
	return time.Now().UTC()
}

// HTTPRequest is the request phase of an HTTP exchange.
type HTTPRequest struct {
	Timestamp   time.Time
	Level       LogLevel
	Origin      string
	API         string
	Method      string
	PayloadSize *uint64
	Body        *string
}

// HTTPResponse is the response phase of an HTTP exchange.
type HTTPResponse struct {
	Timestamp  time.Time
	Level      LogLevel
	Origin     string
	StatusCode uint16
	Body       *string
}

// HTTPRecord carries either phase of an HTTP exchange. StatusCode is nil for the
// request phase and set for the response phase.
type HTTPRecord struct {
	Timestamp  time.Time
	Level      LogLevel
	Type       LogType
	Origin     string
	API        string
	Method     string
	StatusCode *uint16
	Body       *string
}

// DBRequest is a command received by the data-store component.
type DBRequest struct {
	Timestamp   time.Time
	Level       LogLevel
	Socket      string
	Command     string
	Pile        *string
	PayloadSize *uint64
}

// DBResponse is the outcome of a data-store command.
type DBResponse struct {
	Timestamp time.Time
	Level     LogLevel
	ExitCode  *int32
	Message   *string
}

// NewHTTPRequest stamps an HTTP request record with the current UTC time.
func NewHTTPRequest(level LogLevel, origin, api, method string, size *uint64, body *string) HTTPRequest {
	return HTTPRequest{
		Timestamp:   now(),
		Level:       level,
		Origin:      origin,
		API:         api,
		Method:      method,
		PayloadSize: clone(size),
		Body:        clone(body),
	}
}

// NewHTTPResponse stamps an HTTP response record with the current UTC time.
func NewHTTPResponse(level LogLevel, origin string, status uint16, body *string) HTTPResponse {
	return HTTPResponse{
		Timestamp:  now(),
		Level:      level,
		Origin:     origin,
		StatusCode: status,
		Body:       clone(body),
	}
}

// NewHTTPRecord stamps a unified HTTP record. The type is derived from status:
// nil means TypeRequest, anything else TypeResponse.
func NewHTTPRecord(level LogLevel, origin, api, method string, status *uint16, body *string) HTTPRecord {
	typ := TypeRequest
	if status != nil {
		typ = TypeResponse
	}
	return HTTPRecord{
		Timestamp:  now(),
		Level:      level,
		Type:       typ,
		Origin:     origin,
		API:        api,
		Method:     method,
		StatusCode: clone(status),
		Body:       clone(body),
	}
}

// NewDBRequest stamps a data-store request record with the current UTC time.
func NewDBRequest(level LogLevel, socket, command string, pile *string, size *uint64) DBRequest {
	return DBRequest{
		Timestamp:   now(),
		Level:       level,
		Socket:      socket,
		Command:     command,
		Pile:        clone(pile),
		PayloadSize: clone(size),
	}
}

// NewDBResponse stamps a data-store response record with the current UTC time.
func NewDBResponse(level LogLevel, exit *int32, message *string) DBResponse {
	return DBResponse{
		Timestamp: now(),
		Level:     level,
		ExitCode:  clone(exit),
		Message:   clone(message),
	}
}

// Size returns a pointer to a payload size.
func Size(n uint64) *uint64 { return &n }

// Text returns a pointer to an optional text field.
func Text(s string) *string { return &s }

// Status returns a pointer to an HTTP status code.
func Status(code uint16) *uint16 { return &code }

// Exit returns a pointer to a data-store exit code.
func Exit(code int32) *int32 { return &code }

// isNilRecord reports whether r is nil or a nil pointer to one of the variants.
func isNilRecord(r Record) bool {
	switch v := r.(type) {
	case nil:
		return true
	case *HTTPRequest:
		return v == nil
	case *HTTPResponse:
		return v == nil
	case *HTTPRecord:
		return v == nil
	case *DBRequest:
		return v == nil
	case *DBResponse:
		return v == nil
	default:
		return false
	}
}

func clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func (r HTTPRequest) Distinction() LogDistinction  { return DistinctionServer }
func (r HTTPResponse) Distinction() LogDistinction { return DistinctionServer }
func (r HTTPRecord) Distinction() LogDistinction   { return DistinctionServer }
func (r DBRequest) Distinction() LogDistinction    { return DistinctionDb }
func (r DBResponse) Distinction() LogDistinction   { return DistinctionDb }

func (r HTTPRequest) Line() string  { return Serialize(r) }
func (r HTTPResponse) Line() string { return Serialize(r) }
func (r HTTPRecord) Line() string   { return Serialize(r) }
func (r DBRequest) Line() string    { return Serialize(r) }
func (r DBResponse) Line() string   { return Serialize(r) }

func (HTTPRequest) record()  {}
func (HTTPResponse) record() {}
func (HTTPRecord) record()   {}
func (DBRequest) record()    {}
func (DBResponse) record()   {}
