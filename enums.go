package eventlog

import (
	"strings"

	"github.com/Station-Manager/errors"
)

// LogLevel is the severity tag of a record.
type LogLevel uint8

const (
	LevelInfo LogLevel = iota
	LevelError
)

// LogType marks a record as the request or the response phase of an exchange.
type LogType uint8

const (
	TypeRequest LogType = iota
	TypeResponse
)

// LogDistinction routes a record to its physical log file.
type LogDistinction uint8

const (
	DistinctionServer LogDistinction = iota
	DistinctionDb
)

// String returns the canonical upper-case token, or "" for an unknown level.
func (l LogLevel) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	default:
		return emptyString
	}
}

// Valid reports whether l is one of the declared levels.
func (l LogLevel) Valid() bool {
	return l.String() != emptyString
}

// String returns the canonical upper-case token, or "" for an unknown type.
func (t LogType) String() string {
	switch t {
	case TypeRequest:
		return "REQUEST"
	case TypeResponse:
		return "RESPONSE"
	default:
		return emptyString
	}
}

// Valid reports whether t is one of the declared types.
func (t LogType) Valid() bool {
	return t.String() != emptyString
}

// String returns the lower-case file-name stem, or "" for an unknown distinction.
func (d LogDistinction) String() string {
	switch d {
	case DistinctionServer:
		return "server"
	case DistinctionDb:
		return "db"
	default:
		return emptyString
	}
}

// Valid reports whether d is one of the declared distinctions.
func (d LogDistinction) Valid() bool {
	return d.String() != emptyString
}

// ParseLogLevel maps "info" or "error" (any case) to a LogLevel.
func ParseLogLevel(s string) (LogLevel, error) {
	const op errors.Op = "eventlog.ParseLogLevel"
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info":
		return LevelInfo, nil
	case "error":
		return LevelError, nil
	default:
		return 0, errors.New(op).Msg(errMsgUnknownLevel + " " + s)
	}
}

// ParseLogType maps "request" or "response" (any case) to a LogType.
func ParseLogType(s string) (LogType, error) {
	const op errors.Op = "eventlog.ParseLogType"
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "request":
		return TypeRequest, nil
	case "response":
		return TypeResponse, nil
	default:
		return 0, errors.New(op).Msg(errMsgUnknownType + " " + s)
	}
}

// ParseLogDistinction maps "server" or "db" (any case) to a LogDistinction.
func ParseLogDistinction(s string) (LogDistinction, error) {
	const op errors.Op = "eventlog.ParseLogDistinction"
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "server":
		return DistinctionServer, nil
	case "db":
		return DistinctionDb, nil
	default:
		return 0, errors.New(op).Msg(errMsgUnknownCategory + " " + s)
	}
}
