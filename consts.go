package eventlog

const (
	// ServiceName is the DI/service locator name for the event log service.
	ServiceName = "eventlog"
	emptyString = ""

	// DefaultLogPath is the base directory used when no log_path is configured.
	DefaultLogPath = "logs"
	// DefaultFormatExtension is the file-name suffix used when no log_format_extension is configured.
	DefaultFormatExtension = "log"

	// EnvLogPath overrides the configured log_path.
	EnvLogPath = "EVENTLOG_LOG_PATH"
	// EnvFormatExtension overrides the configured log_format_extension.
	EnvFormatExtension = "EVENTLOG_LOG_FORMAT_EXTENSION"
)

const (
	errMsgNilConfig       = "Event log config is nil."
	errMsgNilService      = "Event log service is nil."
	errMsgNotInitialized  = "Event log service is not initialized."
	errMsgConfigInvalid   = "Event log configuration is invalid."
	errMsgConfigRead      = "Event log configuration file could not be read."
	errMsgConfigParse     = "Event log configuration file could not be parsed."
	errMsgCreateDir       = "Failed to create log directory."
	errMsgOpenFile        = "Failed to open log file."
	errMsgWriteFile       = "Failed to write log line."
	errMsgSyncFile        = "Failed to sync log file."
	errMsgCloseFile       = "Failed to close log file."
	errMsgBadDistinction  = "Unknown log distinction."
	errMsgBadCategory     = "Invalid log category."
	errMsgNilRecord       = "Log record is nil."
	errMsgUnknownLevel    = "Unknown log level."
	errMsgUnknownType     = "Unknown log type."
	errMsgUnknownCategory = "Unknown log distinction name."
)
