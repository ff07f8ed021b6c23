// Package eventlog records request/response events of a server and its data-store
// component as single bracketed lines appended to one file per distinction.
//
// Key features
//   - Closed record variants (HTTP request/response, unified HTTP, DB request/response)
//     sharing one canonical line format
//   - Deterministic serialization: identical records always produce identical lines
//   - Append-only sink: one file per distinction at {log_path}/{distinction}.{ext},
//     directory created on demand, every line synced before the call returns
//   - No held file handles or buffers; the OS append guarantee orders concurrent writers
//
// Typical usage
//
//	cfg := eventlog.Config{LogPath: "/var/log/app", FormatExtension: "log"}
//	rec := eventlog.NewHTTPRequest(eventlog.LevelInfo, "35.111.95.142",
//		"/api/v1/health_check", "GET", eventlog.Size(30), eventlog.Text(body))
//	if err := eventlog.Write(rec, cfg); err != nil {
//		// the caller decides whether a logging failure matters
//	}
//
// The line written for the record above is
//
//	[2014-07-08T09:10:11+00:00] [INFO] [REQUEST] [35.111.95.142] [/api/v1/health_check] [GET] [30B] [{"json_key": "json_value_str"}]
package eventlog
