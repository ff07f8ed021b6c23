package eventlog

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Station-Manager/errors"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// FilePath resolves {LogPath}/{distinction}.{FormatExtension}.
func FilePath(d LogDistinction, cfg Config) string {
	return categoryPath(d.String(), cfg)
}

func categoryPath(category string, cfg Config) string {
	return filepath.Join(cfg.LogPath, category+"."+cfg.FormatExtension)
}

// Write serializes r and appends it to the file of its distinction.
func Write(r Record, cfg Config) error {
	const op errors.Op = "eventlog.Write"
	if isNilRecord(r) {
		return errors.New(op).Msg(errMsgNilRecord)
	}
	return Append(Serialize(r), r.Distinction(), cfg)
}

// Append writes line plus one newline to the file selected by d, creating the base
// directory and the file when missing. The line is synced before Append returns
// and no handle outlives the call. Failures are returned, never retried.
func Append(line string, d LogDistinction, cfg Config) error {
	const op errors.Op = "eventlog.Append"
	if !d.Valid() {
		return errors.New(op).Msg(errMsgBadDistinction)
	}
	return appendLine(op, line, d.String(), cfg)
}

// AppendCategory is Append keyed by a raw category name such as "server" or "db".
// The name is lower-cased and must be usable as a bare file-name stem.
func AppendCategory(line, category string, cfg Config) error {
	const op errors.Op = "eventlog.AppendCategory"
	category = strings.ToLower(strings.TrimSpace(category))
	if category == emptyString || category == "." || category == ".." ||
		strings.ContainsAny(category, `/\`) {
		return errors.New(op).Msg(errMsgBadCategory)
	}
	return appendLine(op, line, category, cfg)
}

func appendLine(op errors.Op, line, category string, cfg Config) error {
	if err := os.MkdirAll(cfg.LogPath, dirPerm); err != nil {
		return errors.New(op).Err(err).Msg(errMsgCreateDir)
	}

	f, err := os.OpenFile(categoryPath(category, cfg), os.O_CREATE|os.O_APPEND|os.O_WRONLY, filePerm)
	if err != nil {
		return errors.New(op).Err(err).Msg(errMsgOpenFile)
	}

	// A single write per line keeps concurrent appenders from interleaving.
	if _, err = f.WriteString(line + "\n"); err != nil {
		_ = f.Close()
		return errors.New(op).Err(err).Msg(errMsgWriteFile)
	}
	if err = f.Sync(); err != nil {
		_ = f.Close()
		return errors.New(op).Err(err).Msg(errMsgSyncFile)
	}
	if err = f.Close(); err != nil {
		return errors.New(op).Err(err).Msg(errMsgCloseFile)
	}
	return nil
}
