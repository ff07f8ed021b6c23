// Package main provides the eventlog command: it resolves log file paths and
// appends server or data-store records from the shell.
//
// Usage:
//
//	eventlog [--config file] [--log-path dir] [--ext log] <command>
//
// Commands:
//
//	path <server|db>           Print the file a distinction is written to
//	append <server|db> <line>  Append a pre-serialized line
//	http                       Append an HTTP request (or, with --status, response) record
//	db                         Append a data-store request (or, with --exit/--message, response) record
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Station-Manager/eventlog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	configFile string
	logPath    string
	extension  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "eventlog",
		Short: "Append request/response events to per-distinction log files",
		Long: `Append request/response events of the server and the data store to
{log_path}/{distinction}.{log_format_extension}, one bracketed line per event.

Configuration is read from --config (YAML with log_path and log_format_extension),
then EVENTLOG_LOG_PATH and EVENTLOG_LOG_FORMAT_EXTENSION, then --log-path and --ext.

Examples:
  eventlog path server
  eventlog append db "[2014-07-08T09:10:11+00:00] [INFO] [REQUEST] [127.0.0.1:9000] [get] [] [0B]"
  eventlog http --origin 35.111.95.142 --api /api/v1/health_check --method GET --size 30
  eventlog db --level error --exit 1 --message "Error creating db entry!"`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&opts.logPath, "log-path", "", "Directory holding the log files")
	cmd.PersistentFlags().StringVar(&opts.extension, "ext", "", "Log file extension without the dot")

	cmd.AddCommand(newPathCmd(opts))
	cmd.AddCommand(newAppendCmd(opts))
	cmd.AddCommand(newHTTPCmd(opts))
	cmd.AddCommand(newDBCmd(opts))

	return cmd
}

// resolveConfig layers the command-line flags over LoadConfig.
func (o *rootOptions) resolveConfig() (eventlog.Config, error) {
	cfg, err := eventlog.LoadConfig(o.configFile)
	if err != nil {
		return eventlog.Config{}, err
	}
	if o.logPath != "" {
		cfg.LogPath = o.logPath
	}
	if o.extension != "" {
		cfg.FormatExtension = strings.TrimPrefix(o.extension, ".")
	}
	if err = cfg.Validate(); err != nil {
		return eventlog.Config{}, err
	}
	return cfg, nil
}

// newService builds an initialized Service whose diagnostics go to w.
func (o *rootOptions) newService(w io.Writer) (*eventlog.Service, error) {
	cfg, err := o.resolveConfig()
	if err != nil {
		return nil, err
	}
	diag := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).With().Timestamp().Logger()
	svc := &eventlog.Service{Config: &cfg, Diagnostics: &diag}
	if err = svc.Initialize(); err != nil {
		return nil, err
	}
	return svc, nil
}
