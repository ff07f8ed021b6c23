package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Station-Manager/eventlog"
)

func newPathCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path <server|db>",
		Short: "Print the log file of a distinction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := eventlog.ParseLogDistinction(args[0])
			if err != nil {
				return err
			}
			cfg, err := opts.resolveConfig()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), eventlog.FilePath(d, cfg))
			return err
		},
	}
}

func newAppendCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "append <server|db> <line>",
		Short: "Append a pre-serialized line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := eventlog.ParseLogDistinction(args[0])
			if err != nil {
				return err
			}
			if strings.ContainsAny(args[1], "\r\n") {
				return fmt.Errorf("line must not contain CR or LF")
			}
			svc, err := opts.newService(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = svc.Close() }()
			return svc.LogLine(args[1], d)
		},
	}
}

func newHTTPCmd(opts *rootOptions) *cobra.Command {
	var (
		level  string
		origin string
		api    string
		method string
		size   uint64
		body   string
		status uint16
	)

	cmd := &cobra.Command{
		Use:   "http",
		Short: "Append an HTTP request or response record to the server log",
		Long: `Append an HTTP record to the server log. Without --status the record is a
request; with --status it is the response phase of the same exchange.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := eventlog.ParseLogLevel(level)
			if err != nil {
				return err
			}
			flags := cmd.Flags()

			var rec eventlog.Record
			if flags.Changed("status") {
				rec = eventlog.NewHTTPRecord(lvl, origin, api, method,
					eventlog.Status(status), optionalText(flags.Changed("body"), body))
			} else {
				rec = eventlog.NewHTTPRequest(lvl, origin, api, method,
					optionalSize(flags.Changed("size"), size), optionalText(flags.Changed("body"), body))
			}
			return writeRecord(cmd, opts, rec)
		},
	}

	cmd.Flags().StringVar(&level, "level", "info", "Record level (info|error)")
	cmd.Flags().StringVar(&origin, "origin", "", "Origin address of the caller")
	cmd.Flags().StringVar(&api, "api", "", "API path")
	cmd.Flags().StringVar(&method, "method", "GET", "HTTP method")
	cmd.Flags().Uint64Var(&size, "size", 0, "Payload size in bytes")
	cmd.Flags().StringVar(&body, "body", "", "Body text")
	cmd.Flags().Uint16Var(&status, "status", 0, "Response status code; marks the record as a response")

	return cmd
}

func newDBCmd(opts *rootOptions) *cobra.Command {
	var (
		level   string
		socket  string
		command string
		pile    string
		size    uint64
		exit    int32
		message string
	)

	cmd := &cobra.Command{
		Use:   "db",
		Short: "Append a data-store request or response record to the db log",
		Long: `Append a data-store record to the db log. --exit or --message make it a
response record; otherwise it is a request.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := eventlog.ParseLogLevel(level)
			if err != nil {
				return err
			}
			flags := cmd.Flags()

			var rec eventlog.Record
			if flags.Changed("exit") || flags.Changed("message") {
				var code *int32
				if flags.Changed("exit") {
					code = eventlog.Exit(exit)
				}
				rec = eventlog.NewDBResponse(lvl, code, optionalText(flags.Changed("message"), message))
			} else {
				rec = eventlog.NewDBRequest(lvl, socket, command,
					optionalText(flags.Changed("pile"), pile), optionalSize(flags.Changed("size"), size))
			}
			return writeRecord(cmd, opts, rec)
		},
	}

	cmd.Flags().StringVar(&level, "level", "info", "Record level (info|error)")
	cmd.Flags().StringVar(&socket, "socket", "", "Peer socket address")
	cmd.Flags().StringVar(&command, "command", "", "Command name")
	cmd.Flags().StringVar(&pile, "pile", "", "Target pile (collection) name")
	cmd.Flags().Uint64Var(&size, "size", 0, "Payload size in bytes")
	cmd.Flags().Int32Var(&exit, "exit", 0, "Exit code; marks the record as a response")
	cmd.Flags().StringVar(&message, "message", "", "Response message; marks the record as a response")

	return cmd
}

func writeRecord(cmd *cobra.Command, opts *rootOptions, rec eventlog.Record) error {
	svc, err := opts.newService(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	if err = svc.Log(rec); err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), svc.Path(rec.Distinction()))
	return err
}

func optionalSize(set bool, v uint64) *uint64 {
	if !set {
		return nil
	}
	return eventlog.Size(v)
}

func optionalText(set bool, v string) *string {
	if !set {
		return nil
	}
	return eventlog.Text(v)
}
