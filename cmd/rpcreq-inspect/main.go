// rpcreq-inspect builds a request from a YAML or HCL configuration file and
// prints its in-memory view. Nothing is sent anywhere.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/smnsjas/go-rpcreq/config"
)

// exitError carries a process exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func main() {
	// run has already reported the error on stderr.
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		code := 1
		if exitErr, ok := err.(*exitError); ok {
			code = exitErr.code
		}
		os.Exit(code)
	}
}

// run parses args, builds and prints the request. Every error it returns has
// already been written to stderr, either by the flag set or by the logger.
func run(args []string, stdout, stderr io.Writer) error {
	flagSet := flag.NewFlagSet("rpcreq-inspect", flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.Usage = func() {
		fmt.Fprint(stderr, `
rpcreq-inspect - Build an RPC request from configuration and print it.

Usage:
  rpcreq-inspect -config <file.yaml|file.hcl> [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to the request configuration (.yaml, .yml or .hcl).")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return &exitError{code: 2, err: err}
	}
	if *configFlag == "" {
		err := fmt.Errorf("-config is required")
		fmt.Fprintln(stderr, err)
		flagSet.Usage()
		return &exitError{code: 2, err: err}
	}

	logger := newLogger(strings.ToLower(*logLevelFlag), strings.ToLower(*logFormatFlag), stderr)
	logger.Debug("Loading request configuration.", "path", *configFlag)

	req, err := config.LoadFile(*configFlag)
	if err != nil {
		logger.Error("Failed to build request.", "path", *configFlag, "error", err)
		return err
	}
	logger.Info("Request built.",
		"request_id", req.ID().String(),
		"method", req.QualifiedMethod("."),
		"arguments", req.Arguments().Form(),
	)

	out, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		logger.Error("Failed to render request.", "request_id", req.ID().String(), "error", err)
		return fmt.Errorf("render request: %w", err)
	}
	_, err = fmt.Fprintln(stdout, string(out))
	return err
}

// newLogger creates a slog.Logger for the given level and format.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(outW, handlerOpts))
}
