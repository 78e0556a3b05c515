package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"tabconv/internal/cli"
	"tabconv/internal/ctxlog"
	"tabconv/internal/descriptor"
)

// summary is the machine-readable result envelope emitted on stdout after a
// successful interpretation. Conversion itself is the downstream
// transformer's job; the envelope is what it gets handed.
type summary struct {
	Success    bool                          `json:"success"`
	Files      []descriptor.Input            `json:"files,omitempty"`
	Merges     map[string][]descriptor.Merge `json:"merges,omitempty"`
	DelayWrite bool                          `json:"delay_write"`
	Duration   string                        `json:"duration"`
}

// main is the entrypoint for the tabconv front end.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW, errW io.Writer, args []string) error {
	start := time.Now()

	logger := cli.NewLogger(os.Getenv("TABCONV_LOG_LEVEL"), os.Getenv("TABCONV_LOG_FORMAT"), errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	result, err := cli.Parse(ctx, args, errW)
	if err != nil {
		return err
	}
	if result.Help {
		cli.Usage(outW)
		return nil
	}

	return emitJSON(outW, summary{
		Success:    true,
		Files:      result.Descriptors,
		Merges:     result.Merges,
		DelayWrite: result.DelayWrite,
		Duration:   time.Since(start).String(),
	})
}

// emitJSON writes the result envelope, indented for readability.
func emitJSON(w io.Writer, out summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	return nil
}
