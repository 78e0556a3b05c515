// Package interp is the argument-interpretation core: it validates the
// fixed positional prefix, runs the optional-flag scan, delegates file
// resolution and assembles the typed descriptors the caller hands to the
// record transformer.
package interp

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"tabconv/internal/ctxlog"
	"tabconv/internal/descriptor"
	"tabconv/internal/fsutil"
	"tabconv/internal/resolve"
)

// UsageError reports malformed or missing arguments. The process surface
// answers it with the error message, the usage text and a failure exit.
type UsageError struct {
	Message string
}

// Error implements the error interface for UsageError.
func (e *UsageError) Error() string {
	return e.Message
}

// Result is the fully assembled outcome of one interpretation.
type Result struct {
	// Help is set when -H was the first token; no other field is populated.
	Help bool
	// Descriptors holds one entry per resolved primary file, in manifest
	// order. Only the entry at index 0 can carry IncludeHeader.
	Descriptors []descriptor.Input
	// Merges maps a primary path to its merge-source descriptors, in the
	// order the sources appeared. A target with no sources maps to an
	// empty slice.
	Merges map[string][]descriptor.Merge
	// DelayWrite is the global deferred-persistence option.
	DelayWrite bool
}

// helpToken short-circuits everything else when it leads the stream.
const helpToken = "-H"

// positional prefix length: include_header, class_col, ignore_cols.
const numPositionals = 3

// Interpret processes one token stream (the program name already stripped)
// start to finish. It returns either a fully assembled Result or the first
// terminal error; there is no partial output.
func Interpret(ctx context.Context, tokens []string, fsys fsutil.FS) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	if len(tokens) > 0 && tokens[0] == helpToken {
		logger.Debug("Help requested; skipping interpretation.")
		return &Result{Help: true}, nil
	}
	if len(tokens) < numPositionals {
		return nil, &UsageError{Message: "incorrect number of arguments"}
	}

	includeHeader, err := parseIncludeHeader(tokens[0])
	if err != nil {
		return nil, err
	}
	classCol, err := parseClassCol(tokens[1])
	if err != nil {
		return nil, err
	}
	ignoreCols, err := parseIntList(tokens[2])
	if err != nil {
		return nil, &UsageError{Message: fmt.Sprintf("ignore_cols: %v", err)}
	}
	logger.Debug("Positional prefix parsed.",
		"include_header", includeHeader, "class_col", tokens[1], "ignore_cols", tokens[2])

	consumed, opts, err := processFlags(tokens[numPositionals:])
	if err != nil {
		return nil, err
	}
	logger.Debug("Flag scan complete.", "consumed", consumed)

	// Ambiguous intent, not an error: the original tool reports this and
	// carries on with both settings, and so do we.
	if (opts.ClassDrop || len(opts.CustomClasses) > 0) && classCol != nil {
		logger.Warn("Both a class column and a custom class were specified; keeping both.",
			"class_col", *classCol)
	}

	manifest, err := resolve.Resolve(ctx, tokens[numPositionals+consumed:], fsys)
	if err != nil {
		return nil, err
	}

	return assemble(ctx, manifest, includeHeader, classCol, ignoreCols, opts), nil
}

// assemble builds the descriptor list and merge map from a completed
// manifest. The header flag is carried only by the first descriptor, and
// only if the user asked for headers at all.
func assemble(ctx context.Context, m *resolve.Manifest, includeHeader bool, classCol *int, ignoreCols []int, opts Options) *Result {
	logger := ctxlog.FromContext(ctx)

	descriptors := make([]descriptor.Input, 0, len(m.Files))
	for i, path := range m.Files {
		ext := filepath.Ext(path)
		if ext == "" {
			// Not fatal: the entry keeps an unset extension tag and the
			// transformer decides what to do with it.
			logger.Warn("No file extension could be derived.", "path", path)
		}
		descriptors = append(descriptors, descriptor.Input{
			Path:            path,
			Ext:             ext,
			ClassCol:        classCol,
			IgnoreCols:      ignoreCols,
			DropCols:        opts.DropColumns,
			IgnoreRows:      opts.IgnoreRows,
			DropFooter:      opts.DropFooter,
			IncludeHeader:   includeHeader && i == 0,
			ClassDrop:       opts.ClassDrop,
			CustomClasses:   opts.CustomClasses,
			MergeCols:       opts.MergeColumns,
			InferNonNumeric: opts.InferNonNumeric,
		})
	}

	merges := make(map[string][]descriptor.Merge, len(m.Merges))
	for target, sources := range m.Merges {
		list := make([]descriptor.Merge, 0, len(sources))
		for _, s := range sources {
			list = append(list, descriptor.Merge{Path: s})
		}
		merges[target] = list
	}

	logger.Debug("Assembly complete.", "descriptors", len(descriptors), "merge_targets", len(merges))
	return &Result{
		Descriptors: descriptors,
		Merges:      merges,
		DelayWrite:  opts.DelayWrite,
	}
}

// parseIncludeHeader interprets the include-header positional as a boolean
// from an integer literal.
func parseIncludeHeader(s string) (bool, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return false, &UsageError{Message: fmt.Sprintf("include_header %q is not an integer", s)}
	}
	return n != 0, nil
}

// parseClassCol interprets the class-column positional: an integer index,
// or the empty-string sentinel meaning "no class column".
func parseClassCol(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, &UsageError{Message: fmt.Sprintf("class_col %q is not an integer", s)}
	}
	return &n, nil
}
