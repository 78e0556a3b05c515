// Package resolve turns the file section of the token stream into a
// Manifest. It is a single-pass, left-to-right finite-state machine over
// three states: ADD (collect files and folders), DROP (remove previously
// resolved files) and MERGE (attach merge sources to the last primary).
package resolve

import (
	"context"
	"fmt"
	"strings"

	"tabconv/internal/ctxlog"
	"tabconv/internal/fsutil"
)

// state is the resolver's position in the ADD/DROP/MERGE machine.
type state int

const (
	stateAdd state = iota
	stateDrop
	stateMerge
)

func (s state) String() string {
	switch s {
	case stateAdd:
		return "ADD"
	case stateDrop:
		return "DROP"
	case stateMerge:
		return "MERGE"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Sentinel tokens that drive state transitions. DROP is one-way: once
// entered, these spellings are ordinary removal requests.
const (
	tokenDrop  = "-rm"
	tokenMerge = "--merge"
)

// RemovalError reports an exact-path removal whose target is not in the
// manifest. It is fatal for the whole interpretation; wildcard removals
// that match nothing are a no-op instead.
type RemovalError struct {
	Path string
}

// Error implements the error interface for RemovalError.
func (e *RemovalError) Error() string {
	return fmt.Sprintf("cannot remove nonexistent file %q", e.Path)
}

// resolver holds the per-invocation machine: the current state, the
// manifest under construction and the active merge target.
type resolver struct {
	fsys   fsutil.FS
	st     state
	m      *Manifest
	target string
}

// Resolve consumes the token sub-stream following the flag section and
// produces the manifest. One pass, no backtracking; the first error stops
// resolution and discards the partial manifest.
func Resolve(ctx context.Context, tokens []string, fsys fsutil.FS) (*Manifest, error) {
	r := &resolver{fsys: fsys, m: NewManifest()}
	for _, tok := range tokens {
		if err := r.step(ctx, tok); err != nil {
			return nil, err
		}
	}
	ctxlog.FromContext(ctx).Debug("File resolution complete.",
		"files", len(r.m.Files), "merge_targets", len(r.m.Merges))
	return r.m, nil
}

// step advances the machine by one token.
func (r *resolver) step(ctx context.Context, tok string) error {
	switch r.st {
	case stateAdd:
		switch tok {
		case tokenDrop:
			return r.enterDrop(ctx)
		case tokenMerge:
			return r.enterMerge(ctx)
		}
		return r.add(ctx, tok)

	case stateMerge:
		switch tok {
		case tokenDrop:
			return r.enterDrop(ctx)
		case tokenMerge:
			return r.enterMerge(ctx)
		}
		// Merge sources are recorded raw; existence is the transformer's
		// problem at read time.
		r.m.AddMergeSource(r.target, tok)
		return nil

	case stateDrop:
		return r.remove(ctx, tok)
	}
	return fmt.Errorf("unreachable resolver state %v", r.st)
}

// add handles one token in ADD state: an existing file is appended, an
// existing directory is walked, anything else is silently skipped.
func (r *resolver) add(ctx context.Context, tok string) error {
	logger := ctxlog.FromContext(ctx)
	switch {
	case r.fsys.IsFile(tok):
		r.m.Add(tok)
	case r.fsys.Exists(tok):
		files, err := r.fsys.Walk(tok)
		if err != nil {
			return fmt.Errorf("walking %q: %w", tok, err)
		}
		logger.Debug("Folder expanded.", "path", tok, "files", len(files))
		r.m.AddAll(files)
	default:
		logger.Debug("Skipping path that names no file or folder.", "path", tok)
	}
	return nil
}

// enterDrop transitions to DROP. The transition is one-way.
func (r *resolver) enterDrop(ctx context.Context) error {
	if len(r.m.Files) == 0 {
		return fmt.Errorf("%s requires at least one resolved input file", tokenDrop)
	}
	ctxlog.FromContext(ctx).Debug("Entering DROP state.")
	r.st = stateDrop
	return nil
}

// enterMerge transitions to (or re-enters) MERGE, targeting the last
// primary. Re-entry resets the target's source list.
func (r *resolver) enterMerge(ctx context.Context) error {
	target, ok := r.m.Last()
	if !ok {
		return fmt.Errorf("%s requires at least one resolved input file", tokenMerge)
	}
	ctxlog.FromContext(ctx).Debug("Entering MERGE state.", "target", target)
	r.st = stateMerge
	r.target = target
	r.m.OpenMerge(target)
	return nil
}

// remove handles one token in DROP state: "*name" removes every primary
// whose base name is name (zero matches allowed); anything else is an
// exact-path removal and must match.
func (r *resolver) remove(ctx context.Context, tok string) error {
	logger := ctxlog.FromContext(ctx)
	if name, ok := strings.CutPrefix(tok, "*"); ok {
		removed := r.m.RemoveByBase(name)
		logger.Debug("Wildcard removal applied.", "base", name, "removed", removed)
		return nil
	}
	if !r.m.Remove(tok) {
		return &RemovalError{Path: tok}
	}
	logger.Debug("File removed.", "path", tok)
	return nil
}
