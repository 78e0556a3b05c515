package interp

import (
	"fmt"
	"strconv"
	"strings"
)

// flagSpec is one entry of the closed flag vocabulary: how many tokens the
// flag occupies (1 for bare switches, 2 for flags taking a value) and the
// update it applies to the options record.
type flagSpec struct {
	arity int
	apply func(o *Options, value string) error
}

// flagVocab is the whole optional-flag vocabulary. Adding a flag means
// adding an entry here; nothing else dispatches on flag spellings.
var flagVocab = map[string]flagSpec{
	"-d": {2, func(o *Options, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("row count %q is not an integer", v)
		}
		o.IgnoreRows = n
		return nil
	}},
	"-db": {2, func(o *Options, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("row count %q is not an integer", v)
		}
		o.DropFooter = n
		return nil
	}},
	"-cls": {2, func(o *Options, v string) error {
		o.CustomClasses = append(o.CustomClasses, v)
		return nil
	}},
	"-clsd": {2, func(o *Options, v string) error {
		o.ClassDrop = true
		o.CustomClasses = strings.Split(v, ",")
		return nil
	}},
	"--delay_write": {1, func(o *Options, _ string) error {
		o.DelayWrite = true
		return nil
	}},
	"--drop_col": {2, func(o *Options, v string) error {
		cols, err := parseIntList(v)
		if err != nil {
			return err
		}
		o.DropColumns = cols
		return nil
	}},
	"--merge_cls": {2, func(o *Options, v string) error {
		cols, err := parseIntList(v)
		if err != nil {
			return err
		}
		o.MergeColumns = cols
		return nil
	}},
	"--infer_nn": {1, func(o *Options, _ string) error {
		o.InferNonNumeric = true
		return nil
	}},
}

// processFlags greedily consumes recognized flags from the front of tokens
// and returns how many tokens it consumed. The scan stops at the first
// token outside the vocabulary (or at end of stream); flags appearing after
// a file path are never recognized.
func processFlags(tokens []string) (int, Options, error) {
	var opts Options
	i := 0
	for i < len(tokens) {
		spec, ok := flagVocab[tokens[i]]
		if !ok {
			break
		}
		value := ""
		if spec.arity == 2 {
			if i+1 >= len(tokens) {
				return 0, Options{}, &UsageError{Message: fmt.Sprintf("flag %s requires a value", tokens[i])}
			}
			value = tokens[i+1]
		}
		if err := spec.apply(&opts, value); err != nil {
			return 0, Options{}, &UsageError{Message: fmt.Sprintf("flag %s: %v", tokens[i], err)}
		}
		i += spec.arity
	}
	return i, opts, nil
}

// parseIntList parses a comma-separated integer list. The empty string is
// the "none" sentinel and yields nil.
func parseIntList(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	cols := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("column index %q is not an integer", p)
		}
		cols = append(cols, n)
	}
	return cols, nil
}
