package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// usageRows is the fixed usage table: one row per positional or flag.
var usageRows = [][2]string{
	{"-H", "Optional. Print this usage statement; all other arguments are ignored."},
	{"include_header", "Integer. 1 adds a header if the dataset lacks one, 0 drops an existing header. Applies to the first input file only."},
	{"class_col", "Integer index of the classification column, or '' for none."},
	{"ignore_cols", "Comma-separated column indexes to ignore, or '' for none. Ex. '0,1,2'."},
	{"-d rows", "Optional. Drop the given number of rows from the beginning of each file."},
	{"-db rows", "Optional. Drop the given number of rows from the end of each file."},
	{"-cls name", "Optional, repeatable. Custom class name applied to all rows; repeats accumulate."},
	{"-clsd drop_chars", "Optional. Derive the class from the file name with the comma-separated characters dropped. A leading/trailing * drops everything before/after drop_chars, inclusive. Overrides accumulated -cls names."},
	{"--delay_write", "Optional. Defer writing converted output."},
	{"--drop_col c,c", "Optional. Comma-separated column indexes to drop entirely."},
	{"--merge_cls c,c", "Optional. Comma-separated class-column indexes to merge."},
	{"--infer_nn", "Optional. Infer non-numeric values downstream."},
	{"path...", "File or folder paths to convert; folders are walked recursively. Paths that name nothing are ignored."},
	{"-rm path|*name", "Optional. Remove previously resolved files, by exact path or by *base-name. Everything after -rm is a removal."},
	{"--merge path...", "Optional. Attach the following paths as merge sources of the last resolved file."},
}

// Usage renders the fixed usage table. Pure function of no input; it always
// produces the same text.
func Usage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  tabconv [-H] <include_header> <class_col|''> <ignore_cols|''>")
	fmt.Fprintln(w, "          [-d rows] [-db rows] [-cls name]... [-clsd drop_chars] [--delay_write]")
	fmt.Fprintln(w, "          [--drop_col c,c,...] [--merge_cls c,c,...] [--infer_nn]")
	fmt.Fprintln(w, "          <path>... [-rm <path|*name>]... [--merge <path>...]...")
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, row := range usageRows {
		fmt.Fprintf(tw, "  %s\t%s\n", row[0], row[1])
	}
	tw.Flush()
}
