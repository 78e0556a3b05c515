// Package descriptor defines the typed records the interpreter hands to the
// downstream record transformer. The transformer's constructor contract is
// exactly the exported fields of these types; how it reads, converts or
// writes files is not this program's concern.
package descriptor

// Input describes one primary file to convert, fully configured. It is
// assembled once after resolution completes and never mutated afterwards.
type Input struct {
	Path string `json:"path"`
	// Ext is the file-extension tag, including the leading dot. Empty when
	// no extension could be derived from the path.
	Ext string `json:"ext,omitempty"`
	// ClassCol is the index of the classification column, nil when the user
	// passed the empty "no class column" sentinel.
	ClassCol        *int     `json:"class_col,omitempty"`
	IgnoreCols      []int    `json:"ignore_cols,omitempty"`
	DropCols        []int    `json:"drop_cols,omitempty"`
	IgnoreRows      int      `json:"ignore_rows,omitempty"`
	DropFooter      int      `json:"drop_footer,omitempty"`
	IncludeHeader   bool     `json:"include_header"`
	ClassDrop       bool     `json:"class_drop,omitempty"`
	CustomClasses   []string `json:"custom_classes,omitempty"`
	MergeCols       []int    `json:"merge_cols,omitempty"`
	InferNonNumeric bool     `json:"infer_non_numeric,omitempty"`
}

// ClassColIndex maps the nil "no class column" sentinel to -1, the value
// the transformer tuple expects.
func (d Input) ClassColIndex() int {
	if d.ClassCol == nil {
		return -1
	}
	return *d.ClassCol
}

// Merge describes a merge-source file. Merge sources are read raw and
// folded into their target's already-configured transformation, so the
// path is the only field; every other position of the transformer tuple
// stays unset.
type Merge struct {
	Path string `json:"path"`
}
