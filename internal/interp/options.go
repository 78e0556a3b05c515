package interp

// Options is the record populated by the optional-flag scan. The zero
// value is the full set of defaults.
type Options struct {
	// IgnoreRows is the number of leading rows to exclude (-d).
	IgnoreRows int
	// DropFooter is the number of trailing rows to exclude (-db).
	DropFooter int
	// ClassDrop marks that class labels are derived from file names (-clsd).
	ClassDrop bool
	// CustomClasses holds class names accumulated by -cls, or the
	// comma-split drop spec set by -clsd (which overwrites, not appends).
	CustomClasses []string
	// DelayWrite asks the transformer to defer output persistence.
	DelayWrite bool
	// DropColumns and MergeColumns keep the user's parse order.
	DropColumns  []int
	MergeColumns []int
	// InferNonNumeric enables non-numeric value inference downstream.
	InferNonNumeric bool
}
