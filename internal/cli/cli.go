package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tabconv/internal/ctxlog"
	"tabconv/internal/fsutil"
	"tabconv/internal/interp"
	"tabconv/internal/resolve"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse runs one interpretation over args (program name already stripped)
// against the host filesystem. Errors come back as *ExitError carrying the
// exit protocol: usage errors print a message and the usage text to errW
// and exit 2; a failed exact removal exits 1 with no usage text.
func Parse(ctx context.Context, args []string, errW io.Writer) (*interp.Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Interpretation started.", "args", len(args))

	result, err := interp.Interpret(ctx, args, fsutil.OSFS{})
	if err != nil {
		var removalErr *resolve.RemovalError
		if errors.As(err, &removalErr) {
			// Abrupt by contract: no usage text on this path.
			return nil, &ExitError{Code: 1, Message: fmt.Sprintf("Error: %v", err)}
		}
		fmt.Fprintf(errW, "Error: %v\n", err)
		Usage(errW)
		return nil, &ExitError{Code: 2, Message: fmt.Sprintf("Error: %v", err)}
	}

	logger.Debug("Interpretation finished successfully.",
		"files", len(result.Descriptors), "delay_write", result.DelayWrite)
	return result, nil
}
