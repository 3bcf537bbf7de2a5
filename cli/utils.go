package cli

import (
	"fmt"
	"io"
)

// printf prints a message with a newline to the writer.
func printf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, format+"\n", a...)
}
