package logq

import (
	"bytes"
	"fmt"
)

const (
	// timestampLayout is the fixed-width layout stamped on every entry.
	timestampLayout = "2006-01-02 15:04:05.000"

	// sentinelLine marks an orderly shutdown; it is the last line of
	// every properly finalized log file.
	sentinelLine = "END OF LOG FILE"

	// exceptionBorder frames the detail block of an exception entry.
	exceptionBorder = "----------------------------------------"
)

// appendEntry renders e into buf. Debug and warning entries occupy a
// single line; exception entries get a header line followed by a
// bordered block with the error message, the origin goroutine and the
// full diagnostic.
func appendEntry(buf *bytes.Buffer, e Entry) {
	ts := e.Timestamp.Format(timestampLayout)
	if e.Kind != KindException {
		fmt.Fprintf(buf, "%d -- %s -- %s -- %s\n", e.Sequence, e.Kind, e.Message, ts)
		return
	}

	var info ErrorInfo
	if e.Err != nil {
		info = *e.Err
	}
	fmt.Fprintf(buf, "%d -- %s -- %s%s\n", e.Sequence, e.Kind, e.Message, ts)
	buf.WriteString(exceptionBorder)
	buf.WriteByte('\n')
	fmt.Fprintf(buf, "Message: %s\n", info.Message)
	fmt.Fprintf(buf, "Goroutine: %d\n", e.GoroutineID)
	fmt.Fprintf(buf, "Diagnostic: %s\n", info.Diagnostic)
	buf.WriteString(exceptionBorder)
	buf.WriteByte('\n')
}
