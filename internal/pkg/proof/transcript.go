package proof

import (
	"fmt"
	"strings"
)

// FormatTranscript renders a Result's transcript the way a driver would
// print it for debugging (spec §4.7: "not user-facing", so this is purely
// a convenience for cmd/truejproof, never consulted by the pass itself).
func FormatTranscript(unitName string, result Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "; transcript for %s\n", unitName)
	b.WriteString(result.Transcript)
	if !strings.HasSuffix(result.Transcript, "\n") {
		b.WriteByte('\n')
	}
	return b.String()
}
