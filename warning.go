package textflow

import "strings"

// Warning describes a non-fatal issue encountered during processing, such as
// skipped malformed records or a recovered pipeline failure. Warnings are
// diagnostics only; they never indicate missing output beyond what the
// message states.
type Warning struct {
	// Stage names the pipeline stage that produced the warning.
	Stage string

	// Message describes the issue.
	Message string
}

// String returns a human-readable form of the warning.
func (w Warning) String() string {
	return w.Stage + ": " + w.Message
}

// FormatWarnings joins warnings into a single human-readable string suitable
// for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}

	parts := make([]string, 0, len(warnings))
	for _, w := range warnings {
		parts = append(parts, w.String())
	}
	return strings.Join(parts, "; ")
}
