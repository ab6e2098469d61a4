package svgscene

import "fmt"

// DiagnosticKind classifies a recoverable compile problem.
type DiagnosticKind uint8

const (
	// DiagStructural marks cycles and malformed references. The
	// offending subtree contributes nothing to the output.
	DiagStructural DiagnosticKind = iota
	// DiagResource marks missing or undecodable referenced resources.
	// Only the affected paint or node is skipped.
	DiagResource
)

// String returns a human-readable name for the kind.
func (k DiagnosticKind) String() string {
	switch k {
	case DiagStructural:
		return "structural"
	case DiagResource:
		return "resource"
	default:
		return "unknown"
	}
}

// Diagnostic records one recoverable per-node problem encountered
// during compilation. Diagnostics are data returned beside the
// directive stream, not errors thrown across the API boundary; the
// wrapped sentinel is reachable through errors.Is on Err.
type Diagnostic struct {
	// Node is a slash-separated path of node kinds and child indices
	// locating the problem, e.g. "root/group[2]/image[0]".
	Node string

	Kind DiagnosticKind

	// Err wraps one of the package sentinel errors with context.
	Err error
}

// String formats the diagnostic for logs.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s: %v", d.Kind, d.Node, d.Err)
}
