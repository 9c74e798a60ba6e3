package pattern

// DiagnosticKind classifies a non-fatal generation problem.
type DiagnosticKind int

const (
	// NoAllowedCharacters: an atom's allowed pool is empty, so it contributes
	// nothing unless every position is forbidden.
	NoAllowedCharacters DiagnosticKind = iota + 1

	// NoForbiddenCharacters: forbidden characters were requested from an atom
	// whose forbidden pool is empty.
	NoForbiddenCharacters

	// EdgeSpaceRetained: the edge retry cap was reached; the position kept its
	// previous character instead of a forbidden space.
	EdgeSpaceRetained

	// NegationImpossible: no atom can produce a forbidden character, Negate
	// returned its input unchanged.
	NegationImpossible
)

func (k DiagnosticKind) String() string {
	switch k {
	case NoAllowedCharacters:
		return "no-allowed-characters"
	case NoForbiddenCharacters:
		return "no-forbidden-characters"
	case EdgeSpaceRetained:
		return "edge-space-retained"
	case NegationImpossible:
		return "negation-impossible"
	default:
		return "unknown"
	}
}

// Diagnostic is emitted whenever a constraint cannot be satisfied and the
// generator degrades instead of failing.
type Diagnostic struct {
	Kind       DiagnosticKind
	Atom       int    // atom index, -1 for pattern-level diagnostics
	Expression string // atom expression, or the resolved pattern
	Message    string
}
