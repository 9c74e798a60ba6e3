package pattern

// Badness values accepted by the generation methods. Any value ≥ 0 replaces
// exactly that many characters.
const (
	BadnessNone   = 0  // only allowed characters
	BadnessRandom = -1 // a random, partial number of forbidden characters
	BadnessAll    = -2 // only forbidden characters
)

// Retry and attempt caps. They bound best-effort heuristics; reaching a cap
// degrades the output and is logged, it never fails the call.
const (
	// DefaultSpaceRetries caps redraws of a leading or trailing allowed space.
	DefaultSpaceRetries = 10

	// DefaultEdgeRetries caps redraws of a forbidden space at the first or last
	// position of an atom or negated string.
	DefaultEdgeRetries = 100

	// DefaultDistributeAttempts caps the round-robin steps used to spread an
	// input length over atoms before negation.
	DefaultDistributeAttempts = 1000
)

// Method names used as error prefixes.
const (
	methodCompile      = "Compile"
	methodGenerate     = "Generate"
	methodGenerateLen  = "GenerateLength"
	methodGenerateSize = "GenerateSizes"
	methodNegate       = "Negate"
)
