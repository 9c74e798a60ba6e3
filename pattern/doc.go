// Package pattern compiles a restricted, regex-like expression against an
// alphabet and synthesizes strings that satisfy it or, for negative testing,
// deliberately violate it.
//
// Grammar:
//
//	pattern    := atom*
//	atom       := charexpr quantifier?
//	charexpr   := literal | '\' any | '[' class-body ']' | '\p{' name '}' | '\P{' name '}'
//	quantifier := '?' | '+' | '*' | '{' INT (',' INT?)? '}'
//
// Alternation groups (a|b|c) are a pre-processing step: each group is replaced
// by one randomly chosen branch when the pattern is compiled and stays fixed for
// the lifetime of the compiled Pattern. Other parentheses are dropped, so a
// quantifier after a group binds to the group's last atom only.
//
// Every atom owns a charpool.Pool (allowed and forbidden characters) and a
// lenrange.Range. Generation is controlled by badness:
//
//	BadnessNone   (0)  only allowed characters
//	n > 0              exactly n forbidden characters per atom (clamped)
//	BadnessRandom (-1) a random partial count per atom
//	BadnessAll    (-2) only forbidden characters
//
// Unsatisfiable requests never fail: the affected atom degrades (empty or
// unmodified output) and a Diagnostic is logged and passed to the hook
// installed with WithDiagnostics.
//
// Randomness is always injected through a Source. Two Patterns compiled and
// used with identically seeded sources produce identical output.
//
// Example:
//
//	a, _ := alphabet.New("US-ASCII", `[A-Za-z0-9-]`, `[^A-Za-z0-9-]`)
//	p, _ := pattern.Compile(`[A-Z]{3}-[0-9]{4}`, a, pattern.NewSource(1))
//	s, _ := p.GenerateLength(8, pattern.BadnessNone) // e.g. "QFX-0193"
package pattern
