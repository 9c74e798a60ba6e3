// Package jfunk is a constrained test-data generator: it turns a small,
// regex-like expression plus an alphabet definition into strings that satisfy
// the expression, or that break it on purpose for negative and boundary tests.
//
// What is in the box?
//
//	• Length algebra: closed [min,max] ranges with merge, saturating sum, intersect
//	• Alphabets: single-byte code pages split into allowed and forbidden characters
//	• Character pools: per-atom allowed/forbidden partitions of an alphabet
//	• Patterns: compile once, generate by length or per-atom sizes, negate inputs
//	• Catalogs: named alphabets and fields in YAML, hot reload on change
//	• Batches: parallel, reproducible generation of many values
//
// Why use it?
//
//   - Deterministic – every random choice flows through an injected, seedable source
//   - Honest degradation – impossible requests shrink the output and emit a Diagnostic
//   - Concurrent-friendly – alphabets and pools are read-only after construction
//
// Layout:
//
//	lenrange/   — Range value type and its algebra
//	alphabet/   — Alphabet, class Matcher, Registry of named alphabets
//	charpool/   — Pool of one atom: allowed and forbidden choosers
//	pattern/    — Compile, Generate*, Negate, Diagnostics, options
//	catalog/    — YAML definitions, LoadFS (doublestar globs), Build, Watch
//	batch/      — errgroup based bulk generation and negation
//	cmd/patgen/ — command line front end (generate, negate, explain, boundaries)
//
// Quick example:
//
//	a, _ := alphabet.New("US-ASCII", `[A-Za-z0-9-]`, `[^A-Za-z0-9-]`)
//	p, _ := pattern.Compile(`[A-Z]{3}-[0-9]{4}`, a, pattern.NewSource(42))
//	ok, _ := p.GenerateLength(8, pattern.BadnessNone) // "KQZ-5521"
//	bad, _ := p.Negate(ok, pattern.BadnessRandom)     // "K#Z-55?1"
//
// See the examples/ directory for end-to-end scenarios.
package jfunk
