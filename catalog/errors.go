// SPDX-License-Identifier: MIT
// Package: catalog
//
// errors.go — sentinel errors of the definition loader.
//
// Every returned error wraps one of these with the file, alphabet or field
// name that caused it; callers branch with errors.Is.

package catalog

import "errors"

// ErrDuplicate indicates an alphabet or field defined more than once across
// the loaded files.
var ErrDuplicate = errors.New("catalog: duplicate definition")

// ErrInvalidDefinition indicates an alphabet or field entry with missing or
// conflicting keys.
var ErrInvalidDefinition = errors.New("catalog: invalid definition")

// ErrUnknownAlphabet indicates a field or inverse referring to an alphabet that
// is not defined.
var ErrUnknownAlphabet = errors.New("catalog: unknown alphabet")

// ErrUnknownField indicates a lookup of an undefined field.
var ErrUnknownField = errors.New("catalog: unknown field")

// ErrInverseCycle indicates alphabets whose inverseOf references form a loop.
var ErrInverseCycle = errors.New("catalog: inverse alphabets form a cycle")

// ErrNoFiles indicates that a glob matched no definition file.
var ErrNoFiles = errors.New("catalog: no definition files matched")

// ErrNilDefinitions indicates Build was called without definitions.
var ErrNilDefinitions = errors.New("catalog: definitions are nil")
