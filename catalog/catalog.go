// SPDX-License-Identifier: MIT
// Package: catalog
//
// catalog.go — turning Definitions into ready alphabets and validated fields.
//
// Build order:
//  1. Direct alphabets (encoding, good, bad) are constructed.
//  2. Inverse alphabets are resolved in rounds; a round that resolves nothing
//     while entries remain means the inverseOf references loop.
//  3. Every field is compiled once against its alphabet so a broken expression
//     fails the build instead of the first generation.

package catalog

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/mgm-tp/jfunk-sub000/alphabet"
	"github.com/mgm-tp/jfunk-sub000/pattern"
)

// Field is a named, validated generator definition.
type Field struct {
	Name        string
	Alphabet    string
	Pattern     string
	Description string

	alpha *alphabet.Alphabet
}

// Catalog holds built alphabets and fields. It is immutable and safe for
// concurrent use.
type Catalog struct {
	reg    *alphabet.Registry
	fields map[string]Field
	logger *slog.Logger
}

// Option customizes Build.
type Option func(*Catalog)

// WithLogger sets the logger used by Build and handed to compiled patterns.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("catalog: WithLogger(nil)")
	}
	return func(c *Catalog) {
		c.logger = l
	}
}

// Build constructs every alphabet and validates every field of defs.
func Build(defs *Definitions, opts ...Option) (*Catalog, error) {
	if defs == nil {
		return nil, fmt.Errorf("Build: %w", ErrNilDefinitions)
	}
	c := &Catalog{
		reg:    alphabet.NewRegistry(),
		fields: make(map[string]Field, len(defs.Fields)),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.buildAlphabets(defs.Alphabets); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	if err := c.buildFields(defs.Fields); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	c.logger.Debug("catalog built",
		slog.Int("alphabets", c.reg.Len()),
		slog.Int("fields", len(c.fields)),
	)

	return c, nil
}

func (c *Catalog) buildAlphabets(defs map[string]AlphabetDef) error {
	built := make(map[string]*alphabet.Alphabet, len(defs))
	var pending []string
	for _, name := range slices.Sorted(maps.Keys(defs)) {
		d := defs[name]
		if d.InverseOf != "" {
			if _, ok := defs[d.InverseOf]; !ok {
				return fmt.Errorf("alphabet %q: inverseOf %q: %w", name, d.InverseOf, ErrUnknownAlphabet)
			}
			pending = append(pending, name)
			continue
		}
		a, err := alphabet.New(d.Encoding, d.Good, d.Bad)
		if err != nil {
			return fmt.Errorf("alphabet %q: %w", name, err)
		}
		built[name] = a
	}

	for len(pending) > 0 {
		var next []string
		for _, name := range pending {
			base, ok := built[defs[name].InverseOf]
			if !ok {
				next = append(next, name)
				continue
			}
			built[name] = base.Inverse()
		}
		if len(next) == len(pending) {
			return fmt.Errorf("alphabets %v: %w", next, ErrInverseCycle)
		}
		pending = next
	}

	return c.reg.Replace(built)
}

func (c *Catalog) buildFields(defs map[string]FieldDef) error {
	for _, name := range slices.Sorted(maps.Keys(defs)) {
		d := defs[name]
		a, err := c.reg.Lookup(d.Alphabet)
		if err != nil {
			return fmt.Errorf("field %q: alphabet %q: %w", name, d.Alphabet, ErrUnknownAlphabet)
		}
		if _, err := pattern.Compile(d.Pattern, a, pattern.NewSource(0), pattern.WithLogger(c.logger)); err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
		c.fields[name] = Field{
			Name:        name,
			Alphabet:    d.Alphabet,
			Pattern:     d.Pattern,
			Description: d.Description,
			alpha:       a,
		}
	}

	return nil
}

// Field returns the named field.
func (c *Catalog) Field(name string) (Field, error) {
	f, ok := c.fields[name]
	if !ok {
		return Field{}, fmt.Errorf("Field(%q): %w", name, ErrUnknownField)
	}

	return f, nil
}

// Compile compiles the named field with src. The catalog logger is applied
// before opts, so opts may override it.
func (c *Catalog) Compile(field string, src pattern.Source, opts ...pattern.Option) (*pattern.Pattern, error) {
	f, err := c.Field(field)
	if err != nil {
		return nil, fmt.Errorf("Compile: %w", err)
	}

	return pattern.Compile(f.Pattern, f.alpha, src, append([]pattern.Option{pattern.WithLogger(c.logger)}, opts...)...)
}

// Registry returns the registry holding the built alphabets.
func (c *Catalog) Registry() *alphabet.Registry { return c.reg }

// Fields returns the field names in sorted order.
func (c *Catalog) Fields() []string {
	return slices.Sorted(maps.Keys(c.fields))
}

// AlphabetOf returns the alphabet bound to f.
func (f Field) AlphabetOf() *alphabet.Alphabet { return f.alpha }
