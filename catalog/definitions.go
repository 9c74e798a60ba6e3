package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// AlphabetDef defines one alphabet. Either Encoding, Good and Bad are set, or
// InverseOf names the alphabet to invert.
type AlphabetDef struct {
	Encoding  string `yaml:"encoding,omitempty"`
	Good      string `yaml:"good,omitempty"`
	Bad       string `yaml:"bad,omitempty"`
	InverseOf string `yaml:"inverseOf,omitempty"`
}

func (d AlphabetDef) validate(name string) error {
	direct := d.Encoding != "" || d.Good != "" || d.Bad != ""
	switch {
	case direct && d.InverseOf != "":
		return fmt.Errorf("alphabet %q: inverseOf excludes encoding, good and bad: %w", name, ErrInvalidDefinition)
	case d.InverseOf != "":
		return nil
	case d.Encoding == "" || d.Good == "" || d.Bad == "":
		return fmt.Errorf("alphabet %q: encoding, good and bad are required: %w", name, ErrInvalidDefinition)
	}

	return nil
}

// FieldDef binds a generator expression to an alphabet.
type FieldDef struct {
	Alphabet    string `yaml:"alphabet"`
	Pattern     string `yaml:"pattern"`
	Description string `yaml:"description,omitempty"`
}

func (d FieldDef) validate(name string) error {
	if d.Alphabet == "" {
		return fmt.Errorf("field %q: alphabet is required: %w", name, ErrInvalidDefinition)
	}

	return nil
}

// Definitions is the decoded content of one or more definition files.
type Definitions struct {
	Alphabets map[string]AlphabetDef `yaml:"alphabets"`
	Fields    map[string]FieldDef    `yaml:"fields"`

	// Digest is set by LoadFS; zero for parsed or hand-built definitions.
	Digest uint64 `yaml:"-"`
}

// Parse decodes one YAML document. Unknown keys are rejected. An empty
// document yields empty definitions.
func Parse(data []byte) (*Definitions, error) {
	defs := &Definitions{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(defs); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("Parse: %w", err)
	}
	if defs.Alphabets == nil {
		defs.Alphabets = make(map[string]AlphabetDef)
	}
	if defs.Fields == nil {
		defs.Fields = make(map[string]FieldDef)
	}

	for _, name := range slices.Sorted(maps.Keys(defs.Alphabets)) {
		if err := defs.Alphabets[name].validate(name); err != nil {
			return nil, fmt.Errorf("Parse: %w", err)
		}
	}
	for _, name := range slices.Sorted(maps.Keys(defs.Fields)) {
		if err := defs.Fields[name].validate(name); err != nil {
			return nil, fmt.Errorf("Parse: %w", err)
		}
	}

	return defs, nil
}

// Merge adds the entries of o. A name already present in d is ErrDuplicate
// and leaves d unchanged.
func (d *Definitions) Merge(o *Definitions) error {
	for name := range o.Alphabets {
		if _, ok := d.Alphabets[name]; ok {
			return fmt.Errorf("Merge: alphabet %q: %w", name, ErrDuplicate)
		}
	}
	for name := range o.Fields {
		if _, ok := d.Fields[name]; ok {
			return fmt.Errorf("Merge: field %q: %w", name, ErrDuplicate)
		}
	}
	if d.Alphabets == nil {
		d.Alphabets = make(map[string]AlphabetDef, len(o.Alphabets))
	}
	if d.Fields == nil {
		d.Fields = make(map[string]FieldDef, len(o.Fields))
	}
	maps.Copy(d.Alphabets, o.Alphabets)
	maps.Copy(d.Fields, o.Fields)

	return nil
}

// Marshal encodes d back to YAML.
func (d *Definitions) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}
