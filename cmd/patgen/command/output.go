package command

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	formatText    = "text"
	formatJSON    = "json"
	formatMsgpack = "msgpack"
)

// Value is one generated or negated string as written by the json and msgpack
// formats.
type Value struct {
	Index  int    `json:"index" msgpack:"index"`
	Input  string `json:"input,omitempty" msgpack:"input,omitempty"`
	Value  string `json:"value" msgpack:"value"`
	Length int    `json:"length" msgpack:"length"`
}

func newValues(values, inputs []string) []Value {
	out := make([]Value, len(values))
	for i, v := range values {
		out[i] = Value{Index: i, Value: v, Length: len([]rune(v))}
		if i < len(inputs) {
			out[i].Input = inputs[i]
		}
	}

	return out
}

// writeOutput encodes payload in format, optionally lz4 compressed. text is
// rendered by the text callback, the other formats encode payload directly.
func writeOutput(w io.Writer, format string, compress bool, payload any, text func(io.Writer) error) (err error) {
	if compress {
		zw := lz4.NewWriter(w)
		defer func() {
			if cerr := zw.Close(); err == nil {
				err = cerr
			}
		}()
		w = zw
	}

	switch format {
	case formatText:
		return text(w)
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case formatMsgpack:
		return msgpack.NewEncoder(w).Encode(payload)
	default:
		return fmt.Errorf("invalid format %q: expected %s, %s or %s", format, formatText, formatJSON, formatMsgpack)
	}
}

func writeLines(values []string) func(io.Writer) error {
	return func(w io.Writer) error {
		for _, v := range values {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
		return nil
	}
}

func (a *app) emit(w io.Writer, values, inputs []string) error {
	return writeOutput(w, a.v.GetString(flagFormat), a.v.GetBool(flagLZ4), newValues(values, inputs), writeLines(values))
}
