// SPDX-License-Identifier: MIT

package bqm

import (
	"fmt"
	"io"
	"sort"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// linearTerm is one wire-form linear bias.
type linearTerm struct {
	V    int     `json:"v" yaml:"v"`
	Bias float64 `json:"bias" yaml:"bias"`
}

// quadraticTerm is one wire-form quadratic bias with U < V.
type quadraticTerm struct {
	U    int     `json:"u" yaml:"u"`
	V    int     `json:"v" yaml:"v"`
	Bias float64 `json:"bias" yaml:"bias"`
}

// wire is the serialised form of a BQM. Terms are sorted so that equal
// models encode to identical bytes.
type wire struct {
	Vartype   Vartype         `json:"vartype" yaml:"vartype"`
	NumVars   int             `json:"num_variables" yaml:"num_variables"`
	Linear    []linearTerm    `json:"linear" yaml:"linear"`
	Quadratic []quadraticTerm `json:"quadratic" yaml:"quadratic"`
	Offset    float64         `json:"offset" yaml:"offset"`
}

// toWire sorts the maps into the wire form. Zero linear biases are kept so
// that the variable set survives a round trip.
func (b *BQM) toWire() wire {
	w := wire{
		Vartype:   b.Vartype,
		NumVars:   b.NumVars(),
		Linear:    make([]linearTerm, 0, len(b.Linear)),
		Quadratic: make([]quadraticTerm, 0, len(b.Quadratic)),
		Offset:    b.Offset,
	}
	for v, c := range b.Linear {
		w.Linear = append(w.Linear, linearTerm{V: v, Bias: c})
	}
	sort.Slice(w.Linear, func(i, j int) bool { return w.Linear[i].V < w.Linear[j].V })
	for p, c := range b.Quadratic {
		w.Quadratic = append(w.Quadratic, quadraticTerm{U: p.I, V: p.J, Bias: c})
	}
	sort.Slice(w.Quadratic, func(i, j int) bool {
		if w.Quadratic[i].U != w.Quadratic[j].U {
			return w.Quadratic[i].U < w.Quadratic[j].U
		}
		return w.Quadratic[i].V < w.Quadratic[j].V
	})

	return w
}

// fromWire rebuilds b from w, accumulating repeated terms.
func (b *BQM) fromWire(w wire) error {
	out := New(w.Vartype)
	out.Offset = w.Offset
	for _, t := range w.Linear {
		if err := out.AddLinear(t.V, t.Bias); err != nil {
			return fmt.Errorf("bqm: %w", err)
		}
	}
	for _, t := range w.Quadratic {
		if err := out.AddQuadratic(t.U, t.V, t.Bias); err != nil {
			return fmt.Errorf("bqm: %w", err)
		}
	}
	*b = *out

	return nil
}

// MarshalJSON implements json.Marshaler.
func (b *BQM) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.toWire())
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *BQM) UnmarshalJSON(data []byte) error {
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("bqm: %w", err)
	}

	return b.fromWire(w)
}

// MarshalYAML implements yaml.Marshaler.
func (b *BQM) MarshalYAML() (interface{}, error) {
	return b.toWire(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *BQM) UnmarshalYAML(value *yaml.Node) error {
	var w wire
	if err := value.Decode(&w); err != nil {
		return fmt.Errorf("bqm: %w", err)
	}

	return b.fromWire(w)
}

// WriteJSON writes b as indented JSON.
func (b *BQM) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(b)
}

// WriteYAML writes b as YAML.
func (b *BQM) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("bqm: %w", err)
	}

	return enc.Close()
}

// ReadJSON decodes one BQM from r.
func ReadJSON(r io.Reader) (*BQM, error) {
	b := New(Binary)
	if err := json.NewDecoder(r).Decode(b); err != nil {
		return nil, err
	}

	return b, nil
}

// ReadYAML decodes one BQM from r.
func ReadYAML(r io.Reader) (*BQM, error) {
	b := New(Binary)
	if err := yaml.NewDecoder(r).Decode(b); err != nil {
		return nil, err
	}

	return b, nil
}
