// SPDX-License-Identifier: MIT

package bqm

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/qubox/model"
)

// Sentinel errors returned by the bqm package.
var (
	// ErrInvalidVartype indicates a variable type other than SPIN or BINARY.
	ErrInvalidVartype = errors.New("bqm: invalid vartype, want 'SPIN' or 'BINARY'")

	// ErrSampleLength indicates a sample shorter than the variable count.
	ErrSampleLength = errors.New("bqm: sample does not cover every variable")

	// ErrSampleDomain indicates a sample value outside the vartype domain.
	ErrSampleDomain = errors.New("bqm: sample value outside the vartype domain")

	// ErrBadTerm indicates a negative index or a quadratic term with u == v.
	ErrBadTerm = errors.New("bqm: malformed term")
)

// Vartype is the variable domain of a BQM.
type Vartype int

const (
	// Binary variables take values in {0,1}.
	Binary Vartype = iota

	// Spin variables take values in {-1,+1}.
	Spin
)

// String returns "BINARY" or "SPIN".
func (v Vartype) String() string {
	switch v {
	case Binary:
		return "BINARY"
	case Spin:
		return "SPIN"
	default:
		return fmt.Sprintf("Vartype(%d)", int(v))
	}
}

// ParseVartype maps "BINARY" / "SPIN" (case-insensitive) to a Vartype.
func ParseVartype(s string) (Vartype, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BINARY":
		return Binary, nil
	case "SPIN":
		return Spin, nil
	default:
		return Binary, fmt.Errorf("%q: %w", s, ErrInvalidVartype)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (v Vartype) MarshalText() ([]byte, error) {
	if v != Binary && v != Spin {
		return nil, fmt.Errorf("%s: %w", v, ErrInvalidVartype)
	}

	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Vartype) UnmarshalText(b []byte) error {
	p, err := ParseVartype(string(b))
	if err != nil {
		return err
	}
	*v = p

	return nil
}

// VartypeOf maps a model representation to its variable type.
func VartypeOf(rep model.Representation) (Vartype, error) {
	switch rep {
	case model.QUBO:
		return Binary, nil
	case model.Ising:
		return Spin, nil
	default:
		return Binary, fmt.Errorf("bqm: %w", model.ErrInvalidRepresentation)
	}
}

// BQM is a sparse binary quadratic model.
type BQM struct {
	Vartype   Vartype
	Linear    map[int]float64
	Quadratic map[model.Pair]float64
	Offset    float64
}

// New returns an empty BQM of the given type.
func New(vt Vartype) *BQM {
	return &BQM{
		Vartype:   vt,
		Linear:    make(map[int]float64),
		Quadratic: make(map[model.Pair]float64),
	}
}

// FromModel extracts group g of m: every variable gets a linear entry, every
// non-zero pair a quadratic one, and the group offset is carried along.
//
// Errors:
//   - model.ErrNilModel, model.ErrInvalidGroup.
func FromModel(m *model.Model, g model.Group) (*BQM, error) {
	if m == nil {
		return nil, fmt.Errorf("bqm: %w", model.ErrNilModel)
	}
	vt, err := VartypeOf(m.Representation())
	if err != nil {
		return nil, err
	}
	lin, quad, err := m.LinearQuadratic(g)
	if err != nil {
		return nil, fmt.Errorf("bqm: %w", err)
	}
	off, err := m.Offset(g)
	if err != nil {
		return nil, fmt.Errorf("bqm: %w", err)
	}

	return &BQM{Vartype: vt, Linear: lin, Quadratic: quad, Offset: off}, nil
}

// AddLinear accumulates bias on variable v.
func (b *BQM) AddLinear(v int, bias float64) error {
	if v < 0 {
		return fmt.Errorf("linear %d: %w", v, ErrBadTerm)
	}
	b.Linear[v] += bias

	return nil
}

// AddQuadratic accumulates bias on the pair (u,v), u != v.
func (b *BQM) AddQuadratic(u, v int, bias float64) error {
	if u < 0 || v < 0 || u == v {
		return fmt.Errorf("quadratic (%d,%d): %w", u, v, ErrBadTerm)
	}
	b.Quadratic[model.NewPair(u, v)] += bias

	return nil
}

// NumVars returns one more than the largest variable index referenced.
func (b *BQM) NumVars() int {
	n := 0
	for v := range b.Linear {
		n = max(n, v+1)
	}
	for p := range b.Quadratic {
		n = max(n, p.J+1)
	}

	return n
}

// Triples lists the terms as (i, j, bias), linear ones with i == j, sorted
// by (i, j). Zero biases are dropped.
func (b *BQM) Triples() []model.Triple {
	out := make([]model.Triple, 0, len(b.Linear)+len(b.Quadratic))
	for v, c := range b.Linear {
		if c != 0 {
			out = append(out, model.Triple{I: v, J: v, Coef: c})
		}
	}
	for p, c := range b.Quadratic {
		if c != 0 {
			out = append(out, model.Triple{I: p.I, J: p.J, Coef: c})
		}
	}
	slices.SortFunc(out, compareTriples)

	return out
}

// compareTriples orders by I then J.
func compareTriples(a, c model.Triple) int {
	if a.I != c.I {
		return a.I - c.I
	}

	return a.J - c.J
}

// Energy returns offset + Σ linear·x_v + Σ quadratic·x_u·x_v, summed in
// (i, j) order.
//
// Errors:
//   - ErrSampleLength, ErrSampleDomain.
func (b *BQM) Energy(sample []int) (float64, error) {
	if n := b.NumVars(); len(sample) < n {
		return 0, fmt.Errorf("bqm: len %d, want %d: %w", len(sample), n, ErrSampleLength)
	}
	for i, x := range sample {
		if (b.Vartype == Spin && x != -1 && x != 1) || (b.Vartype == Binary && x != 0 && x != 1) {
			return 0, fmt.Errorf("bqm: sample[%d]=%d for %s: %w", i, x, b.Vartype, ErrSampleDomain)
		}
	}

	e := b.Offset
	for _, t := range b.Triples() {
		if t.I == t.J {
			e += t.Coef * float64(sample[t.I])
			continue
		}
		e += t.Coef * float64(sample[t.I]) * float64(sample[t.J])
	}

	return e, nil
}
