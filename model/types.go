// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"strings"
)

// Representation selects the variable domain of a Model.
type Representation int

const (
	// QUBO models bits x ∈ {0,1}.
	QUBO Representation = iota

	// Ising models spins s ∈ {-1,+1}.
	Ising
)

const (
	repQUBOName  = "QUBO"
	repIsingName = "ISING"
)

// String returns "QUBO" or "ISING".
func (r Representation) String() string {
	switch r {
	case QUBO:
		return repQUBOName
	case Ising:
		return repIsingName
	default:
		return fmt.Sprintf("Representation(%d)", int(r))
	}
}

// Validate returns ErrInvalidRepresentation for unknown values.
func (r Representation) Validate() error {
	switch r {
	case QUBO, Ising:
		return nil
	default:
		return fmt.Errorf("%s: %w", r, ErrInvalidRepresentation)
	}
}

// Domain returns the two admissible variable values, low first.
func (r Representation) Domain() [2]int {
	if r == Ising {
		return [2]int{-1, 1}
	}

	return [2]int{0, 1}
}

// contains reports whether v belongs to the representation domain.
func (r Representation) contains(v int) bool {
	d := r.Domain()

	return v == d[0] || v == d[1]
}

// ParseRepresentation maps "QUBO" / "ISING" (case-insensitive) to a Representation.
func ParseRepresentation(s string) (Representation, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case repQUBOName:
		return QUBO, nil
	case repIsingName:
		return Ising, nil
	default:
		return QUBO, fmt.Errorf("%q: %w", s, ErrInvalidRepresentation)
	}
}

// Group selects which matrix/offset pair an accessor reads.
type Group int

const (
	// All reads the combined (merged) matrix and offset.
	All Group = iota

	// Cost reads the objective term only.
	Cost

	// Penalty reads the constraint term only.
	Penalty
)

// String returns "all", "cost" or "pen".
func (g Group) String() string {
	switch g {
	case All:
		return "all"
	case Cost:
		return "cost"
	case Penalty:
		return "pen"
	default:
		return fmt.Sprintf("Group(%d)", int(g))
	}
}

// ParseGroup maps "all" / "cost" / "pen" (also "penalty") to a Group.
func ParseGroup(s string) (Group, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return All, nil
	case "cost":
		return Cost, nil
	case "pen", "penalty":
		return Penalty, nil
	default:
		return All, fmt.Errorf("%q: %w", s, ErrInvalidGroup)
	}
}

// Pair is an unordered variable pair stored with I <= J.
type Pair struct {
	I, J int
}

// NewPair orders a and b so that I <= J.
func NewPair(a, b int) Pair {
	if a > b {
		a, b = b, a
	}

	return Pair{I: a, J: b}
}

// Triple is one sparse coefficient (I, J, Coef) with I <= J.
type Triple struct {
	I, J int
	Coef float64
}
