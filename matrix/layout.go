// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Layout governs how an off-diagonal coefficient pair is stored.
//
//   - Upper:     the pair lives once at (i,j), i<j; entries below the diagonal are zero.
//   - Symmetric: the pair is split in halves mirrored at (i,j) and (j,i).
//
// Conversion between layouts is explicit (SymmetrizeLayout / FoldUpper), never
// automatic on mutation.
type Layout int

const (
	// Upper stores each pair once in the upper triangle (default).
	Upper Layout = iota

	// Symmetric stores each pair as two mirrored halves.
	Symmetric
)

// Textual names (as used by configuration files).
const (
	layoutUpperName     = "upper"
	layoutSymmetricName = "sym"
)

// String returns "upper" or "sym".
func (l Layout) String() string {
	switch l {
	case Upper:
		return layoutUpperName
	case Symmetric:
		return layoutSymmetricName
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// Validate returns ErrInvalidLayout for any value other than Upper or Symmetric.
func (l Layout) Validate() error {
	switch l {
	case Upper, Symmetric:
		return nil
	default:
		return fmt.Errorf("%s: %w", l, ErrInvalidLayout)
	}
}

// ParseLayout maps "upper" / "sym" (also "symmetric") to a Layout.
func ParseLayout(s string) (Layout, error) {
	switch s {
	case layoutUpperName:
		return Upper, nil
	case layoutSymmetricName, "symmetric":
		return Symmetric, nil
	default:
		return Upper, fmt.Errorf("%q: %w", s, ErrInvalidLayout)
	}
}
