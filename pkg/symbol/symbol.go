package symbol

import (
	"fmt"
	"strings"
)

// Symbol identifies a named entity within a source or library file,
// optionally qualified by a member path (e.g. a method of a class rather
// than the class itself).  Symbols are canonical: they must only be created
// through a Cache, so two structurally equal requests yield the identical
// pointer and equality checks are pointer comparisons.
type Symbol struct {
	// FilePath is the file the symbol is declared in.
	FilePath string
	// Name is the declared name.
	Name string
	// Members qualifies a member of the named entity.  Empty for the
	// entity itself.
	Members []string
}

// AssertNoMembers returns an error if the symbol carries a member path.
// Summary resolution and alias lookup are only defined for top-level
// symbols.
func (s *Symbol) AssertNoMembers() error {
	if len(s.Members) > 0 {
		return &MemberAccessError{Symbol: s}
	}
	return nil
}

// String implements fmt.Stringer
func (s *Symbol) String() string {
	if len(s.Members) > 0 {
		return fmt.Sprintf("%s#%s.%s", s.FilePath, s.Name, strings.Join(s.Members, "."))
	}
	return fmt.Sprintf("%s#%s", s.FilePath, s.Name)
}

// MemberAccessError reports that a member-qualified symbol was passed to an
// operation that only accepts top-level symbols.
type MemberAccessError struct {
	Symbol *Symbol
}

func (e *MemberAccessError) Error() string {
	return fmt.Sprintf("symbol %s has a member path and cannot be used here", e.Symbol)
}
