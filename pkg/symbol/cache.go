package symbol

import "strings"

// Cache interns symbols.  Get returns the identical *Symbol for
// structurally equal arguments, so callers can rely on pointer identity for
// map keys and equality checks.
type Cache struct {
	symbols map[string]*Symbol
}

// NewCache constructs an empty interning cache.
func NewCache() *Cache {
	return &Cache{
		symbols: make(map[string]*Symbol),
	}
}

// Get returns the canonical symbol for the given file path, name and
// optional member path, creating it on first use.
func (c *Cache) Get(filePath, name string, members ...string) *Symbol {
	key := filePath + "|" + name
	if len(members) > 0 {
		key += "|" + strings.Join(members, ".")
	}
	if sym, ok := c.symbols[key]; ok {
		return sym
	}
	sym := &Symbol{FilePath: filePath, Name: name, Members: members}
	c.symbols[key] = sym
	return sym
}

// Size returns the number of interned symbols.
func (c *Cache) Size() int {
	return len(c.symbols)
}
