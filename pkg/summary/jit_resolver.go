package summary

import (
	"github.com/siddharthashw/angular/pkg/symbol"
)

// JitResolver is a Resolver for in-process compilation: every summary
// arrives through AddSummary and nothing is ever loaded from storage.
type JitResolver struct {
	summaries map[*symbol.Symbol]*Summary
	symbols   []*symbol.Symbol
}

// NewJitResolver constructs an empty in-process resolver.
func NewJitResolver() *JitResolver {
	return &JitResolver{
		summaries: make(map[*symbol.Symbol]*Summary),
	}
}

// IsLibraryFile implements part of the Resolver interface.  No file is a
// library file for in-process compilation.
func (r *JitResolver) IsLibraryFile(filePath string) bool {
	return false
}

// ToSummaryFileName implements part of the Resolver interface.
func (r *JitResolver) ToSummaryFileName(fileName, referringSrcFileName string) (string, error) {
	return fileName, nil
}

// FromSummaryFileName implements part of the Resolver interface.
func (r *JitResolver) FromSummaryFileName(fileName, referringLibFileName string) (string, error) {
	return fileName, nil
}

// ResolveSummary implements part of the Resolver interface.
func (r *JitResolver) ResolveSummary(sym *symbol.Symbol) (*Summary, error) {
	if err := sym.AssertNoMembers(); err != nil {
		return nil, err
	}
	return r.summaries[sym], nil
}

// SymbolsOf implements part of the Resolver interface.
func (r *JitResolver) SymbolsOf(filePath string) ([]*symbol.Symbol, error) {
	var symbols []*symbol.Symbol
	for _, sym := range r.symbols {
		if sym.FilePath == filePath {
			symbols = append(symbols, sym)
		}
	}
	return symbols, nil
}

// ImportAsOf implements part of the Resolver interface.  In-process
// symbols are never re-exported under synthesized names.
func (r *JitResolver) ImportAsOf(sym *symbol.Symbol) (*symbol.Symbol, error) {
	if err := sym.AssertNoMembers(); err != nil {
		return nil, err
	}
	return nil, nil
}

// KnownModuleName implements part of the Resolver interface.
func (r *JitResolver) KnownModuleName(filePath string) (string, bool) {
	return "", false
}

// AddSummary implements part of the Resolver interface.
func (r *JitResolver) AddSummary(s *Summary) {
	if _, ok := r.summaries[s.Symbol]; !ok {
		r.symbols = append(r.symbols, s.Symbol)
	}
	r.summaries[s.Symbol] = s
}
