// Package summary implements lazy, memoizing resolution of persisted
// symbol summaries.  A summary describes the public shape of a symbol and
// is produced outside this package; the resolver loads the summary file
// backing a library symbol at most once per session and caches every
// summary and alias it yields.
package summary

import (
	"github.com/siddharthashw/angular/pkg/symbol"
)

// Summary pairs a symbol with its persisted descriptive data.  Metadata
// and Type are opaque to the resolver; it never inspects them.
type Summary struct {
	Symbol   *symbol.Symbol
	Metadata any
	Type     any
}

// Alias is a decoded alias entry: a symbol re-exported by the owning
// file's generated artifact under a synthesized name.  The resolver turns
// the name into a symbol in the generated-artifact namespace.
type Alias struct {
	Symbol   *symbol.Symbol
	ImportAs string
}

// LoadResult is the decoded content of one summary file.
type LoadResult struct {
	// ModuleName is the import name the file is known under, if any.
	ModuleName string
	Summaries  []*Summary
	Aliases    []Alias
}

// Resolver is the symbol-summary lookup surface.
type Resolver interface {
	// IsLibraryFile reports whether summaries for the file are loaded
	// from storage rather than produced in-process.  Generated artifacts
	// classify the same as the file they were derived from.
	IsLibraryFile(filePath string) bool

	// ToSummaryFileName translates a file path to its storage-side
	// summary name, relative to the referring source file.
	ToSummaryFileName(fileName, referringSrcFileName string) (string, error)

	// FromSummaryFileName is the inverse of ToSummaryFileName, resolved
	// against the referring library file.
	FromSummaryFileName(fileName, referringLibFileName string) (string, error)

	// ResolveSummary returns the summary for the given top-level symbol,
	// loading the backing summary file on first demand.  A nil summary
	// with nil error means no summary exists.
	ResolveSummary(sym *symbol.Symbol) (*Summary, error)

	// SymbolsOf returns the cached symbols belonging to the file, in
	// insertion order, after ensuring the file's load was attempted.
	SymbolsOf(filePath string) ([]*symbol.Symbol, error)

	// ImportAsOf returns the canonical replacement for a top-level
	// symbol, or nil if it has none.  Never triggers a load.
	ImportAsOf(sym *symbol.Symbol) (*symbol.Symbol, error)

	// KnownModuleName returns the module name a file is known under, if
	// one was recorded.
	KnownModuleName(filePath string) (string, bool)

	// AddSummary inserts or replaces the cached summary for its symbol.
	AddSummary(s *Summary)
}

// Host adapts the resolver to the summary store.  It owns file
// classification, summary file naming, and raw content retrieval.
type Host interface {
	// IsSourceFile reports whether the path names an in-process source
	// file, whose summaries never come from storage.
	IsSourceFile(filePath string) bool

	// ToSummaryFileName translates a file path to a summary name
	// relative to the referring source file.
	ToSummaryFileName(fileName, referringSrcFileName string) (string, error)

	// FromSummaryFileName resolves a summary name back to a file path,
	// against the referring library file.
	FromSummaryFileName(fileName, referringLibFileName string) (string, error)

	// LoadSummary returns the raw content of the named summary file.
	// ok is false when no summary is stored under that name; a non-nil
	// error is fatal.
	LoadSummary(filePath string) (content string, ok bool, err error)
}

// Deserializer decodes the raw content of one summary file.  The resolver
// is passed back in so the decoder can resolve cross-file references it
// encounters mid-decode.
type Deserializer func(cache *symbol.Cache, resolver Resolver, filePath, raw string) (*LoadResult, error)
