package summary

import (
	"encoding/json"
	"fmt"

	"github.com/siddharthashw/angular/pkg/symbol"
)

// fileSummaries is the JSON shape of a serialized summary file.  Symbols
// are stored once in a table and referenced by index.
type fileSummaries struct {
	ModuleName string       `json:"moduleName,omitempty"`
	Symbols    []fileSymbol `json:"symbols"`
	Summaries  []fileEntry  `json:"summaries"`
	// Reexports indexes table symbols from other library files whose
	// summaries must be flattened into this file's load result.
	Reexports []int `json:"reexports,omitempty"`
}

type fileSymbol struct {
	FilePath string `json:"filePath"`
	Name     string `json:"name"`
	ImportAs string `json:"importAs,omitempty"`
}

type fileEntry struct {
	Symbol   int `json:"symbol"`
	Metadata any `json:"metadata,omitempty"`
	Type     any `json:"type,omitempty"`
}

// DeserializeSummaries decodes the raw content of the summary file backing
// filePath.  Symbols are interned through the cache.  Re-exported symbols
// from other files resolve through the given resolver, which may trigger
// loads of the files that own them; the file being decoded is already
// marked as attempted, so decode never re-enters its own load.
func DeserializeSummaries(cache *symbol.Cache, resolver Resolver, filePath, raw string) (*LoadResult, error) {
	var file fileSummaries
	if err := json.Unmarshal([]byte(raw), &file); err != nil {
		return nil, fmt.Errorf("unmarshal summaries: %w", err)
	}

	symbols := make([]*symbol.Symbol, len(file.Symbols))
	for i, fs := range file.Symbols {
		symbols[i] = cache.Get(fs.FilePath, fs.Name)
	}

	result := &LoadResult{ModuleName: file.ModuleName}

	for _, entry := range file.Summaries {
		if entry.Symbol < 0 || entry.Symbol >= len(symbols) {
			return nil, fmt.Errorf("summary references symbol %d, table has %d entries", entry.Symbol, len(symbols))
		}
		result.Summaries = append(result.Summaries, &Summary{
			Symbol:   symbols[entry.Symbol],
			Metadata: entry.Metadata,
			Type:     entry.Type,
		})
	}

	for i, fs := range file.Symbols {
		if fs.ImportAs != "" {
			result.Aliases = append(result.Aliases, Alias{Symbol: symbols[i], ImportAs: fs.ImportAs})
		}
	}

	for _, idx := range file.Reexports {
		if idx < 0 || idx >= len(symbols) {
			return nil, fmt.Errorf("reexport references symbol %d, table has %d entries", idx, len(symbols))
		}
		sym := symbols[idx]
		if sym.FilePath == filePath {
			continue
		}
		s, err := resolver.ResolveSummary(sym)
		if err != nil {
			return nil, fmt.Errorf("resolving reexport %s: %w", sym, err)
		}
		if s != nil {
			result.Summaries = append(result.Summaries, s)
		}
	}

	return result, nil
}

// SerializeSummaries is the write-side counterpart of
// DeserializeSummaries, used by tooling that produces summary files.
func SerializeSummaries(moduleName string, summaries []*Summary, aliases []Alias) ([]byte, error) {
	file := fileSummaries{ModuleName: moduleName}

	index := make(map[*symbol.Symbol]int)
	putSymbol := func(sym *symbol.Symbol) int {
		if i, ok := index[sym]; ok {
			return i
		}
		i := len(file.Symbols)
		index[sym] = i
		file.Symbols = append(file.Symbols, fileSymbol{FilePath: sym.FilePath, Name: sym.Name})
		return i
	}

	for _, s := range summaries {
		if err := s.Symbol.AssertNoMembers(); err != nil {
			return nil, err
		}
		file.Summaries = append(file.Summaries, fileEntry{
			Symbol:   putSymbol(s.Symbol),
			Metadata: s.Metadata,
			Type:     s.Type,
		})
	}
	for _, alias := range aliases {
		i := putSymbol(alias.Symbol)
		file.Symbols[i].ImportAs = alias.ImportAs
	}

	return json.MarshalIndent(&file, "", "  ")
}
