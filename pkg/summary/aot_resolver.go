package summary

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/siddharthashw/angular/pkg/genfile"
	"github.com/siddharthashw/angular/pkg/symbol"
)

// AotResolver resolves summaries for library symbols by loading their
// serialized summary files on first demand.  All state is session-scoped
// and grow-only: summaries and aliases are only ever added, and a file's
// storage load is attempted at most once, whether or not it succeeds.
//
// The resolver is not safe for concurrent use.
type AotResolver struct {
	host        Host
	cache       *symbol.Cache
	deserialize Deserializer
	logger      zerolog.Logger

	summaries map[*symbol.Symbol]*Summary
	// symbols preserves cache insertion order for SymbolsOf.
	symbols []*symbol.Symbol
	// loadedFilePaths records every file whose storage load has been
	// attempted; the value is whether content was found.
	loadedFilePaths map[string]bool
	importAs        map[*symbol.Symbol]*symbol.Symbol
	moduleNames     map[string]string
}

// AotResolverOption configures an AotResolver.
type AotResolverOption func(*AotResolver)

// WithLogger sets the logger used to report storage failures.
func WithLogger(logger zerolog.Logger) AotResolverOption {
	return func(r *AotResolver) {
		r.logger = logger
	}
}

// WithDeserializer overrides the summary file decoder.
func WithDeserializer(d Deserializer) AotResolverOption {
	return func(r *AotResolver) {
		r.deserialize = d
	}
}

// NewAotResolver constructs a resolver over the given store host and
// symbol cache.  Summary files decode with DeserializeSummaries unless
// overridden.
func NewAotResolver(host Host, cache *symbol.Cache, options ...AotResolverOption) *AotResolver {
	r := &AotResolver{
		host:            host,
		cache:           cache,
		deserialize:     DeserializeSummaries,
		logger:          zerolog.Nop(),
		summaries:       make(map[*symbol.Symbol]*Summary),
		loadedFilePaths: make(map[string]bool),
		importAs:        make(map[*symbol.Symbol]*symbol.Symbol),
		moduleNames:     make(map[string]string),
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// IsLibraryFile implements part of the Resolver interface.  Generated
// artifacts are classified by the file they were derived from, so a
// factory of a library file is itself a library file.
func (r *AotResolver) IsLibraryFile(filePath string) bool {
	return !r.host.IsSourceFile(genfile.StripGeneratedSuffix(filePath))
}

// ToSummaryFileName implements part of the Resolver interface.
func (r *AotResolver) ToSummaryFileName(fileName, referringSrcFileName string) (string, error) {
	return r.host.ToSummaryFileName(fileName, referringSrcFileName)
}

// FromSummaryFileName implements part of the Resolver interface.
func (r *AotResolver) FromSummaryFileName(fileName, referringLibFileName string) (string, error) {
	return r.host.FromSummaryFileName(fileName, referringLibFileName)
}

// ResolveSummary implements part of the Resolver interface.  A nil summary
// with nil error means the symbol has no summary; callers decide whether
// that is fatal.
func (r *AotResolver) ResolveSummary(sym *symbol.Symbol) (*Summary, error) {
	if err := sym.AssertNoMembers(); err != nil {
		return nil, err
	}
	if s, ok := r.summaries[sym]; ok {
		return s, nil
	}
	if err := r.loadSummaryFile(sym.FilePath); err != nil {
		return nil, err
	}
	return r.summaries[sym], nil
}

// SymbolsOf implements part of the Resolver interface.
func (r *AotResolver) SymbolsOf(filePath string) ([]*symbol.Symbol, error) {
	if err := r.loadSummaryFile(filePath); err != nil {
		return nil, err
	}
	var symbols []*symbol.Symbol
	for _, sym := range r.symbols {
		if sym.FilePath == filePath {
			symbols = append(symbols, sym)
		}
	}
	return symbols, nil
}

// ImportAsOf implements part of the Resolver interface.
func (r *AotResolver) ImportAsOf(sym *symbol.Symbol) (*symbol.Symbol, error) {
	if err := sym.AssertNoMembers(); err != nil {
		return nil, err
	}
	return r.importAs[sym], nil
}

// KnownModuleName implements part of the Resolver interface.
func (r *AotResolver) KnownModuleName(filePath string) (string, bool) {
	name, ok := r.moduleNames[filePath]
	return name, ok
}

// AddKnownFileName records the module name a file is known under.
func (r *AotResolver) AddKnownFileName(filePath, moduleName string) {
	r.moduleNames[filePath] = moduleName
}

// AddSummary implements part of the Resolver interface.  A later summary
// for the same symbol replaces the earlier one.
func (r *AotResolver) AddSummary(s *Summary) {
	if _, ok := r.summaries[s.Symbol]; !ok {
		r.symbols = append(r.symbols, s.Symbol)
	}
	r.summaries[s.Symbol] = s
}

// loadSummaryFile loads the summary file backing filePath at most once
// per session.  The attempt is recorded before any work so neither a
// missing file nor a failed fetch is retried.  Source files record the
// attempt but never load.
func (r *AotResolver) loadSummaryFile(filePath string) error {
	if _, ok := r.loadedFilePaths[filePath]; ok {
		return nil
	}
	r.loadedFilePaths[filePath] = false

	if !r.IsLibraryFile(filePath) {
		return nil
	}

	summaryFilePath := genfile.SummaryFileName(filePath)
	raw, ok, err := r.host.LoadSummary(summaryFilePath)
	if err != nil {
		r.logger.Error().Err(err).Str("summary", summaryFilePath).Msg("failed to load summary file")
		return fmt.Errorf("loading summary file %q: %w", summaryFilePath, err)
	}
	if !ok {
		return nil
	}
	r.loadedFilePaths[filePath] = true

	result, err := r.deserialize(r.cache, r, filePath, raw)
	if err != nil {
		return fmt.Errorf("deserializing summary file %q: %w", summaryFilePath, err)
	}
	if result.ModuleName != "" {
		r.moduleNames[filePath] = result.ModuleName
	}
	for _, s := range result.Summaries {
		r.AddSummary(s)
	}
	for _, alias := range result.Aliases {
		r.importAs[alias.Symbol] = r.cache.Get(genfile.FactoryFilePath(filePath), alias.ImportAs)
	}
	return nil
}
