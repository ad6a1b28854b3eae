// Package host implements the summary store adapter over an on-disk
// workspace: source-file classification, summary file naming, and raw
// summary content retrieval.
package host

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dghubble/trie"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"github.com/siddharthashw/angular/pkg/genfile"
)

const defaultCacheSize = 256

// FileSystemHost implements summary.Host for summary files stored on
// disk.  Classification is structural: declaration files and files
// outside the configured source roots are library files.
type FileSystemHost struct {
	basePath string
	// roots holds the source root directories, keyed by path segment.
	roots   *trie.PathTrie
	exclude []string
	// contents caches raw summary file contents across sessions.
	contents *lru.Cache[string, string]
	logger   zerolog.Logger
}

// FileSystemHostOption configures a FileSystemHost.
type FileSystemHostOption func(*FileSystemHost)

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) FileSystemHostOption {
	return func(h *FileSystemHost) {
		h.logger = logger
	}
}

// NewFileSystemHost constructs a host for the given store configuration.
func NewFileSystemHost(c *Config, options ...FileSystemHostOption) (*FileSystemHost, error) {
	size := c.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}
	contents, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("content cache: %w", err)
	}

	for _, pattern := range c.ExcludeGlobs {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("bad exclude pattern %q", pattern)
		}
	}

	roots := trie.NewPathTrie()
	for _, root := range c.SourceRoots {
		roots.Put(strings.TrimSuffix(root, "/"), true)
	}

	h := &FileSystemHost{
		basePath: c.BasePath,
		roots:    roots,
		exclude:  c.ExcludeGlobs,
		contents: contents,
		logger:   zerolog.Nop(),
	}
	for _, option := range options {
		option(h)
	}
	return h, nil
}

// IsSourceFile implements part of the summary.Host interface.
func (h *FileSystemHost) IsSourceFile(filePath string) bool {
	if strings.HasSuffix(filePath, ".d.ts") {
		return false
	}
	if !h.underSourceRoot(filePath) {
		return false
	}
	for _, pattern := range h.exclude {
		if ok, _ := doublestar.Match(pattern, filePath); ok {
			return false
		}
	}
	return true
}

func (h *FileSystemHost) underSourceRoot(filePath string) bool {
	found := false
	h.roots.WalkPath(filePath, func(key string, value interface{}) error {
		found = true
		return nil
	})
	return found
}

// ToSummaryFileName implements part of the summary.Host interface: the
// summary name of fileName, relative to the referring source file.
func (h *FileSystemHost) ToSummaryFileName(fileName, referringSrcFileName string) (string, error) {
	rel, err := filepath.Rel(filepath.Dir(referringSrcFileName), fileName)
	if err != nil {
		return "", fmt.Errorf("summary name for %q referred from %q: %w", fileName, referringSrcFileName, err)
	}
	return genfile.SummaryFileName(filepath.ToSlash(rel)), nil
}

// FromSummaryFileName implements part of the summary.Host interface: the
// inverse of ToSummaryFileName, resolved against the referring library
// file.
func (h *FileSystemHost) FromSummaryFileName(fileName, referringLibFileName string) (string, error) {
	if !strings.HasSuffix(fileName, genfile.SummaryExt) {
		return "", fmt.Errorf("%q is not a summary file name", fileName)
	}
	base := strings.TrimSuffix(fileName, genfile.SummaryExt) + ".d.ts"
	return filepath.ToSlash(filepath.Join(filepath.Dir(referringLibFileName), base)), nil
}

// LoadSummary implements part of the summary.Host interface.  A missing
// file is reported as absent, not as an error.
func (h *FileSystemHost) LoadSummary(filePath string) (string, bool, error) {
	if content, ok := h.contents.Get(filePath); ok {
		return content, true, nil
	}

	name := filePath
	if h.basePath != "" && !filepath.IsAbs(name) {
		name = filepath.Join(h.basePath, name)
	}
	data, err := os.ReadFile(name)
	if os.IsNotExist(err) {
		h.logger.Debug().Str("summary", filePath).Msg("no stored summary")
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read summary %q: %w", filePath, err)
	}

	content := string(data)
	h.contents.Add(filePath, content)
	return content, true, nil
}
