// Package genfile contains the naming conventions for generated artifacts
// derived from source and library files, and for the summary files that
// back library symbols.
package genfile

import "strings"

const (
	// FactorySuffix marks generated factory files.
	FactorySuffix = ".ngfactory"
	// StyleSuffix marks generated style shim files.
	StyleSuffix = ".ngstyle"
	// SummaryExt is the extension of serialized summary files.
	SummaryExt = ".ngsummary.json"

	tsExt   = ".ts"
	declExt = ".d.ts"
)

var generatedSuffixes = []string{FactorySuffix, StyleSuffix}

// FactoryFilePath returns the generated factory path for a file:
// "app/foo.ts" -> "app/foo.ngfactory.ts".  Declaration files map to a
// plain ".ts" factory.
func FactoryFilePath(filePath string) string {
	return stripExt(filePath) + FactorySuffix + tsExt
}

// IsGeneratedFile reports whether the path names a generated artifact.
func IsGeneratedFile(filePath string) bool {
	base := stripExt(filePath)
	for _, suffix := range generatedSuffixes {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}
	return false
}

// StripGeneratedSuffix maps a generated artifact path back to the file it
// was derived from: "app/foo.ngfactory.ts" -> "app/foo.ts".  Paths that
// name no generated artifact are returned unchanged.
func StripGeneratedSuffix(filePath string) string {
	base := stripExt(filePath)
	for _, suffix := range generatedSuffixes {
		if strings.HasSuffix(base, suffix) {
			return strings.TrimSuffix(base, suffix) + tsExt
		}
	}
	return filePath
}

// SummaryFileName returns the storage-side name of the summary backing the
// given file: "lib/core.d.ts" -> "lib/core.ngsummary.json".
func SummaryFileName(fileName string) string {
	return stripExt(fileName) + SummaryExt
}

func stripExt(filePath string) string {
	if strings.HasSuffix(filePath, declExt) {
		return strings.TrimSuffix(filePath, declExt)
	}
	return strings.TrimSuffix(filePath, tsExt)
}
