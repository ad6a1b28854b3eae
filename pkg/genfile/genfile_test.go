package genfile_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/siddharthashw/angular/pkg/genfile"
)

func TestFactoryFilePath(t *testing.T) {
	for name, tc := range map[string]struct {
		filePath string
		want     string
	}{
		"source file": {
			filePath: "app/foo.ts",
			want:     "app/foo.ngfactory.ts",
		},
		"declaration file": {
			filePath: "lib/core.d.ts",
			want:     "lib/core.ngfactory.ts",
		},
		"absolute path": {
			filePath: "/node_modules/lib/index.d.ts",
			want:     "/node_modules/lib/index.ngfactory.ts",
		},
	} {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, genfile.FactoryFilePath(tc.filePath)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestStripGeneratedSuffix(t *testing.T) {
	for name, tc := range map[string]struct {
		filePath string
		want     string
	}{
		"factory": {
			filePath: "app/foo.ngfactory.ts",
			want:     "app/foo.ts",
		},
		"style shim": {
			filePath: "app/foo.ngstyle.ts",
			want:     "app/foo.ts",
		},
		"plain source unchanged": {
			filePath: "app/foo.ts",
			want:     "app/foo.ts",
		},
		"declaration unchanged": {
			filePath: "lib/core.d.ts",
			want:     "lib/core.d.ts",
		},
	} {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, genfile.StripGeneratedSuffix(tc.filePath)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestIsGeneratedFile(t *testing.T) {
	for name, tc := range map[string]struct {
		filePath string
		want     bool
	}{
		"factory":     {filePath: "app/foo.ngfactory.ts", want: true},
		"style":       {filePath: "app/foo.ngstyle.ts", want: true},
		"source":      {filePath: "app/foo.ts", want: false},
		"declaration": {filePath: "lib/core.d.ts", want: false},
	} {
		t.Run(name, func(t *testing.T) {
			if got := genfile.IsGeneratedFile(tc.filePath); got != tc.want {
				t.Errorf("IsGeneratedFile(%q): want %v, got %v", tc.filePath, tc.want, got)
			}
		})
	}
}

func TestSummaryFileName(t *testing.T) {
	for name, tc := range map[string]struct {
		fileName string
		want     string
	}{
		"source": {
			fileName: "app/foo.ts",
			want:     "app/foo.ngsummary.json",
		},
		"declaration": {
			fileName: "lib/core.d.ts",
			want:     "lib/core.ngsummary.json",
		},
	} {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, genfile.SummaryFileName(tc.fileName)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}
