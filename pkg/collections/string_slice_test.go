package collections_test

import (
	"flag"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/siddharthashw/angular/pkg/collections"
)

func TestStringSliceFlag(t *testing.T) {
	var values collections.StringSlice

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&values, "exclude", "")
	if err := fs.Parse([]string{"-exclude", "a", "-exclude", "b"}); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(collections.StringSlice{"a", "b"}, values); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if values.String() != "a,b" {
		t.Errorf("String(): want %q, got %q", "a,b", values.String())
	}
}
