package symbol_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/siddharthashw/angular/pkg/symbol"
)

func TestCacheGetInterns(t *testing.T) {
	cache := symbol.NewCache()

	a := cache.Get("/app/foo.ts", "Foo")
	b := cache.Get("/app/foo.ts", "Foo")
	if a != b {
		t.Errorf("expected identical symbol pointers, got %p and %p", a, b)
	}

	c := cache.Get("/app/foo.ts", "Foo", "bar")
	if a == c {
		t.Error("member-qualified symbol must not alias the top-level symbol")
	}
	if d := cache.Get("/app/foo.ts", "Foo", "bar"); c != d {
		t.Errorf("expected identical member symbol pointers, got %p and %p", c, d)
	}

	if got := cache.Size(); got != 2 {
		t.Errorf("size: want 2, got %d", got)
	}
}

func TestCacheGetDistinctFiles(t *testing.T) {
	cache := symbol.NewCache()

	a := cache.Get("/app/foo.ts", "Foo")
	b := cache.Get("/app/bar.ts", "Foo")
	if a == b {
		t.Error("symbols from different files must be distinct")
	}
}

func TestSymbolString(t *testing.T) {
	cache := symbol.NewCache()

	for name, tc := range map[string]struct {
		sym  *symbol.Symbol
		want string
	}{
		"top level": {
			sym:  cache.Get("/lib/core.d.ts", "Component"),
			want: "/lib/core.d.ts#Component",
		},
		"member path": {
			sym:  cache.Get("/lib/core.d.ts", "Component", "selector"),
			want: "/lib/core.d.ts#Component.selector",
		},
	} {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.sym.String()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestAssertNoMembers(t *testing.T) {
	cache := symbol.NewCache()

	if err := cache.Get("/app/foo.ts", "Foo").AssertNoMembers(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := cache.Get("/app/foo.ts", "Foo", "bar").AssertNoMembers()
	if err == nil {
		t.Fatal("expected error for member-qualified symbol")
	}
	var memberErr *symbol.MemberAccessError
	if !errors.As(err, &memberErr) {
		t.Fatalf("expected *MemberAccessError, got %T", err)
	}
}
