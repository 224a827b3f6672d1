package pathoffset

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"honnef.co/go/curve"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func elems(p Path) []curve.PathElement {
	return slices.Collect(p.Elements())
}
