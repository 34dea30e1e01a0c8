package shape

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats within the package's tolerance and Angles by value.
var approx = cmp.Options{
	cmpopts.EquateApprox(0, epsilon),
	cmp.Comparer(func(a, b Angle) bool { return a.Equal(b) }),
}

func assertNear(t *testing.T, got, want Point) {
	t.Helper()
	if !got.Equal(want) {
		t.Fatalf("got %s, expected %s", got, want)
	}
}
