// Package tester holds the small generic assertions shared by the package
// tests. Every helper fails the test immediately so derivation pipelines
// do not cascade follow-up failures.
package tester

import (
	"reflect"
	"testing"
)

// Eq fails unless got equals want. Comparison is reflect.DeepEqual, so
// slices, maps and structs compare by value.
func Eq[T any](t *testing.T, got, want T, msgAndArgs ...any) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		if len(msgAndArgs) > 0 {
			t.Fatalf("%v: got %v, want %v", msgAndArgs[0], got, want)
		}
		t.Fatalf("got %v, want %v", got, want)
	}
}

// True fails unless cond holds.
func True(t *testing.T, cond bool, msgAndArgs ...any) {
	t.Helper()
	if !cond {
		if len(msgAndArgs) > 0 {
			t.Fatalf("%v", msgAndArgs[0])
		}
		t.Fatalf("condition is false, want true")
	}
}

// False fails if cond holds.
func False(t *testing.T, cond bool, msgAndArgs ...any) {
	t.Helper()
	if cond {
		if len(msgAndArgs) > 0 {
			t.Fatalf("%v", msgAndArgs[0])
		}
		t.Fatalf("condition is true, want false")
	}
}

// NoErr fails on any non-nil error.
func NoErr(t *testing.T, err error, msgAndArgs ...any) {
	t.Helper()
	if err != nil {
		if len(msgAndArgs) > 0 {
			t.Fatalf("%v: %v", msgAndArgs[0], err)
		}
		t.Fatalf("unexpected error: %v", err)
	}
}
