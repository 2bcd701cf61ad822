package testutil

import (
	"errors"
	"fmt"
	"testing"
)

// recorder captures failures instead of failing the enclosing test.
type recorder struct {
	testing.TB
	failures []string
}

func (r *recorder) Helper() {}

func (r *recorder) Error(args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprint(args...))
}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func TestAssertions_Pass(t *testing.T) {
	sentinel := errors.New("sentinel")

	AssertEqual(t, "hello", "hello")
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, 42, 42, "value should be %d", 42)
	AssertNoError(t, nil)
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel)
	AssertContains(t, "hello world", "world")
	AssertContains(t, "test", "")
	AssertNotContains(t, "hello world", "foo")
	AssertTrue(t, len("hello") == 5)
	AssertFalse(t, 1 == 2)
}

func TestAssertions_Fail(t *testing.T) {
	tests := []struct {
		name   string
		assert func(testing.TB)
		want   string
	}{
		{"equal", func(tb testing.TB) { AssertEqual(tb, 1, 2) }, "mismatch (-want +got):"},
		{"no error", func(tb testing.TB) { AssertNoError(tb, errors.New("boom")) }, "unexpected error: boom"},
		{"error is", func(tb testing.TB) { AssertErrorIs(tb, nil, errors.New("x")) }, "error <nil>, want x"},
		{"contains", func(tb testing.TB) { AssertContains(tb, "abc", "z") }, `"abc" does not contain "z"`},
		{"not contains", func(tb testing.TB) { AssertNotContains(tb, "abc", "b") }, `"abc" should not contain "b"`},
		{"true", func(tb testing.TB) { AssertTrue(tb, false) }, "expected true but got false"},
		{"false with message", func(tb testing.TB) { AssertFalse(tb, true, "square %s", "e4") }, "square e4: expected false but got true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{TB: t}
			tt.assert(rec)
			if len(rec.failures) != 1 {
				t.Fatalf("recorded %d failures, want 1", len(rec.failures))
			}
			AssertContains(t, rec.failures[0], tt.want)
		})
	}
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"hello %s", "world"}, "hello world"},
		{"format multiple", []interface{}{"%s %d %s", "test", 42, "end"}, "test 42 end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMessage(tt.args...)
			if got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
