package qualifier

import (
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/ghsearch/internal/domain"
)

func TestString(t *testing.T) {
	tests := []struct {
		name, value string
		negative    bool
		want        string
	}{
		{"author", "octocat", false, "author:octocat"},
		{"author", "octocat", true, "-author:octocat"},
		{"in", "file,path", false, "in:file,path"},
		{"repo", "a/b", false, "repo:a/b"},
		{"label", "", false, "label:"},
	}

	for _, tc := range tests {
		got := String(tc.name, tc.value, tc.negative)
		if got != tc.want {
			t.Errorf("String(%q, %q, %v) = %q, want %q", tc.name, tc.value, tc.negative, got, tc.want)
		}
	}
}

func TestSingleRange_ValidOperators(t *testing.T) {
	for _, op := range []Operator{LessThan, LessOrEqual, GreaterThan, GreaterOrEqual} {
		t.Run(string(op), func(t *testing.T) {
			got, ok := SingleRange("size", 100, op)
			if !ok {
				t.Fatalf("expected ok for operator %q", op)
			}
			want := string(op) + ":size100"
			if got != want {
				t.Errorf("got %q, want %q", got, want)
			}
			if !strings.HasPrefix(got, string(op)+":size") {
				t.Errorf("token %q does not start with operator followed by :name", got)
			}
		})
	}
}

func TestSingleRange_Date(t *testing.T) {
	got, ok := SingleRange("created", "2020-01-01", GreaterOrEqual)
	if !ok {
		t.Fatal("expected ok")
	}
	if got != ">=:created2020-01-01" {
		t.Errorf("got %q", got)
	}
}

func TestSingleRange_InvalidOperator(t *testing.T) {
	for _, op := range []Operator{"", "=", "invalid-op", "=>", " >"} {
		got, ok := SingleRange("size", 100, op)
		if ok || got != "" {
			t.Errorf("operator %q: got (%q, %v), want empty and false", op, got, ok)
		}
	}
}

func TestRange_OrderIndependent(t *testing.T) {
	if a, b := Range("size", 10, 200), Range("size", 200, 10); a != b || a != "size:10..200" {
		t.Errorf("int range: %q vs %q", a, b)
	}

	a := Range("created", "2020-01-01", "2019-06-30")
	b := Range("created", "2019-06-30", "2020-01-01")
	if a != b || a != "created:2019-06-30..2020-01-01" {
		t.Errorf("date range: %q vs %q", a, b)
	}

	if got := Range("stars", 5, 5); got != "stars:5..5" {
		t.Errorf("equal bounds: got %q", got)
	}
}

func TestRange_NativeOrdering(t *testing.T) {
	// Ints compare numerically, strings lexicographically.
	if got := Range("repos", 9, 10); got != "repos:9..10" {
		t.Errorf("numeric: got %q", got)
	}
	if got := Range("repos", "9", "10"); got != "repos:10..9" {
		t.Errorf("lexicographic: got %q", got)
	}
}

func TestParseOperator(t *testing.T) {
	op, err := ParseOperator(" >= ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op != GreaterOrEqual {
		t.Errorf("got %q", op)
	}

	_, err = ParseOperator("~")
	if !errors.Is(err, domain.ErrInvalidOperator) {
		t.Errorf("expected ErrInvalidOperator, got %v", err)
	}
}

func TestPath(t *testing.T) {
	if got := Path("octocat", "hello-world"); got != "octocat/hello-world" {
		t.Errorf("got %q", got)
	}
	if got := Path("octocat", "hello-world", "1"); got != "octocat/hello-world/1" {
		t.Errorf("got %q", got)
	}
}

func TestOpenRange_KeepsArgumentOrder(t *testing.T) {
	if got := OpenRange("stars", "10", Unbounded); got != "stars:10..*" {
		t.Errorf("lower bound: got %q", got)
	}
	if got := OpenRange("created", Unbounded, "2020-01-01"); got != "created:*..2020-01-01" {
		t.Errorf("upper bound: got %q", got)
	}
}
