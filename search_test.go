package ghsearch

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/kailas-cloud/ghsearch/internal/domain/resource"
)

func TestScenario_RepositoryByLanguage(t *testing.T) {
	c, mock := newTestClient(t)

	resp, err := c.Repositories().ByLanguage("rust").Search(context.Background())
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}

	want := "https://api.github.com/search/repositories?q=language%3Arust&sort=score&order=desc"
	if got := mock.lastURL(t); got != want {
		t.Errorf("url = %q, want %q", got, want)
	}
}

func TestScenario_IssuesTokenOrder(t *testing.T) {
	c, _ := newTestClient(t)

	q, err := c.Issues().OnlyPullRequests().OnlyOpen().ByLabel("bug").BuildQuery()
	if err != nil {
		t.Fatalf("BuildQuery: %v", err)
	}
	vals, err := url.ParseQuery(q)
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	if got := vals.Get("q"); got != "type:pr+state:open+label:bug" {
		t.Errorf("q = %q", got)
	}
}

func TestScenario_InvalidOperatorDropped(t *testing.T) {
	c, mock := newTestClient(t)

	b := c.Code().BySize(100, Operator("invalid-op"))
	if n := len(b.Qualifiers()); n != 0 {
		t.Fatalf("expected no qualifiers, got %d", n)
	}
	if b.DroppedQualifiers() != 1 {
		t.Errorf("dropped = %d, want 1", b.DroppedQualifiers())
	}
	if _, err := b.Search(context.Background()); err != nil {
		t.Fatalf("non-strict search must succeed: %v", err)
	}
	if got := mock.lastURL(t); !strings.HasSuffix(got, "/search/code?q=&sort=score&order=desc") {
		t.Errorf("url = %q", got)
	}
}

func TestScenario_LabelsWithRepositoryID(t *testing.T) {
	c, mock := newTestClient(t)

	if _, err := c.Labels().SetRepositoryID(42).AddKeyword("help").Search(context.Background()); err != nil {
		t.Fatalf("Search: %v", err)
	}
	want := "https://api.github.com/search/labels?repository_id=42&q=help&sort=score&order=desc"
	if got := mock.lastURL(t); got != want {
		t.Errorf("url = %q, want %q", got, want)
	}
}

func TestScenario_TextMatchHeader(t *testing.T) {
	c, mock := newTestClient(t)
	ctx := context.Background()

	if _, err := c.Code().AddKeyword("addClass").Search(ctx, TextMatches()); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Code().AddKeyword("addClass").Search(ctx); err != nil {
		t.Fatal(err)
	}

	if got := mock.headers[0].Get("Accept"); got != TextMatchMediaType {
		t.Errorf("with text matches: Accept = %q", got)
	}
	if got := mock.headers[1].Get("Accept"); got != "" {
		t.Errorf("without text matches: Accept = %q, want none", got)
	}
}

func TestStrictOperators(t *testing.T) {
	c, mock := newTestClient(t, WithStrictOperators())

	b := c.Code().BySize(100, Operator("invalid-op"))
	_, err := b.BuildQuery()
	if !errors.Is(err, ErrInvalidOperator) {
		t.Fatalf("expected ErrInvalidOperator, got %v", err)
	}
	var dqe *DroppedQualifiersError
	if !errors.As(err, &dqe) || dqe.Count != 1 {
		t.Errorf("expected DroppedQualifiersError{Count: 1}, got %v", err)
	}

	if _, err := b.Search(context.Background()); !errors.Is(err, ErrInvalidOperator) {
		t.Errorf("Search: expected ErrInvalidOperator, got %v", err)
	}
	if len(mock.urls) != 0 {
		t.Errorf("no request expected, got %d", len(mock.urls))
	}
}

func TestLabels_RequiresRepositoryID(t *testing.T) {
	c, mock := newTestClient(t)

	b := c.Labels().AddKeyword("bug")
	if _, ok := b.RepositoryID(); ok {
		t.Error("repository id must be unset by default")
	}
	if _, err := b.Search(context.Background()); !errors.Is(err, ErrRepositoryIDRequired) {
		t.Fatalf("expected ErrRepositoryIDRequired, got %v", err)
	}
	if len(mock.urls) != 0 {
		t.Error("request sent without repository id")
	}

	b.SetRepositoryID(0)
	if id, ok := b.RepositoryID(); !ok || id != 0 {
		t.Errorf("RepositoryID() = %d, %v", id, ok)
	}
	if _, err := b.BuildQuery(); err != nil {
		t.Errorf("explicit id 0 is accepted: %v", err)
	}
}

func TestTopics_QOnly(t *testing.T) {
	c, _ := newTestClient(t)

	q, err := c.Topics().AddKeyword("ruby").AddStringQualifier("is", "featured", false).BuildQuery()
	if err != nil {
		t.Fatal(err)
	}
	if q != "q=ruby%2Bis%3Afeatured" {
		t.Errorf("query = %q", q)
	}
}

func TestEndpointJoin(t *testing.T) {
	c, mock := newTestClient(t, WithBaseURL("https://ghe.example.com/api/v3/"))
	ctx := context.Background()

	_, _ = c.Commits().AddKeyword("fix").Search(ctx)
	_, _ = c.Users().AddKeyword("tom").Search(ctx)
	_, _ = c.Issues().AddKeyword("x").Search(ctx)
	_, _ = c.Code().AddKeyword("x").Search(ctx)

	wantPrefixes := []string{
		"https://ghe.example.com/api/v3/search/commit?",
		"https://ghe.example.com/api/v3/search/users?",
		"https://ghe.example.com/api/v3/search/issues?",
		"https://ghe.example.com/api/v3/search/code?",
	}
	for i, p := range wantPrefixes {
		if !strings.HasPrefix(mock.urls[i], p) {
			t.Errorf("url[%d] = %q, want prefix %q", i, mock.urls[i], p)
		}
	}
}

func TestURL_DoesNotSend(t *testing.T) {
	c, mock := newTestClient(t)

	u, err := c.URL(c.Users().ByLocation("Kraków").SetSort("followers"))
	if err != nil {
		t.Fatal(err)
	}
	if u != "https://api.github.com/search/users?q=location%3AKrak%C3%B3w&sort=followers&order=desc" {
		t.Errorf("url = %q", u)
	}
	if len(mock.urls) != 0 {
		t.Error("URL must not issue a request")
	}
}

func TestSearch_TransportErrorWrapped(t *testing.T) {
	c, mock := newTestClient(t)
	transportErr := errors.New("connection reset")
	mock.err = transportErr

	_, err := c.Repositories().AddKeyword("x").Search(context.Background())
	if !errors.Is(err, transportErr) {
		t.Fatalf("expected wrapped transport error, got %v", err)
	}
	if !strings.Contains(err.Error(), "search repositories") {
		t.Errorf("error lacks operation: %v", err)
	}
}

func TestSearch_Non2xxPassThrough(t *testing.T) {
	c, mock := newTestClient(t)
	mock.resp = &Response{StatusCode: http.StatusForbidden, Body: []byte(`{"message":"rate limited"}`)}

	resp, err := c.Users().AddKeyword("x").Search(context.Background())
	if err != nil {
		t.Fatalf("non-2xx is not an error: %v", err)
	}
	if resp != mock.resp {
		t.Error("response must be returned unchanged")
	}
}

func TestBuilders_Reusable(t *testing.T) {
	c, _ := newTestClient(t)

	b := c.Repositories().ByLanguage("go")
	first, _ := b.BuildQuery()
	second, _ := b.BuildQuery()
	if first != second {
		t.Errorf("BuildQuery must be repeatable: %q vs %q", first, second)
	}
	b.Stars(100, GreaterOrEqual)
	third, _ := b.BuildQuery()
	if third == first {
		t.Error("builder must accept further mutation after BuildQuery")
	}
}

func TestJoinURL_SingleSlash(t *testing.T) {
	tests := []struct {
		base, endpoint, want string
	}{
		{"https://api.github.com", resource.EndpointCode, "https://api.github.com/search/code"},
		{"https://api.github.com/", resource.EndpointCode, "https://api.github.com/search/code"},
		{"https://api.github.com", resource.EndpointUsers, "https://api.github.com/search/users"},
		{"https://api.github.com/", resource.EndpointUsers, "https://api.github.com/search/users"},
		{"https://ghe.local/api/v3//", resource.EndpointIssues, "https://ghe.local/api/v3/search/issues"},
	}
	for _, tt := range tests {
		if got := joinURL(tt.base, tt.endpoint); got != tt.want {
			t.Errorf("joinURL(%q, %q) = %q, want %q", tt.base, tt.endpoint, got, tt.want)
		}
	}

	for _, kind := range resource.All() {
		got := joinURL("https://api.github.com/", kind.Endpoint())
		if strings.Contains(strings.TrimPrefix(got, "https://"), "//") {
			t.Errorf("%s: %q has a doubled slash", kind, got)
		}
	}
}
