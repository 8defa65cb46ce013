package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/kailas-cloud/ghsearch"
	"github.com/kailas-cloud/ghsearch/internal/domain/resource"
	searchuc "github.com/kailas-cloud/ghsearch/internal/usecase/search"
	"github.com/kailas-cloud/ghsearch/internal/version"
)

func newApp(out, errOut io.Writer) *cli.Command {
	commands := make([]*cli.Command, 0, len(resource.All()))
	for _, kind := range resource.All() {
		commands = append(commands, searchCommand(kind, out, errOut))
	}

	return &cli.Command{
		Name:      "ghsearch",
		Usage:     "Search GitHub code, commits, issues, labels, repositories, topics and users",
		Version:   version.Version,
		Writer:    out,
		ErrWriter: errOut,
		Commands:  commands,
	}
}

func searchCommand(kind resource.Kind, out, errOut io.Writer) *cli.Command {
	flags := []cli.Flag{
		&cli.StringSliceFlag{Name: "keyword", Aliases: []string{"k"}, Usage: "free-text term, repeatable"},
		&cli.StringFlag{Name: "base-url", Usage: "search API origin", Value: ghsearch.DefaultBaseURL,
			Sources: cli.EnvVars("GITHUB_API_URL")},
		&cli.StringFlag{Name: "token", Usage: "bearer token", Sources: cli.EnvVars("GITHUB_TOKEN")},
		&cli.BoolFlag{Name: "print-url", Usage: "print the request URL instead of sending it"},
		&cli.BoolFlag{Name: "text-matches", Usage: "request text match metadata"},
		&cli.BoolFlag{Name: "strict", Usage: "fail on range filters with an unknown operator"},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log requests to stderr"},
	}
	if kind.HasQualifiers() {
		flags = append(flags,
			&cli.StringSliceFlag{Name: "filter", Aliases: []string{"f"},
				Usage: "qualifier such as language:go, -label:bug or stars:>=100, repeatable"},
			&cli.StringSliceFlag{Name: "range", Usage: "two-sided range as name=from..to, repeatable"},
		)
	}
	if kind.HasSortOrder() {
		flags = append(flags,
			&cli.StringFlag{Name: "sort", Usage: "sort field (default score)"},
			&cli.StringFlag{Name: "order", Usage: "asc or desc (default desc)"},
		)
	}
	if kind == resource.Labels {
		flags = append(flags, &cli.Int64Flag{Name: "repository-id", Usage: "numeric repository id, required"})
	}

	return &cli.Command{
		Name:  string(kind),
		Usage: fmt.Sprintf("Search %s", kind),
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			return runSearch(ctx, c, kind, out, errOut)
		},
	}
}

func runSearch(ctx context.Context, c *cli.Command, kind resource.Kind, out, errOut io.Writer) error {
	req, err := buildRequest(c, kind)
	if err != nil {
		return err
	}

	opts := []ghsearch.Option{
		ghsearch.WithBaseURL(c.String("base-url")),
		ghsearch.WithToken(c.String("token")),
		ghsearch.WithUserAgent(version.UserAgent("ghsearch-cli")),
	}
	if c.Bool("strict") {
		opts = append(opts, ghsearch.WithStrictOperators())
	}
	if c.Bool("verbose") {
		opts = append(opts, ghsearch.WithLogger(
			slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: slog.LevelDebug})),
		))
	}
	client, err := ghsearch.New(opts...)
	if err != nil {
		return err
	}
	svc := searchuc.New(client)

	if c.Bool("print-url") {
		u, err := svc.URL(&req)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, u)
		return err
	}

	resp, err := svc.Search(ctx, &req)
	if err != nil {
		return err
	}
	if _, err := out.Write(resp.Body); err != nil {
		return err
	}
	if len(resp.Body) > 0 && resp.Body[len(resp.Body)-1] != '\n' {
		_, _ = fmt.Fprintln(out)
	}
	if !resp.OK() {
		return fmt.Errorf("search api returned status %d", resp.StatusCode)
	}
	return nil
}

// buildRequest maps flags onto a search request. Flags a resource does not
// define read as empty.
func buildRequest(c *cli.Command, kind resource.Kind) (searchuc.Request, error) {
	req := searchuc.Request{
		Kind:        kind,
		Keywords:    c.StringSlice("keyword"),
		TextMatches: c.Bool("text-matches"),
	}

	if kind.HasQualifiers() {
		for _, s := range c.StringSlice("filter") {
			f, err := ghsearch.ParseFilter(s)
			if err != nil {
				return req, fmt.Errorf("--filter %q: %w", s, err)
			}
			req.Filters = append(req.Filters, f)
		}
		for _, s := range c.StringSlice("range") {
			f, err := parseRange(s)
			if err != nil {
				return req, err
			}
			req.Filters = append(req.Filters, f)
		}
	}
	if kind.HasSortOrder() {
		req.Sort = c.String("sort")
		req.Order = c.String("order")
	}
	if kind == resource.Labels && c.IsSet("repository-id") {
		id := c.Int64("repository-id")
		req.RepositoryID = &id
	}
	return req, nil
}

// parseRange reads name=from..to.
func parseRange(s string) (ghsearch.Filter, error) {
	name, bounds, ok := strings.Cut(s, "=")
	from, to, isRange := strings.Cut(bounds, "..")
	if !ok || !isRange {
		return ghsearch.Filter{}, fmt.Errorf("--range %q: %w: want name=from..to", s, ghsearch.ErrInvalidRequest)
	}
	f := ghsearch.Between(strings.TrimSpace(name), strings.TrimSpace(from), strings.TrimSpace(to))
	if err := f.Validate(); err != nil {
		return ghsearch.Filter{}, fmt.Errorf("--range %q: %w", s, err)
	}
	return f, nil
}
