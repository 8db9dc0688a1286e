// Package main provides a CLI for the Ghost Content API.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/howToCodeWell/ghost-content-api/ghost"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// globalFlags holds the persistent flags shared by every subcommand
type globalFlags struct {
	siteURL    string
	apiKey     string
	apiVersion string
	userAgent  string
	timeout    time.Duration
	verbose    bool
}

// listFlags holds the query options of list subcommands
type listFlags struct {
	include string
	fields  string
	filter  string
	limit   string
	page    int
	order   string
	format  string
}

// readFlags holds the options of single lookups
type readFlags struct {
	slug    string
	include string
	fields  string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "ghost",
		Short: "Ghost Content API CLI",
		Long: `A command-line client for the Ghost Content API.

All output is JSON.

Environment variables:
  GHOST_URL              - Site URL (e.g., https://demo.ghost.io)
  GHOST_CONTENT_API_KEY  - Content API key
  GHOST_API_VERSION      - API version (default: v2)
  GHOST_TIMEOUT          - Request timeout (default: 30s)
  GHOST_USER_AGENT       - User-Agent header`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&g.siteURL, "url", "", "Site URL (or GHOST_URL env)")
	root.PersistentFlags().StringVar(&g.apiKey, "key", "", "Content API key (or GHOST_CONTENT_API_KEY env)")
	root.PersistentFlags().StringVar(&g.apiVersion, "api-version", "", "API version (or GHOST_API_VERSION env, default v2)")
	root.PersistentFlags().StringVar(&g.userAgent, "user-agent", "", "User-Agent header (or GHOST_USER_AGENT env)")
	root.PersistentFlags().DurationVar(&g.timeout, "timeout", 0, "Request timeout (or GHOST_TIMEOUT env, default 30s)")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Log requests to stderr")

	root.AddCommand(
		newListCmd(g, "posts", "List posts", true, func(c *ghost.Client, ctx context.Context, o *ghost.ContentListOptions) (any, error) {
			return c.GetPosts(ctx, o)
		}),
		newReadCmd(g, "post", "Get a post by id or --slug", ghostLookup{byID: (*ghost.Client).GetPost, bySlug: (*ghost.Client).GetPostBySlug}),
		newListCmd(g, "pages", "List pages", true, func(c *ghost.Client, ctx context.Context, o *ghost.ContentListOptions) (any, error) {
			return c.GetPages(ctx, o)
		}),
		newReadCmd(g, "page", "Get a page by id or --slug", ghostLookup{byID: (*ghost.Client).GetPage, bySlug: (*ghost.Client).GetPageBySlug}),
		newListCmd(g, "tags", "List tags", false, func(c *ghost.Client, ctx context.Context, o *ghost.ContentListOptions) (any, error) {
			return c.GetTags(ctx, &o.ListOptions)
		}),
		newReadCmd(g, "tag", "Get a tag by id or --slug", ghostLookup{byID: (*ghost.Client).GetTag, bySlug: (*ghost.Client).GetTagBySlug}),
		newListCmd(g, "authors", "List authors", false, func(c *ghost.Client, ctx context.Context, o *ghost.ContentListOptions) (any, error) {
			return c.GetAuthors(ctx, &o.ListOptions)
		}),
		newReadCmd(g, "author", "Get an author by id or --slug", ghostLookup{byID: (*ghost.Client).GetAuthor, bySlug: (*ghost.Client).GetAuthorBySlug}),
		newSettingsCmd(g),
		newRequestCmd(g),
	)

	return root
}

// getSiteURL returns the site URL from flags or environment
func (g *globalFlags) getSiteURL() string {
	if g.siteURL != "" {
		return g.siteURL
	}
	return os.Getenv("GHOST_URL")
}

// getAPIKey returns the content API key from flags or environment
func (g *globalFlags) getAPIKey() string {
	if g.apiKey != "" {
		return g.apiKey
	}
	return os.Getenv("GHOST_CONTENT_API_KEY")
}

// getAPIVersion returns the API version from flags or environment
func (g *globalFlags) getAPIVersion() string {
	if g.apiVersion != "" {
		return g.apiVersion
	}
	if v := os.Getenv("GHOST_API_VERSION"); v != "" {
		return v
	}
	return ghost.DefaultAPIVersion
}

// getTimeout returns the request timeout from flags or environment
func (g *globalFlags) getTimeout() time.Duration {
	if g.timeout > 0 {
		return g.timeout
	}
	if t := os.Getenv("GHOST_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			return d
		}
	}
	return ghost.DefaultTimeout
}

// getUserAgent returns the User-Agent from flags or environment
func (g *globalFlags) getUserAgent() string {
	if g.userAgent != "" {
		return g.userAgent
	}
	if ua := os.Getenv("GHOST_USER_AGENT"); ua != "" {
		return ua
	}
	return ghost.DefaultUserAgent
}

// newClient creates a client from the resolved settings
func (g *globalFlags) newClient(cmd *cobra.Command) (*ghost.Client, error) {
	siteURL := g.getSiteURL()
	if siteURL == "" {
		return nil, fmt.Errorf("site URL is required (--url or GHOST_URL)")
	}

	level := slog.LevelWarn
	if g.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return ghost.NewFromConfig(&ghost.Config{
		Host:       siteURL,
		APIVersion: g.getAPIVersion(),
		APIToken:   g.getAPIKey(),
		Timeout:    g.getTimeout(),
		UserAgent:  g.getUserAgent(),
	}, logger), nil
}

// outputJSON prints the value as JSON
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type listFunc func(c *ghost.Client, ctx context.Context, opts *ghost.ContentListOptions) (any, error)

func newListCmd(g *globalFlags, use, short string, withFormat bool, fn listFunc) *cobra.Command {
	f := &listFlags{}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := g.newClient(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), g.getTimeout())
			defer cancel()

			result, err := fn(c, ctx, &ghost.ContentListOptions{
				ListOptions: ghost.ListOptions{
					Include: f.include,
					Fields:  f.fields,
					Filter:  f.filter,
					Limit:   f.limit,
					Page:    f.page,
					Order:   f.order,
				},
				Format: f.format,
			})
			if err != nil {
				return fmt.Errorf("failed to list %s: %w", use, err)
			}
			return outputJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&f.include, "include", "", "Relations to include (e.g. tags,authors)")
	cmd.Flags().StringVar(&f.fields, "fields", "", "Comma-separated fields to return")
	cmd.Flags().StringVar(&f.filter, "filter", "", "NQL filter expression")
	cmd.Flags().StringVar(&f.limit, "limit", "", "Records per page, or all")
	cmd.Flags().IntVar(&f.page, "page", 0, "Page number")
	cmd.Flags().StringVar(&f.order, "order", "", "Sort order (e.g. \"published_at desc\")")
	if withFormat {
		cmd.Flags().StringVar(&f.format, "format", "", "Content format (html, plaintext, mobiledoc)")
	}
	return cmd
}

type ghostLookup struct {
	byID   func(c *ghost.Client, ctx context.Context, id string, opts *ghost.ReadOptions) (any, error)
	bySlug func(c *ghost.Client, ctx context.Context, slug string, opts *ghost.ReadOptions) (any, error)
}

func newReadCmd(g *globalFlags, use, short string, lookup ghostLookup) *cobra.Command {
	f := &readFlags{}
	cmd := &cobra.Command{
		Use:   use + " [id]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && f.slug == "" {
				return fmt.Errorf("an id argument or --slug is required")
			}
			if len(args) == 1 && f.slug != "" {
				return fmt.Errorf("provide an id or --slug, not both")
			}

			c, err := g.newClient(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), g.getTimeout())
			defer cancel()

			opts := &ghost.ReadOptions{Include: f.include, Fields: f.fields}
			var result any
			if f.slug != "" {
				result, err = lookup.bySlug(c, ctx, f.slug, opts)
			} else {
				result, err = lookup.byID(c, ctx, args[0], opts)
			}
			if err != nil {
				if ghost.IsNotFound(err) {
					return fmt.Errorf("%s not found", use)
				}
				return fmt.Errorf("failed to get %s: %w", use, err)
			}
			return outputJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&f.slug, "slug", "", "Look up by slug instead of id")
	cmd.Flags().StringVar(&f.include, "include", "", "Relations to include")
	cmd.Flags().StringVar(&f.fields, "fields", "", "Comma-separated fields to return")
	return cmd
}

func newSettingsCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Get site settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := g.newClient(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), g.getTimeout())
			defer cancel()

			result, err := c.GetSettings(ctx)
			if err != nil {
				return fmt.Errorf("failed to get settings: %w", err)
			}
			return outputJSON(cmd.OutOrStdout(), result)
		},
	}
}

var requestMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodDelete: true,
}

func newRequestCmd(g *globalFlags) *cobra.Command {
	var (
		data  string
		query map[string]string
	)
	cmd := &cobra.Command{
		Use:   "request METHOD RESOURCE",
		Short: "Send a raw request to a Content API resource",
		Long: `Sends a request to any resource below /ghost/api/{version}/content/.

Example:
  ghost request GET posts --query include=tags --query limit=3
  ghost request POST posts --data '{"posts":[{"title":"Hello"}]}'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			method := strings.ToUpper(args[0])
			if !requestMethods[method] {
				return fmt.Errorf("unsupported method %q (use GET, POST, PUT or DELETE)", args[0])
			}

			var body map[string]any
			if data != "" {
				if err := json.Unmarshal([]byte(data), &body); err != nil {
					return fmt.Errorf("--data must be a JSON object: %w", err)
				}
			}

			c, err := g.newClient(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), g.getTimeout())
			defer cancel()

			result, err := c.Call(ctx, method, args[1], ghost.Query(query), body)
			if err != nil {
				return fmt.Errorf("request failed: %w", err)
			}
			return outputJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&data, "data", "", "JSON object sent as the request body")
	cmd.Flags().StringToStringVar(&query, "query", nil, "Query parameter as key=value (repeatable)")
	return cmd
}
