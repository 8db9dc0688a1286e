package ghost

import (
	"context"
	"strings"

	apierrors "github.com/howToCodeWell/ghost-content-api/internal/errors"
)

// Content API collections
const (
	ResourcePosts    = "posts"
	ResourcePages    = "pages"
	ResourceTags     = "tags"
	ResourceAuthors  = "authors"
	ResourceSettings = "settings"
)

// GetPosts lists posts
func (c *Client) GetPosts(ctx context.Context, opts *ContentListOptions) (any, error) {
	return c.Get(ctx, ResourcePosts, opts.query())
}

// GetPost retrieves a post by id
func (c *Client) GetPost(ctx context.Context, id string, opts *ReadOptions) (any, error) {
	return c.getByID(ctx, ResourcePosts, id, opts)
}

// GetPostBySlug retrieves a post by slug
func (c *Client) GetPostBySlug(ctx context.Context, slug string, opts *ReadOptions) (any, error) {
	return c.getBySlug(ctx, ResourcePosts, slug, opts)
}

// GetAuthors lists authors
func (c *Client) GetAuthors(ctx context.Context, opts *ListOptions) (any, error) {
	return c.Get(ctx, ResourceAuthors, opts.query())
}

// GetAuthor retrieves an author by id
func (c *Client) GetAuthor(ctx context.Context, id string, opts *ReadOptions) (any, error) {
	return c.getByID(ctx, ResourceAuthors, id, opts)
}

// GetAuthorBySlug retrieves an author by slug
func (c *Client) GetAuthorBySlug(ctx context.Context, slug string, opts *ReadOptions) (any, error) {
	return c.getBySlug(ctx, ResourceAuthors, slug, opts)
}

// GetTags lists tags
func (c *Client) GetTags(ctx context.Context, opts *ListOptions) (any, error) {
	return c.Get(ctx, ResourceTags, opts.query())
}

// GetTag retrieves a tag by id
func (c *Client) GetTag(ctx context.Context, id string, opts *ReadOptions) (any, error) {
	return c.getByID(ctx, ResourceTags, id, opts)
}

// GetTagBySlug retrieves a tag by slug
func (c *Client) GetTagBySlug(ctx context.Context, slug string, opts *ReadOptions) (any, error) {
	return c.getBySlug(ctx, ResourceTags, slug, opts)
}

// GetPages lists pages
func (c *Client) GetPages(ctx context.Context, opts *ContentListOptions) (any, error) {
	return c.Get(ctx, ResourcePages, opts.query())
}

// GetPage retrieves a page by id
func (c *Client) GetPage(ctx context.Context, id string, opts *ReadOptions) (any, error) {
	return c.getByID(ctx, ResourcePages, id, opts)
}

// GetPageBySlug retrieves a page by slug
func (c *Client) GetPageBySlug(ctx context.Context, slug string, opts *ReadOptions) (any, error) {
	return c.getBySlug(ctx, ResourcePages, slug, opts)
}

// GetSettings retrieves the site settings
func (c *Client) GetSettings(ctx context.Context) (any, error) {
	return c.Get(ctx, ResourceSettings, nil)
}

func (c *Client) getByID(ctx context.Context, collection, id string, opts *ReadOptions) (any, error) {
	if err := c.checkIdentifier("id", id); err != nil {
		return nil, err
	}
	return c.Get(ctx, resourcePath(collection, id), opts.query())
}

func (c *Client) getBySlug(ctx context.Context, collection, slug string, opts *ReadOptions) (any, error) {
	if err := c.checkIdentifier("slug", slug); err != nil {
		return nil, err
	}
	return c.Get(ctx, resourcePath(collection, "slug", slug), opts.query())
}

// checkIdentifier reports a missing token before validating the identifier,
// so every resource method fails the same way on an unconfigured client.
func (c *Client) checkIdentifier(field, value string) error {
	if _, ok := c.APIToken(); !ok {
		return errMissingToken()
	}
	return validateIdentifier(field, value)
}

// validateIdentifier rejects blank ids and slugs, which would otherwise hit the list endpoint
func validateIdentifier(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apierrors.NewValidationError(field, "", field+" is required")
	}
	return nil
}
