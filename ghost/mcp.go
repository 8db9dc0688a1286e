package ghost

import (
	"context"
	"errors"
	"fmt"

	apierrors "github.com/howToCodeWell/ghost-content-api/internal/errors"
)

// MCP Tool wrapper methods
// These methods wrap the client methods with Args/Result types for MCP integration.

// ListPostsMCP is the MCP wrapper for GetPosts
func (c *Client) ListPostsMCP(ctx context.Context, args ListContentArgs) (ListResult, error) {
	resp, err := c.GetPosts(ctx, args.options())
	if err != nil {
		return ListResult{}, err
	}
	return toListResult(ResourcePosts, resp)
}

// GetPostMCP is the MCP wrapper for GetPost and GetPostBySlug
func (c *Client) GetPostMCP(ctx context.Context, args GetArgs) (ItemResult, error) {
	return c.lookup(ctx, ResourcePosts, args, c.GetPost, c.GetPostBySlug)
}

// ListPagesMCP is the MCP wrapper for GetPages
func (c *Client) ListPagesMCP(ctx context.Context, args ListContentArgs) (ListResult, error) {
	resp, err := c.GetPages(ctx, args.options())
	if err != nil {
		return ListResult{}, err
	}
	return toListResult(ResourcePages, resp)
}

// GetPageMCP is the MCP wrapper for GetPage and GetPageBySlug
func (c *Client) GetPageMCP(ctx context.Context, args GetArgs) (ItemResult, error) {
	return c.lookup(ctx, ResourcePages, args, c.GetPage, c.GetPageBySlug)
}

// ListTagsMCP is the MCP wrapper for GetTags
func (c *Client) ListTagsMCP(ctx context.Context, args ListArgs) (ListResult, error) {
	resp, err := c.GetTags(ctx, args.options())
	if err != nil {
		return ListResult{}, err
	}
	return toListResult(ResourceTags, resp)
}

// GetTagMCP is the MCP wrapper for GetTag and GetTagBySlug
func (c *Client) GetTagMCP(ctx context.Context, args GetArgs) (ItemResult, error) {
	return c.lookup(ctx, ResourceTags, args, c.GetTag, c.GetTagBySlug)
}

// ListAuthorsMCP is the MCP wrapper for GetAuthors
func (c *Client) ListAuthorsMCP(ctx context.Context, args ListArgs) (ListResult, error) {
	resp, err := c.GetAuthors(ctx, args.options())
	if err != nil {
		return ListResult{}, err
	}
	return toListResult(ResourceAuthors, resp)
}

// GetAuthorMCP is the MCP wrapper for GetAuthor and GetAuthorBySlug
func (c *Client) GetAuthorMCP(ctx context.Context, args GetArgs) (ItemResult, error) {
	return c.lookup(ctx, ResourceAuthors, args, c.GetAuthor, c.GetAuthorBySlug)
}

// GetSettingsMCP is the MCP wrapper for GetSettings
func (c *Client) GetSettingsMCP(ctx context.Context, _ SettingsArgs) (SettingsResult, error) {
	resp, err := c.GetSettings(ctx)
	if err != nil {
		return SettingsResult{}, err
	}
	root, ok := resp.(map[string]any)
	if !ok {
		return SettingsResult{}, fmt.Errorf("unexpected settings response of type %T", resp)
	}
	settings, ok := root[ResourceSettings].(map[string]any)
	if !ok {
		return SettingsResult{}, errors.New("settings response has no settings object")
	}
	return SettingsResult{Settings: settings}, nil
}

type lookupFunc func(ctx context.Context, identifier string, opts *ReadOptions) (any, error)

func (c *Client) lookup(ctx context.Context, resource string, args GetArgs, byID, bySlug lookupFunc) (ItemResult, error) {
	if err := args.validate(); err != nil {
		return ItemResult{}, err
	}

	opts := &ReadOptions{Include: args.Include, Fields: args.Fields}
	var (
		resp any
		err  error
	)
	if args.ID != "" {
		resp, err = byID(ctx, args.ID, opts)
	} else {
		resp, err = bySlug(ctx, args.Slug, opts)
	}
	if err != nil {
		return ItemResult{}, err
	}

	items, ok := Items(resp, resource)
	if !ok {
		return ItemResult{}, fmt.Errorf("%s response has no %s list", resource, resource)
	}
	if len(items) == 0 {
		return ItemResult{}, fmt.Errorf("%s not found", resource)
	}
	return ItemResult{Resource: resource, Item: items[0]}, nil
}

func toListResult(resource string, resp any) (ListResult, error) {
	items, ok := Items(resp, resource)
	if !ok {
		return ListResult{}, fmt.Errorf("%s response has no %s list", resource, resource)
	}
	pagination, err := ParsePagination(resp)
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{Resource: resource, Items: items, Pagination: pagination}, nil
}

func (a GetArgs) validate() error {
	switch {
	case a.ID == "" && a.Slug == "":
		return apierrors.NewValidationError("id", "", "either id or slug is required")
	case a.ID != "" && a.Slug != "":
		return apierrors.NewValidationError("slug", a.Slug, "provide id or slug, not both")
	}
	return nil
}

func (a ListContentArgs) options() *ContentListOptions {
	return &ContentListOptions{
		ListOptions: ListOptions{
			Include: a.Include,
			Fields:  a.Fields,
			Filter:  a.Filter,
			Limit:   a.Limit,
			Page:    a.Page,
			Order:   a.Order,
		},
		Format: a.Format,
	}
}

func (a ListArgs) options() *ListOptions {
	return &ListOptions{
		Include: a.Include,
		Fields:  a.Fields,
		Filter:  a.Filter,
		Limit:   a.Limit,
		Page:    a.Page,
		Order:   a.Order,
	}
}
