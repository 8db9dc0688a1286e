package tools

import "github.com/howToCodeWell/ghost-content-api/ghost"

// AllTools contains all tool specifications for the Ghost Content MCP server.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// POSTS
	// ==========================================================================
	{
		Name:     "ghost_list_posts",
		Method:   "ListPosts",
		Title:    "List Posts",
		Category: "list",
		Resource: ghost.ResourcePosts,
		Description: `List published posts on the Ghost site, newest first by default.

USE WHEN: User asks "what has been published", "latest posts", "posts tagged X", "posts by author Y".

NOT FOR: Reading one known post (use ghost_get_post). Static pages like About (use ghost_list_pages).

PARAMETERS:
- filter: NQL filter, e.g. tag:news, author:jane, featured:true (optional)
- include: Relations to embed, e.g. tags,authors (optional)
- fields: Comma-separated fields to return, e.g. title,url (optional)
- limit: Records per page or "all" (default 15)
- page: Page number (default 1)
- order: Sort order, e.g. "published_at asc" (optional)
- format: html, plaintext or mobiledoc (default html)

RETURNS: Posts with pagination (page, pages, total, next, prev).`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "ghost_get_post",
		Method:   "GetPost",
		Title:    "Get Post",
		Category: "read",
		Resource: ghost.ResourcePosts,
		Description: `Get a single post by id or slug.

USE WHEN: User names a specific post, pastes a post URL slug, or asks "show me the post X".

NOT FOR: Browsing or searching posts (use ghost_list_posts with a filter).

PARAMETERS:
- id: 24-character post id (one of id or slug)
- slug: Post slug from its URL (one of id or slug)
- include: Relations to embed, e.g. tags,authors (optional)
- fields: Comma-separated fields to return (optional)

RETURNS: The post object.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// PAGES
	// ==========================================================================
	{
		Name:     "ghost_list_pages",
		Method:   "ListPages",
		Title:    "List Pages",
		Category: "list",
		Resource: ghost.ResourcePages,
		Description: `List static pages (About, Contact, etc.) on the Ghost site.

USE WHEN: User asks "what pages does the site have", "find the about page".

NOT FOR: Blog posts (use ghost_list_posts).

PARAMETERS:
- filter, include, fields, limit, page, order, format: Same as ghost_list_posts

RETURNS: Pages with pagination.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "ghost_get_page",
		Method:   "GetPage",
		Title:    "Get Page",
		Category: "read",
		Resource: ghost.ResourcePages,
		Description: `Get a single static page by id or slug.

USE WHEN: User asks for the content of a specific page, e.g. "what does the about page say".

NOT FOR: Blog posts (use ghost_get_post).

PARAMETERS:
- id: Page id (one of id or slug)
- slug: Page slug (one of id or slug)
- include, fields: Optional

RETURNS: The page object.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// TAGS
	// ==========================================================================
	{
		Name:     "ghost_list_tags",
		Method:   "ListTags",
		Title:    "List Tags",
		Category: "list",
		Resource: ghost.ResourceTags,
		Description: `List tags used to group posts.

USE WHEN: User asks "what topics does the blog cover", "which tags exist", "most used tags".

NOT FOR: Posts within a tag (use ghost_list_posts with filter tag:slug).

PARAMETERS:
- include: count.posts to add post counts (optional)
- filter, fields, limit, page, order: Optional

RETURNS: Tags with pagination.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "ghost_get_tag",
		Method:   "GetTag",
		Title:    "Get Tag",
		Category: "read",
		Resource: ghost.ResourceTags,
		Description: `Get a single tag by id or slug.

USE WHEN: User asks about one tag, e.g. its description or post count.

NOT FOR: Listing tags (use ghost_list_tags).

PARAMETERS:
- id: Tag id (one of id or slug)
- slug: Tag slug (one of id or slug)
- include: count.posts (optional)

RETURNS: The tag object.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// AUTHORS
	// ==========================================================================
	{
		Name:     "ghost_list_authors",
		Method:   "ListAuthors",
		Title:    "List Authors",
		Category: "list",
		Resource: ghost.ResourceAuthors,
		Description: `List authors who have published on the site.

USE WHEN: User asks "who writes for this blog", "list the authors".

NOT FOR: Posts by an author (use ghost_list_posts with filter author:slug).

PARAMETERS:
- include: count.posts to add post counts (optional)
- filter, fields, limit, page, order: Optional

RETURNS: Authors with pagination.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "ghost_get_author",
		Method:   "GetAuthor",
		Title:    "Get Author",
		Category: "read",
		Resource: ghost.ResourceAuthors,
		Description: `Get a single author by id or slug.

USE WHEN: User asks about a specific author's bio, website or profile.

NOT FOR: Listing authors (use ghost_list_authors).

PARAMETERS:
- id: Author id (one of id or slug)
- slug: Author slug (one of id or slug)
- include: count.posts (optional)

RETURNS: The author object.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// SITE
	// ==========================================================================
	{
		Name:     "ghost_get_settings",
		Method:   "GetSettings",
		Title:    "Get Site Settings",
		Category: "site",
		Resource: ghost.ResourceSettings,
		Description: `Get public site settings: title, description, logo, navigation, timezone and language.

USE WHEN: User asks "what is this site", "site navigation", "what language is the blog in".

PARAMETERS: None

RETURNS: The settings object.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}
