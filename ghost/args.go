package ghost

// ListContentArgs contains parameters for listing posts or pages
type ListContentArgs struct {
	Include string `json:"include,omitempty" jsonschema:"Comma-separated relations to include (authors, tags)"`
	Fields  string `json:"fields,omitempty" jsonschema:"Comma-separated fields to return"`
	Filter  string `json:"filter,omitempty" jsonschema:"NQL filter, e.g. tag:getting-started+featured:true"`
	Limit   string `json:"limit,omitempty" jsonschema:"Records per page, or all (default 15)"`
	Page    int    `json:"page,omitempty" jsonschema:"Page number (1-indexed)"`
	Order   string `json:"order,omitempty" jsonschema:"Sort order, e.g. published_at desc"`
	Format  string `json:"format,omitempty" jsonschema:"Content format: html, plaintext or mobiledoc"`
}

// ListArgs contains parameters for listing tags or authors
type ListArgs struct {
	Include string `json:"include,omitempty" jsonschema:"Relations to include (count.posts)"`
	Fields  string `json:"fields,omitempty" jsonschema:"Comma-separated fields to return"`
	Filter  string `json:"filter,omitempty" jsonschema:"NQL filter expression"`
	Limit   string `json:"limit,omitempty" jsonschema:"Records per page, or all (default 15)"`
	Page    int    `json:"page,omitempty" jsonschema:"Page number (1-indexed)"`
	Order   string `json:"order,omitempty" jsonschema:"Sort order, e.g. name asc"`
}

// GetArgs contains parameters for a single lookup. Exactly one of ID or Slug is required.
type GetArgs struct {
	ID      string `json:"id,omitempty" jsonschema:"Resource id (24-char hex)"`
	Slug    string `json:"slug,omitempty" jsonschema:"Resource slug"`
	Include string `json:"include,omitempty" jsonschema:"Comma-separated relations to include"`
	Fields  string `json:"fields,omitempty" jsonschema:"Comma-separated fields to return"`
}

// SettingsArgs takes no parameters
type SettingsArgs struct{}

// ListResult is the result of a list call
type ListResult struct {
	Resource   string      `json:"resource"`
	Items      []any       `json:"items"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// ItemResult is the result of a single lookup
type ItemResult struct {
	Resource string `json:"resource"`
	Item     any    `json:"item"`
}

// SettingsResult holds the site settings
type SettingsResult struct {
	Settings map[string]any `json:"settings"`
}
