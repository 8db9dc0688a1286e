package ghost

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Pagination is the meta.pagination block of a list response
type Pagination struct {
	Page  int  `mapstructure:"page" json:"page"`
	Limit any  `mapstructure:"limit" json:"limit"` // a number, or "all"
	Pages int  `mapstructure:"pages" json:"pages"`
	Total int  `mapstructure:"total" json:"total"`
	Next  *int `mapstructure:"next" json:"next"`
	Prev  *int `mapstructure:"prev" json:"prev"`
}

// ParsePagination extracts meta.pagination from a decoded list response.
// It returns nil without error when the response has no pagination block.
func ParsePagination(value any) (*Pagination, error) {
	root, ok := value.(map[string]any)
	if !ok {
		return nil, nil
	}
	meta, ok := root["meta"].(map[string]any)
	if !ok {
		return nil, nil
	}
	raw, ok := meta["pagination"]
	if !ok || raw == nil {
		return nil, nil
	}

	var p Pagination
	if err := mapstructure.Decode(raw, &p); err != nil {
		return nil, fmt.Errorf("invalid pagination block: %w", err)
	}
	return &p, nil
}

// Items returns the collection entries of a decoded response, e.g. posts.
// The second result is false when the key is absent or not a list.
func Items(value any, resource string) ([]any, bool) {
	root, ok := value.(map[string]any)
	if !ok {
		return nil, false
	}
	items, ok := root[resource].([]any)
	return items, ok
}
