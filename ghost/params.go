package ghost

import (
	"net/url"
	"strconv"
	"strings"
)

// ReadOptions configures single-entity lookups
type ReadOptions struct {
	Include string // comma-separated relations (authors, tags, count.posts)
	Fields  string // comma-separated fields to return
}

// ListOptions configures author and tag listings
type ListOptions struct {
	Include string
	Fields  string
	Filter  string // NQL filter expression
	Limit   string // number of records or "all"
	Page    int    // zero means unset
	Order   string // e.g. "published_at desc"
}

// ContentListOptions configures post and page listings
type ContentListOptions struct {
	ListOptions
	Format string // html, plaintext, mobiledoc
}

func (o *ReadOptions) query() Query {
	if o == nil {
		return nil
	}
	return Query{
		"include": o.Include,
		"fields":  o.Fields,
	}
}

func (o *ListOptions) query() Query {
	if o == nil {
		return nil
	}
	q := Query{
		"include": o.Include,
		"fields":  o.Fields,
		"filter":  o.Filter,
		"limit":   o.Limit,
		"order":   o.Order,
	}
	if o.Page > 0 {
		q["page"] = strconv.Itoa(o.Page)
	}
	return q
}

func (o *ContentListOptions) query() Query {
	if o == nil {
		return nil
	}
	q := o.ListOptions.query()
	q["format"] = o.Format
	return q
}

// resourcePath joins a collection with escaped segments
func resourcePath(collection string, segments ...string) string {
	var b strings.Builder
	b.WriteString(collection)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}
