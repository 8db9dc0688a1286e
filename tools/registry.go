// Package tools provides a metadata-driven registry for MCP tool definitions.
// Tools are defined declaratively and registered through type-safe handlers
// that call the Ghost client's MCP wrapper methods.
package tools

// ToolSpec defines a tool's metadata for declarative registration.
// Each spec maps to a ghost.Client MCP method with matching Args/Result types.
type ToolSpec struct {
	// Name is the MCP tool name (e.g., "ghost_list_posts")
	Name string

	// Method is the client method name (e.g., "ListPosts")
	Method string

	// Description is the tool description shown to LLMs
	Description string

	// Title is the human-readable tool title for annotations
	Title string

	// Category groups tools logically (list, read, site)
	Category string

	// Resource is the Content API collection the tool reads
	Resource string

	// ReadOnly indicates the tool doesn't modify site state
	ReadOnly bool

	// Destructive indicates the tool can delete or overwrite data
	Destructive bool

	// Idempotent indicates repeated calls have the same effect
	Idempotent bool

	// OpenWorld indicates the tool accesses external resources
	OpenWorld bool
}

// ToolsByResource returns the specs that read the given collection.
func ToolsByResource(resource string) []ToolSpec {
	var out []ToolSpec
	for _, spec := range AllTools {
		if spec.Resource == resource {
			out = append(out, spec)
		}
	}
	return out
}

// ToolsByCategory returns the specs in the given category.
func ToolsByCategory(category string) []ToolSpec {
	var out []ToolSpec
	for _, spec := range AllTools {
		if spec.Category == category {
			out = append(out, spec)
		}
	}
	return out
}

// ptr is a helper to create a pointer to a value.
func ptr[T any](v T) *T {
	return &v
}
