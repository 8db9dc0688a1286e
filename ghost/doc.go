// Package ghost is a client for the Ghost CMS Content API.
//
// A Client is bound to one site. Every call maps its parameters to a query
// string, attaches the content API key as the key parameter, performs a
// single request through the configured Transport and decodes the JSON body
// into generic values:
//
//	client := ghost.New("https://demo.ghost.io", ghost.WithAPIToken(key))
//	posts, err := client.GetPosts(ctx, &ghost.ContentListOptions{
//		ListOptions: ghost.ListOptions{Include: "tags,authors", Limit: "5"},
//	})
//
// Failures are reported as *ConfigurationError, *TransportError,
// *DecodeError or *ValidationError.
package ghost
