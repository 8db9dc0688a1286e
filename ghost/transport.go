package ghost

import (
	"context"

	"github.com/howToCodeWell/ghost-content-api/internal/base"
)

// Request is a single outbound Content API request
type Request = base.Request

// Response is the raw result of a request
type Response = base.Response

// Transport performs Content API requests. Implementations return an error
// for network failures and for non-2xx responses.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// TransportFunc adapts a function to the Transport interface
type TransportFunc func(ctx context.Context, req *Request) (*Response, error)

// Do calls f(ctx, req)
func (f TransportFunc) Do(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}

// compile-time check
var _ Transport = (*base.Transport)(nil)
