package ghost

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	apierrors "github.com/howToCodeWell/ghost-content-api/internal/errors"
)

func TestErrorHelpers(t *testing.T) {
	status := apierrors.NewStatusError(http.StatusNotFound, []byte(`{"errors":[{"message":"Not found"}]}`))
	terr := &TransportError{Method: "GET", URL: "https://demo.ghost.io/x?key=REDACTED", Err: status}
	wrapped := fmt.Errorf("listing: %w", terr)

	if !IsTransportError(wrapped) {
		t.Error("IsTransportError should see through wrapping")
	}
	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should see the wrapped StatusError")
	}
	if got := StatusCode(wrapped); got != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", got)
	}
	if IsDecodeError(wrapped) || IsConfigurationError(wrapped) || IsValidationError(wrapped) {
		t.Error("transport error misclassified")
	}

	if !IsConfigurationError(errMissingToken()) {
		t.Error("errMissingToken should be a ConfigurationError")
	}
	if !IsDecodeError(newDecodeError(errors.New("bad"), []byte("x"))) {
		t.Error("newDecodeError should be a DecodeError")
	}
	if !IsValidationError(apierrors.NewValidationError("id", "", "id is required")) {
		t.Error("ValidationError not recognised")
	}
	if StatusCode(errors.New("plain")) != 0 {
		t.Error("plain errors carry no status")
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "transport",
			err:  &TransportError{Method: "GET", URL: "https://demo.ghost.io/posts?key=REDACTED", Err: errors.New("timeout")},
			want: "GET https://demo.ghost.io/posts?key=REDACTED: timeout",
		},
		{
			name: "decode without snippet",
			err:  &DecodeError{Err: errors.New("unexpected end of JSON input")},
			want: "failed to decode response: unexpected end of JSON input",
		},
		{
			name: "decode with snippet",
			err:  &DecodeError{Err: errors.New("invalid character '<'"), Snippet: "<html>"},
			want: `failed to decode response: invalid character '<' (body: "<html>")`,
		},
		{
			name: "configuration",
			err:  errMissingToken(),
			want: "API token must be set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
