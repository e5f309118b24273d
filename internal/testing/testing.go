// package testing contains shared testing utilities
package testing

import (
	"errors"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/polyglotfm/plx/internal/auth"
)

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// FCloser simulates a failure when reading a response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

// TempTokenStore creates a FileTokenStore under a per-test temp directory.
func TempTokenStore(t *testing.T) *auth.FileTokenStore {
	t.Helper()
	return auth.NewFileTokenStore(filepath.Join(t.TempDir(), "token"))
}

// MustSetToken seeds a token store, failing the test on error.
func MustSetToken(t *testing.T, store auth.TokenStore, token string) {
	t.Helper()
	if err := store.Set(token); err != nil {
		t.Fatalf("failed to seed token store: %v", err)
	}
}
