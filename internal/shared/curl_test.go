package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseCurlCommand(t *testing.T) {
	tt := []struct {
		name        string
		curlCmd     string
		wantHeaders map[string]string
		wantToken   string
		wantErr     bool
	}{
		{
			name:    "single header with single quotes",
			curlCmd: `curl -H 'Authorization: Bearer token123' https://api.polyglot.fm/user/me`,
			wantHeaders: map[string]string{
				"Authorization": "Bearer token123",
			},
			wantToken: "token123",
		},
		{
			name:    "single header with double quotes",
			curlCmd: `curl -H "Authorization: Bearer token123" https://api.polyglot.fm/user/me`,
			wantHeaders: map[string]string{
				"Authorization": "Bearer token123",
			},
			wantToken: "token123",
		},
		{
			name:    "multiple headers",
			curlCmd: `curl -H 'Content-Type: application/json' -H 'Authorization: Bearer abc' https://api.polyglot.fm/podcasts`,
			wantHeaders: map[string]string{
				"Content-Type":  "application/json",
				"Authorization": "Bearer abc",
			},
			wantToken: "abc",
		},
		{
			name: "multiline command with continuations",
			curlCmd: `curl 'https://api.polyglot.fm/translations' \
  -H 'Accept: application/json' \
  -H 'Authorization: Bearer multiline-token'`,
			wantHeaders: map[string]string{
				"Accept":        "application/json",
				"Authorization": "Bearer multiline-token",
			},
			wantToken: "multiline-token",
		},
		{
			name:    "no authorization header",
			curlCmd: `curl -H 'Accept: application/json' https://api.polyglot.fm/podcasts`,
			wantHeaders: map[string]string{
				"Accept": "application/json",
			},
			wantToken: "",
		},
		{
			name:    "no headers at all",
			curlCmd: `curl https://api.polyglot.fm/podcasts`,
			wantErr: true,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := ParseCurlCommand([]byte(tc.curlCmd))

			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			for key, want := range tc.wantHeaders {
				if got := parsed.Headers[key]; got != want {
					t.Errorf("header %s = %q, want %q", key, got, want)
				}
			}

			if got := parsed.BearerToken(); got != tc.wantToken {
				t.Errorf("BearerToken() = %q, want %q", got, tc.wantToken)
			}
		})
	}
}

func TestParseCurlFile(t *testing.T) {
	t.Run("Missing File", func(t *testing.T) {
		if _, err := ParseCurlFile("/nonexistent/request.sh"); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("Valid File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "request.sh")
		cmd := `curl -H 'Authorization: Bearer from-file' https://api.polyglot.fm/user/me`
		if err := os.WriteFile(path, []byte(cmd), 0644); err != nil {
			t.Fatalf("failed to write curl file: %v", err)
		}

		parsed, err := ParseCurlFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if parsed.BearerToken() != "from-file" {
			t.Errorf("BearerToken() = %q, want from-file", parsed.BearerToken())
		}
	})
}
