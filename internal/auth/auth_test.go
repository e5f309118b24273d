package auth

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// makeJWT builds a minimally-shaped JWT whose payload is the given JSON.
func makeJWT(payload string) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	body := base64.RawURLEncoding.EncodeToString([]byte(payload))
	return header + "." + body + ".signature"
}

func TestFileTokenStore(t *testing.T) {
	t.Run("Get Before Set", func(t *testing.T) {
		store := NewFileTokenStore(filepath.Join(t.TempDir(), "token"))

		if _, ok := store.Get(); ok {
			t.Error("expected no token before Set")
		}
	})

	t.Run("Set Then Get", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "token")
		store := NewFileTokenStore(path)

		if err := store.Set("abc.def.ghi"); err != nil {
			t.Fatalf("failed to set token: %v", err)
		}

		token, ok := store.Get()
		if !ok {
			t.Fatal("expected token after Set")
		}
		if token != "abc.def.ghi" {
			t.Errorf("expected stored token, got %q", token)
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("token file should exist: %v", err)
		}
		if perm := info.Mode().Perm(); perm != 0600 {
			t.Errorf("expected 0600 permissions, got %o", perm)
		}
	})

	t.Run("Set Overwrites", func(t *testing.T) {
		store := NewFileTokenStore(filepath.Join(t.TempDir(), "token"))

		if err := store.Set("first"); err != nil {
			t.Fatal(err)
		}
		if err := store.Set("second"); err != nil {
			t.Fatal(err)
		}

		if token, _ := store.Get(); token != "second" {
			t.Errorf("expected second token, got %q", token)
		}
	})

	t.Run("Durable Across Instances", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "token")

		if err := NewFileTokenStore(path).Set("persisted"); err != nil {
			t.Fatal(err)
		}

		token, ok := NewFileTokenStore(path).Get()
		if !ok || token != "persisted" {
			t.Errorf("expected token to survive a new store instance, got %q", token)
		}
	})

	t.Run("Clear Is Idempotent", func(t *testing.T) {
		store := NewFileTokenStore(filepath.Join(t.TempDir(), "token"))

		if err := store.Set("tok"); err != nil {
			t.Fatal(err)
		}
		if err := store.Clear(); err != nil {
			t.Fatalf("failed to clear token: %v", err)
		}
		if _, ok := store.Get(); ok {
			t.Error("expected no token after Clear")
		}
		if err := store.Clear(); err != nil {
			t.Errorf("clearing an absent token should not error: %v", err)
		}
	})
}

func TestIsValid(t *testing.T) {
	defer func() { now = time.Now }()
	now = func() time.Time { return time.Unix(1_700_000_000, 0) }

	tt := []struct {
		name  string
		token string
		want  bool
	}{
		{
			name:  "absent token",
			token: "",
			want:  false,
		},
		{
			name:  "fewer than two segments",
			token: "justonesegment",
			want:  false,
		},
		{
			name:  "second segment not base64",
			token: "header.!!!not-base64!!!.sig",
			want:  false,
		},
		{
			name:  "second segment not JSON",
			token: "header." + base64.RawURLEncoding.EncodeToString([]byte("plain text")) + ".sig",
			want:  false,
		},
		{
			name:  "missing exp claim",
			token: makeJWT(`{"sub":"1"}`),
			want:  false,
		},
		{
			name:  "expired exp",
			token: makeJWT(`{"exp":1699999999}`),
			want:  false,
		},
		{
			name:  "exp equal to now",
			token: makeJWT(`{"exp":1700000000}`),
			want:  false,
		},
		{
			name:  "exp in the future",
			token: makeJWT(`{"exp":1700003600}`),
			want:  true,
		},
		{
			name:  "padded base64url payload",
			token: "h." + base64.URLEncoding.EncodeToString([]byte(fmt.Sprintf(`{"exp":%d}`, 1_700_003_600))) + ".s",
			want:  true,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValid(tc.token); got != tc.want {
				t.Errorf("IsValid(%q) = %v, want %v", tc.token, got, tc.want)
			}
		})
	}
}
