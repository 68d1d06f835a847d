package blob

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestValidateKey(t *testing.T) {
	valid := []string{"generic.png", "abc_logo.svg", "0b8e.jpg"}
	invalid := []string{"", "  ", "../x.png", "a/b.png", `a\b.png`, "..", ".hidden", "a..png"}

	for _, k := range valid {
		if err := ValidateKey(k); err != nil {
			t.Errorf("%q: unexpected error %v", k, err)
		}
	}
	for _, k := range invalid {
		if err := ValidateKey(k); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("%q: expected ErrInvalidKey, got %v", k, err)
		}
	}
}

func TestContentTypeFor(t *testing.T) {
	if got := ContentTypeFor("a.PNG"); got != "image/png" {
		t.Errorf("expected image/png, got %q", got)
	}
	if got := ContentTypeFor("icon.SVG"); got != "image/svg+xml" {
		t.Errorf("expected image/svg+xml, got %q", got)
	}
	for _, key := range []string{"noext", "abc_page.html", "script.js"} {
		if got := ContentTypeFor(key); got != "application/octet-stream" {
			t.Errorf("%s: expected octet-stream, got %q", key, got)
		}
	}
}

// exerciseStore runs the behaviour every backend shares.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	info, err := s.Put(ctx, "logo.png", strings.NewReader("png-bytes"), PutOptions{})
	if err != nil {
		t.Fatalf("put error: %v", err)
	}
	if info.Size != int64(len("png-bytes")) || info.ContentType != "image/png" {
		t.Errorf("unexpected info %+v", info)
	}

	if _, err := s.Put(ctx, "logo.png", strings.NewReader("other"), PutOptions{}); !errors.Is(err, ErrExists) {
		t.Errorf("expected ErrExists, got %v", err)
	}
	if _, err := s.Put(ctx, "../escape.png", strings.NewReader("x"), PutOptions{}); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}

	got, rc, err := s.Get(ctx, "logo.png")
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	defer rc.Close()
	body, _ := io.ReadAll(rc)
	if string(body) != "png-bytes" {
		t.Errorf("unexpected body %q", body)
	}
	if got.ContentType != "image/png" {
		t.Errorf("unexpected content type %q", got.ContentType)
	}

	if _, _, err := s.Get(ctx, "missing.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFilesystem(t *testing.T) {
	fs, err := NewFilesystem(t.TempDir())
	if err != nil {
		t.Fatalf("new filesystem: %v", err)
	}
	if fs.Driver() != DriverFilesystem {
		t.Errorf("unexpected driver %q", fs.Driver())
	}
	exerciseStore(t, fs)
}

func TestMemory(t *testing.T) {
	m := NewMemory()
	exerciseStore(t, m)
	if keys := m.Keys(); len(keys) != 1 || keys[0] != "logo.png" {
		t.Errorf("unexpected keys %v", keys)
	}
}
