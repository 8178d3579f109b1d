package persistence

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lite-lake/infra-dnsfilters/internal/domain"
)

const varsYAML = `
private_dns:
  - domain: domain.com
    subdomains:
      - subdomain: "@"
        records:
          - type: A
            value: 127.0.0.1
`

func TestDocumentLoader_Load(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "vars.yml"), []byte(varsYAML), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "broken.yml"), []byte("a: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}

	loader := NewDocumentLoader(tmpDir)

	t.Run("whole document", func(t *testing.T) {
		doc, err := loader.Load(context.Background(), "vars.yml", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := doc.(map[string]any); !ok {
			t.Errorf("expected mapping, got %T", doc)
		}
	})

	t.Run("key path into list", func(t *testing.T) {
		v, err := loader.Load(context.Background(), "vars.yml", "private_dns.0.subdomains")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		subs, ok := v.([]any)
		if !ok || len(subs) != 1 {
			t.Errorf("expected one subdomain, got %#v", v)
		}
	})

	t.Run("absolute path", func(t *testing.T) {
		_, err := NewDocumentLoader("/nonexistent").Load(context.Background(), filepath.Join(tmpDir, "vars.yml"), "private_dns")
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := loader.Load(context.Background(), "vars.yml", "private_dns.3")
		if !errors.Is(err, domain.ErrKeyNotFound) {
			t.Errorf("expected ErrKeyNotFound, got %v", err)
		}
		if err != nil && !strings.Contains(err.Error(), "private_dns.3") {
			t.Errorf("error %q does not name the key", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.Load(context.Background(), "nope.yml", "")
		if !errors.Is(err, domain.ErrDocumentReadFailed) {
			t.Errorf("expected ErrDocumentReadFailed, got %v", err)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
		}
	})

	t.Run("broken yaml", func(t *testing.T) {
		_, err := loader.Load(context.Background(), "broken.yml", "")
		if !errors.Is(err, domain.ErrDocumentParseFailed) {
			t.Errorf("expected ErrDocumentParseFailed, got %v", err)
		}
	})
}

func TestDocumentLoader_Stdin(t *testing.T) {
	loader := NewDocumentLoader("").WithStdin(strings.NewReader(`{"DNS": [{"value": "ns1.beget.com"}]}`))

	v, err := loader.Load(context.Background(), StdinPath, "DNS.0.value")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "ns1.beget.com" {
		t.Errorf("expected ns1.beget.com, got %v", v)
	}
}

func TestLookup(t *testing.T) {
	doc := map[any]any{1: []any{"a", "b"}, "k": "v"}

	tests := []struct {
		key     string
		want    any
		wantErr bool
	}{
		{key: "k", want: "v"},
		{key: "1.1", want: "b"},
		{key: "1.2", wantErr: true},
		{key: "1.x", wantErr: true},
		{key: "k.deeper", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := Lookup(doc, tt.key)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Lookup() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Lookup() = %v, want %v", got, tt.want)
			}
		})
	}
}
