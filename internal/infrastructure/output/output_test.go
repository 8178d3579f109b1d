package output

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lite-lake/infra-dnsfilters/internal/domain"
)

type record struct {
	Value    string `yaml:"value" json:"value"`
	Priority *int   `yaml:"priority,omitempty" json:"priority,omitempty"`
}

func TestEncode(t *testing.T) {
	zero := 0
	v := map[string][]record{"DNS": {{Value: "ns1.beget.com", Priority: &zero}}, "CAA": {{Value: "letsencrypt.org"}}}

	yamlOut, err := Marshal(v, "yaml")
	if err != nil {
		t.Fatalf("Marshal(yaml) error = %v", err)
	}
	if !strings.Contains(string(yamlOut), "value: ns1.beget.com") || strings.Count(string(yamlOut), "priority: 0") != 1 {
		t.Errorf("Marshal(yaml) =\n%s", yamlOut)
	}
	if strings.Index(string(yamlOut), "CAA:") > strings.Index(string(yamlOut), "DNS:") {
		t.Errorf("Marshal(yaml) keys not sorted:\n%s", yamlOut)
	}

	jsonOut, err := Marshal(v, "json")
	if err != nil {
		t.Fatalf("Marshal(json) error = %v", err)
	}
	want := "{\n  \"CAA\": [\n    {\n      \"value\": \"letsencrypt.org\"\n    }\n  ],\n  \"DNS\": [\n    {\n      \"value\": \"ns1.beget.com\",\n      \"priority\": 0\n    }\n  ]\n}\n"
	if string(jsonOut) != want {
		t.Errorf("Marshal(json) =\n%s\nwant\n%s", jsonOut, want)
	}

	if _, err := Marshal(v, "toml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestFileWriter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.yml")
	w := NewFileWriter(path)

	if err := w.Write(context.Background(), []byte("first\n")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Write(context.Background(), []byte("second\n")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second\n" {
		t.Errorf("file content = %q, want %q", data, "second\n")
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file %s left behind", e.Name())
		}
	}
}

func TestFileWriter_MissingDirectory(t *testing.T) {
	w := NewFileWriter(filepath.Join(t.TempDir(), "missing", "records.yml"))

	err := w.Write(context.Background(), []byte("x"))
	if !errors.Is(err, domain.ErrOutputWriteFailed) {
		t.Errorf("Write() error = %v, want %v", err, domain.ErrOutputWriteFailed)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Write() error = %v, want the underlying %v", err, fs.ErrNotExist)
	}
}
