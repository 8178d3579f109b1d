package persistence

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lite-lake/infra-dnsfilters/internal/domain"
)

// StdinPath selects standard input instead of a file.
const StdinPath = "-"

// DocumentLoader reads YAML or JSON documents (JSON being a subset of YAML)
// into plain interface values for the filters.
type DocumentLoader struct {
	baseDir string
	stdin   io.Reader
}

func NewDocumentLoader(baseDir string) *DocumentLoader {
	return &DocumentLoader{baseDir: baseDir, stdin: os.Stdin}
}

func (l *DocumentLoader) WithStdin(r io.Reader) *DocumentLoader {
	l.stdin = r
	return l
}

// Load decodes the document at path and returns the value found under the
// dotted key path (see Lookup). An empty key returns the whole document.
func (l *DocumentLoader) Load(ctx context.Context, path, key string) (any, error) {
	data, err := l.read(path)
	if err != nil {
		return nil, err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w: %w", path, domain.ErrDocumentParseFailed, err)
	}

	return Lookup(doc, key)
}

func (l *DocumentLoader) read(path string) ([]byte, error) {
	if path == StdinPath {
		data, err := io.ReadAll(l.stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w: %w", domain.ErrDocumentReadFailed, err)
		}
		return data, nil
	}

	if !filepath.IsAbs(path) && l.baseDir != "" {
		path = filepath.Join(l.baseDir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w: %w", path, domain.ErrDocumentReadFailed, err)
	}
	return data, nil
}

// Lookup descends doc along a dotted key path. Segments address mapping keys,
// or list indexes when the current value is a list: "private_dns.0.subdomains".
func Lookup(doc any, key string) (any, error) {
	if key == "" {
		return doc, nil
	}

	cur := doc
	walked := make([]string, 0, strings.Count(key, ".")+1)
	for _, seg := range strings.Split(key, ".") {
		walked = append(walked, seg)
		next, ok := step(cur, seg)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrKeyNotFound, strings.Join(walked, "."))
		}
		cur = next
	}
	return cur, nil
}

func step(cur any, seg string) (any, bool) {
	switch v := cur.(type) {
	case map[string]any:
		next, ok := v[seg]
		return next, ok
	case map[any]any:
		if next, ok := v[seg]; ok {
			return next, true
		}
		if i, err := strconv.Atoi(seg); err == nil {
			next, ok := v[i]
			return next, ok
		}
		return nil, false
	case []any:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= len(v) {
			return nil, false
		}
		return v[i], true
	default:
		return nil, false
	}
}
